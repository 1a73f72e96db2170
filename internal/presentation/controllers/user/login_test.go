package user

import (
	"net/http"
	"testing"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/ledgerly/budget-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func makeStoredUser(t *testing.T, email string, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	return &models.User{
		Id:       primitive.NewObjectID(),
		Email:    email,
		Password: string(hash),
	}
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("SECRET_JWT", "login-test-secret")

	stored := makeStoredUser(t, "jordan@example.com", "s3cret-enough")
	controller := NewLoginController(&mockFindUserByEmailRepository{user: stored})

	response := controller.Handle(makeJSONRequest(t, http.MethodPost, "/login", map[string]string{
		"email":    "jordan@example.com",
		"password": "s3cret-enough",
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)

	var loginResponse LoginResponse
	decodeBody(t, response, &loginResponse)
	assert.Equal(t, "You have logged in successfully", loginResponse.Message)
	assert.Equal(t, stored.Email, loginResponse.UserInfo.Email)
	assert.NotEmpty(t, loginResponse.Token)

	claims, err := utils.NewAccessTokenUtil().DecodeToken(loginResponse.Token)
	assert.NoError(t, err)
	assert.Equal(t, stored.Id.Hex(), claims.UserId)
	assert.Equal(t, stored.Email, claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("SECRET_JWT", "login-test-secret")

	stored := makeStoredUser(t, "jordan@example.com", "s3cret-enough")
	controller := NewLoginController(&mockFindUserByEmailRepository{user: stored})

	response := controller.Handle(makeJSONRequest(t, http.MethodPost, "/login", map[string]string{
		"email":    "jordan@example.com",
		"password": "wrong-password",
	}))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	var errResponse presentationProtocols.ErrorResponse
	decodeBody(t, response, &errResponse)
	assert.Equal(t, "Invalid password!", errResponse.Error)
}

func TestLogin_UnknownEmail(t *testing.T) {
	controller := NewLoginController(&mockFindUserByEmailRepository{})

	response := controller.Handle(makeJSONRequest(t, http.MethodPost, "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever1",
	}))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	var errResponse presentationProtocols.ErrorResponse
	decodeBody(t, response, &errResponse)
	assert.Equal(t, "User with this email doesn't exist!", errResponse.Error)
}
