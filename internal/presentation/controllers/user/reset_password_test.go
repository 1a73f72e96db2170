package user

import (
	"net/http"
	"testing"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/ledgerly/budget-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type mockUpdatePasswordRepository struct {
	err      error
	gotEmail string
	gotHash  string
}

func (m *mockUpdatePasswordRepository) UpdatePassword(email string, hashedPassword string) error {
	m.gotEmail = email
	m.gotHash = hashedPassword
	return m.err
}

func mintResetToken(t *testing.T, userId primitive.ObjectID, email string, expiresIn time.Duration) string {
	t.Helper()

	token, err := utils.NewAccessTokenUtil().SignToken(userId.Hex(), email, expiresIn)
	if err != nil {
		t.Fatalf("signing reset token: %v", err)
	}
	return token
}

func TestResetPassword_Success(t *testing.T) {
	t.Setenv("SECRET_JWT", "reset-test-secret")

	userId := primitive.NewObjectID()
	token := mintResetToken(t, userId, "jordan@example.com", time.Hour)
	updateRepo := &mockUpdatePasswordRepository{}
	controller := NewResetPasswordController(&mockFindUserByEmailRepository{
		user: &models.User{Id: userId, Email: "jordan@example.com", ResetPasswordToken: token},
	}, updateRepo)

	request := makeJSONRequest(t, http.MethodPost, "/reset-password/"+token,
		map[string]string{"password": "brand-new-pass"})
	request.Req.SetPathValue("resetPasswordToken", token)

	response := controller.Handle(request)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "jordan@example.com", updateRepo.gotEmail)

	err := bcrypt.CompareHashAndPassword([]byte(updateRepo.gotHash), []byte("brand-new-pass"))
	assert.NoError(t, err)
}

func TestResetPassword_ReplayedTokenIsRejected(t *testing.T) {
	t.Setenv("SECRET_JWT", "reset-test-secret")

	userId := primitive.NewObjectID()
	token := mintResetToken(t, userId, "jordan@example.com", time.Hour)
	updateRepo := &mockUpdatePasswordRepository{}
	controller := NewResetPasswordController(&mockFindUserByEmailRepository{
		user: &models.User{Id: userId, Email: "jordan@example.com", ResetPasswordToken: ""},
	}, updateRepo)

	request := makeJSONRequest(t, http.MethodPost, "/reset-password/"+token,
		map[string]string{"password": "brand-new-pass"})
	request.Req.SetPathValue("resetPasswordToken", token)

	response := controller.Handle(request)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Empty(t, updateRepo.gotEmail)

	var errResponse presentationProtocols.ErrorResponse
	decodeBody(t, response, &errResponse)
	assert.Equal(t, "invalid or already used reset token", errResponse.Error)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	t.Setenv("SECRET_JWT", "reset-test-secret")

	userId := primitive.NewObjectID()
	token := mintResetToken(t, userId, "jordan@example.com", -5*time.Minute)
	controller := NewResetPasswordController(&mockFindUserByEmailRepository{}, &mockUpdatePasswordRepository{})

	request := makeJSONRequest(t, http.MethodPost, "/reset-password/"+token,
		map[string]string{"password": "brand-new-pass"})
	request.Req.SetPathValue("resetPasswordToken", token)

	response := controller.Handle(request)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	var errResponse presentationProtocols.ErrorResponse
	decodeBody(t, response, &errResponse)
	assert.Equal(t, "invalid or expired reset token", errResponse.Error)
}
