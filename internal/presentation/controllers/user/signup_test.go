package user

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup_Success(t *testing.T) {
	createUser := &mockCreateUserRepository{}
	deleteUser := &mockDeleteUserRepository{}
	createCategory := &mockCreateCategoryRepository{}
	controller := NewSignupController(&mockFindUserByEmailRepository{}, createUser, deleteUser, createCategory)

	response := controller.Handle(makeJSONRequest(t, http.MethodPost, "/signup", map[string]string{
		"email":    "jordan@example.com",
		"password": "s3cret-enough",
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, models.DefaultCategoryName, createCategory.gotName)
	assert.Zero(t, deleteUser.calls)

	err := bcrypt.CompareHashAndPassword([]byte(createUser.created.Password), []byte("s3cret-enough"))
	assert.NoError(t, err, "stored password must be a bcrypt hash of the plaintext")

	var msg presentationProtocols.MessageResponse
	decodeBody(t, response, &msg)
	assert.Equal(t, "Account created successfully, please sign in to the account!", msg.Message)
}

func TestSignup_EmailAlreadyExists(t *testing.T) {
	controller := NewSignupController(
		&mockFindUserByEmailRepository{user: &models.User{Email: "jordan@example.com"}},
		&mockCreateUserRepository{},
		&mockDeleteUserRepository{},
		&mockCreateCategoryRepository{},
	)

	response := controller.Handle(makeJSONRequest(t, http.MethodPost, "/signup", map[string]string{
		"email":    "jordan@example.com",
		"password": "s3cret-enough",
	}))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	var errResponse presentationProtocols.ErrorResponse
	decodeBody(t, response, &errResponse)
	assert.Equal(t, "Email already exists!", errResponse.Error)
}

func TestSignup_DefaultCategoryFailureCompensatesUser(t *testing.T) {
	createUser := &mockCreateUserRepository{}
	deleteUser := &mockDeleteUserRepository{}
	controller := NewSignupController(
		&mockFindUserByEmailRepository{},
		createUser,
		deleteUser,
		&mockCreateCategoryRepository{err: errors.New("write failed")},
	)

	response := controller.Handle(makeJSONRequest(t, http.MethodPost, "/signup", map[string]string{
		"email":    "jordan@example.com",
		"password": "s3cret-enough",
	}))

	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
	assert.Equal(t, 1, deleteUser.calls)
	assert.Equal(t, createUser.created.Id, deleteUser.deletedId)
}

func TestSignup_PasswordTooShort(t *testing.T) {
	controller := NewSignupController(
		&mockFindUserByEmailRepository{},
		&mockCreateUserRepository{},
		&mockDeleteUserRepository{},
		&mockCreateCategoryRepository{},
	)

	response := controller.Handle(makeJSONRequest(t, http.MethodPost, "/signup", map[string]string{
		"email":    "jordan@example.com",
		"password": "short",
	}))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestSignup_MalformedEmail(t *testing.T) {
	controller := NewSignupController(
		&mockFindUserByEmailRepository{},
		&mockCreateUserRepository{},
		&mockDeleteUserRepository{},
		&mockCreateCategoryRepository{},
	)

	response := controller.Handle(makeJSONRequest(t, http.MethodPost, "/signup", map[string]string{
		"email":    "not-an-email",
		"password": "s3cret-enough",
	}))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}
