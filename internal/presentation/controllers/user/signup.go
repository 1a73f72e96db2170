package user

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/badoux/checkmail"
	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/domain/usecase"
	"github.com/ledgerly/budget-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type SignupController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	CreateUserRepository      usecase.CreateUserRepository
	DeleteUserRepository      usecase.DeleteUserRepository
	CreateCategoryRepository  usecase.CreateCategoryRepository
	Validate                  *validator.Validate
}

func NewSignupController(
	findUserByEmail usecase.FindUserByEmailRepository,
	createUser usecase.CreateUserRepository,
	deleteUser usecase.DeleteUserRepository,
	createCategory usecase.CreateCategoryRepository,
) *SignupController {
	return &SignupController{
		FindUserByEmailRepository: findUserByEmail,
		CreateUserRepository:      createUser,
		DeleteUserRepository:      deleteUser,
		CreateCategoryRepository:  createCategory,
		Validate:                  helpers.NewValidator(),
	}
}

type SignupBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Handle creates the account together with its default category. The pair is
// one logical transaction: if the default category cannot be created the user
// insert is compensated, so no account ever exists without its merge target.
func (c *SignupController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body SignupBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(err),
		}, http.StatusBadRequest)
	}

	if err := checkmail.ValidateFormat(body.Email); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "you have to specify a correct email address",
		}, http.StatusBadRequest)
	}

	existingUser, err := c.FindUserByEmailRepository.FindByEmail(body.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error checking email",
		}, http.StatusInternalServerError)
	}

	if existingUser != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Email already exists!",
		}, http.StatusBadRequest)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating account",
		}, http.StatusInternalServerError)
	}

	createdUser, err := c.CreateUserRepository.Create(body.Email, string(hashedPassword))
	if err != nil {
		return helpers.DomainErrorResponse(err)
	}

	if _, err := c.CreateCategoryRepository.Create(models.DefaultCategoryName, createdUser.Id); err != nil {
		log.Printf("signup: default category creation failed for %s, compensating: %v", createdUser.Id.Hex(), err)
		if deleteErr := c.DeleteUserRepository.Delete(createdUser.Id); deleteErr != nil {
			log.Printf("signup: compensation failed for %s: %v", createdUser.Id.Hex(), deleteErr)
		}
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating account",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&presentationProtocols.MessageResponse{
		Message: "Account created successfully, please sign in to the account!",
	}, http.StatusOK)
}
