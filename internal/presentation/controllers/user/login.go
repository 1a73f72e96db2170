package user

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/domain/usecase"
	"github.com/ledgerly/budget-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/ledgerly/budget-backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenDuration = 24 * time.Hour

type LoginController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	AccessToken               *utils.AccessTokenUtil
	Validate                  *validator.Validate
}

func NewLoginController(findUserByEmail usecase.FindUserByEmailRepository) *LoginController {
	return &LoginController{
		FindUserByEmailRepository: findUserByEmail,
		AccessToken:               utils.NewAccessTokenUtil(),
		Validate:                  helpers.NewValidator(),
	}
}

type LoginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message  string       `json:"message"`
	UserInfo *models.User `json:"userInfo"`
	Token    string       `json:"token"`
}

func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginBody
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

	user, err := c.FindUserByEmailRepository.FindByEmail(body.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding user",
		}, http.StatusInternalServerError)
	}

	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "User with this email doesn't exist!",
		}, http.StatusBadRequest)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid password!",
		}, http.StatusBadRequest)
	}

	token, err := c.AccessToken.SignToken(user.Id.Hex(), user.Email, accessTokenDuration)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error issuing access token",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&LoginResponse{
		Message:  "You have logged in successfully",
		UserInfo: user,
		Token:    token,
	}, http.StatusOK)
}
