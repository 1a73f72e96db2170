package user

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/budget-backend/internal/domain/usecase"
	"github.com/ledgerly/budget-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/ledgerly/budget-backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type ResetPasswordController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	UpdatePasswordRepository  usecase.UpdatePasswordRepository
	AccessToken               *utils.AccessTokenUtil
	Validate                  *validator.Validate
}

func NewResetPasswordController(
	findUserByEmail usecase.FindUserByEmailRepository,
	updatePassword usecase.UpdatePasswordRepository,
) *ResetPasswordController {
	return &ResetPasswordController{
		FindUserByEmailRepository: findUserByEmail,
		UpdatePasswordRepository:  updatePassword,
		AccessToken:               utils.NewAccessTokenUtil(),
		Validate:                  helpers.NewValidator(),
	}
}

type ResetPasswordBody struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (c *ResetPasswordController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body ResetPasswordBody
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

	rawToken := r.Req.PathValue("resetPasswordToken")

	claims, err := c.AccessToken.DecodeToken(rawToken)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid or expired reset token",
		}, http.StatusBadRequest)
	}

	user, err := c.FindUserByEmailRepository.FindByEmail(claims.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding user",
		}, http.StatusInternalServerError)
	}

	// tokens are single-use: the stored token is cleared on a successful
	// reset, so a replayed token no longer matches
	if user == nil || user.ResetPasswordToken != rawToken {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid or already used reset token",
		}, http.StatusBadRequest)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating password",
		}, http.StatusInternalServerError)
	}

	if err := c.UpdatePasswordRepository.UpdatePassword(claims.Email, string(hashedPassword)); err != nil {
		return helpers.DomainErrorResponse(err)
	}

	return helpers.CreateResponse(&presentationProtocols.MessageResponse{
		Message: "Password has been updated successfully! Log in with the new password!",
	}, http.StatusOK)
}
