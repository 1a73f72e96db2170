package user

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/usecase"
	"github.com/ledgerly/budget-backend/internal/infra/mail"
	"github.com/ledgerly/budget-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/ledgerly/budget-backend/internal/utils"
	"github.com/go-playground/validator/v10"
)

const resetTokenDuration = time.Hour

type ResetPasswordInstructionsController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	SetResetTokenRepository   usecase.SetResetTokenRepository
	Mailer                    mail.Mailer
	AccessToken               *utils.AccessTokenUtil
	Validate                  *validator.Validate
}

func NewResetPasswordInstructionsController(
	findUserByEmail usecase.FindUserByEmailRepository,
	setResetToken usecase.SetResetTokenRepository,
	mailer mail.Mailer,
) *ResetPasswordInstructionsController {
	return &ResetPasswordInstructionsController{
		FindUserByEmailRepository: findUserByEmail,
		SetResetTokenRepository:   setResetToken,
		Mailer:                    mailer,
		AccessToken:               utils.NewAccessTokenUtil(),
		Validate:                  helpers.NewValidator(),
	}
}

type ResetPasswordInstructionsBody struct {
	Email string `json:"email" validate:"required,email"`
}

func (c *ResetPasswordInstructionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body ResetPasswordInstructionsBody
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

	token, err := c.AccessToken.SignToken(user.Id.Hex(), user.Email, resetTokenDuration)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error issuing reset token",
		}, http.StatusInternalServerError)
	}

	if err := c.SetResetTokenRepository.SetResetToken(user.Email, token); err != nil {
		return helpers.DomainErrorResponse(err)
	}

	// fire-and-forget: dispatch failures are logged by the mailer, the
	// request still succeeds
	c.Mailer.QueueResetInstructions(user.Email, token)

	return helpers.CreateResponse(&presentationProtocols.MessageResponse{
		Message: "Password reset instructions have been sent by email!",
	}, http.StatusOK)
}
