package category

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/domain/usecase"
	"github.com/ledgerly/budget-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MessageOutcomesAdded         = "Outcomes added successfully!"
	MessageOutcomesAddedFallback = "No category names given, the outcome was added to your default category!"
)

type AddOutcomesController struct {
	AddOutcomesRepository usecase.AddOutcomesRepository
	Validate              *validator.Validate
}

func NewAddOutcomesController(addOutcomes usecase.AddOutcomesRepository) *AddOutcomesController {
	return &AddOutcomesController{
		AddOutcomesRepository: addOutcomes,
		Validate:              helpers.NewValidator(),
	}
}

type OutcomeBody struct {
	Description string   `json:"description" validate:"required,min=1,max=255"`
	Total       *float64 `json:"total" validate:"required"`
	Status      string   `json:"status" validate:"required,oneof=Processing Completed Rejected"`
}

type AddOutcomesBody struct {
	CategoryNames []string    `json:"categoryNames" validate:"omitempty,dive,min=1,max=20"`
	Outcome       OutcomeBody `json:"outcome" validate:"required"`
}

func (c *AddOutcomesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body AddOutcomesBody
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

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusBadRequest)
	}

	categoryNames := body.CategoryNames
	message := MessageOutcomesAdded
	if len(categoryNames) == 0 {
		categoryNames = []string{models.DefaultCategoryName}
		message = MessageOutcomesAddedFallback
	}

	outcome := models.Outcome{
		Description: body.Outcome.Description,
		Total:       *body.Outcome.Total,
		Status:      body.Outcome.Status,
		CreatedAt:   time.Now(),
	}

	if err := c.AddOutcomesRepository.AddOutcomes(categoryNames, outcome, userId); err != nil {
		return helpers.DomainErrorResponse(err)
	}

	return helpers.CreateResponse(&presentationProtocols.MessageResponse{
		Message: message,
	}, http.StatusOK)
}
