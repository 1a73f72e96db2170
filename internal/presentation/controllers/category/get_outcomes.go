package category

import (
	"net/http"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	"github.com/ledgerly/budget-backend/internal/domain/usecase"
	"github.com/ledgerly/budget-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetOutcomesController struct {
	FindOutcomesRepository usecase.FindOutcomesRepository
	Validate               *validator.Validate
}

func NewGetOutcomesController(findOutcomes usecase.FindOutcomesRepository) *GetOutcomesController {
	return &GetOutcomesController{
		FindOutcomesRepository: findOutcomes,
		Validate:               helpers.NewValidator(),
	}
}

func (c *GetOutcomesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusBadRequest)
	}

	filters, errResponse := helpers.GetEntryFilterByQueries(&r.UrlParams, userId, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	outcomes, err := c.FindOutcomesRepository.FindOutcomes(filters)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding outcomes",
		}, http.StatusInternalServerError)
	}

	if outcomes == nil {
		outcomes = []models.OutcomeGroup{}
	}

	return helpers.CreateResponse(outcomes, http.StatusOK)
}
