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

type GetIncomesController struct {
	FindIncomesRepository usecase.FindIncomesRepository
	Validate              *validator.Validate
}

func NewGetIncomesController(findIncomes usecase.FindIncomesRepository) *GetIncomesController {
	return &GetIncomesController{
		FindIncomesRepository: findIncomes,
		Validate:              helpers.NewValidator(),
	}
}

func (c *GetIncomesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	incomes, err := c.FindIncomesRepository.FindIncomes(filters)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding incomes",
		}, http.StatusInternalServerError)
	}

	if incomes == nil {
		incomes = []models.IncomeGroup{}
	}

	return helpers.CreateResponse(incomes, http.StatusOK)
}
