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

type GetCategoriesController struct {
	FindCategoriesRepository usecase.FindCategoriesRepository
	Validate                 *validator.Validate
}

func NewGetCategoriesController(findCategories usecase.FindCategoriesRepository) *GetCategoriesController {
	return &GetCategoriesController{
		FindCategoriesRepository: findCategories,
		Validate:                 helpers.NewValidator(),
	}
}

func (c *GetCategoriesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusBadRequest)
	}

	filters, errResponse := helpers.GetCategoryFilterByQueries(&r.UrlParams, userId, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	categories, err := c.FindCategoriesRepository.Find(filters)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding categories",
		}, http.StatusInternalServerError)
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return helpers.CreateResponse(categories, http.StatusOK)
}
