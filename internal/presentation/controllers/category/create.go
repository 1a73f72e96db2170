package category

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/budget-backend/internal/domain/usecase"
	"github.com/ledgerly/budget-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateCategoryController struct {
	CreateCategoryRepository     usecase.CreateCategoryRepository
	FindCategoryByNameRepository usecase.FindCategoryByNameRepository
	Validate                     *validator.Validate
}

func NewCreateCategoryController(
	createCategory usecase.CreateCategoryRepository,
	findCategoryByName usecase.FindCategoryByNameRepository,
) *CreateCategoryController {
	validate := helpers.NewValidator()

	return &CreateCategoryController{
		CreateCategoryRepository:     createCategory,
		FindCategoryByNameRepository: findCategoryByName,
		Validate:                     validate,
	}
}

type CreateCategoryBody struct {
	CategoryName string `json:"categoryName" validate:"required,min=3,max=20"`
}

func (c *CreateCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateCategoryBody
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

	existingCategory, err := c.FindCategoryByNameRepository.FindByName(body.CategoryName, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error checking category name",
		}, http.StatusInternalServerError)
	}

	if existingCategory != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a category with this name already exists",
		}, http.StatusBadRequest)
	}

	category, err := c.CreateCategoryRepository.Create(body.CategoryName, userId)
	if err != nil {
		return helpers.DomainErrorResponse(err)
	}

	return helpers.CreateResponse(category, http.StatusOK)
}
