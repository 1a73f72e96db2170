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

type DeleteCategoryController struct {
	DeleteCategoryRepository usecase.DeleteCategoryRepository
	Validate                 *validator.Validate
}

func NewDeleteCategoryController(deleteCategory usecase.DeleteCategoryRepository) *DeleteCategoryController {
	return &DeleteCategoryController{
		DeleteCategoryRepository: deleteCategory,
		Validate:                 helpers.NewValidator(),
	}
}

type DeleteCategoryBody struct {
	CategoryName string `json:"categoryName" validate:"required,min=3,max=20"`
}

func (c *DeleteCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body DeleteCategoryBody
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

	if err := c.DeleteCategoryRepository.Delete(body.CategoryName, userId); err != nil {
		return helpers.DomainErrorResponse(err)
	}

	return helpers.CreateResponse(&presentationProtocols.MessageResponse{
		Message: "Category deleted successfully!",
	}, http.StatusOK)
}
