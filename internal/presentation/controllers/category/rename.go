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

type RenameCategoryController struct {
	RenameCategoryRepository usecase.RenameCategoryRepository
	Validate                 *validator.Validate
}

func NewRenameCategoryController(renameCategory usecase.RenameCategoryRepository) *RenameCategoryController {
	return &RenameCategoryController{
		RenameCategoryRepository: renameCategory,
		Validate:                 helpers.NewValidator(),
	}
}

type RenameCategoryBody struct {
	CategoryName string `json:"categoryName" validate:"required,min=3,max=20"`
}

func (c *RenameCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RenameCategoryBody
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

	categoryId, err := primitive.ObjectIDFromHex(r.Req.PathValue("categoryId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid category id",
		}, http.StatusBadRequest)
	}

	if err := c.RenameCategoryRepository.Rename(categoryId, body.CategoryName, userId); err != nil {
		return helpers.DomainErrorResponse(err)
	}

	return helpers.CreateResponse(&presentationProtocols.MessageResponse{
		Message: "Category renamed successfully!",
	}, http.StatusOK)
}
