package category

import (
	"bytes"
	"io"
	"net/http"

	"github.com/ledgerly/budget-backend/internal/domain/usecase"
	"github.com/ledgerly/budget-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExportCategoriesController struct {
	ExportCategoriesRepository usecase.ExportCategoriesRepository
}

func NewExportCategoriesController(exportCategories usecase.ExportCategoriesRepository) *ExportCategoriesController {
	return &ExportCategoriesController{
		ExportCategoriesRepository: exportCategories,
	}
}

func (c *ExportCategoriesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusBadRequest)
	}

	data, err := c.ExportCategoriesRepository.Export(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error exporting categories",
		}, http.StatusInternalServerError)
	}

	return &presentationProtocols.HttpResponse{
		Body:        io.NopCloser(bytes.NewReader(data)),
		StatusCode:  http.StatusOK,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
}
