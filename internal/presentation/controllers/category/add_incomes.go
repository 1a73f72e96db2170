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

// Success messages for the fan-out writes. The fallback variant is distinct so
// callers can tell the client the entry landed in the default category.
const (
	MessageIncomesAdded         = "Incomes added successfully!"
	MessageIncomesAddedFallback = "No category names given, the income was added to your default category!"
)

type AddIncomesController struct {
	AddIncomesRepository usecase.AddIncomesRepository
	Validate             *validator.Validate
}

func NewAddIncomesController(addIncomes usecase.AddIncomesRepository) *AddIncomesController {
	return &AddIncomesController{
		AddIncomesRepository: addIncomes,
		Validate:             helpers.NewValidator(),
	}
}

// Total is a pointer so presence is checked without rejecting a zero amount.
type IncomeBody struct {
	Description string   `json:"description" validate:"required,min=1,max=255"`
	Total       *float64 `json:"total" validate:"required"`
}

type AddIncomesBody struct {
	CategoryNames []string   `json:"categoryNames" validate:"omitempty,dive,min=1,max=20"`
	Income        IncomeBody `json:"income" validate:"required"`
}

func (c *AddIncomesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body AddIncomesBody
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
	message := MessageIncomesAdded
	if len(categoryNames) == 0 {
		categoryNames = []string{models.DefaultCategoryName}
		message = MessageIncomesAddedFallback
	}

	income := models.Income{
		Description: body.Income.Description,
		Total:       *body.Income.Total,
		CreatedAt:   time.Now(),
	}

	if err := c.AddIncomesRepository.AddIncomes(categoryNames, income, userId); err != nil {
		return helpers.DomainErrorResponse(err)
	}

	return helpers.CreateResponse(&presentationProtocols.MessageResponse{
		Message: message,
	}, http.StatusOK)
}
