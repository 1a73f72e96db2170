package category

import (
	"net/http"
	"testing"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	"github.com/ledgerly/budget-backend/internal/domain/models"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockAddIncomesRepository struct {
	err       error
	gotNames  []string
	gotIncome models.Income
}

func (m *mockAddIncomesRepository) AddIncomes(categoryNames []string, income models.Income, userId primitive.ObjectID) error {
	m.gotNames = categoryNames
	m.gotIncome = income
	return m.err
}

func TestAddIncomes_Success(t *testing.T) {
	repo := &mockAddIncomesRepository{}
	controller := NewAddIncomesController(repo)

	response := controller.Handle(makeJSONRequest(t, http.MethodPut, "/category/incomes", map[string]any{
		"categoryNames": []string{"groceries", "savings"},
		"income":        map[string]any{"description": "salary", "total": 1200.50},
	}, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, []string{"groceries", "savings"}, repo.gotNames)
	assert.Equal(t, "salary", repo.gotIncome.Description)
	assert.Equal(t, 1200.50, repo.gotIncome.Total)
	assert.False(t, repo.gotIncome.CreatedAt.IsZero(), "createdAt must be server-assigned")

	var msg presentationProtocols.MessageResponse
	decodeBody(t, response, &msg)
	assert.Equal(t, MessageIncomesAdded, msg.Message)
}

func TestAddIncomes_EmptyNamesFallsBackToDefault(t *testing.T) {
	repo := &mockAddIncomesRepository{}
	controller := NewAddIncomesController(repo)

	response := controller.Handle(makeJSONRequest(t, http.MethodPut, "/category/incomes", map[string]any{
		"income": map[string]any{"description": "found money", "total": 20},
	}, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, []string{models.DefaultCategoryName}, repo.gotNames)

	var msg presentationProtocols.MessageResponse
	decodeBody(t, response, &msg)
	assert.Equal(t, MessageIncomesAddedFallback, msg.Message)
	assert.NotEqual(t, MessageIncomesAdded, msg.Message)
}

func TestAddIncomes_ZeroTotalIsAccepted(t *testing.T) {
	repo := &mockAddIncomesRepository{}
	controller := NewAddIncomesController(repo)

	response := controller.Handle(makeJSONRequest(t, http.MethodPut, "/category/incomes", map[string]any{
		"categoryNames": []string{"groceries"},
		"income":        map[string]any{"description": "correction", "total": 0},
	}, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, 0.0, repo.gotIncome.Total)
}

func TestAddIncomes_MissingTotalIsRejected(t *testing.T) {
	controller := NewAddIncomesController(&mockAddIncomesRepository{})

	response := controller.Handle(makeJSONRequest(t, http.MethodPut, "/category/incomes", map[string]any{
		"categoryNames": []string{"groceries"},
		"income":        map[string]any{"description": "correction"},
	}, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestAddIncomes_NoCategoryMatched(t *testing.T) {
	controller := NewAddIncomesController(&mockAddIncomesRepository{err: errs.ErrNotFound})

	response := controller.Handle(makeJSONRequest(t, http.MethodPut, "/category/incomes", map[string]any{
		"categoryNames": []string{"nope"},
		"income":        map[string]any{"description": "salary", "total": 100},
	}, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestAddIncomes_MissingDescription(t *testing.T) {
	controller := NewAddIncomesController(&mockAddIncomesRepository{})

	response := controller.Handle(makeJSONRequest(t, http.MethodPut, "/category/incomes", map[string]any{
		"categoryNames": []string{"groceries"},
		"income":        map[string]any{"total": 100},
	}, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}
