package category

import (
	"net/http"
	"testing"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockDeleteCategoryRepository struct {
	err     error
	gotName string
}

func (m *mockDeleteCategoryRepository) Delete(name string, userId primitive.ObjectID) error {
	m.gotName = name
	return m.err
}

func TestDeleteCategory_Success(t *testing.T) {
	repo := &mockDeleteCategoryRepository{}
	controller := NewDeleteCategoryController(repo)

	response := controller.Handle(makeJSONRequest(t, http.MethodDelete, "/category",
		map[string]string{"categoryName": "groceries"}, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "groceries", repo.gotName)

	var msg presentationProtocols.MessageResponse
	decodeBody(t, response, &msg)
	assert.Equal(t, "Category deleted successfully!", msg.Message)
}

func TestDeleteCategory_DefaultIsForbidden(t *testing.T) {
	controller := NewDeleteCategoryController(&mockDeleteCategoryRepository{err: errs.ErrForbidden})

	response := controller.Handle(makeJSONRequest(t, http.MethodDelete, "/category",
		map[string]string{"categoryName": "default"}, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	var errResponse presentationProtocols.ErrorResponse
	decodeBody(t, response, &errResponse)
	assert.Equal(t, errs.ErrForbidden.Error(), errResponse.Error)
}

func TestDeleteCategory_UnknownName(t *testing.T) {
	controller := NewDeleteCategoryController(&mockDeleteCategoryRepository{err: errs.ErrNotFound})

	response := controller.Handle(makeJSONRequest(t, http.MethodDelete, "/category",
		map[string]string{"categoryName": "missing"}, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestDeleteCategory_IntegrityFailureIsOpaque(t *testing.T) {
	controller := NewDeleteCategoryController(&mockDeleteCategoryRepository{err: errs.ErrInvariantViolation})

	response := controller.Handle(makeJSONRequest(t, http.MethodDelete, "/category",
		map[string]string{"categoryName": "groceries"}, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)

	var errResponse presentationProtocols.ErrorResponse
	decodeBody(t, response, &errResponse)
	assert.NotContains(t, errResponse.Error, "invariant")
}
