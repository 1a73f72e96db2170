package category

import (
	"net/http"
	"testing"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockRenameCategoryRepository struct {
	err        error
	gotId      primitive.ObjectID
	gotNewName string
}

func (m *mockRenameCategoryRepository) Rename(categoryId primitive.ObjectID, newName string, userId primitive.ObjectID) error {
	m.gotId = categoryId
	m.gotNewName = newName
	return m.err
}

func TestRenameCategory_Success(t *testing.T) {
	repo := &mockRenameCategoryRepository{}
	controller := NewRenameCategoryController(repo)

	categoryId := primitive.NewObjectID()
	request := makeJSONRequest(t, http.MethodPut, "/category/"+categoryId.Hex()+"/rename",
		map[string]string{"categoryName": "household"}, primitive.NewObjectID().Hex())
	request.Req.SetPathValue("categoryId", categoryId.Hex())

	response := controller.Handle(request)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, categoryId, repo.gotId)
	assert.Equal(t, "household", repo.gotNewName)

	var msg presentationProtocols.MessageResponse
	decodeBody(t, response, &msg)
	assert.Equal(t, "Category renamed successfully!", msg.Message)
}

func TestRenameCategory_InvalidCategoryId(t *testing.T) {
	controller := NewRenameCategoryController(&mockRenameCategoryRepository{})

	request := makeJSONRequest(t, http.MethodPut, "/category/not-an-id/rename",
		map[string]string{"categoryName": "household"}, primitive.NewObjectID().Hex())
	request.Req.SetPathValue("categoryId", "not-an-id")

	response := controller.Handle(request)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestRenameCategory_DefaultIsForbidden(t *testing.T) {
	controller := NewRenameCategoryController(&mockRenameCategoryRepository{err: errs.ErrForbidden})

	categoryId := primitive.NewObjectID()
	request := makeJSONRequest(t, http.MethodPut, "/category/"+categoryId.Hex()+"/rename",
		map[string]string{"categoryName": "household"}, primitive.NewObjectID().Hex())
	request.Req.SetPathValue("categoryId", categoryId.Hex())

	response := controller.Handle(request)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestRenameCategory_DuplicateTargetName(t *testing.T) {
	controller := NewRenameCategoryController(&mockRenameCategoryRepository{err: errs.ErrDuplicateName})

	categoryId := primitive.NewObjectID()
	request := makeJSONRequest(t, http.MethodPut, "/category/"+categoryId.Hex()+"/rename",
		map[string]string{"categoryName": "groceries"}, primitive.NewObjectID().Hex())
	request.Req.SetPathValue("categoryId", categoryId.Hex())

	response := controller.Handle(request)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	var errResponse presentationProtocols.ErrorResponse
	decodeBody(t, response, &errResponse)
	assert.Equal(t, errs.ErrDuplicateName.Error(), errResponse.Error)
}
