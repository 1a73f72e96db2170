package user

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/ledgerly/budget-backend/internal/domain/models"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func makeJSONRequest(t *testing.T, method string, target string, body any) presentationProtocols.HttpRequest {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)

	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func decodeBody(t *testing.T, response *presentationProtocols.HttpResponse, out any) {
	t.Helper()

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

type mockFindUserByEmailRepository struct {
	user *models.User
	err  error
}

func (m *mockFindUserByEmailRepository) FindByEmail(email string) (*models.User, error) {
	return m.user, m.err
}

type mockCreateUserRepository struct {
	err     error
	created *models.User
}

func (m *mockCreateUserRepository) Create(email string, hashedPassword string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = &models.User{
		Id:         primitive.NewObjectID(),
		Email:      email,
		Password:   hashedPassword,
		Categories: []primitive.ObjectID{},
	}
	return m.created, nil
}

type mockDeleteUserRepository struct {
	deletedId primitive.ObjectID
	calls     int
}

func (m *mockDeleteUserRepository) Delete(userId primitive.ObjectID) error {
	m.deletedId = userId
	m.calls++
	return nil
}

type mockCreateCategoryRepository struct {
	err     error
	gotName string
}

func (m *mockCreateCategoryRepository) Create(name string, userId primitive.ObjectID) (*models.Category, error) {
	m.gotName = name
	if m.err != nil {
		return nil, m.err
	}
	return &models.Category{
		Id:       primitive.NewObjectID(),
		Name:     name,
		UserId:   userId,
		Incomes:  []models.Income{},
		Outcomes: []models.Outcome{},
	}, nil
}
