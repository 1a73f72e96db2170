package helpers

import (
	"net/http"
	"net/url"
	"strconv"

	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryFilterParams struct {
	CategoryName  string `json:"categoryName" validate:"omitempty,min=1,max=255"`
	StartDate     string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	SortProperty  string `json:"sortProperty" validate:"omitempty,oneof=name createdAt updatedAt"`
	SortDirection string `json:"sortDirection" validate:"required_with=SortProperty,omitempty,oneof=asc desc"`
	UserId        primitive.ObjectID
}

type EntryFilterParams struct {
	Status        string `json:"status" validate:"omitempty,oneof=Processing Completed Rejected"`
	StartDate     string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	SortProperty  string `json:"sortProperty" validate:"omitempty,oneof=description total status createdAt"`
	SortDirection string `json:"sortDirection" validate:"required_with=SortProperty,omitempty,oneof=asc desc"`
	TotalFrom     *float64
	TotalTo       *float64
	UserId        primitive.ObjectID
}

func GetCategoryFilterByQueries(urlQueries *url.Values, userId primitive.ObjectID, validate *validator.Validate) (*CategoryFilterParams, *presentationProtocols.HttpResponse) {
	params := &CategoryFilterParams{
		CategoryName:  urlQueries.Get("categoryName"),
		StartDate:     urlQueries.Get("startDate"),
		EndDate:       urlQueries.Get("endDate"),
		SortProperty:  urlQueries.Get("sortProperty"),
		SortDirection: urlQueries.Get("sortDirection"),
		UserId:        userId,
	}

	err := validate.Struct(params)
	if err != nil {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: GetErrorMessages(err),
		}, http.StatusBadRequest)
	}

	return params, nil
}

func GetEntryFilterByQueries(urlQueries *url.Values, userId primitive.ObjectID, validate *validator.Validate) (*EntryFilterParams, *presentationProtocols.HttpResponse) {
	params := &EntryFilterParams{
		Status:        urlQueries.Get("status"),
		StartDate:     urlQueries.Get("startDate"),
		EndDate:       urlQueries.Get("endDate"),
		SortProperty:  urlQueries.Get("sortProperty"),
		SortDirection: urlQueries.Get("sortDirection"),
		UserId:        userId,
	}

	if raw := urlQueries.Get("totalFrom"); raw != "" {
		total, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "totalFrom must be a number",
			}, http.StatusBadRequest)
		}
		params.TotalFrom = &total
	}

	if raw := urlQueries.Get("totalTo"); raw != "" {
		total, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "totalTo must be a number",
			}, http.StatusBadRequest)
		}
		params.TotalTo = &total
	}

	err := validate.Struct(params)
	if err != nil {
		return nil, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: GetErrorMessages(err),
		}, http.StatusBadRequest)
	}

	return params, nil
}
