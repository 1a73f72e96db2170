package helpers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ledgerly/budget-backend/internal/domain/errs"
	presentationProtocols "github.com/ledgerly/budget-backend/internal/presentation/protocols"
)

// DomainErrorResponse maps typed domain errors onto HTTP responses. Client
// mistakes come back as 400 with the error text; integrity violations are
// logged with their real cause and answered with a generic 500, since they
// indicate corrupted state rather than bad input.
func DomainErrorResponse(err error) *presentationProtocols.HttpResponse {
	switch {
	case errors.Is(err, errs.ErrDuplicateName),
		errors.Is(err, errs.ErrEmailExists),
		errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrForbidden):
		return CreateResponse(&presentationProtocols.ErrorResponse{
			Error: err.Error(),
		}, http.StatusBadRequest)

	case errs.IsIntegrity(err):
		log.Printf("integrity violation: %v", err)
		return CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "internal error, please contact support",
		}, http.StatusInternalServerError)

	default:
		return CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an unexpected error occurred",
		}, http.StatusInternalServerError)
	}
}
