package v1

import (
	"errors"
	"net/http"

	"github.com/budgetglass/backend/internal/identity"
	"github.com/budgetglass/backend/internal/upstream"
)

type httpError struct {
	Error string `json:"error" example:"the requested record does not exist"`
}

// status maps an upstream or storage error to the HTTP status this
// API responds with. Upstream failures surface as 502 since the data
// service, not this backend, is unavailable.
func status(err error) int {
	var requestErr *upstream.RequestError

	switch {
	case errors.Is(err, upstream.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &requestErr),
		errors.Is(err, upstream.ErrTransport),
		errors.Is(err, upstream.ErrEmptyPayload):
		return http.StatusBadGateway
	case errors.Is(err, identity.ErrStore):
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

var (
	errExportFormatInvalid  = errors.New("the format parameter must be one of: json, csv")
	errExportDatasetInvalid = errors.New("the requested dataset is not exportable")
	errQuestionEmpty        = errors.New("the question must not be empty")
	errAskInFlight          = errors.New("a question is already being answered, please wait for the current answer")
)
