package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport covers network failures and malformed response bodies.
	ErrTransport = errors.New("the data service could not be reached")

	// ErrEmptyPayload marks a response that parsed but is structurally
	// unusable, e.g. an object where a list was expected.
	ErrEmptyPayload = errors.New("the data service returned an unusable payload")

	// ErrNotFound marks a requested record that has no upstream
	// counterpart. Callers decide whether this is an error state or a
	// graceful-empty render.
	ErrNotFound = errors.New("the requested record does not exist")
)

// bodyExcerptLimit bounds how much of an error response body is carried
// into error messages.
const bodyExcerptLimit = 200

// RequestError is a non-2xx response from the upstream service.
type RequestError struct {
	Status  int
	Excerpt string // truncated body, or a server-supplied message
}

func (e *RequestError) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("the data service responded with HTTP %d", e.Status)
	}
	return fmt.Sprintf("the data service responded with HTTP %d: %s", e.Status, e.Excerpt)
}

func excerpt(body []byte) string {
	if len(body) > bodyExcerptLimit {
		return string(body[:bodyExcerptLimit]) + "…"
	}
	return string(body)
}
