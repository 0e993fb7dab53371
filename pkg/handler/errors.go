package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/reqcheck/pkg/binder"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries the status and machine readable code of a failed request.
type HTTPError struct {
	Status int
	Code   string
	Err    error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e HTTPError) Unwrap() error { return e.Err }

// Error codes written in the "error" field of failure responses.
const (
	CodeValidationFailed     = "validation_failed"
	CodeInvalidJSON          = "invalid_json"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodePayloadTooLarge      = "payload_too_large"
	CodeInternal             = "internal_error"
)

// classify maps binder and handler errors to an HTTPError.
func classify(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return HTTPError{Status: http.StatusUnsupportedMediaType, Code: CodeUnsupportedMediaType, Err: err}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return HTTPError{Status: http.StatusRequestEntityTooLarge, Code: CodePayloadTooLarge, Err: err}
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return HTTPError{Status: http.StatusBadRequest, Code: CodeInvalidJSON, Err: err}
	default:
		return HTTPError{Status: http.StatusInternalServerError, Code: CodeInternal, Err: err}
	}
}
