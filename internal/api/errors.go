package api

import (
	"errors"
	"net/http"

	"github.com/autoanki/autoanki-api/internal/completion"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
//
// Transport-level completion failures map to 503: the run failed because
// the model backend was unreachable or unusable, which the caller should
// surface as service unavailability.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, completion.ErrCompletionFailed),
		errors.Is(err, completion.ErrTransientFailure),
		errors.Is(err, completion.ErrEmptyResponse),
		errors.Is(err, completion.ErrContentBlocked):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, completion.ErrCompletionFailed),
		errors.Is(err, completion.ErrTransientFailure),
		errors.Is(err, completion.ErrEmptyResponse),
		errors.Is(err, completion.ErrContentBlocked):
		return "The language model backend is currently unavailable"

	default:
		return "Failed to generate flashcards"
	}
}
