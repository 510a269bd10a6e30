package completion

import "errors"

// Common errors returned by Completer implementations
var (
	// ErrCompletionFailed is returned when a completion call fails for any
	// general reason
	ErrCompletionFailed = errors.New("failed to complete prompt")

	// ErrEmptyResponse is returned when the service returns no usable text
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrContentBlocked is returned when the service blocks the content due
	// to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might
	// resolve on retry
	ErrTransientFailure = errors.New("transient error during prompt completion")

	// ErrInvalidConfig is returned when a completer configuration is invalid
	ErrInvalidConfig = errors.New("invalid completer configuration")
)
