package completion

import "context"

// Completer defines the interface for single-shot text completion.
// This interface serves as a boundary between the workflow core and
// external AI/LLM services, following the hexagonal architecture pattern.
//
// Implementations must be safe for concurrent use: each call is stateless
// and retains no session or conversation memory. Timeout and cancellation
// policy belongs to the implementation (or the caller's context), never to
// the workflow core.
type Completer interface {
	// Complete sends a single opaque prompt to the text-generation service
	// and returns the raw completion text.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The fully rendered prompt string
	//
	// Returns:
	//   - The model's completion text, unmodified
	//   - An error if the call fails for any reason (see errors.go for
	//     specific types)
	Complete(ctx context.Context, prompt string) (string, error)
}
