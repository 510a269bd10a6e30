// Package workflow implements the flashcard generation pipeline: a fixed
// linear sequence of three stages (intake, research, card generation)
// threading a domain.WorkflowState from a raw learning instruction to a
// list of flashcards.
//
// The topology is static; there are no conditional edges, loops, or
// retries between stages. Each stage reads the fields it needs from the
// accumulated state and records its own additions through the state's
// transition methods, so prior fields are never removed.
//
// Stages that call the language model do so through the completion.Completer
// boundary. Transport-level completion errors propagate unhandled to the
// orchestrator's caller; only the card generation stage recovers anything,
// and only content-shape faults in the model's structured output, which it
// degrades into a single synthetic fallback card.
package workflow
