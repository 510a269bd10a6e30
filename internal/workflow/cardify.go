package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/autoanki/autoanki-api/internal/completion"
	"github.com/autoanki/autoanki-api/internal/domain"
)

// CardifyStage renders the flashcard prompt from the lesson, issues one
// completion call, and extracts a validated flashcard list from the raw
// response via ExtractFlashcards.
//
// The failure-mode asymmetry here is deliberate and must be preserved:
// transport-level completion errors propagate unhandled, exactly like the
// research stage, while content-shape faults in an already-received
// response are fully recovered through the single-card fallback and never
// surface to the caller.
type CardifyStage struct {
	completer completion.Completer
	logger    *slog.Logger
}

// NewCardifyStage creates a new CardifyStage using the given completer.
func NewCardifyStage(completer completion.Completer, logger *slog.Logger) *CardifyStage {
	return &CardifyStage{
		completer: completer,
		logger:    logger,
	}
}

// Name returns the stage identifier.
func (s *CardifyStage) Name() string {
	return domain.StageCardGenerator
}

// Run generates flashcards from the state's lesson.
func (s *CardifyStage) Run(ctx context.Context, state *domain.WorkflowState) error {
	prompt, err := renderFlashcardPrompt(state.Lesson)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "generating flashcards",
		"workflow_id", state.ID.String(),
		"prompt_length", len(prompt))

	response, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return fmt.Errorf("flashcard generation failed: %w", err)
	}

	cards := ExtractFlashcards(response, state.Lesson)

	s.logger.InfoContext(ctx, "flashcards extracted",
		"workflow_id", state.ID.String(),
		"card_count", len(cards))

	return state.CompleteCardGeneration(cards)
}
