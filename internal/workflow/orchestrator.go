package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/autoanki/autoanki-api/internal/completion"
	"github.com/autoanki/autoanki-api/internal/domain"
)

// Orchestrator owns the static three-stage topology and drives a workflow
// run from instruction to final state. It holds the handle to the
// text-generation capability; the stages receive it at construction and
// never configure providers themselves.
//
// A run is atomic from the caller's perspective: it either completes all
// three stages or returns the first stage error with no partial state.
// An Orchestrator is safe for concurrent runs since each run owns its
// WorkflowState exclusively and the completer is stateless per call.
type Orchestrator struct {
	stages []Stage
	logger *slog.Logger
}

// NewOrchestrator creates an Orchestrator wired with the fixed stage
// sequence: intake, research, card generation.
func NewOrchestrator(completer completion.Completer, logger *slog.Logger) (*Orchestrator, error) {
	if completer == nil {
		return nil, errors.New("completer cannot be nil")
	}

	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Orchestrator{
		stages: []Stage{
			NewIntakeStage(logger),
			NewResearchStage(completer, logger),
			NewCardifyStage(completer, logger),
		},
		logger: logger,
	}, nil
}

// GenerateFlashcards runs the full pipeline for the given instruction.
// Returns the final accumulated state, or the first stage error wrapped
// with the failing stage's name.
func (o *Orchestrator) GenerateFlashcards(
	ctx context.Context,
	instruction string,
) (*domain.WorkflowState, error) {
	state := domain.NewWorkflowState(instruction)

	o.logger.InfoContext(ctx, "starting flashcard workflow",
		"workflow_id", state.ID.String(),
		"instruction_length", len(instruction))

	for _, stage := range o.stages {
		if err := stage.Run(ctx, state); err != nil {
			o.logger.ErrorContext(ctx, "workflow stage failed",
				"workflow_id", state.ID.String(),
				"stage", stage.Name(),
				"error", err)
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
	}

	o.logger.InfoContext(ctx, "flashcard workflow completed",
		"workflow_id", state.ID.String(),
		"status", string(state.Status),
		"card_count", len(state.Flashcards))

	return state, nil
}
