package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/autoanki/autoanki-api/internal/completion"
	"github.com/autoanki/autoanki-api/internal/domain"
)

// ResearchStage renders the pedagogical lesson prompt from the instruction,
// issues exactly one completion call, and stores the raw returned text as
// the lesson. The lesson is accepted as-is, without validation or
// post-processing: the card generation stage must be robust to whatever
// this stage produces.
//
// Completion errors are not caught here. They propagate to the
// orchestrator's caller with no retry and no partial fallback content.
type ResearchStage struct {
	completer completion.Completer
	logger    *slog.Logger
}

// NewResearchStage creates a new ResearchStage using the given completer.
func NewResearchStage(completer completion.Completer, logger *slog.Logger) *ResearchStage {
	return &ResearchStage{
		completer: completer,
		logger:    logger,
	}
}

// Name returns the stage identifier.
func (s *ResearchStage) Name() string {
	return domain.StageResearch
}

// Run generates the mini lesson for the state's instruction.
func (s *ResearchStage) Run(ctx context.Context, state *domain.WorkflowState) error {
	prompt, err := renderLessonPrompt(state.Instruction)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "generating mini lesson",
		"workflow_id", state.ID.String(),
		"prompt_length", len(prompt))

	lesson, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return fmt.Errorf("lesson generation failed: %w", err)
	}

	s.logger.InfoContext(ctx, "mini lesson generated",
		"workflow_id", state.ID.String(),
		"lesson_length", len(lesson))

	return state.CompleteResearch(lesson)
}
