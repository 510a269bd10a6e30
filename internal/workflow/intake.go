package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/autoanki/autoanki-api/internal/domain"
)

// IntakeStage accepts the raw instruction and stamps the state with
// workflow metadata. It makes no model call and has no failure modes
// beyond an out-of-order state.
//
// The instruction is taken literally: empty or whitespace-only input is
// passed through for downstream stages to operate on, not rejected here.
type IntakeStage struct {
	logger *slog.Logger

	// now is injected for deterministic timestamps in tests.
	now func() time.Time
}

// NewIntakeStage creates a new IntakeStage.
func NewIntakeStage(logger *slog.Logger) *IntakeStage {
	return &IntakeStage{
		logger: logger,
		now:    time.Now,
	}
}

// Name returns the stage identifier.
func (s *IntakeStage) Name() string {
	return domain.StageIntake
}

// Run stamps the state with intake metadata and the creation time.
func (s *IntakeStage) Run(ctx context.Context, state *domain.WorkflowState) error {
	s.logger.InfoContext(ctx, "processing instruction",
		"workflow_id", state.ID.String(),
		"instruction_length", len(state.Instruction))

	return state.CompleteIntake(s.now())
}
