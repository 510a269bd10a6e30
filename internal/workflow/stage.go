package workflow

import (
	"context"

	"github.com/autoanki/autoanki-api/internal/domain"
)

// Stage is one unit of the pipeline with a single responsibility and an
// explicit input/output contract on the shared state. A stage mutates the
// state only through its transition methods, which enforce the fixed
// pipeline order.
type Stage interface {
	// Name returns the stage identifier recorded in WorkflowState.LastStage.
	Name() string

	// Run executes the stage against the accumulated state.
	// Returns an error only for faults the stage does not recover from;
	// the orchestrator aborts the run on the first stage error.
	Run(ctx context.Context, state *domain.WorkflowState) error
}
