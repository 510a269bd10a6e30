package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// WorkflowStatus identifies the pipeline phase a WorkflowState has reached.
type WorkflowStatus string

// Workflow status values, in pipeline order. The state machine is linear:
// started -> intake_complete -> research_complete -> card_generation_complete.
const (
	WorkflowStatusStarted          WorkflowStatus = "started"
	WorkflowStatusIntakeComplete   WorkflowStatus = "intake_complete"
	WorkflowStatusResearchComplete WorkflowStatus = "research_complete"
	WorkflowStatusCardsComplete    WorkflowStatus = "card_generation_complete"
)

// Stage identifiers recorded in WorkflowState.LastStage.
const (
	StageInitial       = "initial"
	StageIntake        = "intake"
	StageResearch      = "research"
	StageCardGenerator = "card_generator"
)

// Common validation errors for WorkflowState
var (
	// ErrWorkflowIDEmpty is returned when a workflow state ID is empty or nil.
	ErrWorkflowIDEmpty = errors.New("workflow state ID cannot be empty")

	// ErrInvalidWorkflowStatus is returned when a workflow status is not valid.
	ErrInvalidWorkflowStatus = errors.New("invalid workflow status")

	// ErrStageOrder is returned when a stage transition is attempted out of
	// the fixed pipeline order.
	ErrStageOrder = errors.New("workflow stage transition out of order")

	// ErrNoFlashcards is returned when card generation completes with an
	// empty card list, which the fallback guarantees can never happen.
	ErrNoFlashcards = errors.New("flashcard list cannot be empty")
)

// WorkflowState is the single record threaded through the pipeline.
// Each stage consumes one version and produces the next; populated fields
// grow monotonically as the state passes through the stages. Once a field
// is set by a stage no later stage removes it.
type WorkflowState struct {
	ID          uuid.UUID      `json:"id"`
	Instruction string         `json:"instruction"`
	Lesson      string         `json:"lesson,omitempty"`
	Flashcards  []Flashcard    `json:"flashcards,omitempty"`
	Status      WorkflowStatus `json:"status"`
	LastStage   string         `json:"last_stage"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewWorkflowState creates the initial state for a workflow run.
// The instruction is stored verbatim, including empty or whitespace-only
// input: validating it is the caller's concern, not the pipeline's.
func NewWorkflowState(instruction string) *WorkflowState {
	return &WorkflowState{
		ID:          uuid.New(),
		Instruction: instruction,
		Status:      WorkflowStatusStarted,
		LastStage:   StageInitial,
	}
}

// CompleteIntake stamps the state with intake metadata. The creation time
// is fixed here and never changes afterwards.
// Returns ErrStageOrder unless the state is freshly started.
func (s *WorkflowState) CompleteIntake(now time.Time) error {
	if s.Status != WorkflowStatusStarted {
		return ErrStageOrder
	}

	s.Status = WorkflowStatusIntakeComplete
	s.LastStage = StageIntake
	s.CreatedAt = now.UTC()
	return nil
}

// CompleteResearch records the lesson text produced by the research stage.
// The lesson is accepted as-is, even if empty: the card generation stage
// must be robust regardless of lesson quality.
// Returns ErrStageOrder unless intake has completed.
func (s *WorkflowState) CompleteResearch(lesson string) error {
	if s.Status != WorkflowStatusIntakeComplete {
		return ErrStageOrder
	}

	s.Lesson = lesson
	s.Status = WorkflowStatusResearchComplete
	s.LastStage = StageResearch
	return nil
}

// CompleteCardGeneration records the validated flashcard list.
// Per-card validity is the card generation stage's responsibility; this
// transition only enforces pipeline order and that the list is non-empty,
// which the stage's fallback guarantees.
// Returns ErrStageOrder unless research has completed, or ErrNoFlashcards
// for an empty list.
func (s *WorkflowState) CompleteCardGeneration(cards []Flashcard) error {
	if s.Status != WorkflowStatusResearchComplete {
		return ErrStageOrder
	}

	if len(cards) == 0 {
		return ErrNoFlashcards
	}

	s.Flashcards = cards
	s.Status = WorkflowStatusCardsComplete
	s.LastStage = StageCardGenerator
	return nil
}

// Validate checks if the WorkflowState has valid data.
// Returns an error if any field fails validation.
func (s *WorkflowState) Validate() error {
	if s.ID == uuid.Nil {
		return ErrWorkflowIDEmpty
	}

	if !isValidWorkflowStatus(s.Status) {
		return ErrInvalidWorkflowStatus
	}

	return nil
}

// isValidWorkflowStatus checks if the given status is a valid WorkflowStatus.
func isValidWorkflowStatus(status WorkflowStatus) bool {
	switch status {
	case WorkflowStatusStarted, WorkflowStatusIntakeComplete,
		WorkflowStatusResearchComplete, WorkflowStatusCardsComplete:
		return true
	default:
		return false
	}
}
