package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewWorkflowState(t *testing.T) {
	t.Parallel() // Enable parallel execution
	instruction := "Generate flashcards about the French Revolution"

	state := NewWorkflowState(instruction)

	if state.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if state.Instruction != instruction {
		t.Errorf("Expected instruction %q, got %q", instruction, state.Instruction)
	}

	if state.Status != WorkflowStatusStarted {
		t.Errorf("Expected status %s, got %s", WorkflowStatusStarted, state.Status)
	}

	if state.LastStage != StageInitial {
		t.Errorf("Expected last stage %s, got %s", StageInitial, state.LastStage)
	}

	if state.Lesson != "" {
		t.Errorf("Expected lesson to be unset, got %q", state.Lesson)
	}

	if state.Flashcards != nil {
		t.Errorf("Expected flashcards to be unset, got %v", state.Flashcards)
	}

	// Empty instructions pass through unchanged; validation is the
	// caller's concern.
	empty := NewWorkflowState("")
	if empty.Instruction != "" {
		t.Errorf("Expected empty instruction preserved, got %q", empty.Instruction)
	}
}

func TestWorkflowStateTransitions(t *testing.T) {
	t.Parallel() // Enable parallel execution
	state := NewWorkflowState("Generate flashcards about photosynthesis")
	now := time.Now()

	// Intake
	if err := state.CompleteIntake(now); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if state.Status != WorkflowStatusIntakeComplete {
		t.Errorf("Expected status %s, got %s", WorkflowStatusIntakeComplete, state.Status)
	}

	if state.LastStage != StageIntake {
		t.Errorf("Expected last stage %s, got %s", StageIntake, state.LastStage)
	}

	if !state.CreatedAt.Equal(now.UTC()) {
		t.Errorf("Expected CreatedAt %v, got %v", now.UTC(), state.CreatedAt)
	}

	// Intake cannot run twice
	if err := state.CompleteIntake(now); err != ErrStageOrder {
		t.Errorf("Expected error %v, got %v", ErrStageOrder, err)
	}

	// Research
	lesson := "Photosynthesis converts light energy into chemical energy."
	if err := state.CompleteResearch(lesson); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if state.Lesson != lesson {
		t.Errorf("Expected lesson %q, got %q", lesson, state.Lesson)
	}

	if state.Status != WorkflowStatusResearchComplete {
		t.Errorf("Expected status %s, got %s", WorkflowStatusResearchComplete, state.Status)
	}

	// Earlier fields are preserved after later transitions
	if state.Instruction != "Generate flashcards about photosynthesis" {
		t.Errorf("Expected instruction preserved, got %q", state.Instruction)
	}

	// Card generation
	cards := []Flashcard{
		{Question: "Q1", Answer: "A1", Category: DefaultCategory},
	}
	if err := state.CompleteCardGeneration(cards); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if state.Status != WorkflowStatusCardsComplete {
		t.Errorf("Expected status %s, got %s", WorkflowStatusCardsComplete, state.Status)
	}

	if state.LastStage != StageCardGenerator {
		t.Errorf("Expected last stage %s, got %s", StageCardGenerator, state.LastStage)
	}

	if state.Lesson != lesson {
		t.Errorf("Expected lesson preserved, got %q", state.Lesson)
	}
}

func TestWorkflowStateTransitionOrder(t *testing.T) {
	t.Parallel() // Enable parallel execution
	state := NewWorkflowState("topic")
	cards := []Flashcard{{Question: "Q", Answer: "A", Category: DefaultCategory}}

	// Research before intake
	if err := state.CompleteResearch("lesson"); err != ErrStageOrder {
		t.Errorf("Expected error %v, got %v", ErrStageOrder, err)
	}

	// Card generation before research
	if err := state.CompleteCardGeneration(cards); err != ErrStageOrder {
		t.Errorf("Expected error %v, got %v", ErrStageOrder, err)
	}

	if err := state.CompleteIntake(time.Now()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := state.CompleteResearch("lesson"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Empty card list is rejected
	if err := state.CompleteCardGeneration(nil); err != ErrNoFlashcards {
		t.Errorf("Expected error %v, got %v", ErrNoFlashcards, err)
	}
}

func TestWorkflowStateValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	validState := WorkflowState{
		ID:          uuid.New(),
		Instruction: "topic",
		Status:      WorkflowStatusStarted,
		LastStage:   StageInitial,
	}

	if err := validState.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidState := validState
	invalidState.ID = uuid.Nil
	if err := invalidState.Validate(); err != ErrWorkflowIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrWorkflowIDEmpty, err)
	}

	invalidState = validState
	invalidState.Status = "unknown"
	if err := invalidState.Validate(); err != ErrInvalidWorkflowStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidWorkflowStatus, err)
	}
}
