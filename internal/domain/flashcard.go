package domain

import "errors"

// Flashcard-specific validation errors
var (
	// ErrFlashcardQuestionEmpty is returned when a flashcard's question is empty.
	ErrFlashcardQuestionEmpty = errors.New("flashcard question cannot be empty")

	// ErrFlashcardAnswerEmpty is returned when a flashcard's answer is empty.
	ErrFlashcardAnswerEmpty = errors.New("flashcard answer cannot be empty")
)

// DefaultCategory is assigned to flashcards whose source did not specify one.
const DefaultCategory = "general"

// Flashcard represents a single question/answer unit produced by the
// card generation stage. Category is an open tag set (concept, definition,
// fact, example, ...) and defaults to "general" when the source omits it.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// NewFlashcard creates a Flashcard with the given question, answer, and
// category. An empty category is replaced with DefaultCategory.
// Returns an error if validation fails.
func NewFlashcard(question, answer, category string) (Flashcard, error) {
	if category == "" {
		category = DefaultCategory
	}

	card := Flashcard{
		Question: question,
		Answer:   answer,
		Category: category,
	}

	if err := card.Validate(); err != nil {
		return Flashcard{}, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data.
// Both question and answer must be non-empty; a card failing this is
// never partially kept.
func (f Flashcard) Validate() error {
	if f.Question == "" {
		return ErrFlashcardQuestionEmpty
	}

	if f.Answer == "" {
		return ErrFlashcardAnswerEmpty
	}

	return nil
}
