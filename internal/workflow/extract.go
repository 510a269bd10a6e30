package workflow

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/autoanki/autoanki-api/internal/domain"
)

// fallbackQuestion is the question on the synthetic card emitted when the
// model's structured output cannot be parsed.
const fallbackQuestion = "What was the main topic covered?"

// fallbackAnswerLimit caps the lesson excerpt used as the fallback answer.
const fallbackAnswerLimit = 100

// errNoJSONArray is returned internally when the raw text contains no
// bracketed JSON array candidate.
var errNoJSONArray = errors.New("no JSON array found in response")

// ExtractFlashcards runs best-effort extraction of flashcards from a raw
// model response. It is a pure function: deterministic, no model calls.
//
// Extraction is two-phase. A boundary scan locates the first '[' and the
// last ']' to tolerate commentary the model may emit around the JSON
// payload, then the bounded substring is parsed as a strict JSON array.
// Each element is kept only if it is an object carrying non-empty
// "question" and "answer" strings; category defaults to "general" when
// absent. Non-conforming elements are dropped silently without failing
// their well-formed siblings.
//
// If no array can be located or parsed, or no element survives validation,
// the result is a single synthetic card whose answer is the lesson text
// truncated to 100 characters. The returned slice is therefore never empty.
func ExtractFlashcards(rawText, lessonText string) []domain.Flashcard {
	cards, err := parseFlashcardArray(rawText)
	if err != nil || len(cards) == 0 {
		return []domain.Flashcard{fallbackFlashcard(lessonText)}
	}
	return cards
}

// parseFlashcardArray locates and parses the JSON array embedded in raw
// model output, dropping elements that are not flashcard-shaped.
func parseFlashcardArray(rawText string) ([]domain.Flashcard, error) {
	start := strings.Index(rawText, "[")
	end := strings.LastIndex(rawText, "]")
	if start == -1 || end == -1 || end < start {
		return nil, errNoJSONArray
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(rawText[start:end+1]), &elements); err != nil {
		return nil, err
	}

	cards := make([]domain.Flashcard, 0, len(elements))
	for _, element := range elements {
		var fields map[string]any
		if err := json.Unmarshal(element, &fields); err != nil {
			// Not an object, drop it
			continue
		}

		question, _ := fields["question"].(string)
		answer, _ := fields["answer"].(string)
		if question == "" || answer == "" {
			continue
		}

		category, _ := fields["category"].(string)
		card, err := domain.NewFlashcard(question, answer, category)
		if err != nil {
			continue
		}

		cards = append(cards, card)
	}

	return cards, nil
}

// fallbackFlashcard builds the guaranteed synthetic card from the lesson
// text. The answer mirrors the lesson verbatim, truncated with an ellipsis
// when it exceeds the limit. An empty lesson passes through as an empty
// answer, preserving the pipeline's permissive handling of degenerate
// upstream output.
func fallbackFlashcard(lessonText string) domain.Flashcard {
	answer := lessonText
	if runes := []rune(lessonText); len(runes) > fallbackAnswerLimit {
		answer = string(runes[:fallbackAnswerLimit]) + "..."
	}

	return domain.Flashcard{
		Question: fallbackQuestion,
		Answer:   answer,
		Category: domain.DefaultCategory,
	}
}
