package workflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanki/autoanki-api/internal/domain"
)

func TestExtractFlashcardsWellFormed(t *testing.T) {
	t.Parallel()

	raw := `[
		{"question": "Q1", "answer": "A1", "category": "concept"},
		{"question": "Q2", "answer": "A2", "category": "fact"},
		{"question": "Q3", "answer": "A3"}
	]`

	cards := ExtractFlashcards(raw, "lesson text")

	require.Len(t, cards, 3)
	assert.Equal(t, "Q1", cards[0].Question)
	assert.Equal(t, "A1", cards[0].Answer)
	assert.Equal(t, "concept", cards[0].Category)
	assert.Equal(t, "fact", cards[1].Category)
	// Omitted category defaults to "general"
	assert.Equal(t, domain.DefaultCategory, cards[2].Category)
}

func TestExtractFlashcardsTolerantOfSurroundingText(t *testing.T) {
	t.Parallel()

	raw := `Sure! Here are your flashcards:

[{"question": "Q1", "answer": "A1"}]

Let me know if you need more.`

	cards := ExtractFlashcards(raw, "lesson")

	require.Len(t, cards, 1)
	assert.Equal(t, "Q1", cards[0].Question)
	assert.Equal(t, "A1", cards[0].Answer)
}

func TestExtractFlashcardsDropsMalformedElements(t *testing.T) {
	t.Parallel()

	// Element missing "question" is dropped; well-formed siblings survive.
	raw := `[{"question":"Q1","answer":"A1"}, {"answer":"A2"}]`

	cards := ExtractFlashcards(raw, "lesson")

	require.Len(t, cards, 1)
	assert.Equal(t, "Q1", cards[0].Question)
	assert.Equal(t, "A1", cards[0].Answer)
	assert.Equal(t, domain.DefaultCategory, cards[0].Category)

	// Non-object elements and empty-string fields are dropped too.
	raw = `[42, "text", {"question":"","answer":"A"}, {"question":"Q","answer":"A"}]`

	cards = ExtractFlashcards(raw, "lesson")

	require.Len(t, cards, 1)
	assert.Equal(t, "Q", cards[0].Question)
}

func TestExtractFlashcardsFallback(t *testing.T) {
	t.Parallel()

	lesson := "The French Revolution began in 1789."

	tests := []struct {
		name string
		raw  string
	}{
		{name: "no brackets", raw: "I could not produce JSON for that."},
		{name: "opening bracket only", raw: "here you go: ["},
		{name: "closing before opening", raw: "] oops ["},
		{name: "invalid JSON inside brackets", raw: "[{question: Q1, answer}]"},
		{name: "empty array", raw: "[]"},
		{name: "all elements dropped", raw: `[{"answer":"A"}, 7]`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cards := ExtractFlashcards(tc.raw, lesson)

			require.Len(t, cards, 1)
			assert.Equal(t, fallbackQuestion, cards[0].Question)
			assert.Equal(t, lesson, cards[0].Answer)
			assert.Equal(t, domain.DefaultCategory, cards[0].Category)
		})
	}
}

func TestExtractFlashcardsFallbackTruncation(t *testing.T) {
	t.Parallel()

	longLesson := strings.Repeat("x", 250)

	cards := ExtractFlashcards("no json here", longLesson)

	require.Len(t, cards, 1)
	assert.Equal(t, strings.Repeat("x", 100)+"...", cards[0].Answer)

	// A lesson at exactly the limit is not truncated.
	exactLesson := strings.Repeat("y", 100)
	cards = ExtractFlashcards("no json here", exactLesson)

	require.Len(t, cards, 1)
	assert.Equal(t, exactLesson, cards[0].Answer)
}

func TestExtractFlashcardsDeterministic(t *testing.T) {
	t.Parallel()

	raw := `[{"question":"Q1","answer":"A1","category":"definition"},{"question":"Q2","answer":"A2"}]`

	first := ExtractFlashcards(raw, "lesson")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractFlashcards(raw, "lesson"))
	}
}
