package workflow

import (
	"bytes"
	"fmt"
	"text/template"
)

// lessonPromptText asks the model for a short pedagogical lesson on the
// instruction's topic. The instruction is substituted verbatim.
const lessonPromptText = `
You are an expert educator. Create a comprehensive but concise mini lesson on the following topic: {{.Instruction}}

Your response should include:
1. A brief introduction to the topic
2. Key concepts and definitions
3. Important facts and details
4. Historical context if relevant
5. Examples or case studies if applicable

Keep the lesson focused and educational, suitable for creating flashcards. Aim for 3-5 paragraphs total.

Topic: {{.Instruction}}

Mini Lesson:
`

// flashcardPromptText asks the model to emit 3-5 flashcards as a JSON
// array of question/answer/category objects.
const flashcardPromptText = `
You are an expert flashcard creator. Based on the following mini lesson, create 3-5 high-quality flashcards.

Each flashcard should:
- Have a clear, specific question
- Have a concise, accurate answer
- Cover different aspects of the topic
- Be suitable for spaced repetition learning

Format your response as a valid JSON array with this exact structure:
[
    {
        "question": "What is the question?",
        "answer": "What is the answer?",
        "category": "concept/definition/fact/example"
    }
]

Mini Lesson:
{{.Lesson}}

Flashcards (JSON format only):
`

var (
	lessonPromptTemplate    = template.Must(template.New("lesson").Parse(lessonPromptText))
	flashcardPromptTemplate = template.Must(template.New("flashcards").Parse(flashcardPromptText))
)

// lessonPromptData represents the data passed to the lesson prompt template
type lessonPromptData struct {
	Instruction string
}

// flashcardPromptData represents the data passed to the flashcard prompt template
type flashcardPromptData struct {
	Lesson string
}

// renderLessonPrompt fills the lesson prompt template with the instruction.
func renderLessonPrompt(instruction string) (string, error) {
	var buf bytes.Buffer
	if err := lessonPromptTemplate.Execute(&buf, lessonPromptData{Instruction: instruction}); err != nil {
		return "", fmt.Errorf("failed to execute lesson prompt template: %w", err)
	}
	return buf.String(), nil
}

// renderFlashcardPrompt fills the flashcard prompt template with the lesson.
func renderFlashcardPrompt(lesson string) (string, error) {
	var buf bytes.Buffer
	if err := flashcardPromptTemplate.Execute(&buf, flashcardPromptData{Lesson: lesson}); err != nil {
		return "", fmt.Errorf("failed to execute flashcard prompt template: %w", err)
	}
	return buf.String(), nil
}
