package services

import (
	"context"
)

// AssistService generates study material from a language model. It is
// read-only with respect to folders and notes: a provider failure can
// never corrupt stored content.
type AssistService interface {
	// GenerateOutline produces a Markdown study outline for a topic
	GenerateOutline(ctx context.Context, ownerID, topic string) (string, error)

	// GenerateQuiz produces quiz questions from a note's content
	GenerateQuiz(ctx context.Context, ownerID, noteID string, count int) ([]QuizQuestion, error)
}

// QuizQuestion is one parsed question from the model's semi-structured
// text output.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}
