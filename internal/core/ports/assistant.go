package ports

import "context"

// GenerativeClient abstracts the third-party generative-AI text endpoint.
type GenerativeClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type AssistantService interface {
	Chat(ctx context.Context, message string) (string, error)
	// SummarizeNote generates a summary for the caller's note and stores it
	// on the note's summary field.
	SummarizeNote(ctx context.Context, noteID, userID string) (string, error)
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
	Spellcheck(ctx context.Context, text string) (string, error)
}
