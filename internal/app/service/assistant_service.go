package service

import (
	"context"
	"fmt"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

// AssistantService wraps the generative text endpoint for the chat widget and
// the note summarize / translate / spellcheck helpers. Prompt composition
// lives here; the transport lives in the adapter.
type AssistantService struct {
	client ports.GenerativeClient
	notes  ports.NoteRepository
}

var _ ports.AssistantService = (*AssistantService)(nil)

func NewAssistantService(client ports.GenerativeClient, notes ports.NoteRepository) *AssistantService {
	return &AssistantService{client: client, notes: notes}
}

func (s *AssistantService) Chat(ctx context.Context, message string) (string, error) {
	return s.client.Generate(ctx, message)
}

func (s *AssistantService) SummarizeNote(ctx context.Context, noteID, userID string) (string, error) {
	note, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return "", err
	}
	if note.UserID != userID {
		return "", domain.ErrNoteNotFound
	}

	summary, err := s.client.Generate(ctx,
		fmt.Sprintf("Summarize the following note in two or three sentences:\n\n%s", note.Content))
	if err != nil {
		return "", err
	}

	if err := s.notes.SetSummary(ctx, note.ID, summary); err != nil {
		return "", err
	}
	return summary, nil
}

func (s *AssistantService) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	return s.client.Generate(ctx,
		fmt.Sprintf("Translate the following text into %s. Reply with the translation only:\n\n%s", targetLanguage, text))
}

func (s *AssistantService) Spellcheck(ctx context.Context, text string) (string, error) {
	return s.client.Generate(ctx,
		fmt.Sprintf("Correct the spelling and grammar of the following text. Reply with the corrected text only:\n\n%s", text))
}
