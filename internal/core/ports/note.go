package ports

import (
	"context"

	"github.com/nisargamalap/gridle/internal/core/domain"
)

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Note, error)
	List(ctx context.Context, filter domain.NoteFilter) ([]domain.Note, int, error)
	Update(ctx context.Context, note *domain.Note) error
	SetSummary(ctx context.Context, id, summary string) error
	Delete(ctx context.Context, id string) error
}

type NoteService interface {
	Create(ctx context.Context, in domain.CreateNoteInput) (*domain.Note, error)
	Get(ctx context.Context, noteID, userID string) (*domain.Note, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Note, error)
	Update(ctx context.Context, noteID, userID string, in domain.UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, noteID, userID string) error

	// Admin surface.
	List(ctx context.Context, filter domain.NoteFilter) ([]domain.Note, int, error)
	AdminDelete(ctx context.Context, noteID string) error
}
