package service

import (
	"context"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

type NoteService struct {
	notes ports.NoteRepository
	tasks ports.TaskRepository
}

var _ ports.NoteService = (*NoteService)(nil)

func NewNoteService(notes ports.NoteRepository, tasks ports.TaskRepository) *NoteService {
	return &NoteService{notes: notes, tasks: tasks}
}

func (s *NoteService) Create(ctx context.Context, in domain.CreateNoteInput) (*domain.Note, error) {
	// A linked task must belong to the caller.
	if in.TaskID != nil {
		task, err := s.tasks.GetByID(ctx, *in.TaskID)
		if err != nil {
			return nil, err
		}
		if task.UserID != in.UserID {
			return nil, domain.ErrTaskNotFound
		}
	}

	note := &domain.Note{
		UserID:  in.UserID,
		TaskID:  in.TaskID,
		GroupID: in.GroupID,
		Title:   in.Title,
		Content: in.Content,
		Tags:    in.Tags,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return s.notes.GetByID(ctx, note.ID)
}

func (s *NoteService) Get(ctx context.Context, noteID, userID string) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, domain.ErrNoteNotFound
	}
	return note, nil
}

func (s *NoteService) ListForUser(ctx context.Context, userID string) ([]domain.Note, error) {
	return s.notes.ListForUser(ctx, userID)
}

func (s *NoteService) Update(ctx context.Context, noteID, userID string, in domain.UpdateNoteInput) (*domain.Note, error) {
	note, err := s.Get(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		note.Title = *in.Title
	}
	if in.Content != nil {
		note.Content = *in.Content
	}
	if in.TagsSet {
		note.Tags = in.Tags
	}
	if in.IsArchived != nil {
		note.IsArchived = *in.IsArchived
	}

	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return s.notes.GetByID(ctx, note.ID)
}

func (s *NoteService) Delete(ctx context.Context, noteID, userID string) error {
	if _, err := s.Get(ctx, noteID, userID); err != nil {
		return err
	}
	return s.notes.Delete(ctx, noteID)
}

func (s *NoteService) List(ctx context.Context, filter domain.NoteFilter) ([]domain.Note, int, error) {
	return s.notes.List(ctx, filter)
}

func (s *NoteService) AdminDelete(ctx context.Context, noteID string) error {
	return s.notes.Delete(ctx, noteID)
}
