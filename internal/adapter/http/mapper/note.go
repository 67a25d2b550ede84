package mapper

import (
	"time"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/core/domain"
)

func ToNoteItems(notes []domain.Note) []dto.NoteItem {
	items := make([]dto.NoteItem, 0, len(notes))
	for i := range notes {
		items = append(items, ToNoteItem(&notes[i]))
	}
	return items
}

func ToNoteItem(note *domain.Note) dto.NoteItem {
	return dto.NoteItem{
		ID:         note.ID,
		UserID:     note.UserID,
		TaskID:     note.TaskID,
		GroupID:    note.GroupID,
		Title:      note.Title,
		Content:    note.Content,
		Tags:       note.Tags,
		Summary:    note.Summary,
		IsArchived: note.IsArchived,
		CreatedAt:  note.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  note.UpdatedAt.Format(time.RFC3339),
	}
}
