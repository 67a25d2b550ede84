package domain

import "time"

type Note struct {
	ID         string
	UserID     string
	TaskID     *string
	GroupID    *string
	Title      string
	Content    string
	Tags       []string
	Summary    *string
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateNoteInput struct {
	UserID  string
	TaskID  *string
	GroupID *string
	Title   string
	Content string
	Tags    []string
}

type UpdateNoteInput struct {
	Title      *string
	Content    *string
	Tags       []string
	TagsSet    bool
	IsArchived *bool
}

type NoteFilter struct {
	UserID  *string
	Search  string
	Page    int
	PerPage int
}
