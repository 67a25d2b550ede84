package dto

type NoteItem struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	TaskID     *string  `json:"task_id,omitempty"`
	GroupID    *string  `json:"group_id,omitempty"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags,omitempty"`
	Summary    *string  `json:"summary,omitempty"`
	IsArchived bool     `json:"is_archived"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type CreateNoteRequest struct {
	Title   string   `json:"title" binding:"required,max=200"`
	Content string   `json:"content" binding:"required,max=10000"`
	TaskID  *string  `json:"task_id"`
	GroupID *string  `json:"group_id"`
	Tags    []string `json:"tags"`
}

type UpdateNoteRequest struct {
	Title      *string  `json:"title" binding:"omitempty,max=200"`
	Content    *string  `json:"content" binding:"omitempty,max=10000"`
	Tags       []string `json:"tags"`
	IsArchived *bool    `json:"is_archived"`
}
