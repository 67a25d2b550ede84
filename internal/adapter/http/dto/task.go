package dto

type TaskItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Group       *GroupRef `json:"group,omitempty"`
	ProjectID   *string   `json:"project_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     *string   `json:"due_date,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Category    string    `json:"category"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type GroupRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Status      *string  `json:"status"`
	Priority    *string  `json:"priority"`
	DueDate     string   `json:"due_date" binding:"required"`
	GroupID     *string  `json:"group_id"`
	ProjectID   *string  `json:"project_id"`
	Tags        []string `json:"tags"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
}

type UpdateTaskRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Status      *string  `json:"status"`
	Priority    *string  `json:"priority"`
	DueDate     *string  `json:"due_date"`
	GroupID     *string  `json:"group_id"`
	Tags        []string `json:"tags"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	IsArchived  *bool    `json:"is_archived"`
}

type BulkTaskRequest struct {
	Action   string   `json:"action" binding:"required,oneof=delete archive unarchive status priority assign"`
	TaskIDs  []string `json:"task_ids" binding:"required,min=1"`
	Status   *string  `json:"status"`
	Priority *string  `json:"priority"`
	UserID   *string  `json:"user_id"`
}

type BulkTaskResponse struct {
	Affected int `json:"affected"`
}
