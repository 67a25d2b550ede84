package mapper

import (
	"time"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for i := range tasks {
		items = append(items, ToTaskItem(&tasks[i]))
	}
	return items
}

func ToTaskItem(task *domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		UserID:      task.UserID,
		ProjectID:   task.ProjectID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		Tags:        task.Tags,
		Category:    task.Category,
		IsArchived:  task.IsArchived,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Group != nil {
		item.Group = &dto.GroupRef{ID: task.Group.ID, Name: task.Group.Name}
	}
	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	return item
}
