package mapper

import (
	"time"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for i := range projects {
		items = append(items, ToProjectItem(&projects[i]))
	}
	return items
}

func ToProjectItem(project *domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:          project.ID,
		UserID:      project.UserID,
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		StartDate:   project.StartDate.Format("2006-01-02"),
		Color:       project.Color,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339),
	}

	if project.EndDate != nil {
		value := project.EndDate.Format("2006-01-02")
		item.EndDate = &value
	}

	return item
}
