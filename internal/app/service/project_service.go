package service

import (
	"context"
	"time"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

type ProjectService struct {
	projects ports.ProjectRepository
}

var _ ports.ProjectService = (*ProjectService)(nil)

func NewProjectService(projects ports.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) Create(ctx context.Context, in domain.CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		UserID:      in.UserID,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Color:       in.Color,
	}
	if project.Status == "" {
		project.Status = domain.ProjectStatusActive
	}
	if project.StartDate.IsZero() {
		project.StartDate = time.Now()
	}
	if project.Color == "" {
		project.Color = "#3B82F6"
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return s.projects.GetByID(ctx, project.ID)
}

func (s *ProjectService) ListForUser(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.projects.ListForUser(ctx, userID)
}

func (s *ProjectService) Update(ctx context.Context, projectID, userID string, in domain.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, domain.ErrProjectNotFound
	}

	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Status != nil {
		project.Status = *in.Status
	}
	if in.EndDateSet {
		project.EndDate = in.EndDate
	}
	if in.Color != nil {
		project.Color = *in.Color
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, projectID, userID string) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.UserID != userID {
		return domain.ErrProjectNotFound
	}
	return s.projects.Delete(ctx, projectID)
}
