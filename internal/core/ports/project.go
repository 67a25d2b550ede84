package ports

import (
	"context"

	"github.com/nisargamalap/gridle/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, in domain.CreateProjectInput) (*domain.Project, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Project, error)
	Update(ctx context.Context, projectID, userID string, in domain.UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, projectID, userID string) error
}
