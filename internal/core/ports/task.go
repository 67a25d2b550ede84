package ports

import (
	"context"

	"github.com/nisargamalap/gridle/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListForUser(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error)
	ListForGroup(ctx context.Context, groupID string) ([]domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, int, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	// BulkUpdate applies one field mutation across an ID set as a single
	// multi-row statement; BulkDelete mirrors it for deletion.
	BulkUpdate(ctx context.Context, in domain.BulkTaskInput) (int, error)
	BulkDelete(ctx context.Context, ids []string) (int, error)
}

type TaskService interface {
	Create(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, taskID, userID string) (*domain.Task, error)
	ListForUser(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error)
	ListForGroup(ctx context.Context, groupID, userID string) ([]domain.Task, error)
	Update(ctx context.Context, taskID, userID string, in domain.UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, taskID, userID string) error

	// Admin surface.
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, int, error)
	AdminUpdate(ctx context.Context, taskID string, in domain.UpdateTaskInput) (*domain.Task, error)
	AdminDelete(ctx context.Context, taskID string) error
	Bulk(ctx context.Context, in domain.BulkTaskInput) (int, error)
}
