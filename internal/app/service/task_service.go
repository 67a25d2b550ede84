package service

import (
	"context"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

type TaskService struct {
	tasks  ports.TaskRepository
	groups ports.GroupRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(tasks ports.TaskRepository, groups ports.GroupRepository) *TaskService {
	return &TaskService{tasks: tasks, groups: groups}
}

func (s *TaskService) Create(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     &in.DueDate,
		ProjectID:   in.ProjectID,
		Tags:        in.Tags,
		Category:    in.Category,
	}
	if task.Category == "" {
		task.Category = "Uncategorized"
	}
	if in.GroupID != nil {
		task.Group = &domain.GroupRef{ID: *in.GroupID}
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return s.tasks.GetByID(ctx, task.ID)
}

func (s *TaskService) Get(ctx context.Context, taskID, userID string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) ListForUser(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.tasks.ListForUser(ctx, userID, filter)
}

// ListForGroup is membership-scoped: callers outside the group get NotFound.
func (s *TaskService) ListForGroup(ctx context.Context, groupID, userID string) ([]domain.Task, error) {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.Owner.ID != userID && !group.HasMember(userID) {
		return nil, domain.ErrGroupNotFound
	}
	return s.tasks.ListForGroup(ctx, groupID)
}

func (s *TaskService) Update(ctx context.Context, taskID, userID string, in domain.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.Get(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, task, in)
}

func (s *TaskService) Delete(ctx context.Context, taskID, userID string) error {
	if _, err := s.Get(ctx, taskID, userID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, taskID)
}

func (s *TaskService) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, int, error) {
	return s.tasks.List(ctx, filter)
}

func (s *TaskService) AdminUpdate(ctx context.Context, taskID string, in domain.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, task, in)
}

func (s *TaskService) AdminDelete(ctx context.Context, taskID string) error {
	return s.tasks.Delete(ctx, taskID)
}

func (s *TaskService) Bulk(ctx context.Context, in domain.BulkTaskInput) (int, error) {
	if in.Action == domain.BulkTaskDelete {
		return s.tasks.BulkDelete(ctx, in.TaskIDs)
	}
	return s.tasks.BulkUpdate(ctx, in)
}

func (s *TaskService) apply(ctx context.Context, task *domain.Task, in domain.UpdateTaskInput) (*domain.Task, error) {
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.DueDateSet {
		task.DueDate = in.DueDate
	}
	if in.GroupIDSet {
		if in.GroupID == nil {
			task.Group = nil
		} else {
			task.Group = &domain.GroupRef{ID: *in.GroupID}
		}
	}
	if in.TagsSet {
		task.Tags = in.Tags
	}
	if in.Category != nil {
		task.Category = *in.Category
	}
	if in.IsArchived != nil {
		task.IsArchived = *in.IsArchived
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return s.tasks.GetByID(ctx, task.ID)
}
