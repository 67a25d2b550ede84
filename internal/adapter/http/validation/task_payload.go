package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput normalizes the request onto the canonical enums. The
// legacy clients sent several spellings per status and mixed-case priorities;
// anything outside the canonical sets after normalization is rejected here
// rather than stored.
func BuildCreateTaskInput(userID string, req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		parsed, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		status = parsed
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		parsed, err := domain.ParseTaskPriority(*req.Priority)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		priority = parsed
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	in := domain.CreateTaskInput{
		UserID:    userID,
		Title:     title,
		Status:    status,
		Priority:  priority,
		DueDate:   dueDate,
		GroupID:   req.GroupID,
		ProjectID: req.ProjectID,
		Tags:      req.Tags,
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Category != nil {
		in.Category = *req.Category
	}
	return in, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if len(raw) == 0 {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var in domain.UpdateTaskInput

	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		in.Title = &value
	}
	in.Description = req.Description

	if req.Status != nil {
		parsed, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		in.Status = &parsed
	}
	if req.Priority != nil {
		parsed, err := domain.ParseTaskPriority(*req.Priority)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		in.Priority = &parsed
	}

	if hasJSONField(raw, "due_date") {
		in.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			parsed, err := time.Parse("2006-01-02", *req.DueDate)
			if err != nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			in.DueDate = &parsed
		}
	}

	if hasJSONField(raw, "group_id") {
		in.GroupIDSet = true
		if !isJSONNull(raw["group_id"]) {
			in.GroupID = req.GroupID
		}
	}

	if hasJSONField(raw, "tags") {
		in.TagsSet = true
		in.Tags = req.Tags
	}

	in.Category = req.Category
	in.IsArchived = req.IsArchived

	return in, nil
}

// BuildBulkTaskInput checks the per-action payload requirements: status and
// priority actions carry a value, assign carries a user.
func BuildBulkTaskInput(req dto.BulkTaskRequest) (domain.BulkTaskInput, error) {
	in := domain.BulkTaskInput{
		Action:  domain.BulkTaskAction(req.Action),
		TaskIDs: req.TaskIDs,
	}

	switch in.Action {
	case domain.BulkTaskDelete, domain.BulkTaskArchive, domain.BulkTaskUnarchive:
	case domain.BulkTaskStatus:
		if req.Status == nil {
			return domain.BulkTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return domain.BulkTaskInput{}, ErrInvalidTaskPayload
		}
		in.Status = &parsed
	case domain.BulkTaskPriority:
		if req.Priority == nil {
			return domain.BulkTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := domain.ParseTaskPriority(*req.Priority)
		if err != nil {
			return domain.BulkTaskInput{}, ErrInvalidTaskPayload
		}
		in.Priority = &parsed
	case domain.BulkTaskAssign:
		if req.UserID == nil || *req.UserID == "" {
			return domain.BulkTaskInput{}, ErrInvalidTaskPayload
		}
		in.UserID = req.UserID
	default:
		return domain.BulkTaskInput{}, ErrInvalidTaskPayload
	}

	return in, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
