package domain

import (
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ParseTaskStatus normalizes the status spellings that accumulated across the
// legacy handlers ("done", "pending", snake case) onto the canonical enum.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "pending":
		return TaskStatusTodo, nil
	case "in-progress", "in_progress":
		return TaskStatusInProgress, nil
	case "completed", "done":
		return TaskStatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown task status %q", s)
	}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// ParseTaskPriority lowercases before matching; the legacy call sites sent
// both "High" and "high".
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return TaskPriorityLow, nil
	case "medium":
		return TaskPriorityMedium, nil
	case "high":
		return TaskPriorityHigh, nil
	case "urgent":
		return TaskPriorityUrgent, nil
	default:
		return "", fmt.Errorf("unknown task priority %q", s)
	}
}

// GroupRef is a populated group cross-reference.
type GroupRef struct {
	ID   string
	Name string
}

type Task struct {
	ID          string
	UserID      string
	Group       *GroupRef
	ProjectID   *string
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	Tags        []string
	Category    string
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     time.Time
	GroupID     *string
	ProjectID   *string
	Tags        []string
	Category    string
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	DueDate     *time.Time
	DueDateSet  bool
	GroupID     *string
	GroupIDSet  bool
	Tags        []string
	TagsSet     bool
	Category    *string
	IsArchived  *bool
}

type TaskFilter struct {
	UserID   *string
	GroupID  *string
	Status   *TaskStatus
	Priority *TaskPriority
	Archived *bool
	Search   string
	Page     int
	PerPage  int
}

// BulkTaskAction is one admin bulk mutation over a set of task IDs.
type BulkTaskAction string

const (
	BulkTaskDelete    BulkTaskAction = "delete"
	BulkTaskArchive   BulkTaskAction = "archive"
	BulkTaskUnarchive BulkTaskAction = "unarchive"
	BulkTaskStatus    BulkTaskAction = "status"
	BulkTaskPriority  BulkTaskAction = "priority"
	BulkTaskAssign    BulkTaskAction = "assign"
)

type BulkTaskInput struct {
	Action   BulkTaskAction
	TaskIDs  []string
	Status   *TaskStatus
	Priority *TaskPriority
	UserID   *string
}
