package domain

import (
	"fmt"
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return ProjectStatusActive, nil
	case "completed":
		return ProjectStatusCompleted, nil
	case "on-hold":
		return ProjectStatusOnHold, nil
	case "cancelled":
		return ProjectStatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown project status %q", s)
	}
}

type Project struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Status      ProjectStatus
	StartDate   time.Time
	EndDate     *time.Time
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateProjectInput struct {
	UserID      string
	Name        string
	Description string
	Status      ProjectStatus
	StartDate   time.Time
	EndDate     *time.Time
	Color       string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
	EndDate     *time.Time
	EndDateSet  bool
	Color       *string
}
