package dto

// Page wraps a list payload with the pagination counters the admin tables
// consume.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	Total       int `json:"total"`
}

func NewPage[T any](items []T, page, perPage, total int) Page[T] {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return Page[T]{Items: items, CurrentPage: page, TotalPages: totalPages, Total: total}
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type GroupCount struct {
	GroupID   string `json:"group_id,omitempty"`
	GroupName string `json:"group_name,omitempty"`
	Count     int    `json:"count"`
}

type TrendPoint struct {
	Year  int `json:"year"`
	Week  int `json:"week"`
	Count int `json:"count"`
}

type AnalyticsOverview struct {
	TotalUsers      int           `json:"total_users"`
	ActiveUsers     int           `json:"active_users"`
	GroupsCreated   int           `json:"groups_created"`
	TasksCreated    int           `json:"tasks_created"`
	CompletedTasks  int           `json:"completed_tasks"`
	CompletionRate  int           `json:"completion_rate"`
	AvgTasksPerUser float64       `json:"avg_tasks_per_user"`
	TasksByStatus   []StatusCount `json:"tasks_by_status"`
	TasksByGroup    []GroupCount  `json:"tasks_by_group"`
	UserTrend       []TrendPoint  `json:"user_trend"`
	GroupTrend      []TrendPoint  `json:"group_trend"`
}
