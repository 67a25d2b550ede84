package domain

// StatusCount is one bucket of a group-by-status breakdown.
type StatusCount struct {
	Status TaskStatus
	Count  int
}

// GroupCount is one bucket of a tasks-per-group breakdown. GroupID and
// GroupName are empty for tasks not attached to any group.
type GroupCount struct {
	GroupID   string
	GroupName string
	Count     int
}

// TrendPoint is one calendar-week bucket of a creation trend, ordered
// ascending by (Year, Week).
type TrendPoint struct {
	Year  int
	Week  int
	Count int
}

// AnalyticsOverview is the admin dashboard payload. Recomputed from the
// primary store on every request; nothing here is cached.
type AnalyticsOverview struct {
	TotalUsers      int
	ActiveUsers     int
	GroupsCreated   int
	TasksCreated    int
	CompletedTasks  int
	CompletionRate  int
	AvgTasksPerUser float64
	TasksByStatus   []StatusCount
	TasksByGroup    []GroupCount
	UserTrend       []TrendPoint
	GroupTrend      []TrendPoint
}
