package ports

import (
	"context"

	"github.com/nisargamalap/gridle/internal/core/domain"
)

type AnalyticsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountActiveUsers(ctx context.Context) (int, error)
	CountGroups(ctx context.Context) (int, error)
	CountTasks(ctx context.Context) (int, error)
	CountTasksByStatus(ctx context.Context, status domain.TaskStatus) (int, error)
	TasksByStatus(ctx context.Context) ([]domain.StatusCount, error)
	TasksByGroup(ctx context.Context) ([]domain.GroupCount, error)
	// UserTrend and GroupTrend bucket row creation timestamps by ISO calendar
	// week, capped at the most recent `weeks` buckets, ascending (year, week).
	UserTrend(ctx context.Context, weeks int) ([]domain.TrendPoint, error)
	GroupTrend(ctx context.Context, weeks int) ([]domain.TrendPoint, error)
}

type AnalyticsService interface {
	Overview(ctx context.Context) (*domain.AnalyticsOverview, error)
}
