package service

import (
	"context"
	"math"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

const trendWeeks = 6

// AnalyticsService recomputes the admin dashboard on every call; there is no
// cache between the dashboard and the primary store.
type AnalyticsService struct {
	analytics ports.AnalyticsRepository
}

var _ ports.AnalyticsService = (*AnalyticsService)(nil)

func NewAnalyticsService(analytics ports.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

func (s *AnalyticsService) Overview(ctx context.Context) (*domain.AnalyticsOverview, error) {
	overview := &domain.AnalyticsOverview{}
	var err error

	if overview.TotalUsers, err = s.analytics.CountUsers(ctx); err != nil {
		return nil, err
	}
	if overview.ActiveUsers, err = s.analytics.CountActiveUsers(ctx); err != nil {
		return nil, err
	}
	if overview.GroupsCreated, err = s.analytics.CountGroups(ctx); err != nil {
		return nil, err
	}
	if overview.TasksCreated, err = s.analytics.CountTasks(ctx); err != nil {
		return nil, err
	}
	if overview.CompletedTasks, err = s.analytics.CountTasksByStatus(ctx, domain.TaskStatusCompleted); err != nil {
		return nil, err
	}

	if overview.TasksCreated > 0 {
		overview.CompletionRate = int(math.Round(float64(overview.CompletedTasks) / float64(overview.TasksCreated) * 100))
	}
	if overview.TotalUsers > 0 {
		overview.AvgTasksPerUser = math.Round(float64(overview.TasksCreated)/float64(overview.TotalUsers)*100) / 100
	}

	if overview.TasksByStatus, err = s.analytics.TasksByStatus(ctx); err != nil {
		return nil, err
	}
	if overview.TasksByGroup, err = s.analytics.TasksByGroup(ctx); err != nil {
		return nil, err
	}
	if overview.UserTrend, err = s.analytics.UserTrend(ctx, trendWeeks); err != nil {
		return nil, err
	}
	if overview.GroupTrend, err = s.analytics.GroupTrend(ctx, trendWeeks); err != nil {
		return nil, err
	}

	return overview, nil
}
