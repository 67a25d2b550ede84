package mapper

import (
	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/core/domain"
)

func ToAnalyticsOverview(overview *domain.AnalyticsOverview) dto.AnalyticsOverview {
	out := dto.AnalyticsOverview{
		TotalUsers:      overview.TotalUsers,
		ActiveUsers:     overview.ActiveUsers,
		GroupsCreated:   overview.GroupsCreated,
		TasksCreated:    overview.TasksCreated,
		CompletedTasks:  overview.CompletedTasks,
		CompletionRate:  overview.CompletionRate,
		AvgTasksPerUser: overview.AvgTasksPerUser,
		TasksByStatus:   make([]dto.StatusCount, 0, len(overview.TasksByStatus)),
		TasksByGroup:    make([]dto.GroupCount, 0, len(overview.TasksByGroup)),
		UserTrend:       make([]dto.TrendPoint, 0, len(overview.UserTrend)),
		GroupTrend:      make([]dto.TrendPoint, 0, len(overview.GroupTrend)),
	}

	for _, count := range overview.TasksByStatus {
		out.TasksByStatus = append(out.TasksByStatus, dto.StatusCount{Status: string(count.Status), Count: count.Count})
	}
	for _, count := range overview.TasksByGroup {
		out.TasksByGroup = append(out.TasksByGroup, dto.GroupCount{
			GroupID:   count.GroupID,
			GroupName: count.GroupName,
			Count:     count.Count,
		})
	}
	for _, point := range overview.UserTrend {
		out.UserTrend = append(out.UserTrend, dto.TrendPoint(point))
	}
	for _, point := range overview.GroupTrend {
		out.GroupTrend = append(out.GroupTrend, dto.TrendPoint(point))
	}

	return out
}
