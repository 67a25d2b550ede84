package db

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

type AnalyticsRepository struct {
	db *sqlx.DB
}

var _ ports.AnalyticsRepository = (*AnalyticsRepository)(nil)

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users;`)
}

func (r *AnalyticsRepository) CountActiveUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE is_active = 1;`)
}

func (r *AnalyticsRepository) CountGroups(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM `groups`;")
}

func (r *AnalyticsRepository) CountTasks(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tasks;`)
}

func (r *AnalyticsRepository) CountTasksByStatus(ctx context.Context, status domain.TaskStatus) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM tasks WHERE status = ?;`, string(status))
	return count, err
}

func (r *AnalyticsRepository) count(ctx context.Context, query string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}

func (r *AnalyticsRepository) TasksByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT status, COUNT(*) AS count FROM tasks GROUP BY status ORDER BY status;`)
	if err != nil {
		return nil, err
	}

	counts := make([]domain.StatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.StatusCount{Status: domain.TaskStatus(row.Status), Count: row.Count})
	}
	return counts, nil
}

func (r *AnalyticsRepository) TasksByGroup(ctx context.Context) ([]domain.GroupCount, error) {
	var rows []struct {
		GroupID   sql.NullString `db:"group_id"`
		GroupName sql.NullString `db:"group_name"`
		Count     int            `db:"count"`
	}
	err := r.db.SelectContext(ctx, &rows, `
SELECT t.group_id, g.name AS group_name, COUNT(*) AS count
FROM tasks t
LEFT JOIN `+"`groups`"+` g ON g.id = t.group_id
GROUP BY t.group_id, g.name
ORDER BY count DESC;`)
	if err != nil {
		return nil, err
	}

	counts := make([]domain.GroupCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.GroupCount{
			GroupID:   row.GroupID.String,
			GroupName: row.GroupName.String,
			Count:     row.Count,
		})
	}
	return counts, nil
}

func (r *AnalyticsRepository) UserTrend(ctx context.Context, weeks int) ([]domain.TrendPoint, error) {
	return r.trend(ctx, "users", weeks)
}

func (r *AnalyticsRepository) GroupTrend(ctx context.Context, weeks int) ([]domain.TrendPoint, error) {
	return r.trend(ctx, "`groups`", weeks)
}

func (r *AnalyticsRepository) trend(ctx context.Context, table string, weeks int) ([]domain.TrendPoint, error) {
	var rows []struct {
		Year  int `db:"year"`
		Week  int `db:"week"`
		Count int `db:"count"`
	}
	// WEEK mode 3 is ISO 8601. Newest buckets first, then reversed so the
	// caller sees ascending (year, week).
	query := `
SELECT YEAR(created_at) AS year, WEEK(created_at, 3) AS week, COUNT(*) AS count
FROM ` + table + `
GROUP BY year, week
ORDER BY year DESC, week DESC
LIMIT ?;`
	if err := r.db.SelectContext(ctx, &rows, query, weeks); err != nil {
		return nil, err
	}

	points := make([]domain.TrendPoint, len(rows))
	for i, row := range rows {
		points[len(rows)-1-i] = domain.TrendPoint{Year: row.Year, Week: row.Week, Count: row.Count}
	}
	return points, nil
}
