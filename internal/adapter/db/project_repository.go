package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

type ProjectRepository struct {
	db *sqlx.DB
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectRow struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	Name        string       `db:"name"`
	Description string       `db:"description"`
	Status      string       `db:"status"`
	StartDate   time.Time    `db:"start_date"`
	EndDate     sql.NullTime `db:"end_date"`
	Color       string       `db:"color"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO projects (id, user_id, name, description, status, start_date, end_date, color)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		project.ID, project.UserID, project.Name, project.Description,
		string(project.Status), project.StartDate, nullTime(project.EndDate), project.Color,
	)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM projects WHERE id = ?;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	project := mapProjectRow(row)
	return &project, nil
}

func (r *ProjectRepository) ListForUser(ctx context.Context, userID string) ([]domain.Project, error) {
	var rows []projectRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM projects WHERE user_id = ? ORDER BY created_at DESC;`, userID)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRow(row))
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE projects
SET name = ?, description = ?, status = ?, end_date = ?, color = ?
WHERE id = ?;`,
		project.Name, project.Description, string(project.Status),
		nullTime(project.EndDate), project.Color, project.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrProjectNotFound)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrProjectNotFound)
}

func mapProjectRow(row projectRow) domain.Project {
	project := domain.Project{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Description: row.Description,
		Status:      domain.ProjectStatus(row.Status),
		StartDate:   row.StartDate,
		Color:       row.Color,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.EndDate.Valid {
		value := row.EndDate.Time
		project.EndDate = &value
	}

	return project
}
