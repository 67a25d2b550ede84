package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

const selectTaskColumns = `
t.id, t.user_id, t.group_id, t.project_id, t.title, t.description, t.status,
t.priority, t.due_date, t.tags, t.category, t.is_archived, t.created_at,
t.updated_at, g.name AS group_name
`

const taskFromClause = `
FROM tasks t
LEFT JOIN ` + "`groups`" + ` g ON g.id = t.group_id
`

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	GroupID     sql.NullString `db:"group_id"`
	ProjectID   sql.NullString `db:"project_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	DueDate     sql.NullTime   `db:"due_date"`
	Tags        sql.NullString `db:"tags"`
	Category    string         `db:"category"`
	IsArchived  bool           `db:"is_archived"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	GroupName   sql.NullString `db:"group_name"`
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	var groupID, projectID any
	if task.Group != nil {
		groupID = task.Group.ID
	}
	if task.ProjectID != nil {
		projectID = *task.ProjectID
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (id, user_id, group_id, project_id, title, description, status, priority, due_date, tags, category, is_archived)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		task.ID, task.UserID, groupID, projectID, task.Title, task.Description,
		string(task.Status), string(task.Priority), nullTime(task.DueDate),
		joinTags(task.Tags), task.Category, task.IsArchived,
	)
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, `SELECT `+selectTaskColumns+taskFromClause+`WHERE t.id = ?;`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task := mapTaskRow(row)
	return &task, nil
}

func (r *TaskRepository) ListForUser(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	where, args := taskFilterClauses(filter)
	where = append([]string{"t.user_id = ?"}, where...)
	args = append([]any{userID}, args...)

	query := `SELECT ` + selectTaskColumns + taskFromClause +
		`WHERE ` + strings.Join(where, " AND ") + ` ORDER BY t.updated_at DESC;`

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) ListForGroup(ctx context.Context, groupID string) ([]domain.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+selectTaskColumns+taskFromClause+`WHERE t.group_id = ? ORDER BY t.updated_at DESC;`, groupID)
	if err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, int, error) {
	where, args := taskFilterClauses(filter)
	if filter.UserID != nil {
		where = append(where, "t.user_id = ?")
		args = append(args, *filter.UserID)
	}
	if len(where) == 0 {
		where = append(where, "1 = 1")
	}
	clause := strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) `+taskFromClause+`WHERE `+clause, args...); err != nil {
		return nil, 0, err
	}

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, perPage, (page-1)*perPage)

	query := `SELECT ` + selectTaskColumns + taskFromClause +
		`WHERE ` + clause + ` ORDER BY t.created_at DESC LIMIT ? OFFSET ?;`

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	return mapTaskRows(rows), total, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	var groupID, projectID any
	if task.Group != nil {
		groupID = task.Group.ID
	}
	if task.ProjectID != nil {
		projectID = *task.ProjectID
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE tasks
SET user_id = ?, group_id = ?, project_id = ?, title = ?, description = ?,
    status = ?, priority = ?, due_date = ?, tags = ?, category = ?, is_archived = ?
WHERE id = ?;`,
		task.UserID, groupID, projectID, task.Title, task.Description,
		string(task.Status), string(task.Priority), nullTime(task.DueDate),
		joinTags(task.Tags), task.Category, task.IsArchived, task.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrTaskNotFound)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrTaskNotFound)
}

// BulkUpdate applies one field mutation across the ID set in a single UPDATE.
func (r *TaskRepository) BulkUpdate(ctx context.Context, in domain.BulkTaskInput) (int, error) {
	var set string
	var value any
	switch in.Action {
	case domain.BulkTaskArchive:
		set, value = "is_archived = ?", true
	case domain.BulkTaskUnarchive:
		set, value = "is_archived = ?", false
	case domain.BulkTaskStatus:
		set, value = "status = ?", string(*in.Status)
	case domain.BulkTaskPriority:
		set, value = "priority = ?", string(*in.Priority)
	case domain.BulkTaskAssign:
		set, value = "user_id = ?", *in.UserID
	default:
		return 0, errors.New("unsupported bulk action")
	}

	query, args, err := sqlx.In(`UPDATE tasks SET `+set+` WHERE id IN (?);`, value, in.TaskIDs)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	return int(affected), err
}

func (r *TaskRepository) BulkDelete(ctx context.Context, ids []string) (int, error) {
	query, args, err := sqlx.In(`DELETE FROM tasks WHERE id IN (?);`, ids)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	return int(affected), err
}

func taskFilterClauses(filter domain.TaskFilter) ([]string, []any) {
	var where []string
	var args []any

	if filter.Status != nil {
		where = append(where, "t.status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		where = append(where, "t.priority = ?")
		args = append(args, string(*filter.Priority))
	}
	if filter.GroupID != nil {
		where = append(where, "t.group_id = ?")
		args = append(args, *filter.GroupID)
	}
	if filter.Archived != nil {
		where = append(where, "t.is_archived = ?")
		args = append(args, *filter.Archived)
	}
	if filter.Search != "" {
		where = append(where, "(t.title LIKE ? OR t.description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	return where, args
}

func mapTaskRows(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.TaskPriority(row.Priority),
		Tags:        splitTags(row.Tags),
		Category:    row.Category,
		IsArchived:  row.IsArchived,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.GroupID.Valid {
		task.Group = &domain.GroupRef{ID: row.GroupID.String, Name: row.GroupName.String}
	}
	if row.ProjectID.Valid {
		value := row.ProjectID.String
		task.ProjectID = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}

func joinTags(tags []string) any {
	if len(tags) == 0 {
		return nil
	}
	return strings.Join(tags, ",")
}

func splitTags(value sql.NullString) []string {
	if !value.Valid || value.String == "" {
		return nil
	}
	return strings.Split(value.String, ",")
}

func nullTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return *value
}
