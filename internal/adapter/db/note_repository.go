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

const selectNoteColumns = `
id, user_id, task_id, group_id, title, content, tags, summary, is_archived,
created_at, updated_at
`

type NoteRepository struct {
	db *sqlx.DB
}

var _ ports.NoteRepository = (*NoteRepository)(nil)

func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

type noteRow struct {
	ID         string         `db:"id"`
	UserID     string         `db:"user_id"`
	TaskID     sql.NullString `db:"task_id"`
	GroupID    sql.NullString `db:"group_id"`
	Title      string         `db:"title"`
	Content    string         `db:"content"`
	Tags       sql.NullString `db:"tags"`
	Summary    sql.NullString `db:"summary"`
	IsArchived bool           `db:"is_archived"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO notes (id, user_id, task_id, group_id, title, content, tags, is_archived)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		note.ID, note.UserID, nullString(note.TaskID), nullString(note.GroupID),
		note.Title, note.Content, joinTags(note.Tags), note.IsArchived,
	)
	return err
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	var row noteRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+selectNoteColumns+` FROM notes WHERE id = ?;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}

	note := mapNoteRow(row)
	return &note, nil
}

func (r *NoteRepository) ListForUser(ctx context.Context, userID string) ([]domain.Note, error) {
	var rows []noteRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+selectNoteColumns+` FROM notes WHERE user_id = ? ORDER BY updated_at DESC;`, userID)
	if err != nil {
		return nil, err
	}
	return mapNoteRows(rows), nil
}

func (r *NoteRepository) List(ctx context.Context, filter domain.NoteFilter) ([]domain.Note, int, error) {
	var where []string
	var args []any

	if filter.UserID != nil {
		where = append(where, "user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.Search != "" {
		where = append(where, "(title LIKE ? OR content LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	if len(where) == 0 {
		where = append(where, "1 = 1")
	}
	clause := strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM notes WHERE `+clause, args...); err != nil {
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

	var rows []noteRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+selectNoteColumns+` FROM notes WHERE `+clause+` ORDER BY created_at DESC LIMIT ? OFFSET ?;`, args...)
	if err != nil {
		return nil, 0, err
	}
	return mapNoteRows(rows), total, nil
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE notes
SET title = ?, content = ?, tags = ?, is_archived = ?
WHERE id = ?;`,
		note.Title, note.Content, joinTags(note.Tags), note.IsArchived, note.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrNoteNotFound)
}

func (r *NoteRepository) SetSummary(ctx context.Context, id, summary string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notes SET summary = ? WHERE id = ?;`, summary, id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrNoteNotFound)
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrNoteNotFound)
}

func mapNoteRows(rows []noteRow) []domain.Note {
	notes := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, mapNoteRow(row))
	}
	return notes
}

func mapNoteRow(row noteRow) domain.Note {
	note := domain.Note{
		ID:         row.ID,
		UserID:     row.UserID,
		Title:      row.Title,
		Content:    row.Content,
		Tags:       splitTags(row.Tags),
		IsArchived: row.IsArchived,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	if row.TaskID.Valid {
		value := row.TaskID.String
		note.TaskID = &value
	}
	if row.GroupID.Valid {
		value := row.GroupID.String
		note.GroupID = &value
	}
	if row.Summary.Valid {
		value := row.Summary.String
		note.Summary = &value
	}

	return note
}
