package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

const selectGroupColumns = `
g.id, g.name, g.description, g.owner_id, g.join_code, g.is_private, g.version,
g.created_at, g.updated_at, o.name AS owner_name, o.email AS owner_email
`

const getGroupByIDQuery = `
SELECT ` + selectGroupColumns + `
FROM ` + "`groups`" + ` g
JOIN users o ON o.id = g.owner_id
WHERE g.id = ?;
`

const getGroupByJoinCodeQuery = `
SELECT ` + selectGroupColumns + `
FROM ` + "`groups`" + ` g
JOIN users o ON o.id = g.owner_id
WHERE g.join_code = ?;
`

const listGroupsForUserQuery = `
SELECT ` + selectGroupColumns + `
FROM ` + "`groups`" + ` g
JOIN users o ON o.id = g.owner_id
WHERE g.owner_id = ?
   OR EXISTS (SELECT 1 FROM group_members gm WHERE gm.group_id = g.id AND gm.user_id = ?)
ORDER BY g.created_at DESC;
`

const listMembersQuery = `
SELECT gm.group_id, gm.user_id, gm.role, gm.joined_at, u.name, u.email
FROM group_members gm
JOIN users u ON u.id = gm.user_id
WHERE gm.group_id IN (?)
ORDER BY gm.joined_at, gm.user_id;
`

type GroupRepository struct {
	db *sqlx.DB
}

var _ ports.GroupRepository = (*GroupRepository)(nil)

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

type groupRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	OwnerID     string    `db:"owner_id"`
	JoinCode    string    `db:"join_code"`
	IsPrivate   bool      `db:"is_private"`
	Version     int64     `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	OwnerName   string    `db:"owner_name"`
	OwnerEmail  string    `db:"owner_email"`
}

type memberRow struct {
	GroupID  string    `db:"group_id"`
	UserID   string    `db:"user_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
	Name     string    `db:"name"`
	Email    string    `db:"email"`
}

func (r *GroupRepository) Create(ctx context.Context, group *domain.Group) error {
	if group.ID == "" {
		group.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
INSERT INTO `+"`groups`"+` (id, name, description, owner_id, join_code, is_private, version)
VALUES (?, ?, ?, ?, ?, ?, 1);`,
		group.ID, group.Name, group.Description, group.Owner.ID, group.JoinCode, group.IsPrivate,
	)
	if err != nil {
		if isDuplicateKey(err, "uq_groups_join_code") {
			return domain.ErrJoinCodeTaken
		}
		return err
	}

	for _, m := range group.Members {
		_, err = tx.ExecContext(ctx, `
INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES (?, ?, ?, ?);`,
			group.ID, m.User.ID, string(m.Role), m.JoinedAt,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	group.Version = 1
	return nil
}

func (r *GroupRepository) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	return r.getOne(ctx, getGroupByIDQuery, id)
}

func (r *GroupRepository) GetByJoinCode(ctx context.Context, code string) (*domain.Group, error) {
	return r.getOne(ctx, getGroupByJoinCodeQuery, code)
}

func (r *GroupRepository) getOne(ctx context.Context, query string, arg any) (*domain.Group, error) {
	var row groupRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}

	groups := []domain.Group{mapGroupRow(row)}
	if err := r.attachMembers(ctx, groups); err != nil {
		return nil, err
	}
	return &groups[0], nil
}

func (r *GroupRepository) ListForUser(ctx context.Context, userID string) ([]domain.Group, error) {
	var rows []groupRow
	if err := r.db.SelectContext(ctx, &rows, listGroupsForUserQuery, userID, userID); err != nil {
		return nil, err
	}

	groups := make([]domain.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, mapGroupRow(row))
	}
	if err := r.attachMembers(ctx, groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *GroupRepository) List(ctx context.Context, search string, page, perPage int) ([]domain.Group, int, error) {
	where := "1 = 1"
	args := []any{}
	if search != "" {
		where = "(g.name LIKE ? OR g.description LIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM `groups` g WHERE " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
SELECT %s
FROM `+"`groups`"+` g
JOIN users o ON o.id = g.owner_id
WHERE %s
ORDER BY g.created_at DESC
LIMIT ? OFFSET ?;`, selectGroupColumns, where)

	args = append(args, perPage, (page-1)*perPage)

	var rows []groupRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}

	groups := make([]domain.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, mapGroupRow(row))
	}
	if err := r.attachMembers(ctx, groups); err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

// Update persists the aggregate guarded by its version counter: the group row
// update only matches when the stored version equals the version the caller
// read, and the roster is replaced wholesale inside the same transaction.
// A concurrent roster change therefore surfaces as ErrVersionConflict instead
// of being silently overwritten.
func (r *GroupRepository) Update(ctx context.Context, group *domain.Group) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
UPDATE `+"`groups`"+`
SET name = ?, description = ?, owner_id = ?, is_private = ?, version = version + 1
WHERE id = ? AND version = ?;`,
		group.Name, group.Description, group.Owner.ID, group.IsPrivate, group.ID, group.Version,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists int
		if err := tx.GetContext(ctx, &exists, "SELECT COUNT(*) FROM `groups` WHERE id = ?", group.ID); err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrGroupNotFound
		}
		return domain.ErrVersionConflict
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM group_members WHERE group_id = ?;`, group.ID); err != nil {
		return err
	}
	for _, m := range group.Members {
		_, err = tx.ExecContext(ctx, `
INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES (?, ?, ?, ?);`,
			group.ID, m.User.ID, string(m.Role), m.JoinedAt,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	group.Version++
	return nil
}

// Delete removes the group and cascades to every task and note referencing
// it. All three deletes share one transaction so a partial cascade cannot be
// left behind.
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE group_id = ?;`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE group_id = ?;`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM `groups` WHERE id = ?;", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrGroupNotFound
	}

	return tx.Commit()
}

func (r *GroupRepository) attachMembers(ctx context.Context, groups []domain.Group) error {
	if len(groups) == 0 {
		return nil
	}

	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}

	query, args, err := sqlx.In(listMembersQuery, ids)
	if err != nil {
		return err
	}

	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return err
	}

	byGroup := make(map[string][]domain.GroupMember, len(groups))
	for _, row := range rows {
		byGroup[row.GroupID] = append(byGroup[row.GroupID], domain.GroupMember{
			User:     domain.UserRef{ID: row.UserID, Name: row.Name, Email: row.Email},
			Role:     domain.MemberRole(row.Role),
			JoinedAt: row.JoinedAt,
		})
	}

	for i := range groups {
		groups[i].Members = byGroup[groups[i].ID]
	}
	return nil
}

func mapGroupRow(row groupRow) domain.Group {
	return domain.Group{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Owner:       domain.UserRef{ID: row.OwnerID, Name: row.OwnerName, Email: row.OwnerEmail},
		JoinCode:    row.JoinCode,
		IsPrivate:   row.IsPrivate,
		Version:     row.Version,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func isDuplicateKey(err error, key string) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != 1062 {
		return false
	}
	return key == "" || strings.Contains(mysqlErr.Message, key)
}
