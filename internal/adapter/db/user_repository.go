package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

const selectUserColumns = `
id, name, email, password_hash, google_id, oauth_provider, image, role,
is_active, email_verified_at, last_login_at, theme, notify_email, notify_push,
created_at, updated_at
`

type UserRepository struct {
	db *sqlx.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Email           string         `db:"email"`
	PasswordHash    sql.NullString `db:"password_hash"`
	GoogleID        sql.NullString `db:"google_id"`
	OAuthProvider   sql.NullString `db:"oauth_provider"`
	Image           string         `db:"image"`
	Role            string         `db:"role"`
	IsActive        bool           `db:"is_active"`
	EmailVerifiedAt sql.NullTime   `db:"email_verified_at"`
	LastLoginAt     sql.NullTime   `db:"last_login_at"`
	Theme           string         `db:"theme"`
	NotifyEmail     bool           `db:"notify_email"`
	NotifyPush      bool           `db:"notify_push"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, name, email, password_hash, google_id, oauth_provider, image, role, is_active, theme, notify_email, notify_push)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		user.ID, user.Name, user.Email,
		nullString(user.PasswordHash), nullString(user.GoogleID), nullString(user.OAuthProvider),
		user.Image, string(user.Role), user.IsActive,
		user.Preferences.Theme, user.Preferences.NotifyEmail, user.Preferences.NotifyPush,
	)
	if err != nil {
		if isDuplicateKey(err, "uq_users_email") {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+selectUserColumns+` FROM users WHERE id = ?;`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+selectUserColumns+` FROM users WHERE email = ?;`, email)
}

func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getOne(ctx, `
SELECT `+selectUserColumns+`
FROM users
WHERE reset_password_token = ? AND reset_password_expires_at > NOW();`, token)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user := mapUserRow(row)
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, search string, page, perPage int) ([]domain.User, int, error) {
	where := "1 = 1"
	args := []any{}
	if search != "" {
		where = "(name LIKE ? OR email LIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users WHERE `+where, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, perPage, (page-1)*perPage)
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT `+selectUserColumns+`
FROM users
WHERE `+where+`
ORDER BY created_at DESC
LIMIT ? OFFSET ?;`, args...)
	if err != nil {
		return nil, 0, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET name = ?, image = ?, role = ?, is_active = ?, theme = ?, notify_email = ?, notify_push = ?
WHERE id = ?;`,
		user.Name, user.Image, string(user.Role), user.IsActive,
		user.Preferences.Theme, user.Preferences.NotifyEmail, user.Preferences.NotifyPush,
		user.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) SetPasswordHash(ctx context.Context, id, hash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = ? WHERE id = ?;`, hash, id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) SetResetToken(ctx context.Context, id, token string, expires time.Time) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE users SET reset_password_token = ?, reset_password_expires_at = ? WHERE id = ?;`,
		token, expires, id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) ClearResetToken(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE users SET reset_password_token = NULL, reset_password_expires_at = NULL WHERE id = ?;`, id)
	return err
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login_at = NOW() WHERE id = ?;`, id)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?;`, id)
	if err != nil {
		// 1451: row is still referenced, which for users can only be a
		// group's owner_id (everything else cascades).
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1451 {
			return domain.ErrUserOwnsGroups
		}
		return err
	}
	return requireAffected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) Activity(ctx context.Context, id string) (*domain.UserActivity, error) {
	var activity domain.UserActivity
	if err := r.db.GetContext(ctx, &activity.Tasks, `SELECT COUNT(*) FROM tasks WHERE user_id = ?;`, id); err != nil {
		return nil, err
	}
	if err := r.db.GetContext(ctx, &activity.Notes, `SELECT COUNT(*) FROM notes WHERE user_id = ?;`, id); err != nil {
		return nil, err
	}
	if err := r.db.GetContext(ctx, &activity.Groups, "SELECT COUNT(*) FROM `groups` WHERE owner_id = ?;", id); err != nil {
		return nil, err
	}
	return &activity, nil
}

func mapUserRow(row userRow) domain.User {
	user := domain.User{
		ID:       row.ID,
		Name:     row.Name,
		Email:    row.Email,
		Image:    row.Image,
		Role:     domain.UserRole(row.Role),
		IsActive: row.IsActive,
		Preferences: domain.Preferences{
			Theme:       row.Theme,
			NotifyEmail: row.NotifyEmail,
			NotifyPush:  row.NotifyPush,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.PasswordHash.Valid {
		value := row.PasswordHash.String
		user.PasswordHash = &value
	}
	if row.GoogleID.Valid {
		value := row.GoogleID.String
		user.GoogleID = &value
	}
	if row.OAuthProvider.Valid {
		value := row.OAuthProvider.String
		user.OAuthProvider = &value
	}
	if row.EmailVerifiedAt.Valid {
		value := row.EmailVerifiedAt.Time
		user.EmailVerified = &value
	}
	if row.LastLoginAt.Valid {
		value := row.LastLoginAt.Time
		user.LastLogin = &value
	}

	return user
}

func nullString(value *string) any {
	if value == nil || *value == "" {
		return nil
	}
	return *value
}

func requireAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
