package db

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/nisargamalap/gridle/internal/core/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	return sqlx.NewDb(raw, "mysql"), mock
}

func groupFixture(version int64) *domain.Group {
	owner := domain.UserRef{ID: "owner-1", Name: "Ada", Email: "ada@example.com"}
	return &domain.Group{
		ID:       "group-1",
		Name:     "Study Group",
		Owner:    owner,
		JoinCode: "A1B2C3",
		Version:  version,
		Members: []domain.GroupMember{
			{User: owner, Role: domain.MemberRoleAdmin, JoinedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		},
	}
}

func TestGroupRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewGroupRepository(sqlxDB)
	group := groupFixture(0)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `groups`").
		WithArgs("group-1", "Study Group", "", "owner-1", "A1B2C3", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO group_members").
		WithArgs("group-1", "owner-1", "admin", group.Members[0].JoinedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), group))
	require.Equal(t, int64(1), group.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_Create_JoinCodeTaken(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewGroupRepository(sqlxDB)
	group := groupFixture(0)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `groups`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'A1B2C3' for key 'uq_groups_join_code'"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), group)
	require.ErrorIs(t, err, domain.ErrJoinCodeTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_Update_CAS(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewGroupRepository(sqlxDB)
	group := groupFixture(3)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `groups`").
		WithArgs("Study Group", "", "owner-1", false, "group-1", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM group_members").
		WithArgs("group-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO group_members").
		WithArgs("group-1", "owner-1", "admin", group.Members[0].JoinedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), group))
	require.Equal(t, int64(4), group.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_Update_VersionConflict(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewGroupRepository(sqlxDB)
	group := groupFixture(3)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `groups`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("group-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), group)
	require.ErrorIs(t, err, domain.ErrVersionConflict)
	// The caller's copy is untouched so it can reload and retry.
	require.Equal(t, int64(3), group.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_Update_GroupGone(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewGroupRepository(sqlxDB)
	group := groupFixture(3)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `groups`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("group-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), group)
	require.ErrorIs(t, err, domain.ErrGroupNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_Delete_Cascades(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewGroupRepository(sqlxDB)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM tasks WHERE group_id").
		WithArgs("group-1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM notes WHERE group_id").
		WithArgs("group-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `groups`").
		WithArgs("group-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "group-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_Delete_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewGroupRepository(sqlxDB)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM tasks WHERE group_id").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM notes WHERE group_id").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `groups`").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrGroupNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_GetByID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewGroupRepository(sqlxDB)

	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	joinedAt := time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC)

	groupCols := []string{
		"id", "name", "description", "owner_id", "join_code", "is_private", "version",
		"created_at", "updated_at", "owner_name", "owner_email",
	}
	mock.ExpectQuery("SELECT (.+) FROM `groups` g").
		WithArgs("group-1").
		WillReturnRows(sqlmock.NewRows(groupCols).
			AddRow("group-1", "Study Group", "", "owner-1", "A1B2C3", false, int64(2), createdAt, createdAt, "Ada", "ada@example.com"))

	memberCols := []string{"group_id", "user_id", "role", "joined_at", "name", "email"}
	mock.ExpectQuery("SELECT gm.group_id").
		WithArgs("group-1").
		WillReturnRows(sqlmock.NewRows(memberCols).
			AddRow("group-1", "owner-1", "admin", joinedAt, "Ada", "ada@example.com").
			AddRow("group-1", "user-2", "member", joinedAt, "Bob", "bob@example.com"))

	group, err := repo.GetByID(context.Background(), "group-1")
	require.NoError(t, err)
	require.Equal(t, "group-1", group.ID)
	require.Equal(t, int64(2), group.Version)
	require.Equal(t, "owner-1", group.Owner.ID)
	require.Len(t, group.Members, 2)
	require.True(t, group.IsAdmin("owner-1"))
	require.False(t, group.IsAdmin("user-2"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_GetByID_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewGroupRepository(sqlxDB)

	mock.ExpectQuery("SELECT (.+) FROM `groups` g").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrGroupNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
