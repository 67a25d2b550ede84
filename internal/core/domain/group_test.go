package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nisargamalap/gridle/internal/core/domain"
)

func newTestGroup() *domain.Group {
	owner := domain.UserRef{ID: "owner-1", Name: "Ada", Email: "ada@example.com"}
	joined := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Group{
		ID:       "group-1",
		Name:     "Study Group",
		Owner:    owner,
		JoinCode: "A1B2C3",
		Version:  1,
		Members: []domain.GroupMember{
			{User: owner, Role: domain.MemberRoleAdmin, JoinedAt: joined},
		},
	}
}

func TestGroup_AddMember(t *testing.T) {
	group := newTestGroup()
	bob := domain.UserRef{ID: "user-2", Name: "Bob", Email: "bob@example.com"}
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, group.AddMember(bob, domain.MemberRoleMember, now))
	require.True(t, group.HasMember("user-2"))
	require.Len(t, group.Members, 2)
	require.Equal(t, domain.MemberRoleMember, group.Members[1].Role)
	require.Equal(t, now, group.Members[1].JoinedAt)
}

func TestGroup_AddMember_AlreadyMember(t *testing.T) {
	group := newTestGroup()
	bob := domain.UserRef{ID: "user-2", Name: "Bob", Email: "bob@example.com"}
	now := time.Now()

	require.NoError(t, group.AddMember(bob, domain.MemberRoleMember, now))
	require.ErrorIs(t, group.AddMember(bob, domain.MemberRoleMember, now), domain.ErrAlreadyMember)
	require.Len(t, group.Members, 2)
}

func TestGroup_AddMember_OwnerRejoining(t *testing.T) {
	group := newTestGroup()

	err := group.AddMember(group.Owner, domain.MemberRoleMember, time.Now())
	require.ErrorIs(t, err, domain.ErrAlreadyMember)
	require.Len(t, group.Members, 1)
}

func TestGroup_RemoveMember(t *testing.T) {
	group := newTestGroup()
	bob := domain.UserRef{ID: "user-2", Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, group.AddMember(bob, domain.MemberRoleMember, time.Now()))

	require.NoError(t, group.RemoveMember("user-2"))
	require.False(t, group.HasMember("user-2"))
	require.Len(t, group.Members, 1)
}

func TestGroup_RemoveMember_Owner(t *testing.T) {
	group := newTestGroup()

	require.ErrorIs(t, group.RemoveMember("owner-1"), domain.ErrOwnerRemoval)
	require.True(t, group.HasMember("owner-1"))
}

func TestGroup_RemoveMember_NotAMember(t *testing.T) {
	group := newTestGroup()

	require.ErrorIs(t, group.RemoveMember("ghost"), domain.ErrNotAMember)
}

func TestGroup_TransferOwnership(t *testing.T) {
	group := newTestGroup()
	bob := domain.UserRef{ID: "user-2", Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, group.AddMember(bob, domain.MemberRoleMember, time.Now()))

	require.NoError(t, group.TransferOwnership("user-2"))

	require.Equal(t, "user-2", group.Owner.ID)
	require.True(t, group.IsAdmin("user-2"))
	require.True(t, group.HasMember("owner-1"))
	require.False(t, group.IsAdmin("owner-1"))

	// Exactly one roster entry holds the admin role afterwards.
	admins := 0
	for _, m := range group.Members {
		if m.Role == domain.MemberRoleAdmin {
			admins++
		}
	}
	require.Equal(t, 1, admins)
}

func TestGroup_TransferOwnership_NotAMember(t *testing.T) {
	group := newTestGroup()

	require.ErrorIs(t, group.TransferOwnership("ghost"), domain.ErrNotAMember)
	require.Equal(t, "owner-1", group.Owner.ID)
}

func TestGroup_TransferOwnership_ThenRemoveOldOwner(t *testing.T) {
	group := newTestGroup()
	bob := domain.UserRef{ID: "user-2", Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, group.AddMember(bob, domain.MemberRoleMember, time.Now()))
	require.NoError(t, group.TransferOwnership("user-2"))

	// The demoted owner is a plain member now and can leave.
	require.NoError(t, group.RemoveMember("owner-1"))
	require.False(t, group.HasMember("owner-1"))
}

func TestGroup_IsAdmin(t *testing.T) {
	group := newTestGroup()
	bob := domain.UserRef{ID: "user-2", Name: "Bob", Email: "bob@example.com"}
	carol := domain.UserRef{ID: "user-3", Name: "Carol", Email: "carol@example.com"}
	require.NoError(t, group.AddMember(bob, domain.MemberRoleMember, time.Now()))
	require.NoError(t, group.AddMember(carol, domain.MemberRoleAdmin, time.Now()))

	require.True(t, group.IsAdmin("owner-1"))
	require.True(t, group.IsAdmin("user-3"))
	require.False(t, group.IsAdmin("user-2"))
	require.False(t, group.IsAdmin("ghost"))
}
