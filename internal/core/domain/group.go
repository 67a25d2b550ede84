package domain

import "time"

type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

const JoinCodeLength = 6

type GroupMember struct {
	User     UserRef
	Role     MemberRole
	JoinedAt time.Time
}

// Group is the membership aggregate. The owner is always also present in
// Members with role admin; all roster transitions go through the methods
// below so that invariant survives every mutation.
//
// Version backs the repository's compare-and-swap update: a stale in-memory
// copy can never silently overwrite a concurrent roster change.
type Group struct {
	ID          string
	Name        string
	Description string
	Owner       UserRef
	Members     []GroupMember
	JoinCode    string
	IsPrivate   bool
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (g *Group) HasMember(userID string) bool {
	return g.memberIndex(userID) >= 0
}

// IsAdmin reports whether userID may administer the group: the owner, or any
// member holding the admin role.
func (g *Group) IsAdmin(userID string) bool {
	if g.Owner.ID == userID {
		return true
	}
	if i := g.memberIndex(userID); i >= 0 {
		return g.Members[i].Role == MemberRoleAdmin
	}
	return false
}

// AddMember appends user to the roster with the given role.
func (g *Group) AddMember(user UserRef, role MemberRole, now time.Time) error {
	if g.HasMember(user.ID) {
		return ErrAlreadyMember
	}
	g.Members = append(g.Members, GroupMember{User: user, Role: role, JoinedAt: now})
	return nil
}

// RemoveMember drops userID from the roster. The current owner can never be
// removed through this path; ownership must be transferred first.
func (g *Group) RemoveMember(userID string) error {
	if g.Owner.ID == userID {
		return ErrOwnerRemoval
	}
	i := g.memberIndex(userID)
	if i < 0 {
		return ErrNotAMember
	}
	g.Members = append(g.Members[:i], g.Members[i+1:]...)
	return nil
}

// TransferOwnership hands the group to newOwnerID, who must already be a
// member. The previous owner is demoted to member, the new owner promoted to
// admin, and afterwards exactly one roster entry carries the admin role.
func (g *Group) TransferOwnership(newOwnerID string) error {
	newIdx := g.memberIndex(newOwnerID)
	if newIdx < 0 {
		return ErrNotAMember
	}
	oldOwnerID := g.Owner.ID
	if i := g.memberIndex(oldOwnerID); i >= 0 {
		g.Members[i].Role = MemberRoleMember
	}
	g.Members[newIdx].Role = MemberRoleAdmin
	g.Owner = g.Members[newIdx].User
	return nil
}

func (g *Group) memberIndex(userID string) int {
	for i, m := range g.Members {
		if m.User.ID == userID {
			return i
		}
	}
	return -1
}

type CreateGroupInput struct {
	Name        string
	Description string
	OwnerID     string
	IsPrivate   bool
}

type UpdateGroupInput struct {
	Name        *string
	Description *string
	IsPrivate   *bool
}
