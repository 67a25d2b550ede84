package domain

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  *string
	GoogleID      *string
	OAuthProvider *string
	Image         string
	Role          UserRole
	IsActive      bool
	EmailVerified *time.Time
	LastLogin     *time.Time
	Preferences   Preferences
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Preferences struct {
	Theme       string
	NotifyEmail bool
	NotifyPush  bool
}

// UserRef is a populated cross-reference (name/email only).
type UserRef struct {
	ID    string
	Name  string
	Email string
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

// HasCredentials reports whether at least one authentication path is
// populated. A user without a password hash and without an OAuth identity
// could never sign in again, so such records are rejected before persistence.
func (u *User) HasCredentials() bool {
	return (u.PasswordHash != nil && *u.PasswordHash != "") || (u.GoogleID != nil && *u.GoogleID != "")
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Name     *string
	Image    *string
	Role     *UserRole
	IsActive *bool
}

type UpdatePreferencesInput struct {
	Theme       *string
	NotifyEmail *bool
	NotifyPush  *bool
}

// UserActivity summarizes what a user owns, for the admin activity view.
type UserActivity struct {
	Tasks  int
	Notes  int
	Groups int
}
