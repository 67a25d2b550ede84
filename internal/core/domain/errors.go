package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
	ErrUserOwnsGroups     = errors.New("user still owns groups")

	ErrGroupNotFound   = errors.New("group not found")
	ErrAlreadyMember   = errors.New("user is already a member")
	ErrNotAMember      = errors.New("user is not a group member")
	ErrOwnerRemoval    = errors.New("cannot remove group owner")
	ErrJoinCodeTaken   = errors.New("join code already in use")
	ErrVersionConflict = errors.New("group was modified concurrently")

	ErrForbidden = errors.New("forbidden")

	ErrTaskNotFound    = errors.New("task not found")
	ErrNoteNotFound    = errors.New("note not found")
	ErrProjectNotFound = errors.New("project not found")
)
