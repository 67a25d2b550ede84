package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
)

type UserService struct {
	users ports.UserRepository

	bcryptCost int
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(users ports.UserRepository, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, bcryptCost: bcryptCost}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile ignores role/is_active: a user cannot change their own role
// or ban state through the profile surface.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Image != nil {
		user.Image = *in.Image
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdatePreferences(ctx context.Context, id string, in domain.UpdatePreferencesInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Theme != nil {
		user.Preferences.Theme = *in.Theme
	}
	if in.NotifyEmail != nil {
		user.Preferences.NotifyEmail = *in.NotifyEmail
	}
	if in.NotifyPush != nil {
		user.Preferences.NotifyPush = *in.NotifyPush
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id, current, next string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.PasswordHash == nil {
		return domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(current)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.users.SetPasswordHash(ctx, id, string(hash))
}

func (s *UserService) List(ctx context.Context, search string, page, perPage int) ([]domain.User, int, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	return s.users.List(ctx, search, page, perPage)
}

func (s *UserService) AdminUpdate(ctx context.Context, id string, in domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Image != nil {
		user.Image = *in.Image
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AdminDelete removes the user; their tasks, notes, projects, and
// memberships go with them via foreign keys. A user who still owns groups
// cannot be deleted until ownership is transferred or the groups are removed.
func (s *UserService) AdminDelete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) AdminResetPassword(ctx context.Context, id, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.users.SetPasswordHash(ctx, id, string(hash))
}

func (s *UserService) Activity(ctx context.Context, id string) (*domain.UserActivity, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.users.Activity(ctx, id)
}
