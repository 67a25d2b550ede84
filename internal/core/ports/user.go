package ports

import (
	"context"
	"time"

	"github.com/nisargamalap/gridle/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	List(ctx context.Context, search string, page, perPage int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	SetPasswordHash(ctx context.Context, id, hash string) error
	SetResetToken(ctx context.Context, id, token string, expires time.Time) error
	ClearResetToken(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Activity(ctx context.Context, id string) (*domain.UserActivity, error)
}

type AuthService interface {
	Register(ctx context.Context, in domain.CreateUserInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in domain.UpdateUserInput) (*domain.User, error)
	UpdatePreferences(ctx context.Context, id string, in domain.UpdatePreferencesInput) (*domain.User, error)
	ChangePassword(ctx context.Context, id, current, next string) error

	// Admin surface.
	List(ctx context.Context, search string, page, perPage int) ([]domain.User, int, error)
	AdminUpdate(ctx context.Context, id string, in domain.UpdateUserInput) (*domain.User, error)
	AdminDelete(ctx context.Context, id string) error
	AdminResetPassword(ctx context.Context, id, newPassword string) error
	Activity(ctx context.Context, id string) (*domain.UserActivity, error)
}
