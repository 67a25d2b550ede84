package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/internal/core/ports"
	"github.com/nisargamalap/gridle/pkg/session"
)

const resetTokenTTL = time.Hour

type AuthService struct {
	users    ports.UserRepository
	mailer   ports.Mailer
	sessions *session.Manager

	bcryptCost int
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.UserRepository, mailer ports.Mailer, sessions *session.Manager, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, mailer: mailer, sessions: sessions, bcryptCost: bcryptCost}
}

// Register creates a user with a bcrypt password hash and issues a session
// token. Emails are stored lowercase so lookups are case-insensitive.
func (s *AuthService) Register(ctx context.Context, in domain.CreateUserInput) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, "", err
	}
	hashed := string(hash)

	user := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: &hashed,
		Image:        "/images/default-avatar.png",
		Role:         domain.UserRoleUser,
		IsActive:     true,
		Preferences:  domain.Preferences{Theme: "system", NotifyEmail: true, NotifyPush: true},
	}
	if !user.HasCredentials() {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, _, err := s.sessions.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if user.PasswordHash == nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", domain.ErrAccountDisabled
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		zap.L().Warn("failed to record last login", zap.String("user_id", user.ID), zap.Error(err))
	}

	token, _, err := s.sessions.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// RequestPasswordReset never reveals whether the email exists: unknown
// addresses are dropped silently and the handler responds 200 either way.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := s.users.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}

	return s.mailer.SendPasswordReset(ctx, user.Email, token)
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.users.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, user.ID, string(hash)); err != nil {
		return err
	}
	return s.users.ClearResetToken(ctx, user.ID)
}
