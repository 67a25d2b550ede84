package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nisargamalap/gridle/internal/app/service"
	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/pkg/session"
)

type mailerMock struct {
	mock.Mock
}

func (m *mailerMock) SendPasswordReset(ctx context.Context, to, token string) error {
	return m.Called(ctx, to, token).Error(0)
}

func newTestSessions() *session.Manager {
	return session.NewManager("test-secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	users := new(userRepoMock)
	mailer := new(mailerMock)
	sessions := newTestSessions()
	svc := service.NewAuthService(users, mailer, sessions, bcrypt.MinCost)

	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*domain.User)
			user.ID = "user-1"

			require.Equal(t, "ada@example.com", user.Email)
			require.Equal(t, domain.UserRoleUser, user.Role)
			require.True(t, user.IsActive)
			require.NotNil(t, user.PasswordHash)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("s3cret-pass")))
		}).
		Return(nil).Once()

	user, token, err := svc.Register(context.Background(), domain.CreateUserInput{
		Name:     " Ada ",
		Email:    " Ada@Example.com ",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	require.Equal(t, "Ada", user.Name)
	require.NotEmpty(t, token)

	claims, err := sessions.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "user", claims.Role)
	users.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	users := new(userRepoMock)
	mailer := new(mailerMock)
	sessions := newTestSessions()
	svc := service.NewAuthService(users, mailer, sessions, bcrypt.MinCost)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	stored := &domain.User{
		ID:           "user-1",
		Email:        "ada@example.com",
		PasswordHash: &hashed,
		Role:         domain.UserRoleUser,
		IsActive:     true,
	}
	users.On("GetByEmail", mock.Anything, "ada@example.com").Return(stored, nil).Once()
	users.On("TouchLastLogin", mock.Anything, "user-1").Return(nil).Once()

	user, token, err := svc.Login(context.Background(), "Ada@Example.com", "s3cret-pass")

	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.NotEmpty(t, token)
	users.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := new(userRepoMock)
	sessions := newTestSessions()
	svc := service.NewAuthService(users, new(mailerMock), sessions, bcrypt.MinCost)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	stored := &domain.User{ID: "user-1", Email: "ada@example.com", PasswordHash: &hashed, IsActive: true}
	users.On("GetByEmail", mock.Anything, "ada@example.com").Return(stored, nil).Once()

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := new(userRepoMock)
	sessions := newTestSessions()
	svc := service.NewAuthService(users, new(mailerMock), sessions, bcrypt.MinCost)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound).Once()

	// Unknown email and bad password are indistinguishable to the caller.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	users := new(userRepoMock)
	sessions := newTestSessions()
	svc := service.NewAuthService(users, new(mailerMock), sessions, bcrypt.MinCost)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	stored := &domain.User{ID: "user-1", Email: "ada@example.com", PasswordHash: &hashed, IsActive: false}
	users.On("GetByEmail", mock.Anything, "ada@example.com").Return(stored, nil).Once()

	_, _, err = svc.Login(context.Background(), "ada@example.com", "s3cret-pass")

	require.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	users := new(userRepoMock)
	mailer := new(mailerMock)
	sessions := newTestSessions()
	svc := service.NewAuthService(users, mailer, sessions, bcrypt.MinCost)

	stored := &domain.User{ID: "user-1", Email: "ada@example.com"}
	users.On("GetByEmail", mock.Anything, "ada@example.com").Return(stored, nil).Once()

	var issuedToken string
	users.On("SetResetToken", mock.Anything, "user-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { issuedToken = args.String(2) }).
		Return(nil).Once()
	mailer.On("SendPasswordReset", mock.Anything, "ada@example.com", mock.AnythingOfType("string")).Return(nil).Once()

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "ada@example.com"))
	require.NotEmpty(t, issuedToken)
	mailer.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestAuthService_RequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	users := new(userRepoMock)
	mailer := new(mailerMock)
	sessions := newTestSessions()
	svc := service.NewAuthService(users, mailer, sessions, bcrypt.MinCost)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound).Once()

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "ghost@example.com"))
	mailer.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword(t *testing.T) {
	users := new(userRepoMock)
	sessions := newTestSessions()
	svc := service.NewAuthService(users, new(mailerMock), sessions, bcrypt.MinCost)

	stored := &domain.User{ID: "user-1", Email: "ada@example.com"}
	users.On("GetByResetToken", mock.Anything, "reset-token").Return(stored, nil).Once()
	users.On("SetPasswordHash", mock.Anything, "user-1", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(args.String(2)), []byte("new-pass-123")))
		}).
		Return(nil).Once()
	users.On("ClearResetToken", mock.Anything, "user-1").Return(nil).Once()

	require.NoError(t, svc.ResetPassword(context.Background(), "reset-token", "new-pass-123"))
	users.AssertExpectations(t)
}

func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	users := new(userRepoMock)
	sessions := newTestSessions()
	svc := service.NewAuthService(users, new(mailerMock), sessions, bcrypt.MinCost)

	users.On("GetByResetToken", mock.Anything, "stale").Return(nil, domain.ErrUserNotFound).Once()

	err := svc.ResetPassword(context.Background(), "stale", "new-pass-123")

	require.ErrorIs(t, err, domain.ErrResetTokenInvalid)
}
