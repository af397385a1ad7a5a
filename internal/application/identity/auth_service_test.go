package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skuforge/backend/internal/domain/identity"
	"github.com/skuforge/backend/internal/domain/shared"
	"github.com/skuforge/backend/internal/infrastructure/auth"
	"github.com/skuforge/backend/internal/infrastructure/config"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)

func newTestAuthService(repo identity.UserRepository) (*AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret",
		RefreshSecret:          "test-refresh-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "skuforge-test",
	})
	svc := NewAuthService(repo, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())
	return svc, jwtService
}

func TestAuthService_Register(t *testing.T) {
	t.Run("registers and logs in new user", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, "maker@example.com").Return(false, nil)
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		result, err := svc.Register(context.Background(), RegisterInput{
			Email:    "Maker@Example.com",
			Password: "sekrit42",
			IP:       "192.0.2.10",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "maker@example.com", result.User.Email)
		assert.NotNil(t, result.User.LastLoginAt)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, "maker@example.com").Return(true, nil)

		_, err := svc.Register(context.Background(), RegisterInput{
			Email:    "maker@example.com",
			Password: "sekrit42",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("rejects short password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, "maker@example.com").Return(false, nil)

		_, err := svc.Register(context.Background(), RegisterInput{
			Email:    "maker@example.com",
			Password: "short",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		user, err := identity.NewUser("maker@example.com", "sekrit42")
		require.NoError(t, err)

		repo.On("FindByEmail", mock.Anything, "maker@example.com").Return(user, nil)
		repo.On("Update", mock.Anything, user).Return(nil)

		result, err := svc.Login(context.Background(), LoginInput{
			Email:    "Maker@example.com",
			Password: "sekrit42",
			IP:       "192.0.2.10",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, user.ID, result.User.ID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown email yields generic error", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, shared.ErrNotFound)

		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "nobody@example.com",
			Password: "sekrit42",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("wrong password yields the same generic error", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		user, err := identity.NewUser("maker@example.com", "sekrit42")
		require.NoError(t, err)

		repo.On("FindByEmail", mock.Anything, "maker@example.com").Return(user, nil)

		_, err = svc.Login(context.Background(), LoginInput{
			Email:    "maker@example.com",
			Password: "wrong-password",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("rotates the token pair", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, jwtService := newTestAuthService(repo)

		user, err := identity.NewUser("maker@example.com", "sekrit42")
		require.NoError(t, err)

		pair, err := jwtService.GenerateTokenPair(user.ID, user.Email)
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		result, err := svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: pair.RefreshToken,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)

		// The used refresh token is revoked and cannot be replayed
		_, err = svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: pair.RefreshToken,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		_, err := svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: "not.a.token",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})

	t.Run("rejects refresh for deleted user", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, jwtService := newTestAuthService(repo)

		userID := uuid.New()
		pair, err := jwtService.GenerateTokenPair(userID, "gone@example.com")
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, userID).Return(nil, shared.ErrNotFound)

		_, err = svc.RefreshToken(context.Background(), RefreshTokenInput{
			RefreshToken: pair.RefreshToken,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "USER_NOT_FOUND", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("revokes the access token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, jwtService := newTestAuthService(repo)

		pair, err := jwtService.GenerateTokenPair(uuid.New(), "maker@example.com")
		require.NoError(t, err)

		err = svc.Logout(context.Background(), LogoutInput{AccessToken: pair.AccessToken})
		require.NoError(t, err)

		claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)

		revoked, err := svc.blacklist.IsRevoked(context.Background(), claims.ID)
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("invalid token is a no-op", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		err := svc.Logout(context.Background(), LogoutInput{AccessToken: "garbage"})
		assert.NoError(t, err)
	})
}
