//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"digital-menu/internal/domain/user"
	"digital-menu/internal/infra"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/jwt"
	"digital-menu/internal/pkg/password"
	"digital-menu/internal/usecase/commands"
	"digital-menu/internal/usecase/queries"
	"digital-menu/tests/common/builder"
	queriesmock "digital-menu/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "unit-test-secret-key-with-enough-length"

type authFixture struct {
	store     *fakeStore
	readStore *queriesmock.MockUserReadStore
	jwt       *jwt.Service
	uc        commands.AuthCommands
}

func newAuthFixture(t *testing.T) authFixture {
	ctrl := gomock.NewController(t)
	store := newFakeStore()
	f := authFixture{
		store:     store,
		readStore: queriesmock.NewMockUserReadStore(ctrl),
		jwt:       jwt.NewService(testSecret, 15*time.Minute, 24*time.Hour),
	}
	f.uc = commands.NewAuthCommands(&fakeUoW{store: store}, f.readStore, f.jwt)
	return f
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an owner and issues tokens", func(t *testing.T) {
		f := newAuthFixture(t)

		res, err := f.uc.SignUp(ctx, builder.NewAuthBuilder().WithEmail("new@example.com").BuildSignUpDTO())
		require.NoError(t, err)
		require.Len(t, f.store.users, 1)

		u := f.store.users[0]
		assert.Equal(t, res.UserID, u.ID())
		assert.Equal(t, user.RoleOwner, u.Role())
		assert.NoError(t, password.ComparePassword(u.PasswordHash(), "password123"))

		claims, err := f.jwt.ValidateToken(res.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, u.ID(), claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.store.errUserCreate = infra.WrapRepoErr("failed to create user", &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "users_email_lower_key",
		})

		_, err := f.uc.SignUp(ctx, builder.NewAuthBuilder().BuildSignUpDTO())
		assert.True(t, errs.Is(err, errs.ErrEmailAlreadyInUse))
	})

	t.Run("malformed email", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.uc.SignUp(ctx, builder.NewAuthBuilder().WithEmail("not-an-email").BuildSignUpDTO())
		assert.True(t, errs.IsValidation(err))
		assert.Empty(t, f.store.users)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	active := &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    "owner@example.com",
		Role:     string(user.RoleOwner),
		IsActive: true,
	}

	t.Run("valid credentials update last login", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), "owner@example.com").Return(active, hash, nil)

		res, err := f.uc.Login(ctx, builder.NewAuthBuilder().BuildDTO())
		require.NoError(t, err)
		assert.Equal(t, active.ID, res.UserID)
		assert.NotEmpty(t, res.TokenPair.RefreshToken)
		assert.Equal(t, []uuid.UUID{active.ID}, f.store.lastLogins)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		f := newAuthFixture(t)
		f.store.errLastLogin = errors.New("connection reset")
		f.readStore.EXPECT().FindByEmail(gomock.Any(), "owner@example.com").Return(active, hash, nil)

		_, err := f.uc.Login(ctx, builder.NewAuthBuilder().BuildDTO())
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), "owner@example.com").Return(active, hash, nil)

		req := builder.NewAuthBuilder().BuildDTO()
		req.Password = "password124"
		_, err := f.uc.Login(ctx, req)
		assert.True(t, errors.Is(err, commands.ErrInvalidCredentials))
		assert.Empty(t, f.store.lastLogins)
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), "owner@example.com").
			Return(nil, "", infra.WrapRepoErr("failed to find user", nil, infra.KindNotFound))

		_, err := f.uc.Login(ctx, builder.NewAuthBuilder().BuildDTO())
		assert.True(t, errors.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("inactive user", func(t *testing.T) {
		f := newAuthFixture(t)
		inactive := *active
		inactive.IsActive = false
		f.readStore.EXPECT().FindByEmail(gomock.Any(), "owner@example.com").Return(&inactive, hash, nil)

		_, err := f.uc.Login(ctx, builder.NewAuthBuilder().BuildDTO())
		assert.True(t, errors.Is(err, commands.ErrUserInactive))
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("refresh token yields a new pair", func(t *testing.T) {
		f := newAuthFixture(t)
		refresh, err := f.jwt.GenerateRefreshToken(userID, user.RoleOwner)
		require.NoError(t, err)
		f.readStore.EXPECT().FindByID(gomock.Any(), userID).
			Return(&queries.AuthorizedUserView{ID: userID, Role: string(user.RoleOwner), IsActive: true}, nil)

		pair, err := f.uc.RefreshToken(ctx, refresh)
		require.NoError(t, err)
		claims, err := f.jwt.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		f := newAuthFixture(t)
		access, err := f.jwt.GenerateAccessToken(userID, user.RoleOwner)
		require.NoError(t, err)

		_, err = f.uc.RefreshToken(ctx, access)
		assert.True(t, errors.Is(err, commands.ErrTokenValidation))
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.uc.RefreshToken(ctx, "not.a.token")
		assert.True(t, errs.Is(err, commands.ErrTokenValidation))
	})

	t.Run("deactivated user", func(t *testing.T) {
		f := newAuthFixture(t)
		refresh, err := f.jwt.GenerateRefreshToken(userID, user.RoleOwner)
		require.NoError(t, err)
		f.readStore.EXPECT().FindByID(gomock.Any(), userID).
			Return(&queries.AuthorizedUserView{ID: userID, Role: string(user.RoleOwner)}, nil)

		_, err = f.uc.RefreshToken(ctx, refresh)
		assert.True(t, errors.Is(err, commands.ErrUserInactive))
	})
}
