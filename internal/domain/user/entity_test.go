//go:build unit

package user_test

import (
	"testing"

	"digital-menu/internal/domain/user"
	"digital-menu/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("owner@example.com")
		role, _ := user.NewRole("owner")
		expected := user.NewUser(email, "hashed_password", role)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, user.RoleOwner, actual.Role())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "surrounding whitespace OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  valid@example.com ") },
			},
			{
				name:   "empty NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @ NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "owner OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("owner") },
			},
			{
				name:   "admin OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "viewer NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("password", func(t *testing.T) {
		_, err := user.NewPassword("short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)

		p, err := user.NewPassword("long-enough")
		require.NoError(t, err)
		assert.Equal(t, "long-enough", p.Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
