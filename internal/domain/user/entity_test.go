//go:build unit

package user_test

import (
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/ident"
	"court-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("registration success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.True(t, ident.HasPrefix(actual.ID(), ident.PrefixUser))
		assert.Equal(t, "player@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.Equal(t, user.LanguageEnglish, actual.Language())
		require.NotNil(t, actual.PasswordHash())
		assert.Equal(t, "hashed:password123", *actual.PasswordHash())
		assert.False(t, actual.IsExternallyManaged())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain suffix",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("player@example") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("password validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length",
				mutate: func(b *builder.UserBuilder) { b.WithPassword("abcdef") },
			},
			{
				name:   "one below minimum",
				mutate: func(b *builder.UserBuilder) { b.WithPassword("abcde") },
				errIs:  user.ErrPasswordTooWeak,
			},
		})
	})

	t.Run("profile validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "arabic language",
				mutate: func(b *builder.UserBuilder) { b.WithLanguage("ar") },
			},
			{
				name:   "unsupported language",
				mutate: func(b *builder.UserBuilder) { b.WithLanguage("fr") },
				errIs:  user.ErrInvalidLanguage,
			},
		})
	})

	t.Run("email is normalized to lower case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithEmail("  Player@Example.COM ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "player@example.com", actual.Email().Value())
	})

	t.Run("language defaults to arabic", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithLanguage("").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, user.LanguageArabic, actual.Language())
	})

	t.Run("hash failure is returned", func(t *testing.T) {
		hashErr := errors.New("hash failed")
		_, err := user.NewRegisteredUser(user.Registration{
			Email:    "player@example.com",
			Password: "password123",
			Name:     "Player",
		}, func(string) (string, error) { return "", hashErr }, time.Now())
		require.ErrorIs(t, err, hashErr)
	})
}

func TestNewExternalUser(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	picture := "https://example.com/p.png"

	actual, err := user.NewExternalUser("Guest@Example.com", "", &picture, now)
	require.NoError(t, err)

	assert.True(t, actual.IsExternallyManaged())
	assert.Nil(t, actual.PasswordHash())
	assert.Equal(t, "guest@example.com", actual.Name(), "name falls back to email")
	assert.Equal(t, user.RoleUser, actual.Role())

	if diff := cmp.Diff(&picture, actual.Picture()); diff != "" {
		t.Errorf("picture mismatch (-want +got):\n%s", diff)
	}

	_, err = user.NewExternalUser("not-an-email", "Guest", nil, now)
	require.ErrorIs(t, err, user.ErrInvalidEmail)
}

func TestNewRole(t *testing.T) {
	for _, tc := range []struct {
		in    string
		errIs error
	}{
		{in: "user"},
		{in: "admin"},
		{in: "operator", errIs: user.ErrInvalidRole},
		{in: "", errIs: user.ErrInvalidRole},
	} {
		t.Run(tc.in, func(t *testing.T) {
			role, err := user.NewRole(tc.in)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.in == "admin", role.IsAdmin())
		})
	}
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
