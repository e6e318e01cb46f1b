package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	const strongPassword = "correct-Horse-battery-staple-42"

	t.Run("valid user", func(t *testing.T) {
		id := uuid.New()
		user, err := NewUser(UserConfig{ID: id, Username: "maze_runner", PlainPassword: strongPassword})
		require.NoError(t, err)

		assert.Equal(t, id, user.ID)
		assert.NotEqual(t, strongPassword, user.PasswordHash)
		assert.True(t, user.VerifyPassword(strongPassword))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	cases := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"short username", "ab", strongPassword, ErrUsernameTooShort},
		{"long username", "abcdefghijklmnopqrstuvwxyz", strongPassword, ErrUsernameTooLong},
		{"bad characters", "maze-runner", strongPassword, ErrUsernameFormat},
		{"weak password", "maze_runner", "password", ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(UserConfig{ID: uuid.New(), Username: tc.username, PlainPassword: tc.password})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMazeDigest(t *testing.T) {
	assert.Equal(t, MazeDigest("A B"), MazeDigest("A B"))
	assert.NotEqual(t, MazeDigest("A B"), MazeDigest("AB"))
	assert.Len(t, MazeDigest(""), 64)
}
