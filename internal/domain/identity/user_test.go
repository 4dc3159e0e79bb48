package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("hashes the password", func(t *testing.T) {
		user, err := NewUser("alice", "s3cret")
		require.NoError(t, err)

		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "s3cret", user.PasswordHash)
		assert.True(t, user.CheckPassword("s3cret"))
		assert.False(t, user.CheckPassword("wrong"))
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := NewUser("", "s3cret")
		assert.Error(t, err)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := NewUser("alice", "")
		assert.Error(t, err)
	})
}
