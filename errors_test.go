package oxbridge

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCategories(t *testing.T) {
	t.Run("configuration", func(t *testing.T) {
		cause := errors.New("no credential")
		err := NewConfigurationError("client init failed", cause)

		assert.True(t, IsConfiguration(err))
		assert.False(t, IsValidation(err))
		assert.False(t, IsRemote(err))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "client init failed: no credential", err.Error())
	})

	t.Run("validation has no cause", func(t *testing.T) {
		err := NewValidationError("missing caller identity")

		assert.True(t, IsValidation(err))
		assert.Nil(t, errors.Unwrap(err))
		assert.Equal(t, "missing caller identity", err.Error())
	})

	t.Run("remote", func(t *testing.T) {
		err := NewRemoteError("tool call to X_PostTweet failed: rate limited", nil)

		assert.True(t, IsRemote(err))
	})

	t.Run("wrapped errors keep their category", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", NewValidationError("bad input"))

		assert.True(t, IsValidation(err))
	})

	t.Run("uncategorized errors match nothing", func(t *testing.T) {
		err := errors.New("plain")

		assert.False(t, IsConfiguration(err))
		assert.False(t, IsValidation(err))
		assert.False(t, IsRemote(err))
	})
}
