package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/harborai/oxbridge"
)

func TestLoad(t *testing.T) {
	keys := APIKeys{OpenAI: "sk-test", Anthropic: "ak-test", Google: "gk-test"}

	t.Run("parses provider and model name", func(t *testing.T) {
		loader := NewLoader(WithAPIKeys(keys))

		m, err := loader.Load(context.Background(), "openai/o3-mini")
		require.NoError(t, err)
		assert.Equal(t, ProviderOpenAI, m.Provider())
		assert.Equal(t, "o3-mini", m.Name())
		assert.Equal(t, "openai/o3-mini", m.String())

		handle, ok := m.OpenAI()
		assert.True(t, ok)
		assert.NotNil(t, handle)
		_, ok = m.Anthropic()
		assert.False(t, ok)
	})

	t.Run("memoizes handles per fully specified name", func(t *testing.T) {
		loader := NewLoader(WithAPIKeys(keys))

		m1, err := loader.Load(context.Background(), "anthropic/claude-sonnet-4-5")
		require.NoError(t, err)
		m2, err := loader.Load(context.Background(), "anthropic/claude-sonnet-4-5")
		require.NoError(t, err)
		assert.Same(t, m1, m2)

		m3, err := loader.Load(context.Background(), "anthropic/claude-haiku-4-5")
		require.NoError(t, err)
		assert.NotSame(t, m1, m3)
	})

	t.Run("keeps model names with slashes intact", func(t *testing.T) {
		loader := NewLoader(WithAPIKeys(keys))

		m, err := loader.Load(context.Background(), "openai/org/custom-model")
		require.NoError(t, err)
		assert.Equal(t, "org/custom-model", m.Name())
	})

	t.Run("constructs google handles", func(t *testing.T) {
		loader := NewLoader(WithAPIKeys(keys))

		m, err := loader.Load(context.Background(), "google/gemini-2.0-flash")
		require.NoError(t, err)
		handle, ok := m.Google()
		assert.True(t, ok)
		assert.NotNil(t, handle)
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		loader := NewLoader(WithAPIKeys(keys))

		_, err := loader.Load(context.Background(), "mistral/large")
		require.Error(t, err)
		assert.True(t, ai.IsConfiguration(err))
	})

	t.Run("rejects malformed names", func(t *testing.T) {
		loader := NewLoader(WithAPIKeys(keys))

		for _, name := range []string{"", "o3-mini", "openai/", "/o3-mini"} {
			_, err := loader.Load(context.Background(), name)
			assert.Error(t, err, "name %q", name)
			assert.True(t, ai.IsConfiguration(err), "name %q", name)
		}
	})
}
