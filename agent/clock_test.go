package agent

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormattedTimesAt(t *testing.T) {
	t.Run("renders all zones in order", func(t *testing.T) {
		now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
		out := FormattedTimesAt(now)

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 9)
		assert.True(t, strings.HasPrefix(lines[0], "UTC: "))
		assert.True(t, strings.HasPrefix(lines[1], "Eastern Time (ET): "))
		assert.True(t, strings.HasPrefix(lines[8], "Australian Eastern Time (AET): "))
	})

	t.Run("january uses standard US offsets", func(t *testing.T) {
		now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
		out := FormattedTimesAt(now)

		assert.Contains(t, out, "UTC: 2026-01-15 12:00:00")
		assert.Contains(t, out, "Eastern Time (ET): 2026-01-15 07:00:00")
		assert.Contains(t, out, "Pacific Time (PT): 2026-01-15 04:00:00")
		// Southern hemisphere DST is active in January.
		assert.Contains(t, out, "Australian Eastern Time (AET): 2026-01-15 23:00:00")
	})

	t.Run("july applies US and EU DST", func(t *testing.T) {
		now := time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)
		out := FormattedTimesAt(now)

		assert.Contains(t, out, "Eastern Time (ET): 2026-07-15 08:00:00")
		assert.Contains(t, out, "Central European Time (CET): 2026-07-15 14:00:00")
		// JST has no DST.
		assert.Contains(t, out, "Japan Standard Time (JST): 2026-07-15 21:00:00")
		// AET winter: standard offset.
		assert.Contains(t, out, "Australian Eastern Time (AET): 2026-07-15 22:00:00")
	})
}

func TestRenderPrompt(t *testing.T) {
	t.Run("substitutes the current times slot", func(t *testing.T) {
		rendered := RenderPrompt(SystemPromptTemplate, "UTC: 2026-01-15 12:00:00")
		assert.NotContains(t, rendered, currentTimesSlot)
		assert.Contains(t, rendered, "Current times around the world:\nUTC: 2026-01-15 12:00:00")
	})

	t.Run("template without slot is unchanged", func(t *testing.T) {
		assert.Equal(t, "plain", RenderPrompt("plain", "anything"))
	})
}
