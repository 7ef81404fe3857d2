package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/harborai/oxbridge"
)

// fakeLister serves a fixed catalog and counts fetches.
type fakeLister struct {
	mu    sync.Mutex
	tools []ai.Tool
	err   error
	calls int
}

func (f *fakeLister) ListTools(ctx context.Context) ([]ai.Tool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tools, nil
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testTools(names ...string) []ai.Tool {
	tools := make([]ai.Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, ai.Tool{Name: name, Description: "tool " + name})
	}
	return tools
}

func TestSnapshot(t *testing.T) {
	t.Run("fetches at most once", func(t *testing.T) {
		lister := &fakeLister{tools: testTools("A_One", "B_Two")}
		cat := New(lister)

		ids1, byName1, err := cat.Snapshot(context.Background())
		require.NoError(t, err)
		ids2, byName2, err := cat.Snapshot(context.Background())
		require.NoError(t, err)

		assert.Equal(t, ids1, ids2)
		assert.Equal(t, byName1, byName2)
		assert.Equal(t, 1, lister.callCount())
	})

	t.Run("preserves remote ordering", func(t *testing.T) {
		lister := &fakeLister{tools: testTools("Z_Last", "A_First", "M_Middle")}
		cat := New(lister)

		ids, _, err := cat.Snapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Z_Last", "A_First", "M_Middle"}, ids)
	})

	t.Run("concurrent first callers fetch once", func(t *testing.T) {
		lister := &fakeLister{tools: testTools("A_One")}
		cat := New(lister)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, err := cat.Snapshot(context.Background())
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, lister.callCount())
	})

	t.Run("failed fetch is not memoized", func(t *testing.T) {
		lister := &fakeLister{err: errors.New("listing unavailable")}
		cat := New(lister)

		_, _, err := cat.Snapshot(context.Background())
		require.Error(t, err)

		lister.mu.Lock()
		lister.err = nil
		lister.tools = testTools("A_One")
		lister.mu.Unlock()

		ids, _, err := cat.Snapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"A_One"}, ids)
		assert.Equal(t, 2, lister.callCount())
	})
}

func TestSelect(t *testing.T) {
	lister := &fakeLister{tools: testTools(
		"Google_SendEmail",
		"Google_ListEvents",
		"X_PostTweet",
		"Search_SearchGoogle",
	)}
	cat := New(lister)

	names := func(tools []ai.Tool) []string {
		var out []string
		for _, tl := range tools {
			out = append(out, tl.Name)
		}
		return out
	}

	t.Run("empty category list selects no tools", func(t *testing.T) {
		selected, err := cat.Select(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, selected)
	})

	t.Run("unknown category is skipped without error", func(t *testing.T) {
		selected, err := cat.Select(context.Background(), []string{"unknown_category"})
		require.NoError(t, err)
		assert.Empty(t, selected)
	})

	t.Run("gmail selects only catalog tools in its name set", func(t *testing.T) {
		selected, err := cat.Select(context.Background(), []string{"gmail"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Google_SendEmail"}, names(selected))
	})

	t.Run("union of categories intersected with catalog", func(t *testing.T) {
		selected, err := cat.Select(context.Background(), []string{"gmail", "x", "search"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Google_SendEmail", "X_PostTweet", "Search_SearchGoogle"}, names(selected))
	})

	t.Run("ordering follows the catalog, not category declaration", func(t *testing.T) {
		selected, err := cat.Select(context.Background(), []string{"search", "gcal", "gmail"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Google_SendEmail", "Google_ListEvents", "Search_SearchGoogle"}, names(selected))
	})

	t.Run("names absent from the catalog are dropped silently", func(t *testing.T) {
		// linkedin maps to a tool the catalog does not offer.
		selected, err := cat.Select(context.Background(), []string{"linkedin"})
		require.NoError(t, err)
		assert.Empty(t, selected)
	})
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Contains(t, cats, "gmail")
	assert.Contains(t, cats, "github")
	assert.IsType(t, []string{}, cats)
	assert.True(t, sortedStrings(cats))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
