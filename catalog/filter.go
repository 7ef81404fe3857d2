package catalog

import (
	"context"
	"log/slog"

	ai "github.com/harborai/oxbridge"
)

// Select returns the tools belonging to the requested categories,
// preserving the catalog's original ordering (not the category
// declaration order).
//
// An empty or nil category list selects no tools: the agent runs without
// any. Unknown categories are skipped with a warning; tool names the
// catalog does not currently offer are dropped silently. An empty result
// is not an error.
func (c *Catalog) Select(ctx context.Context, categories []string) ([]ai.Tool, error) {
	ids, byName, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return nil, nil
	}

	allowed := make(map[string]struct{})
	for _, category := range categories {
		names, ok := Services[category]
		if !ok {
			slog.Warn("unknown tool category", "category", category)
			continue
		}
		for _, name := range names {
			allowed[name] = struct{}{}
		}
	}

	var selected []ai.Tool
	for _, id := range ids {
		if _, ok := allowed[id]; !ok {
			continue
		}
		selected = append(selected, byName[id])
	}

	if len(selected) == 0 {
		slog.Warn("no tools matched requested categories", "categories", categories)
	}
	return selected, nil
}
