// Package catalog maintains the process-lifetime snapshot of tools
// offered by the remote execution service and selects subsets of it by
// service category.
//
// The snapshot is fetched at most once per process: repeated calls return
// the same ordering and descriptor content. The catalog can therefore go
// stale relative to the remote service until restart; that tradeoff is
// deliberate (latency over freshness).
package catalog

import (
	"context"
	"sync"

	ai "github.com/harborai/oxbridge"
)

// Lister fetches the tool catalog from the remote service.
// *oxp.Client satisfies this interface.
type Lister interface {
	ListTools(ctx context.Context) ([]ai.Tool, error)
}

// Catalog memoizes the remote tool listing. It is safe for concurrent
// use; concurrent first callers are serialized so the listing endpoint is
// hit at most once.
type Catalog struct {
	lister Lister

	mu     sync.Mutex
	loaded bool
	ids    []string
	byName map[string]ai.Tool
}

// New creates a Catalog over the given lister. Nothing is fetched until
// the first Snapshot or Select call.
func New(l Lister) *Catalog {
	return &Catalog{lister: l}
}

// Snapshot returns the ordered tool identifiers and the descriptor for
// each, fetching from the remote service on the first completed call.
// A failed fetch is not memoized; a later call may try again.
//
// The returned slice and map are shared across callers and must be
// treated as read-only.
func (c *Catalog) Snapshot(ctx context.Context) ([]string, map[string]ai.Tool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.ids, c.byName, nil
	}

	tools, err := c.lister.ListTools(ctx)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]string, 0, len(tools))
	byName := make(map[string]ai.Tool, len(tools))
	for _, t := range tools {
		if _, seen := byName[t.Name]; seen {
			continue
		}
		ids = append(ids, t.Name)
		byName[t.Name] = t
	}

	c.ids = ids
	c.byName = byName
	c.loaded = true
	return c.ids, c.byName, nil
}

// Len returns the number of tools in the snapshot, fetching it if needed.
func (c *Catalog) Len(ctx context.Context) (int, error) {
	ids, _, err := c.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
