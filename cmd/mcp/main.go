// Command mcp exposes the remote tool catalog as an MCP server over
// stdio, allowing MCP clients (like desktop assistants) to discover and
// call the bridged tools.
//
// Configuration is via environment variables:
//
//	OXP_BEARER_TOKEN     - Remote service bearer token (preferred)
//	OXP_API_KEY          - Remote service API key (fallback)
//	OXP_BASE_URL         - Remote service endpoint override
//	OXBRIDGE_CATEGORIES  - Comma-separated service categories (default: all tools)
//	OXBRIDGE_USER_ID     - User identity for remote tool calls (required)
//
// Usage:
//
//	OXP_BEARER_TOKEN=... OXBRIDGE_USER_ID=user-123 go run ./cmd/mcp
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	ai "github.com/harborai/oxbridge"
	"github.com/harborai/oxbridge/catalog"
	"github.com/harborai/oxbridge/mcp"
	"github.com/harborai/oxbridge/oxp"
	"github.com/harborai/oxbridge/tool"
)

func main() {
	godotenv.Load()

	userID := os.Getenv("OXBRIDGE_USER_ID")
	if userID == "" {
		log.Fatal("OXBRIDGE_USER_ID is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := oxp.NewFromEnv(ctx)
	if err != nil {
		log.Fatal(err)
	}

	cat := catalog.New(client)
	selected, err := selectTools(ctx, cat)
	if err != nil {
		log.Fatal(err)
	}

	// No interrupter over stdio: a pending authorization surfaces to the
	// MCP client as a tool error carrying the original remote error.
	bridge := tool.NewBridge(client, nil)
	registry := bridge.Registry(selected, userID)

	if err := mcp.ServeStdio(registry,
		mcp.WithName("oxbridge-tools"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		log.Fatal(err)
	}
}

// selectTools resolves the configured categories, or the full catalog
// when none are configured.
func selectTools(ctx context.Context, cat *catalog.Catalog) ([]ai.Tool, error) {
	if raw := os.Getenv("OXBRIDGE_CATEGORIES"); raw != "" {
		return cat.Select(ctx, strings.Split(raw, ","))
	}

	ids, byName, err := cat.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	tools := make([]ai.Tool, 0, len(ids))
	for _, id := range ids {
		tools = append(tools, byName[id])
	}
	return tools, nil
}
