// Command serve is a reference HTTP server for the oxbridge tool
// bridge. It exposes the remote tool catalog, assembles agent
// configurations, and surfaces authorization interruptions to AG-UI
// frontends over Server-Sent Events (SSE).
//
// Configuration is via environment variables:
//
//	OXBRIDGE_PORT              - Server port (default: 8000)
//	OXBRIDGE_LOG_LEVEL         - Log level: debug, info, warn, error (default: info)
//	OXBRIDGE_MODEL             - Fully specified model name (default: openai/o3-mini)
//	OXBRIDGE_INTERRUPT_TIMEOUT - Authorization acknowledgment wait (default: 5m)
//	OXP_BEARER_TOKEN           - Remote service bearer token (preferred)
//	OXP_API_KEY                - Remote service API key (fallback)
//	OXP_BASE_URL               - Remote service endpoint override
//	OPENAI_API_KEY             - OpenAI API key
//	ANTHROPIC_API_KEY          - Anthropic API key
//	GOOGLE_API_KEY             - Google API key
//
// Usage:
//
//	OXP_BEARER_TOKEN=... go run ./cmd/serve
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harborai/oxbridge/agent"
	"github.com/harborai/oxbridge/catalog"
	"github.com/harborai/oxbridge/interrupt"
	"github.com/harborai/oxbridge/oxp"
	"github.com/harborai/oxbridge/tool"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	client, err := oxp.New(cfg.OXPConfig())
	if err != nil {
		slog.Error("failed to create OXP client", "error", err)
		os.Exit(1)
	}

	// Verify connectivity before accepting traffic.
	healthCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = client.Health(healthCtx)
	cancel()
	if err != nil {
		slog.Error("OXP service unreachable", "base_url", client.BaseURL(), "error", err)
		os.Exit(1)
	}

	cat := catalog.New(client)

	// Warm the catalog snapshot. A failure here is not fatal: the fetch
	// is not memoized, so the first request retries it.
	warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	n, err := cat.Len(warmCtx)
	cancel()
	if err != nil {
		slog.Warn("catalog warm-up failed", "error", err)
	} else {
		slog.Info("catalog loaded", "tools", n)
	}

	hub := newInterruptHub()
	broker := interrupt.NewBroker(
		interrupt.WithTimeout(cfg.InterruptTimeout),
		interrupt.WithOnSubmit(func(p interrupt.Pending) {
			slog.Info("authorization pending", "interrupt_id", p.ID)
			hub.Broadcast(p)
		}),
	)

	bridge := tool.NewBridge(client, broker)
	builder := agent.NewBuilder(cat, bridge, agent.WithModelName(cfg.Model))

	mux := http.NewServeMux()
	mux.Handle("/tools", corsMiddleware(NewToolsHandler(cat)))
	mux.Handle("/assemblies", corsMiddleware(NewAssembleHandler(builder)))
	mux.Handle("/interrupts", corsMiddleware(NewInterruptsHandler(broker, hub)))
	mux.Handle("/interrupts/accept", corsMiddleware(NewAcceptHandler(broker)))
	mux.HandleFunc("/healthz", healthHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // SSE needs no write timeout
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("oxbridge server starting",
		"port", cfg.Port,
		"model", cfg.Model,
		"oxp_base_url", client.BaseURL(),
	)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
