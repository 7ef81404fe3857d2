package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	aguievents "github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	ai "github.com/harborai/oxbridge"
	"github.com/harborai/oxbridge/agent"
	"github.com/harborai/oxbridge/agui"
	"github.com/harborai/oxbridge/catalog"
	"github.com/harborai/oxbridge/interrupt"
)

// ToolsHandler lists catalog tools, optionally filtered by category.
type ToolsHandler struct {
	catalog *catalog.Catalog
}

// NewToolsHandler creates a handler over the given catalog.
func NewToolsHandler(c *catalog.Catalog) *ToolsHandler {
	return &ToolsHandler{catalog: c}
}

// ServeHTTP handles GET /tools?categories=gmail,search requests.
// Without a categories parameter the full catalog is returned.
func (h *ToolsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tools, err := h.list(r)
	if err != nil {
		slog.Error("failed to list tools", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, map[string]any{
		"items": agui.FromTools(tools),
	})
}

func (h *ToolsHandler) list(r *http.Request) ([]ai.Tool, error) {
	if raw := r.URL.Query().Get("categories"); raw != "" {
		return h.catalog.Select(r.Context(), strings.Split(raw, ","))
	}

	ids, byName, err := h.catalog.Snapshot(r.Context())
	if err != nil {
		return nil, err
	}
	tools := make([]ai.Tool, 0, len(ids))
	for _, id := range ids {
		tools = append(tools, byName[id])
	}
	return tools, nil
}

// AssembleHandler produces engine-ready agent configurations.
type AssembleHandler struct {
	builder *agent.Builder
}

// NewAssembleHandler creates a handler over the given builder.
func NewAssembleHandler(b *agent.Builder) *AssembleHandler {
	return &AssembleHandler{builder: b}
}

// assemblyView is the JSON rendering of an assembly. Handlers are not
// serializable, so tools are reported by name.
type assemblyView struct {
	Name   string   `json:"name"`
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Tools  []string `json:"tools"`
}

// ServeHTTP handles POST /assemblies requests. The body is an
// invocation configuration; the response describes the assembled agent.
func (h *AssembleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		slog.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var cfg agent.InvocationConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		slog.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	asm, err := h.builder.Assemble(r.Context(), cfg)
	if err != nil {
		slog.Error("assembly failed", "categories", cfg.Tools, "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	names := make([]string, len(asm.Tools))
	for i, reg := range asm.Tools {
		names[i] = reg.Tool.Name
	}

	writeJSON(w, assemblyView{
		Name:   asm.Name,
		Model:  asm.Model.String(),
		Prompt: asm.Prompt,
		Tools:  names,
	})
}

// interruptHub fans pending interruptions out to SSE subscribers.
type interruptHub struct {
	mu   sync.Mutex
	subs map[chan interrupt.Pending]struct{}
}

func newInterruptHub() *interruptHub {
	return &interruptHub{subs: make(map[chan interrupt.Pending]struct{})}
}

// Subscribe registers a subscriber channel. The returned function
// removes it.
func (h *interruptHub) Subscribe() (<-chan interrupt.Pending, func()) {
	ch := make(chan interrupt.Pending, 16)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
}

// Broadcast delivers a pending interruption to all subscribers. Slow
// subscribers are skipped rather than blocking the tool call.
func (h *interruptHub) Broadcast(p interrupt.Pending) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- p:
		default:
		}
	}
}

// InterruptsHandler streams authorization interruptions as AG-UI events
// over SSE.
type InterruptsHandler struct {
	broker *interrupt.Broker
	hub    *interruptHub
}

// NewInterruptsHandler creates a handler over the given broker and hub.
func NewInterruptsHandler(b *interrupt.Broker, h *interruptHub) *InterruptsHandler {
	return &InterruptsHandler{broker: b, hub: h}
}

// ServeHTTP handles GET /interrupts requests. Interruptions already
// pending at connect time are replayed first, then new ones stream
// until the client disconnects.
func (h *InterruptsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		slog.Error("streaming not supported")
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	mapper := agui.NewMapper(r.URL.Query().Get("thread_id"), "")
	log := slog.With("thread_id", mapper.ThreadID(), "run_id", mapper.RunID())

	if err := writeSSE(w, flusher, mapper.RunStarted()); err != nil {
		log.Error("failed to write SSE event", "error", err)
		return
	}

	sub, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	// Replay interruptions that were pending before this subscriber
	// connected.
	for _, p := range h.broker.Pending() {
		if err := h.writePending(w, flusher, mapper, p); err != nil {
			log.Error("failed to write SSE event", "error", err)
			return
		}
	}

	for {
		select {
		case <-r.Context().Done():
			log.Debug("subscriber disconnected")
			return
		case p := <-sub:
			if err := h.writePending(w, flusher, mapper, p); err != nil {
				log.Error("failed to write SSE event", "error", err)
				return
			}
		}
	}
}

func (h *InterruptsHandler) writePending(w http.ResponseWriter, flusher http.Flusher, mapper *agui.Mapper, p interrupt.Pending) error {
	for _, ev := range mapper.AuthorizationEvents(p) {
		if err := writeSSE(w, flusher, ev); err != nil {
			return err
		}
	}
	return nil
}

// AcceptHandler routes authorization acknowledgments to the broker.
type AcceptHandler struct {
	broker *interrupt.Broker
}

// NewAcceptHandler creates a handler over the given broker.
func NewAcceptHandler(b *interrupt.Broker) *AcceptHandler {
	return &AcceptHandler{broker: b}
}

// ServeHTTP handles POST /interrupts/accept requests.
func (h *AcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		slog.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	if err := agui.HandleAcceptJSON(h.broker, body); err != nil {
		slog.Warn("accept rejected", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Info("authorization acknowledged")
	writeJSON(w, map[string]string{"status": "accepted"})
}

// writeSSE writes an AG-UI event in SSE format.
func writeSSE(w http.ResponseWriter, flusher http.Flusher, ev aguievents.Event) error {
	data, err := ev.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	// Write SSE format: event: TYPE\ndata: {json}\n\n
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type(), string(data)); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	flusher.Flush()
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// corsMiddleware adds CORS headers for cross-origin frontend requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
