package agent

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/harborai/oxbridge/catalog"
	"github.com/harborai/oxbridge/model"
	"github.com/harborai/oxbridge/tool"
)

// DefaultName is the display name set on assembled agents.
const DefaultName = "ReAct Agent"

// ErrNilConstructor is returned when Build is called without an engine
// constructor.
var ErrNilConstructor = errors.New("agent: nil engine constructor")

// InvocationConfig is the per-invocation configuration supplied by the
// caller: which tool categories the agent may use and on whose behalf
// remote tools execute. UserID is required at tool-call time, not at
// assembly time; an assembly built without one produces tools that fail
// local validation when invoked.
type InvocationConfig struct {
	// Tools lists the requested service categories (e.g. "gmail",
	// "search"). Empty means the agent runs with no tools.
	Tools []string `json:"tools"`
	// UserID identifies the user remote tool calls execute for.
	UserID string `json:"user_id"`
}

// Assembly is everything the external engine needs to construct an
// agent: display name, model handle, rendered system prompt, and the
// bridged tool registrations in catalog order.
type Assembly struct {
	Name   string
	Model  *model.Model
	Prompt string
	Tools  []tool.Registration
}

// Runnable is the engine's compiled agent object, passed through
// unmodified.
type Runnable any

// Constructor is the external agent-construction call.
type Constructor func(ctx context.Context, asm Assembly) (Runnable, error)

// Builder assembles agents over a catalog and a tool bridge.
type Builder struct {
	catalog   *catalog.Catalog
	bridge    *tool.Bridge
	loader    *model.Loader
	modelName string
	template  string
	now       func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithModelName sets the fully specified model name.
// Default is model.DefaultModel.
func WithModelName(name string) BuilderOption {
	return func(b *Builder) {
		b.modelName = name
	}
}

// WithLoader sets the model loader. Default is a fresh loader using
// environment credentials.
func WithLoader(l *model.Loader) BuilderOption {
	return func(b *Builder) {
		b.loader = l
	}
}

// WithPromptTemplate overrides the system prompt template. The template
// may contain a {current_times} slot.
func WithPromptTemplate(template string) BuilderOption {
	return func(b *Builder) {
		b.template = template
	}
}

// WithClock overrides the time source used for prompt rendering.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a Builder over the given catalog and bridge.
func NewBuilder(cat *catalog.Catalog, bridge *tool.Bridge, opts ...BuilderOption) *Builder {
	b := &Builder{
		catalog:   cat,
		bridge:    bridge,
		loader:    model.NewLoader(),
		modelName: model.DefaultModel,
		template:  SystemPromptTemplate,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Assemble produces the engine-ready configuration for one invocation:
// model handle, prompt with current times substituted, and the bridged
// tool set for the requested categories. Straight-line composition; all
// branching lives in the parts.
func (b *Builder) Assemble(ctx context.Context, cfg InvocationConfig) (*Assembly, error) {
	m, err := b.loader.Load(ctx, b.modelName)
	if err != nil {
		return nil, err
	}

	prompt := RenderPrompt(b.template, FormattedTimesAt(b.now()))

	selected, err := b.catalog.Select(ctx, cfg.Tools)
	if err != nil {
		return nil, err
	}

	slog.Debug("assembled agent",
		"model", m.String(),
		"categories", cfg.Tools,
		"tools", len(selected),
	)

	return &Assembly{
		Name:   DefaultName,
		Model:  m,
		Prompt: prompt,
		Tools:  b.bridge.Registrations(selected, cfg.UserID),
	}, nil
}

// Build assembles an agent and hands it to the external engine
// constructor, returning its result unmodified.
func (b *Builder) Build(ctx context.Context, cfg InvocationConfig, construct Constructor) (Runnable, error) {
	if construct == nil {
		return nil, ErrNilConstructor
	}

	asm, err := b.Assemble(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return construct(ctx, *asm)
}
