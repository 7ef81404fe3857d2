// Package model loads chat-model handles from fully specified names of
// the form "provider/model", e.g. "openai/o3-mini".
//
// Loading constructs the provider SDK client but never runs it: the
// agent engine owns execution. Handles are memoized per fully specified
// name, so repeated loads of the same name return the same handle and
// concurrent first callers are serialized.
package model

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"google.golang.org/genai"

	ai "github.com/harborai/oxbridge"
)

// DefaultModel is the model loaded when no override is configured.
const DefaultModel = "openai/o3-mini"

// Provider identifies a chat-model backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
)

// Model is a constructed chat-model handle: a provider SDK client plus
// the model name to run on it. The handle is what gets passed to the
// agent engine.
type Model struct {
	provider Provider
	name     string

	openai    *openai.Client
	anthropic *anthropic.Client
	google    *genai.Client
}

// Provider returns the backend this handle belongs to.
func (m *Model) Provider() Provider {
	return m.provider
}

// Name returns the model name without the provider prefix.
func (m *Model) Name() string {
	return m.name
}

// String returns the fully specified "provider/model" name.
func (m *Model) String() string {
	return string(m.provider) + "/" + m.name
}

// OpenAI returns the OpenAI client handle, if this is an openai model.
func (m *Model) OpenAI() (*openai.Client, bool) {
	return m.openai, m.openai != nil
}

// Anthropic returns the Anthropic client handle, if this is an anthropic model.
func (m *Model) Anthropic() (*anthropic.Client, bool) {
	return m.anthropic, m.anthropic != nil
}

// Google returns the Google GenAI client handle, if this is a google model.
func (m *Model) Google() (*genai.Client, bool) {
	return m.google, m.google != nil
}

// APIKeys holds explicit provider credentials. Zero fields fall back to
// each SDK's environment variables (OPENAI_API_KEY, ANTHROPIC_API_KEY,
// GOOGLE_API_KEY / GEMINI_API_KEY).
type APIKeys struct {
	OpenAI    string
	Anthropic string
	Google    string
}

// Loader constructs and memoizes model handles.
type Loader struct {
	keys APIKeys

	mu    sync.Mutex
	cache map[string]*Model
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithAPIKeys sets explicit provider credentials.
func WithAPIKeys(keys APIKeys) LoaderOption {
	return func(l *Loader) {
		l.keys = keys
	}
}

// NewLoader creates a Loader with the given options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		cache: make(map[string]*Model),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the handle for a fully specified model name, constructing
// it on first use. The name must be "provider/model"; unknown providers
// and malformed names are configuration errors.
func (l *Loader) Load(ctx context.Context, fullySpecified string) (*Model, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.cache[fullySpecified]; ok {
		return m, nil
	}

	providerName, modelName, ok := strings.Cut(fullySpecified, "/")
	if !ok || providerName == "" || modelName == "" {
		return nil, ai.NewConfigurationError(
			fmt.Sprintf("model: name %q must be of the form provider/model", fullySpecified), nil)
	}

	m, err := l.construct(ctx, Provider(providerName), modelName)
	if err != nil {
		return nil, err
	}

	l.cache[fullySpecified] = m
	return m, nil
}

func (l *Loader) construct(ctx context.Context, provider Provider, name string) (*Model, error) {
	switch provider {
	case ProviderOpenAI:
		var opts []openaiopt.RequestOption
		if l.keys.OpenAI != "" {
			opts = append(opts, openaiopt.WithAPIKey(l.keys.OpenAI))
		}
		client := openai.NewClient(opts...)
		return &Model{provider: provider, name: name, openai: &client}, nil

	case ProviderAnthropic:
		var opts []anthropicopt.RequestOption
		if l.keys.Anthropic != "" {
			opts = append(opts, anthropicopt.WithAPIKey(l.keys.Anthropic))
		}
		client := anthropic.NewClient(opts...)
		return &Model{provider: provider, name: name, anthropic: &client}, nil

	case ProviderGoogle:
		apiKey := l.keys.Google
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, ai.NewConfigurationError("model: google client init failed", err)
		}
		return &Model{provider: provider, name: name, google: client}, nil

	default:
		return nil, ai.NewConfigurationError(
			fmt.Sprintf("model: unknown provider %q (must be openai, anthropic, or google)", provider), nil)
	}
}

var defaultLoader = NewLoader()

// Load loads a model through the package-level loader.
func Load(ctx context.Context, fullySpecified string) (*Model, error) {
	return defaultLoader.Load(ctx, fullySpecified)
}
