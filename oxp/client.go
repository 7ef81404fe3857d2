package oxp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	ai "github.com/harborai/oxbridge"
)

// DefaultBaseURL is used when no OXP_BASE_URL override is provided.
const DefaultBaseURL = "https://api.oxp.dev/v1"

const maxResponseSize = 4 * 1024 * 1024 // 4MB

// Config holds the credentials and endpoint for an OXP service.
type Config struct {
	// BearerToken is the primary credential.
	BearerToken string
	// APIKey is used when BearerToken is empty.
	APIKey string
	// BaseURL overrides the default service endpoint.
	BaseURL string
}

// ConfigFromEnv reads the client configuration from the environment.
func ConfigFromEnv() Config {
	return Config{
		BearerToken: os.Getenv("OXP_BEARER_TOKEN"),
		APIKey:      os.Getenv("OXP_API_KEY"),
		BaseURL:     os.Getenv("OXP_BASE_URL"),
	}
}

// Client talks to an OXP tool-execution service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimeout sets the request timeout. Default is 30 seconds.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		cl.httpClient.Timeout = d
	}
}

// New creates a client from the given configuration. It returns a
// configuration error when no credential is available.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	token := cfg.BearerToken
	if token == "" {
		token = cfg.APIKey
	}
	if token == "" {
		return nil, ai.NewConfigurationError("oxp: client init failed", ErrMissingCredentials)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromEnv creates a client from environment variables and verifies
// connectivity with a health check. Failure at this point is a fatal
// configuration error.
func NewFromEnv(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c, err := New(ConfigFromEnv(), opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Health(ctx); err != nil {
		return nil, ai.NewConfigurationError("oxp: service unreachable", err)
	}
	return c, nil
}

// BaseURL returns the resolved service endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health checks connectivity to the service.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp)
	}
	return nil
}

// ListTools fetches the catalog of available tools, preserving the
// service's ordering. Errors propagate to the caller; there is no retry.
func (c *Client) ListTools(ctx context.Context) ([]ai.Tool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tools", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	var list listResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&list); err != nil {
		return nil, fmt.Errorf("oxp: decode tool listing: %w", err)
	}

	tools := make([]ai.Tool, 0, len(list.Items))
	for _, item := range list.Items {
		tools = append(tools, ai.Tool{
			Name:        item.Name,
			Description: item.Description,
			InputSchema: item.InputSchema,
		})
	}
	return tools, nil
}

// CallTool executes one tool on behalf of the user named in the request
// context. Remote API errors are returned as [*StatusError]; a response
// with Success=false is returned as-is for the caller to interpret.
func (c *Client) CallTool(ctx context.Context, call CallRequest) (*CallResponse, error) {
	payload, err := json.Marshal(call)
	if err != nil {
		return nil, fmt.Errorf("oxp: encode call request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tools/call", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	var result CallResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&result); err != nil {
		return nil, fmt.Errorf("oxp: decode call response: %w", err)
	}
	return &result, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

// statusError drains the response body and decodes the structured error
// body when present. A body that is not valid JSON is kept raw.
func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))

	se := &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Raw:        raw,
	}
	var body ErrorBody
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		se.Body = &body
	}
	return se
}
