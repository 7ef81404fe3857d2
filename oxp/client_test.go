package oxp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/harborai/oxbridge"
)

func TestNew(t *testing.T) {
	t.Run("fails without credentials", func(t *testing.T) {
		_, err := New(Config{})
		require.Error(t, err)
		assert.True(t, ai.IsConfiguration(err))
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("prefers bearer token over API key", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c, err := New(Config{BearerToken: "bearer-1", APIKey: "key-2", BaseURL: srv.URL})
		require.NoError(t, err)
		require.NoError(t, c.Health(context.Background()))
		assert.Equal(t, "Bearer bearer-1", gotAuth)
	})

	t.Run("falls back to API key", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c, err := New(Config{APIKey: "key-2", BaseURL: srv.URL})
		require.NoError(t, err)
		require.NoError(t, c.Health(context.Background()))
		assert.Equal(t, "Bearer key-2", gotAuth)
	})

	t.Run("defaults base URL", func(t *testing.T) {
		c, err := New(Config{BearerToken: "tok"})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, c.BaseURL())
	})
}

func TestListTools(t *testing.T) {
	t.Run("preserves catalog ordering", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tools", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items": [
				{"name": "Google_SendEmail", "description": "Send an email", "input_schema": {"type": "object"}},
				{"name": "Google_ListEvents", "description": "List calendar events", "input_schema": {"type": "object"}},
				{"name": "X_PostTweet", "description": "Post a tweet", "input_schema": {"type": "object"}}
			]}`))
		}))
		defer srv.Close()

		c, err := New(Config{BearerToken: "tok", BaseURL: srv.URL})
		require.NoError(t, err)

		tools, err := c.ListTools(context.Background())
		require.NoError(t, err)
		require.Len(t, tools, 3)
		assert.Equal(t, "Google_SendEmail", tools[0].Name)
		assert.Equal(t, "Google_ListEvents", tools[1].Name)
		assert.Equal(t, "X_PostTweet", tools[2].Name)
		assert.Equal(t, "Send an email", tools[0].Description)
		assert.JSONEq(t, `{"type": "object"}`, string(tools[0].InputSchema))
	})

	t.Run("propagates listing failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message": "listing unavailable"}`, http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c, err := New(Config{BearerToken: "tok", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.ListTools(context.Background())
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
		assert.Contains(t, se.Error(), "listing unavailable")
	})
}

func TestCallTool(t *testing.T) {
	t.Run("sends identity and arguments verbatim", func(t *testing.T) {
		var got CallRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tools/call", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": true, "value": {"sent": true}}`))
		}))
		defer srv.Close()

		c, err := New(Config{BearerToken: "tok", BaseURL: srv.URL})
		require.NoError(t, err)

		resp, err := c.CallTool(context.Background(), CallRequest{
			ToolID:  "Google_SendEmail",
			Context: CallContext{UserID: "user-123"},
			Input:   map[string]any{"to": "a@example.com", "subject": "hi"},
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.JSONEq(t, `{"sent": true}`, string(resp.Value))

		assert.Equal(t, "Google_SendEmail", got.ToolID)
		assert.Equal(t, "user-123", got.Context.UserID)
		assert.Equal(t, "a@example.com", got.Input["to"])
	})

	t.Run("returns unsuccessful response as-is", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": false, "error": "quota exceeded"}`))
		}))
		defer srv.Close()

		c, err := New(Config{BearerToken: "tok", BaseURL: srv.URL})
		require.NoError(t, err)

		resp, err := c.CallTool(context.Background(), CallRequest{ToolID: "X_PostTweet"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "quota exceeded", resp.Error)
	})

	t.Run("decodes structured error body on API error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"missing_requirements": {"authorization": [{"authorization_url": "https://example.com/auth"}]}}`))
		}))
		defer srv.Close()

		c, err := New(Config{BearerToken: "tok", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.CallTool(context.Background(), CallRequest{ToolID: "Google_SendEmail"})
		var se *StatusError
		require.ErrorAs(t, err, &se)
		require.NotNil(t, se.Body)

		url, ok := se.Body.PendingAuthorization()
		assert.True(t, ok)
		assert.Equal(t, "https://example.com/auth", url)
	})

	t.Run("keeps raw body when error body is not JSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream exploded"))
		}))
		defer srv.Close()

		c, err := New(Config{BearerToken: "tok", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.CallTool(context.Background(), CallRequest{ToolID: "X_PostTweet"})
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Nil(t, se.Body)
		assert.Equal(t, "upstream exploded", string(se.Raw))
	})
}

func TestPendingAuthorization(t *testing.T) {
	tests := []struct {
		name    string
		body    *ErrorBody
		wantURL string
		wantOK  bool
	}{
		{
			name:   "nil body",
			body:   nil,
			wantOK: false,
		},
		{
			name:   "no missing requirements",
			body:   &ErrorBody{Message: "boom"},
			wantOK: false,
		},
		{
			name:   "zero authorization entries",
			body:   &ErrorBody{MissingRequirements: &MissingRequirements{}},
			wantOK: false,
		},
		{
			name: "two authorization entries",
			body: &ErrorBody{MissingRequirements: &MissingRequirements{
				Authorization: []AuthorizationRequirement{
					{AuthorizationURL: "https://example.com/a"},
					{AuthorizationURL: "https://example.com/b"},
				},
			}},
			wantOK: false,
		},
		{
			name: "single entry without URL",
			body: &ErrorBody{MissingRequirements: &MissingRequirements{
				Authorization: []AuthorizationRequirement{{}},
			}},
			wantOK: false,
		},
		{
			name: "single entry with URL",
			body: &ErrorBody{MissingRequirements: &MissingRequirements{
				Authorization: []AuthorizationRequirement{{AuthorizationURL: "https://example.com/auth"}},
			}},
			wantURL: "https://example.com/auth",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := tt.body.PendingAuthorization()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestHealth(t *testing.T) {
	t.Run("surfaces unreachable service", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c, err := New(Config{BearerToken: "tok", BaseURL: srv.URL})
		require.NoError(t, err)

		err = c.Health(context.Background())
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Run("health check failure is a configuration error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		t.Setenv("OXP_BEARER_TOKEN", "tok")
		t.Setenv("OXP_API_KEY", "")
		t.Setenv("OXP_BASE_URL", srv.URL)

		_, err := NewFromEnv(context.Background())
		require.Error(t, err)
		assert.True(t, ai.IsConfiguration(err))
	})

	t.Run("missing credentials fail before any request", func(t *testing.T) {
		t.Setenv("OXP_BEARER_TOKEN", "")
		t.Setenv("OXP_API_KEY", "")

		_, err := NewFromEnv(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})
}
