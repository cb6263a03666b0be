package content

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/taskseed/internal/config"
)

func newAnthropicTestProvider(handler func(w http.ResponseWriter, r *http.Request)) *AnthropicProvider {
	return NewAnthropicProvider(config.Provider{
		Name:        config.ProviderAnthropic,
		Model:       "claude-3-5-haiku-20241022",
		APIKey:      "test-key",
		BaseURL:     "http://example.com",
		Temperature: 0.7,
	}, mockHTTPClient(handler))
}

func TestAnthropicProviderGenerate(t *testing.T) {
	t.Run("sends versioned request and parses text block", func(t *testing.T) {
		p := newAnthropicTestProvider(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/messages", r.URL.Path)
			require.Equal(t, "test-key", r.Header.Get("X-API-Key"))
			require.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req anthropicRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "claude-3-5-haiku-20241022", req.Model)
			require.NotZero(t, req.MaxTokens)
			require.Len(t, req.Messages, 1)
			require.Equal(t, "user", req.Messages[0].Role)

			resp := anthropicResponse{
				Content: []anthropicContentBlock{
					{Type: "text", Text: "Q4 Product Launch - Design email template"},
				},
				StopReason: "end_turn",
			}
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		})

		text, err := p.Generate(context.Background(), Request{
			Kind:    KindTaskName,
			Context: map[string]string{CtxFamily: "marketing", CtxProjectName: "Q4 Launch"},
		})
		require.NoError(t, err)
		require.Equal(t, "Q4 Product Launch - Design email template", text)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		p := newAnthropicTestProvider(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"type": "invalid_request_error"}}`))
		})

		_, err := p.Generate(context.Background(), Request{Kind: KindComment})
		require.Error(t, err)
		require.Contains(t, err.Error(), "status 400")
	})

	t.Run("missing text block is an error", func(t *testing.T) {
		p := newAnthropicTestProvider(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"content": [], "stop_reason": "end_turn"}`))
		})

		_, err := p.Generate(context.Background(), Request{Kind: KindComment})
		require.Error(t, err)
		require.Contains(t, err.Error(), "no text content")
	})
}
