package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v2"
	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/taskseed/internal/config"
)

type mockTransport struct {
	handler func(*http.Request) (*http.Response, error)
}

func (m mockTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return m.handler(r)
}

func mockHTTPClient(handler func(w http.ResponseWriter, r *http.Request)) *http.Client {
	return &http.Client{Transport: mockTransport{handler: func(r *http.Request) (*http.Response, error) {
		recorder := httptest.NewRecorder()
		handler(recorder, r)
		return recorder.Result(), nil
	}}}
}

func newOpenAITestProvider(handler func(w http.ResponseWriter, r *http.Request)) *OpenAIProvider {
	return NewOpenAIProvider(config.Provider{
		Name:        config.ProviderOpenAI,
		Model:       "gpt-3.5-turbo",
		APIKey:      "test-key",
		BaseURL:     "http://example.com/v1",
		Temperature: 0.7,
	}, mockHTTPClient(handler))
}

func TestOpenAIProviderGenerate(t *testing.T) {
	t.Run("returns trimmed completion", func(t *testing.T) {
		p := newOpenAITestProvider(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "gpt-3.5-turbo", body["model"])

			w.Header().Set("Content-Type", "application/json")
			resp := openai.ChatCompletion{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Role: "assistant", Content: "  API Client - Add retry logic - Exponential backoff  "}},
				},
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		})

		text, err := p.Generate(context.Background(), Request{
			Kind:    KindTaskName,
			Context: map[string]string{CtxFamily: "engineering"},
		})
		require.NoError(t, err)
		require.Equal(t, "API Client - Add retry logic - Exponential backoff", text)
	})

	t.Run("api error is returned", func(t *testing.T) {
		p := newOpenAITestProvider(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
		})

		_, err := p.Generate(context.Background(), Request{Kind: KindTaskName})
		require.Error(t, err)
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		p := newOpenAITestProvider(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices": []}`))
		})

		_, err := p.Generate(context.Background(), Request{Kind: KindTaskName})
		require.Error(t, err)
		require.Contains(t, err.Error(), "no choices")
	})
}
