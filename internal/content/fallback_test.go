package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	text string
	err  error
	wait time.Duration
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(ctx context.Context, _ Request) (string, error) {
	if s.wait > 0 {
		select {
		case <-time.After(s.wait):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.text, s.err
}

func commentRequest() Request {
	return Request{
		Kind:    KindComment,
		MaxLen:  200,
		Context: map[string]string{CtxEntityID: "comment_1", CtxTaskName: "Implement caching layer"},
	}
}

func TestFallbackGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("nil primary uses templates", func(t *testing.T) {
		f := NewFallback(nil, time.Second)
		require.Equal(t, "template", f.Name())

		text, err := f.Generate(ctx, commentRequest())
		require.NoError(t, err)
		require.NotEmpty(t, text)
	})

	t.Run("valid primary response passes through", func(t *testing.T) {
		f := NewFallback(&stubProvider{text: "Shipped the fix, verifying in staging"}, time.Second)

		text, err := f.Generate(ctx, commentRequest())
		require.NoError(t, err)
		require.Equal(t, "Shipped the fix, verifying in staging", text)
	})

	t.Run("primary error falls back to template", func(t *testing.T) {
		f := NewFallback(&stubProvider{err: errors.New("quota exceeded")}, time.Second)

		text, err := f.Generate(ctx, commentRequest())
		require.NoError(t, err)
		require.NotEmpty(t, text)
	})

	t.Run("invalid primary response falls back", func(t *testing.T) {
		f := NewFallback(&stubProvider{text: "multi\nline"}, time.Second)

		text, err := f.Generate(ctx, commentRequest())
		require.NoError(t, err)
		require.NotContains(t, text, "\n")
	})

	t.Run("slow primary is cut off by the timeout", func(t *testing.T) {
		f := NewFallback(&stubProvider{text: "too late", wait: 5 * time.Second}, 50*time.Millisecond)

		start := time.Now()
		text, err := f.Generate(ctx, commentRequest())
		require.NoError(t, err)
		require.NotEqual(t, "too late", text)
		require.Less(t, time.Since(start), time.Second)
	})

	t.Run("fallback output is stable per entity", func(t *testing.T) {
		f := NewFallback(&stubProvider{err: errors.New("down")}, time.Second)

		first, err := f.Generate(ctx, commentRequest())
		require.NoError(t, err)
		second, err := f.Generate(ctx, commentRequest())
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}
