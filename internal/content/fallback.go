package content

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wolfeidau/taskseed/internal/telemetry"
)

// Fallback wraps a provider with a per-request timeout, response validation,
// and a template fallback. Its Generate never returns an error, which lets
// the factories treat content as always available.
type Fallback struct {
	primary  Provider
	template *TemplateProvider
	timeout  time.Duration
}

// NewFallback wraps primary. A nil primary routes every request straight to
// templates.
func NewFallback(primary Provider, timeout time.Duration) *Fallback {
	return &Fallback{
		primary:  primary,
		template: NewTemplateProvider(),
		timeout:  timeout,
	}
}

// Name implements Provider.
func (f *Fallback) Name() string {
	if f.primary == nil {
		return f.template.Name()
	}
	return f.primary.Name()
}

// Generate implements Provider. One attempt against the primary, then the
// template path.
func (f *Fallback) Generate(ctx context.Context, req Request) (string, error) {
	if f.primary == nil {
		return f.template.Generate(ctx, req)
	}

	attemptCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	telemetry.GetMetrics().RecordContentRequest(ctx, f.primary.Name())
	text, err := f.primary.Generate(attemptCtx, req)
	if err == nil {
		if verr := Validate(req, text); verr == nil {
			return text, nil
		} else {
			err = verr
		}
	}

	log.Debug().
		Str("provider", f.primary.Name()).
		Str("kind", string(req.Kind)).
		Err(err).
		Msg("content provider failed, using template")
	telemetry.GetMetrics().RecordContentFallback(ctx, f.primary.Name())

	return f.template.Generate(ctx, req)
}
