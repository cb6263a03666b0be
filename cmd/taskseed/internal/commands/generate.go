package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/wolfeidau/taskseed/internal/config"
	"github.com/wolfeidau/taskseed/internal/content"
	"github.com/wolfeidau/taskseed/internal/generate"
	"github.com/wolfeidau/taskseed/internal/logger"
	"github.com/wolfeidau/taskseed/internal/telemetry"
	"github.com/wolfeidau/taskseed/internal/validate"
)

type GenerateCmd struct {
	// Entity counts
	Orgs     int `help:"number of organizations" default:"1" env:"TASKSEED_ORGS"`
	Teams    int `help:"teams per organization" default:"15" env:"TASKSEED_TEAMS"`
	Users    int `help:"users per organization" default:"200" env:"TASKSEED_USERS"`
	Projects int `help:"projects per organization" default:"45" env:"TASKSEED_PROJECTS"`
	Tasks    int `help:"tasks per organization" default:"5000" env:"TASKSEED_TASKS"`

	// History window
	WindowStart config.Date `help:"history window start (YYYY-MM-DD)" default:"2023-07-01" env:"TASKSEED_WINDOW_START"`
	WindowEnd   config.Date `help:"history window end (YYYY-MM-DD), inclusive" default:"2024-01-07" env:"TASKSEED_WINDOW_END"`

	// Determinism
	Seed string `help:"RNG seed, the same seed reproduces the same dataset byte for byte; random when unset" env:"TASKSEED_SEED"`

	// Headline rates
	UnassignedRate float64 `help:"share of tasks left unassigned" default:"0.15"`
	SubtaskRate    float64 `help:"share of tasks given subtasks" default:"0.35"`
	CommentRate    float64 `help:"share of tasks with comment threads" default:"0.60"`
	DueDateRate    float64 `help:"share of tasks given a due date" default:"0.90"`

	// Content provider configuration
	Provider       string  `help:"content provider for task and comment text" default:"none" env:"TASKSEED_PROVIDER" enum:"none,openai,anthropic"`
	Model          string  `help:"content provider model, defaults per provider" env:"TASKSEED_MODEL"`
	APIKey         string  `help:"content provider API key" env:"TASKSEED_API_KEY"`
	BaseURL        string  `help:"content provider base URL override" env:"TASKSEED_BASE_URL"`
	Temperature    float64 `help:"content sampling temperature" default:"0.7"`
	ContentTimeout int     `help:"per-request content timeout in seconds" default:"10"`
	Workers        int     `help:"concurrent content generation workers" default:"8" env:"TASKSEED_WORKERS"`

	// Configuration file, overrides flags
	Config string `help:"YAML or JSON config file, file values override flags" env:"TASKSEED_CONFIG" type:"existingfile"`

	// Dataset store
	StoreFlags

	// Development and operational modes
	SkipValidate bool `help:"publish without running validation checks" default:"false"`
	Tracing      bool `help:"enable tracing" default:"false" env:"TASKSEED_TRACING"`
}

func (g *GenerateCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	log.Info().Str("version", globals.Version).Bool("debug", globals.Debug).Msg("Starting generation run")

	// Setup telemetry if enabled
	if g.Tracing {
		log.Info().Msg("Tracing is enabled")
		shutdown, err := telemetry.InitTelemetry(ctx, "taskseed", globals.Version)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize telemetry, continuing without metrics")
			shutdown = func(ctx context.Context) error { return nil }
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Failed to shutdown telemetry")
			}
		}()
	}

	cfg, err := g.buildConfig()
	if err != nil {
		return err
	}

	ds, err := generate.New(cfg, buildProvider(cfg)).Run(ctx)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !g.SkipValidate {
		report := validate.Check(ctx, ds)
		for _, f := range report.Findings {
			log.Error().Str("category", f.Category).Msg(f.Message)
		}
		if report.Failed(false) {
			return fmt.Errorf("dataset failed validation with %d findings, nothing published", len(report.Findings))
		}
		log.Info().Int("observations", len(report.Observations)).Msg("Validation passed")
	}

	// The config file may override the publish batch size.
	g.Postgres.BatchSize = cfg.BatchSize

	sink, closeStore, err := openStore(ctx, &g.StoreFlags)
	if err != nil {
		return err
	}
	defer closeStore()

	start := time.Now()
	if err := sink.Publish(ctx, ds); err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	log.Info().
		Uint64("seed", ds.Seed).
		Str("store", g.Store).
		Int("total_rows", ds.TotalRows()).
		Str("took", time.Since(start).String()).
		Msg("Dataset published")

	return nil
}

// buildConfig resolves the run configuration: flags and environment first,
// then the config file over the top, then defaults for anything still unset.
func (g *GenerateCmd) buildConfig() (config.Config, error) {
	cfg := config.Config{
		Counts: config.Counts{
			Organizations: g.Orgs,
			Teams:         g.Teams,
			Users:         g.Users,
			Projects:      g.Projects,
			Tasks:         g.Tasks,
		},
		Window: config.Window{
			Start: g.WindowStart,
			End:   g.WindowEnd,
		},
		Probabilities: config.Probabilities{
			Unassigned: g.UnassignedRate,
			Subtask:    g.SubtaskRate,
			Comment:    g.CommentRate,
			DueDate:    g.DueDateRate,
		},
		Provider: config.Provider{
			Name:           g.Provider,
			Model:          g.Model,
			APIKey:         g.APIKey,
			BaseURL:        g.BaseURL,
			Temperature:    g.Temperature,
			TimeoutSeconds: g.ContentTimeout,
		},
		Workers:   g.Workers,
		BatchSize: g.Postgres.BatchSize,
	}

	if g.Seed != "" {
		seed, err := strconv.ParseUint(g.Seed, 10, 64)
		if err != nil {
			return config.Config{}, fmt.Errorf("%w: seed must be an unsigned integer", config.ErrInvalid)
		}
		cfg.Seed = &seed
	}

	if g.Config != "" {
		if err := cfg.LoadFile(g.Config); err != nil {
			return config.Config{}, err
		}
	}

	// Fall back to the conventional provider credential variables so the
	// command works with the same environment as the vendor SDKs.
	if cfg.Provider.APIKey == "" {
		switch cfg.Provider.Name {
		case config.ProviderOpenAI:
			cfg.Provider.APIKey = os.Getenv("OPENAI_API_KEY")
		case config.ProviderAnthropic:
			cfg.Provider.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// buildProvider wires the configured content provider behind the template
// fallback. With no provider configured the fallback serves every request.
func buildProvider(cfg config.Config) content.Provider {
	var primary content.Provider
	switch cfg.Provider.Name {
	case config.ProviderOpenAI:
		primary = content.NewOpenAIProvider(cfg.Provider, nil)
	case config.ProviderAnthropic:
		primary = content.NewAnthropicProvider(cfg.Provider, nil)
	}

	return content.NewFallback(primary, time.Duration(cfg.Provider.TimeoutSeconds)*time.Second)
}
