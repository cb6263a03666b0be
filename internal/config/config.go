// Package config defines the generation run configuration, its defaults,
// and validation. Values come from CLI flags and environment variables, with
// an optional YAML or JSON file overriding both.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid wraps every validation failure so callers can classify
// configuration errors without matching message text.
var ErrInvalid = errors.New("invalid config")

// Content provider names.
const (
	ProviderNone      = "none"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Counts sets how many of each root entity a run produces. Dependent
// entities (sections, subtasks, comments, field values, tags, attachments)
// are derived from these through per-entity probabilities.
type Counts struct {
	Organizations int `yaml:"organizations" json:"organizations"`
	Teams         int `yaml:"teams" json:"teams"`
	Users         int `yaml:"users" json:"users"`
	Projects      int `yaml:"projects" json:"projects"`
	Tasks         int `yaml:"tasks" json:"tasks"`
}

// Window bounds the simulated history. Every generated timestamp falls
// inside it, except completions and discussion trailing up to 30 days past
// the end.
type Window struct {
	Start Date `yaml:"start" json:"start"`
	End   Date `yaml:"end" json:"end"`
}

// Span returns the window length.
func (w Window) Span() time.Duration {
	return w.End.Sub(w.Start.Time)
}

// Probabilities are the headline marginal rates of the generated dataset.
type Probabilities struct {
	Unassigned float64 `yaml:"unassigned" json:"unassigned"`
	Subtask    float64 `yaml:"subtask" json:"subtask"`
	Comment    float64 `yaml:"comment" json:"comment"`
	DueDate    float64 `yaml:"due_date" json:"due_date"`
}

// Provider configures the content provider used for task and comment text.
type Provider struct {
	Name           string  `yaml:"name" json:"name"`
	Model          string  `yaml:"model" json:"model"`
	APIKey         string  `yaml:"api_key" json:"api_key"`
	BaseURL        string  `yaml:"base_url" json:"base_url"`
	Temperature    float64 `yaml:"temperature" json:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// Config is the full configuration for one generation run.
type Config struct {
	Counts        Counts        `yaml:"counts" json:"counts"`
	Window        Window        `yaml:"window" json:"window"`
	Seed          *uint64       `yaml:"seed" json:"seed"`
	Probabilities Probabilities `yaml:"probabilities" json:"probabilities"`
	Provider      Provider      `yaml:"provider" json:"provider"`
	Workers       int           `yaml:"workers" json:"workers"`
	BatchSize     int           `yaml:"batch_size" json:"batch_size"`
}

// Default returns the standard run configuration: one organization with 15
// teams, 200 users, 45 projects, and 5000 tasks over a six month window.
func Default() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with their standard values.
func (c *Config) ApplyDefaults() {
	if c.Counts.Organizations == 0 {
		c.Counts.Organizations = 1
	}
	if c.Counts.Teams == 0 {
		c.Counts.Teams = 15
	}
	if c.Counts.Users == 0 {
		c.Counts.Users = 200
	}
	if c.Counts.Projects == 0 {
		c.Counts.Projects = 45
	}
	if c.Counts.Tasks == 0 {
		c.Counts.Tasks = 5000
	}
	if c.Window.Start.IsZero() {
		c.Window.Start = NewDate(2023, time.July, 1)
	}
	if c.Window.End.IsZero() {
		c.Window.End = NewDate(2024, time.January, 7)
	}
	if c.Probabilities.Unassigned == 0 {
		c.Probabilities.Unassigned = 0.15
	}
	if c.Probabilities.Subtask == 0 {
		c.Probabilities.Subtask = 0.35
	}
	if c.Probabilities.Comment == 0 {
		c.Probabilities.Comment = 0.60
	}
	if c.Probabilities.DueDate == 0 {
		c.Probabilities.DueDate = 0.90
	}
	if c.Provider.Name == "" {
		c.Provider.Name = ProviderNone
	}
	if c.Provider.Model == "" {
		switch c.Provider.Name {
		case ProviderOpenAI:
			c.Provider.Model = "gpt-3.5-turbo"
		case ProviderAnthropic:
			c.Provider.Model = "claude-3-5-haiku-20241022"
		}
	}
	if c.Provider.Temperature == 0 {
		c.Provider.Temperature = 0.7
	}
	if c.Provider.TimeoutSeconds == 0 {
		c.Provider.TimeoutSeconds = 10
	}
	if c.Workers == 0 {
		c.Workers = 8
	}
	if c.BatchSize == 0 {
		c.BatchSize = 100
	}
}

// Validate checks the configuration, returning an error wrapping ErrInvalid
// on the first problem found.
func (c *Config) Validate() error {
	if c.Counts.Organizations < 1 {
		return fmt.Errorf("%w: counts.organizations must be at least 1", ErrInvalid)
	}
	if c.Counts.Teams < 1 {
		return fmt.Errorf("%w: counts.teams must be at least 1", ErrInvalid)
	}
	if c.Counts.Users < 1 {
		return fmt.Errorf("%w: counts.users must be at least 1", ErrInvalid)
	}
	if c.Counts.Projects < 1 {
		return fmt.Errorf("%w: counts.projects must be at least 1", ErrInvalid)
	}
	if c.Counts.Tasks < 0 {
		return fmt.Errorf("%w: counts.tasks must not be negative", ErrInvalid)
	}

	if !c.Window.End.After(c.Window.Start.Time) {
		return fmt.Errorf("%w: window.end must be after window.start", ErrInvalid)
	}
	// Projects are created between day 7 and 30 days before the end, so the
	// window needs room for that band plus some task history.
	if c.Window.Span() < 45*24*time.Hour {
		return fmt.Errorf("%w: window must span at least 45 days", ErrInvalid)
	}

	for _, p := range []struct {
		name  string
		value float64
	}{
		{"unassigned", c.Probabilities.Unassigned},
		{"subtask", c.Probabilities.Subtask},
		{"comment", c.Probabilities.Comment},
		{"due_date", c.Probabilities.DueDate},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%w: probabilities.%s must be between 0 and 1", ErrInvalid, p.name)
		}
	}

	switch c.Provider.Name {
	case ProviderNone:
	case ProviderOpenAI, ProviderAnthropic:
		if c.Provider.APIKey == "" {
			return fmt.Errorf("%w: provider %s requires an api key", ErrInvalid, c.Provider.Name)
		}
		if c.Provider.Model == "" {
			return fmt.Errorf("%w: provider %s requires a model", ErrInvalid, c.Provider.Name)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalid, c.Provider.Name)
	}
	if c.Provider.Temperature < 0 || c.Provider.Temperature > 2 {
		return fmt.Errorf("%w: provider temperature must be between 0 and 2", ErrInvalid)
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalid)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch_size must be at least 1", ErrInvalid)
	}

	return nil
}
