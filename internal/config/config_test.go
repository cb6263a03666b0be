package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, 1, cfg.Counts.Organizations)
	require.Equal(t, 15, cfg.Counts.Teams)
	require.Equal(t, 200, cfg.Counts.Users)
	require.Equal(t, 45, cfg.Counts.Projects)
	require.Equal(t, 5000, cfg.Counts.Tasks)
	require.Equal(t, NewDate(2023, time.July, 1), cfg.Window.Start)
	require.Equal(t, NewDate(2024, time.January, 7), cfg.Window.End)
	require.InDelta(t, 0.15, cfg.Probabilities.Unassigned, 0.0001)
	require.Equal(t, ProviderNone, cfg.Provider.Name)
	require.Nil(t, cfg.Seed)
	require.NoError(t, cfg.Validate())
}

func TestApplyDefaultsSetsProviderModel(t *testing.T) {
	cfg := Config{Provider: Provider{Name: ProviderOpenAI, APIKey: "sk-test"}}
	cfg.ApplyDefaults()
	require.Equal(t, "gpt-3.5-turbo", cfg.Provider.Model)

	cfg = Config{Provider: Provider{Name: ProviderAnthropic, APIKey: "sk-test"}}
	cfg.ApplyDefaults()
	require.Equal(t, "claude-3-5-haiku-20241022", cfg.Provider.Model)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero teams",
			mutate:  func(c *Config) { c.Counts.Teams = -1 },
			wantErr: "counts.teams",
		},
		{
			name:    "negative tasks",
			mutate:  func(c *Config) { c.Counts.Tasks = -5 },
			wantErr: "counts.tasks",
		},
		{
			name: "window end before start",
			mutate: func(c *Config) {
				c.Window.Start = NewDate(2024, time.March, 1)
				c.Window.End = NewDate(2024, time.February, 1)
			},
			wantErr: "window.end",
		},
		{
			name: "window too short",
			mutate: func(c *Config) {
				c.Window.Start = NewDate(2024, time.March, 1)
				c.Window.End = NewDate(2024, time.March, 20)
			},
			wantErr: "45 days",
		},
		{
			name:    "probability out of range",
			mutate:  func(c *Config) { c.Probabilities.Comment = 1.2 },
			wantErr: "probabilities.comment",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Provider.Name = "llama" },
			wantErr: "unknown provider",
		},
		{
			name: "provider without api key",
			mutate: func(c *Config) {
				c.Provider.Name = ProviderOpenAI
				c.Provider.Model = "gpt-3.5-turbo"
			},
			wantErr: "api key",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Workers = -1 },
			wantErr: "workers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalid)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("yaml overrides flags", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		content := `
counts:
  users: 10
  tasks: 20
window:
  start: 2023-07-01
  end: 2024-01-07
seed: 42
provider:
  name: none
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg := Default()
		require.NoError(t, cfg.LoadFile(path))

		require.Equal(t, 10, cfg.Counts.Users)
		require.Equal(t, 20, cfg.Counts.Tasks)
		require.Equal(t, 15, cfg.Counts.Teams, "unset file fields keep flag values")
		require.NotNil(t, cfg.Seed)
		require.Equal(t, uint64(42), *cfg.Seed)
		require.NoError(t, cfg.Validate())
	})

	t.Run("json by extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.json")
		content := `{"counts": {"users": 7}, "window": {"start": "2023-01-01", "end": "2023-12-31"}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg := Default()
		require.NoError(t, cfg.LoadFile(path))
		require.Equal(t, 7, cfg.Counts.Users)
		require.Equal(t, NewDate(2023, time.January, 1), cfg.Window.Start)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := Default()
		require.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("counts: ["), 0o600))

		cfg := Default()
		err := cfg.LoadFile(path)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestDateParse(t *testing.T) {
	var d Date
	require.NoError(t, d.parse("2023-07-01"))
	require.Equal(t, NewDate(2023, time.July, 1), d)

	require.NoError(t, d.parse("2023-07-01T09:30:00Z"))
	require.Equal(t, NewDate(2023, time.July, 1), d, "time of day is dropped")

	require.Error(t, d.parse("01/07/2023"))
}
