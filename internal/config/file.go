package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a configuration file, parsing JSON when the path ends in
// .json and YAML otherwise. File values override the receiver's fields when
// set, matching flag-then-file precedence.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if err := json.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%w: failed to parse JSON config: %v", ErrInvalid, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%w: failed to parse YAML config: %v", ErrInvalid, err)
		}
	}

	c.merge(file)
	return nil
}

// merge copies set fields from file over the receiver.
func (c *Config) merge(file Config) {
	if file.Counts.Organizations != 0 {
		c.Counts.Organizations = file.Counts.Organizations
	}
	if file.Counts.Teams != 0 {
		c.Counts.Teams = file.Counts.Teams
	}
	if file.Counts.Users != 0 {
		c.Counts.Users = file.Counts.Users
	}
	if file.Counts.Projects != 0 {
		c.Counts.Projects = file.Counts.Projects
	}
	if file.Counts.Tasks != 0 {
		c.Counts.Tasks = file.Counts.Tasks
	}
	if !file.Window.Start.IsZero() {
		c.Window.Start = file.Window.Start
	}
	if !file.Window.End.IsZero() {
		c.Window.End = file.Window.End
	}
	if file.Seed != nil {
		c.Seed = file.Seed
	}
	if file.Probabilities.Unassigned != 0 {
		c.Probabilities.Unassigned = file.Probabilities.Unassigned
	}
	if file.Probabilities.Subtask != 0 {
		c.Probabilities.Subtask = file.Probabilities.Subtask
	}
	if file.Probabilities.Comment != 0 {
		c.Probabilities.Comment = file.Probabilities.Comment
	}
	if file.Probabilities.DueDate != 0 {
		c.Probabilities.DueDate = file.Probabilities.DueDate
	}
	if file.Provider.Name != "" {
		c.Provider.Name = file.Provider.Name
	}
	if file.Provider.Model != "" {
		c.Provider.Model = file.Provider.Model
	}
	if file.Provider.APIKey != "" {
		c.Provider.APIKey = file.Provider.APIKey
	}
	if file.Provider.BaseURL != "" {
		c.Provider.BaseURL = file.Provider.BaseURL
	}
	if file.Provider.Temperature != 0 {
		c.Provider.Temperature = file.Provider.Temperature
	}
	if file.Provider.TimeoutSeconds != 0 {
		c.Provider.TimeoutSeconds = file.Provider.TimeoutSeconds
	}
	if file.Workers != 0 {
		c.Workers = file.Workers
	}
	if file.BatchSize != 0 {
		c.BatchSize = file.BatchSize
	}
}
