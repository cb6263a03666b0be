package postgres

import "fmt"

// Config holds configuration for the PostgreSQL dataset store. Connection
// settings live in the embedded PoolConfig.
type Config struct {
	Pool PoolConfig

	// BatchSize is the number of rows queued per batch during publish.
	// Default: 100
	BatchSize int

	// AutoMigrate runs the embedded schema migrations on startup.
	AutoMigrate bool
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BatchSize < 0 {
		return fmt.Errorf("batch size must not be negative")
	}
	return c.Pool.Validate()
}

// ApplyDefaults applies default values to unset configuration fields.
func (c *Config) ApplyDefaults() {
	if c.BatchSize == 0 {
		c.BatchSize = 100
	}
	c.Pool.ApplyDefaults()
}
