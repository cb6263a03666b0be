package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/wolfeidau/taskseed/internal/store"
	archivestore "github.com/wolfeidau/taskseed/internal/store/archive"
	postgresstore "github.com/wolfeidau/taskseed/internal/store/postgres"
)

type Globals struct {
	Debug   bool
	Version string
}

// StoreFlags selects where datasets are published to and loaded from.
type StoreFlags struct {
	Store    string        `help:"dataset store (archive or postgres)" default:"archive" env:"TASKSEED_STORE" enum:"archive,postgres"`
	Archive  ArchiveFlags  `embed:"" prefix:"archive-"`
	Postgres PostgresFlags `embed:"" prefix:"postgres-"`
}

type ArchiveFlags struct {
	Dir string `help:"directory the archive store writes to" default:"./dataset" env:"TASKSEED_ARCHIVE_DIR"`
}

func (a *ArchiveFlags) Validate() error {
	if a.Dir == "" {
		return errors.New("archive directory is required (--archive-dir or TASKSEED_ARCHIVE_DIR)")
	}
	return nil
}

type PostgresFlags struct {
	// Connection Configuration
	ConnString string `help:"PostgreSQL connection string" env:"POSTGRES_CONNECTION_STRING"`

	// Connection Pool Configuration
	MaxConns        int32 `help:"maximum number of connections in pool" default:"10"`
	MinConns        int32 `help:"minimum number of connections in pool" default:"2"`
	MaxConnLifetime int32 `help:"maximum connection lifetime in seconds" default:"3600"`
	MaxConnIdleTime int32 `help:"maximum connection idle time in seconds" default:"1800"`

	// Publish Configuration
	BatchSize int `help:"rows per insert batch" default:"100"`

	// Migration Configuration
	AutoMigrate bool `help:"run database migrations on startup" default:"true" env:"TASKSEED_POSTGRES_AUTO_MIGRATE"`
}

// Validate checks the pool and batch settings. The connection string is only
// required when the postgres store is selected, so openStore checks it there.
func (p *PostgresFlags) Validate() error {
	if p.MinConns > p.MaxConns {
		return errors.New("postgres pool minimum connections cannot exceed the maximum (--postgres-min-conns, --postgres-max-conns)")
	}
	if p.BatchSize < 1 {
		return errors.New("insert batch size must be at least 1 (--postgres-batch-size)")
	}
	return nil
}

// datasetStore is the surface both stores expose. The generate command uses
// the Sink half and the validate command the Loader half.
type datasetStore interface {
	store.Sink
	store.Loader
}

// openStore builds the selected store. The returned close function must be
// called once the store is no longer needed.
func openStore(ctx context.Context, flags *StoreFlags) (datasetStore, func(), error) {
	switch flags.Store {
	case "postgres":
		if err := flags.Postgres.Validate(); err != nil {
			return nil, nil, err
		}
		if flags.Postgres.ConnString == "" {
			return nil, nil, errors.New("PostgreSQL connection string is required (--postgres-conn-string or POSTGRES_CONNECTION_STRING)")
		}

		st, err := postgresstore.New(ctx, &postgresstore.Config{
			Pool: postgresstore.PoolConfig{
				ConnString:      flags.Postgres.ConnString,
				MaxConns:        flags.Postgres.MaxConns,
				MinConns:        flags.Postgres.MinConns,
				MaxConnLifetime: flags.Postgres.MaxConnLifetime,
				MaxConnIdleTime: flags.Postgres.MaxConnIdleTime,
			},
			BatchSize:   flags.Postgres.BatchSize,
			AutoMigrate: flags.Postgres.AutoMigrate,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create postgres store: %w", err)
		}
		return st, st.Close, nil

	default:
		if err := flags.Archive.Validate(); err != nil {
			return nil, nil, err
		}

		st, err := archivestore.New(flags.Archive.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create archive store: %w", err)
		}
		return st, func() {}, nil
	}
}
