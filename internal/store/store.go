package store

import (
	"context"
	"errors"

	"github.com/wolfeidau/taskseed/internal/models"
)

// Sentinel errors for common error conditions
var (
	ErrNotSeeded        = errors.New("no dataset has been published")
	ErrManifestMissing  = errors.New("archive manifest missing")
	ErrChecksumMismatch = errors.New("archive checksum mismatch")
)

// Sink persists a finished dataset. Publish is atomic: either every row of
// every table lands, or the target is left untouched and the error names
// what failed. Publishing over an existing dataset replaces it.
type Sink interface {
	Publish(ctx context.Context, ds *models.Dataset) error
}

// Loader reads a previously published dataset back, primarily so the
// validate command can check it. Implementations return ErrNotSeeded when
// the target holds no dataset.
type Loader interface {
	Load(ctx context.Context) (*models.Dataset, error)
}
