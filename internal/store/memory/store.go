// Package memory provides an in-memory dataset store for tests.
package memory

import (
	"context"
	"sync"

	"github.com/wolfeidau/taskseed/internal/models"
	"github.com/wolfeidau/taskseed/internal/store"
)

// Store retains the most recently published dataset so tests can assert
// against it through the same Sink and Loader interfaces the real stores
// implement.
type Store struct {
	mu sync.RWMutex
	ds *models.Dataset
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Publish retains the dataset, replacing any previous one.
func (s *Store) Publish(_ context.Context, ds *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ds = ds
	return nil
}

// Load returns the retained dataset, or store.ErrNotSeeded when nothing
// has been published.
func (s *Store) Load(_ context.Context) (*models.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ds == nil {
		return nil, store.ErrNotSeeded
	}
	return s.ds, nil
}
