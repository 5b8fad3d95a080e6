// Package store owns the in-memory identity document and serializes every
// mutation through one write lock.
//
// Update applies a mutation to a private copy, persists the copy through the
// gateway, and only then publishes it. A failed save therefore leaves the
// in-memory state equal to the last durable state, and callers see
// durability on return.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"github.com/dmitrijs2005/voxkeeper/internal/logging"
	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
	"github.com/dmitrijs2005/voxkeeper/internal/server/persistence"
)

type Store struct {
	mu      sync.RWMutex
	doc     *models.Document
	gateway persistence.Gateway
	logger  logging.Logger
}

// Open loads the document once through gw and returns a ready store.
func Open(ctx context.Context, gw persistence.Gateway, logger logging.Logger) (*Store, error) {
	doc, err := gw.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	logger = logger.With("module", "store")
	logger.Info(ctx, "Store loaded", "users", len(doc.Users))

	return &Store{doc: doc, gateway: gw, logger: logger}, nil
}

// View runs fn against the current document under the read lock. fn must
// not modify the document or retain references into it after returning.
func (s *Store) View(fn func(doc *models.Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.doc)
}

// Update runs fn against a copy of the document under the write lock and
// persists the result before publishing it. If fn returns an error nothing
// is saved and that error is returned unchanged. A failed save returns an
// error wrapping common.ErrPersistenceFailure.
func (s *Store) Update(ctx context.Context, fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if err := fn(next); err != nil {
		return err
	}

	if err := s.gateway.Save(ctx, next); err != nil {
		s.logger.Error(ctx, "Store save failed", "error", err)
		return fmt.Errorf("%w: %v", common.ErrPersistenceFailure, err)
	}

	s.doc = next
	return nil
}
