// Package memory provides an in-memory record store used in tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/meinbt/meinbt-cli/internal/core/domain"
	"github.com/meinbt/meinbt-cli/internal/core/ports/driven"
)

var (
	_ driven.RecordStore   = (*Store)(nil)
	_ driven.StoreProvider = (*Provider)(nil)
)

// Provider hands every worker a connection to the same shared store, so
// tests can assert over everything the workers wrote.
type Provider struct {
	store *Store
}

// NewProvider creates a provider backed by a single shared store.
func NewProvider() *Provider {
	return &Provider{store: NewStore()}
}

// Open returns a connection to the shared store.
func (p *Provider) Open(_ context.Context) (driven.RecordStore, error) {
	return &conn{store: p.store}, nil
}

// Store returns the shared store for assertions.
func (p *Provider) Store() *Store {
	return p.store
}

// Store keeps records per collection, guarded by a mutex.
type Store struct {
	mu          sync.Mutex
	collections map[string][]any
	nextID      int
	closed      bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{collections: make(map[string][]any)}
}

// Insert stores one record and returns its generated identifier.
func (s *Store) Insert(_ context.Context, collection string, record any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", domain.ErrStoreClosed
	}
	s.nextID++
	s.collections[collection] = append(s.collections[collection], record)
	return fmt.Sprintf("%d", s.nextID), nil
}

// InsertMany stores a batch of records.
func (s *Store) InsertMany(_ context.Context, collection string, records []any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStoreClosed
	}
	s.collections[collection] = append(s.collections[collection], records...)
	return nil
}

// Count returns the number of records in a collection.
func (s *Store) Count(_ context.Context, collection string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, domain.ErrStoreClosed
	}
	return len(s.collections[collection]), nil
}

// Collections lists the collections that hold at least one record.
func (s *Store) Collections(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, domain.ErrStoreClosed
	}
	var names []string
	for name, records := range s.collections {
		if len(records) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Records returns a copy of the records stored in a collection.
func (s *Store) Records(collection string) []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]any, len(s.collections[collection]))
	copy(records, s.collections[collection])
	return records
}

// Close marks the store as closed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// conn is one worker's handle on the shared store. Closing the handle
// does not close the store itself.
type conn struct {
	store *Store
}

func (c *conn) Insert(ctx context.Context, collection string, record any) (string, error) {
	return c.store.Insert(ctx, collection, record)
}

func (c *conn) InsertMany(ctx context.Context, collection string, records []any) error {
	return c.store.InsertMany(ctx, collection, records)
}

func (c *conn) Count(ctx context.Context, collection string) (int, error) {
	return c.store.Count(ctx, collection)
}

func (c *conn) Collections(ctx context.Context) ([]string, error) {
	return c.store.Collections(ctx)
}

func (c *conn) Close() error {
	return nil
}
