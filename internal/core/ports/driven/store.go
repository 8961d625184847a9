package driven

import "context"

// RecordStore persists extracted records into named collections.
//
// Implementations serialise records however their backend requires; the
// core hands over plain domain structs. Every call either applies fully
// or not at all: InsertMany never leaves a partial batch behind.
type RecordStore interface {
	// Insert stores one record and returns its generated identifier.
	Insert(ctx context.Context, collection string, record any) (string, error)

	// InsertMany stores a batch of records atomically.
	InsertMany(ctx context.Context, collection string, records []any) error

	// Count returns the number of records in a collection.
	Count(ctx context.Context, collection string) (int, error)

	// Collections lists the collections that hold at least one record.
	Collections(ctx context.Context) ([]string, error)

	// Close releases the connection. Safe to call once per worker;
	// workers close their connection on exit regardless of success.
	Close() error
}

// StoreProvider opens record-store connections. Each ingestion worker
// opens its own connection and owns it for the worker's lifetime, so
// workers never share mutable store state.
type StoreProvider interface {
	Open(ctx context.Context) (RecordStore, error)
}
