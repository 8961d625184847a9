// Package sqlite provides the SQLite-backed record store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. Collections map
// to rows in a single records table with the record body stored as JSON,
// keeping the store schema-free like the document database it replaces.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.meinbt/data/meinbt.db
//
// # Concurrency
//
// Each ingestion worker opens its own connection through Provider. WAL
// mode plus a busy timeout lets concurrent workers write to the same
// database file without coordination in the application.
package sqlite
