// Package connectors provides implementations of the InputResolver
// interface for various export sources. Each connector knows how to turn
// user-supplied locations of a specific kind (filesystem paths, archives)
// into ingestion inputs.
package connectors
