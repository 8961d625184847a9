// Package services implements the core use cases behind the driving
// ports. The ingestion service owns the worker model: one goroutine per
// input file, each with its own store connection, no shared mutable
// state between workers.
package services
