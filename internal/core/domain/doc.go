// Package domain defines the core business entities for meinBT.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Member: A Member of the German Bundestag with names, biography and terms
//   - Drucksache: A parliamentary printed-matter record
//   - Date: An optional calendar date extracted from DD.MM.YYYY text
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
