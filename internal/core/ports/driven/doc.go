// Package driven defines the secondary ports of the hexagon: interfaces
// the core needs implemented by infrastructure adapters.
//
//   - RecordStore / StoreProvider: persistence of extracted records
//   - EventSink: structured progress and failure events per worker
//   - Input / InputResolver: readable sources of markup to ingest
//   - ConfigStore: application configuration
//
// Adapters under internal/adapters/driven implement these interfaces;
// the core services only ever see the ports.
package driven
