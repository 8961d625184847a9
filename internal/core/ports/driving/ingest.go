package driving

import (
	"context"

	"github.com/meinbt/meinbt-cli/internal/core/domain"
	"github.com/meinbt/meinbt-cli/internal/core/ports/driven"
)

// Ingestor drives extraction of input files into the record store.
type Ingestor interface {
	// Ingest processes every input concurrently, one worker per input,
	// and returns the aggregate report. The returned error is non-nil
	// when at least one worker failed; per-file causes live in the
	// report. Records within one input reach the store in document
	// order; no order is guaranteed across inputs.
	Ingest(ctx context.Context, schema domain.Schema, inputs []driven.Input) (*Report, error)
}

// FileReport describes the outcome of one input.
type FileReport struct {
	// URI names the input.
	URI string

	// Worker is the id of the worker that processed the input.
	Worker int

	// Version is the schema version declared by the input, if any.
	Version string

	// Records is the number of records stored.
	Records int

	// Failures is the number of elements that failed extraction and
	// were skipped under the skip policy.
	Failures int

	// Err is the failure that aborted the input, if any.
	Err error
}

// Report aggregates a whole ingestion run.
type Report struct {
	// Files holds one entry per input, in completion order.
	Files []FileReport

	// Records is the total number of stored records.
	Records int

	// Failures is the total number of failed elements and files.
	Failures int
}
