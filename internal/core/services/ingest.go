package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/meinbt/meinbt-cli/internal/core/domain"
	"github.com/meinbt/meinbt-cli/internal/core/ports/driven"
	"github.com/meinbt/meinbt-cli/internal/core/ports/driving"
	"github.com/meinbt/meinbt-cli/internal/extract"
	"github.com/meinbt/meinbt-cli/internal/logger"
	"github.com/meinbt/meinbt-cli/internal/xmldom"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// ErrorPolicy decides what a worker does when one top-level element fails
// extraction. The stream surfaces the failure at the element's position;
// the policy is a boundary decision, not a core one.
type ErrorPolicy string

const (
	// PolicyAbort stops processing the file at the failed element.
	// Records extracted before the failure have already been forwarded.
	PolicyAbort ErrorPolicy = "abort"

	// PolicySkip logs the failed element and continues with the next.
	PolicySkip ErrorPolicy = "skip"
)

// ParseErrorPolicy maps user input to an ErrorPolicy.
func ParseErrorPolicy(value string) (ErrorPolicy, error) {
	switch value {
	case string(PolicyAbort):
		return PolicyAbort, nil
	case string(PolicySkip):
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("unknown error policy: %q", value)
	}
}

// DefaultBatchSize is the number of records per InsertMany call.
const DefaultBatchSize = 64

// IngestOptions configures an ingestion run.
type IngestOptions struct {
	// BatchSize is the number of records per store batch.
	// Zero means DefaultBatchSize.
	BatchSize int

	// OnError is the per-element failure policy. Empty means abort.
	OnError ErrorPolicy

	// DryRun extracts and counts records without opening a store.
	DryRun bool
}

// IngestService coordinates ingestion workers. One worker runs per input;
// each owns its parsed tree and its own store connection, closed on exit
// regardless of success or failure.
type IngestService struct {
	stores  driven.StoreProvider
	events  driven.EventSink
	options IngestOptions
}

// NewIngestService creates an ingestion service. The event sink is
// optional; a nil sink drops events.
func NewIngestService(stores driven.StoreProvider, events driven.EventSink, options IngestOptions) *IngestService {
	if options.BatchSize <= 0 {
		options.BatchSize = DefaultBatchSize
	}
	if options.OnError == "" {
		options.OnError = PolicyAbort
	}
	return &IngestService{
		stores:  stores,
		events:  events,
		options: options,
	}
}

// Ingest processes every input concurrently and returns the aggregate
// report. A worker failure terminates that worker only; the run error is
// the join of all per-file failures.
func (s *IngestService) Ingest(ctx context.Context, schema domain.Schema, inputs []driven.Input) (*driving.Report, error) {
	reports := make([]driving.FileReport, len(inputs))

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(worker int, input driven.Input) {
			defer wg.Done()
			reports[worker] = s.processInput(ctx, worker, schema, input)
		}(i, input)
	}
	wg.Wait()

	report := &driving.Report{Files: reports}
	var errs []error
	for _, file := range reports {
		report.Records += file.Records
		report.Failures += file.Failures
		if file.Err != nil {
			report.Failures++
			errs = append(errs, fmt.Errorf("%s: %w", file.URI, file.Err))
		}
	}

	return report, errors.Join(errs...)
}

// processInput runs one worker: parse the input, drive the record stream,
// forward records to the store in document order.
func (s *IngestService) processInput(ctx context.Context, worker int, schema domain.Schema, input driven.Input) driving.FileReport {
	report := driving.FileReport{URI: input.URI(), Worker: worker}
	collection := schema.Collection()

	s.emit(driven.Event{Type: driven.EventFileStarted, Worker: worker, URI: report.URI, Collection: collection})
	logger.Debug("worker %d parses input %s", worker, report.URI)

	fail := func(err error) driving.FileReport {
		report.Err = err
		s.emit(driven.Event{Type: driven.EventFileFailed, Worker: worker, URI: report.URI, Collection: collection, Err: err})
		return report
	}

	var store driven.RecordStore
	if !s.options.DryRun {
		var err error
		store, err = s.stores.Open(ctx)
		if err != nil {
			return fail(fmt.Errorf("open store: %w", err))
		}
		defer store.Close()
	}

	reader, err := input.Open(ctx)
	if err != nil {
		return fail(fmt.Errorf("open input: %w", err))
	}
	tree, err := xmldom.Parse(reader)
	reader.Close()
	if err != nil {
		return fail(fmt.Errorf("parse input: %w", err))
	}

	stream := extract.NewStream(tree, schema)
	if report.Version, err = stream.Version(); err != nil {
		return fail(err)
	}

	batch := make([]any, 0, s.options.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if store != nil {
			if err := store.InsertMany(ctx, collection, batch); err != nil {
				return fmt.Errorf("insert batch: %w", err)
			}
		}
		report.Records += len(batch)
		s.emit(driven.Event{Type: driven.EventRecordsInserted, Worker: worker, URI: report.URI, Collection: collection, Records: len(batch)})
		batch = batch[:0]
		return nil
	}

	for record, recordErr := range stream.Records() {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		if recordErr != nil {
			s.emit(driven.Event{Type: driven.EventRecordFailed, Worker: worker, URI: report.URI, Collection: collection, Err: recordErr})

			if s.options.OnError == PolicySkip {
				report.Failures++
				logger.Debug("worker %d skips element: %v", worker, recordErr)
				continue
			}
			// Under abort the failed element surfaces as the file error;
			// counting it in Failures too would double-count it in the
			// aggregate report.
			// Abort: records extracted before the failure were already
			// produced in document order and still reach the store.
			if err := flush(); err != nil {
				return fail(err)
			}
			return fail(recordErr)
		}

		batch = append(batch, record)
		if len(batch) >= s.options.BatchSize {
			if err := flush(); err != nil {
				return fail(err)
			}
		}
	}

	if err := flush(); err != nil {
		return fail(err)
	}

	s.emit(driven.Event{Type: driven.EventFileCompleted, Worker: worker, URI: report.URI, Collection: collection, Records: report.Records})
	logger.Info("worker %d completed %s: %d records, %d failures", worker, report.URI, report.Records, report.Failures)
	return report
}

func (s *IngestService) emit(event driven.Event) {
	if s.events != nil {
		s.events.Emit(event)
	}
}
