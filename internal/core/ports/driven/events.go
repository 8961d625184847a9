package driven

// EventType classifies ingestion progress events.
type EventType string

const (
	// EventFileStarted marks a worker picking up an input.
	EventFileStarted EventType = "file_started"

	// EventRecordsInserted marks a successfully stored batch.
	EventRecordsInserted EventType = "records_inserted"

	// EventRecordFailed marks one record that failed extraction.
	EventRecordFailed EventType = "record_failed"

	// EventFileCompleted marks a worker finishing an input.
	EventFileCompleted EventType = "file_completed"

	// EventFileFailed marks a worker aborting an input.
	EventFileFailed EventType = "file_failed"
)

// Event is one structured progress or failure notification, keyed by the
// worker that produced it. The core raises typed errors and emits events;
// formatting log lines is the sink's concern.
type Event struct {
	// Type classifies the event.
	Type EventType

	// Worker identifies the emitting worker within one run.
	Worker int

	// URI names the input being processed.
	URI string

	// Collection is the target record-store collection.
	Collection string

	// Records is the number of records affected, where applicable.
	Records int

	// Err carries the failure for record_failed and file_failed events.
	Err error
}

// EventSink receives ingestion events. Implementations must be safe for
// concurrent use; workers emit from their own goroutines.
type EventSink interface {
	Emit(event Event)
}
