package driven

import (
	"context"
	"io"
)

// Input is one unit of ingestion work: a readable source of markup.
// Inputs stay unopened until a worker claims them, so resolving a large
// directory or archive does not hold file handles.
type Input interface {
	// URI identifies the input for reporting, e.g. a file path or an
	// "archive.zip!entry.xml" pair.
	URI() string

	// Open returns the markup bytes. The caller closes the reader.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// InputResolver expands user-supplied arguments into concrete inputs.
type InputResolver interface {
	// Resolve maps each argument (file, directory, or archive) to its
	// inputs, preserving argument order.
	Resolve(ctx context.Context, args []string) ([]Input, error)

	// Watch emits inputs as they appear in a drop directory until the
	// context is cancelled. The channels close when watching stops.
	Watch(ctx context.Context, dir string) (<-chan Input, <-chan error)
}
