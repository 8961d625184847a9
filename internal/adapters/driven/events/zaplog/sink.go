// Package zaplog emits ingestion events as structured log lines.
package zaplog

import (
	"go.uber.org/zap"

	"github.com/meinbt/meinbt-cli/internal/core/ports/driven"
)

var _ driven.EventSink = (*Sink)(nil)

// Sink logs every ingestion event through a zap logger. Zap loggers are
// safe for concurrent use, so workers can emit without coordination.
type Sink struct {
	log *zap.Logger
}

// New creates a sink over the given logger.
func New(log *zap.Logger) *Sink {
	return &Sink{log: log}
}

// Emit logs one event. Failures log at warn level, progress at info,
// batch-level detail at debug.
func (s *Sink) Emit(event driven.Event) {
	fields := []zap.Field{
		zap.Int("worker", event.Worker),
		zap.String("input", event.URI),
		zap.String("collection", event.Collection),
	}

	switch event.Type {
	case driven.EventFileStarted:
		s.log.Info("ingestion started", fields...)
	case driven.EventRecordsInserted:
		s.log.Debug("batch stored", append(fields, zap.Int("records", event.Records))...)
	case driven.EventRecordFailed:
		s.log.Warn("record failed", append(fields, zap.Error(event.Err))...)
	case driven.EventFileCompleted:
		s.log.Info("ingestion completed", append(fields, zap.Int("records", event.Records))...)
	case driven.EventFileFailed:
		s.log.Warn("ingestion failed", append(fields, zap.Error(event.Err))...)
	default:
		s.log.Info(string(event.Type), fields...)
	}
}
