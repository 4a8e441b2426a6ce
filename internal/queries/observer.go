package queries

import (
	"log/slog"
	"time"
)

// EventType names a phase of a query run.
type EventType string

const (
	EventRunStart EventType = "run_start"
	EventRunEnd   EventType = "run_end"
)

// Event describes one phase of a query run. Duration is set on EventRunEnd
// only.
type Event struct {
	Type      EventType
	RunID     string
	Dataset   string
	Query     string
	Mutates   bool
	Timestamp time.Time
	Duration  time.Duration
}

// Observer receives run events from a Catalog.
type Observer interface {
	OnEvent(event Event)
}

// LoggingObserver logs every run event at debug level.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver returns an observer writing to logger, or to
// slog.Default when logger is nil.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

func (lo *LoggingObserver) OnEvent(event Event) {
	attrs := []any{
		"event", event.Type,
		"run_id", event.RunID,
		"dataset", event.Dataset,
		"query", event.Query,
	}
	if event.Type == EventRunEnd {
		attrs = append(attrs, "duration", event.Duration)
		if event.Mutates {
			attrs = append(attrs, "mutates", true)
		}
	}
	lo.logger.Debug("query_run", attrs...)
}
