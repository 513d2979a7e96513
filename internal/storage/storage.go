// Package storage defines the persistence contracts shared across services.
package storage

import (
	"context"
	"time"
)

// TelemetryEvent is one operational record of a projection run or a
// surface interaction. Attributes carry event-specific figures; when
// AttributesJSON is set it is stored verbatim instead.
type TelemetryEvent struct {
	ID             string
	Timestamp      time.Time
	EventName      string
	Severity       string
	Source         string
	RequestID      string
	TraceID        string
	SpanID         string
	Attributes     map[string]any
	AttributesJSON []byte
}

// TelemetryStore persists operational telemetry records for audits and
// usage analysis.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, evt TelemetryEvent) error
}

// TelemetryReader lists persisted telemetry records, newest first.
type TelemetryReader interface {
	ListRecentTelemetryEvents(ctx context.Context, limit int) ([]TelemetryEvent, error)
}
