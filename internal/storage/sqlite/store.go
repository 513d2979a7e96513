// Package sqlite provides SQLite-backed persistence for telemetry events.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	sqlitemigrate "github.com/okastrup/renteregner.dk/internal/platform/storage/sqlitemigrate"
	"github.com/okastrup/renteregner.dk/internal/storage"
	"github.com/okastrup/renteregner.dk/internal/storage/sqlite/migrations"
)

// Store provides SQLite-backed telemetry persistence.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a telemetry SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendTelemetryEvent implements storage.TelemetryStore.
func (s *Store) AppendTelemetryEvent(ctx context.Context, evt storage.TelemetryEvent) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	evt.EventName = strings.TrimSpace(evt.EventName)
	if evt.EventName == "" {
		return fmt.Errorf("event name is required")
	}
	evt.Severity = strings.TrimSpace(evt.Severity)
	if evt.Severity == "" {
		return fmt.Errorf("severity is required")
	}
	if evt.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}
	if strings.TrimSpace(evt.ID) == "" {
		evt.ID = uuid.NewString()
	}

	attrs := evt.AttributesJSON
	if len(attrs) == 0 {
		if evt.Attributes == nil {
			attrs = []byte("{}")
		} else {
			encoded, err := json.Marshal(evt.Attributes)
			if err != nil {
				return fmt.Errorf("encode attributes: %w", err)
			}
			attrs = encoded
		}
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO telemetry_events
		 (id, timestamp, event_name, severity, source, request_id, trace_id, span_id, attributes_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		evt.ID,
		evt.Timestamp.UTC().UnixMilli(),
		evt.EventName,
		evt.Severity,
		evt.Source,
		evt.RequestID,
		evt.TraceID,
		evt.SpanID,
		string(attrs),
	)
	if err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}

// ListRecentTelemetryEvents implements storage.TelemetryReader.
func (s *Store) ListRecentTelemetryEvents(ctx context.Context, limit int) ([]storage.TelemetryEvent, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, timestamp, event_name, severity, source, request_id, trace_id, span_id, attributes_json
		 FROM telemetry_events
		 ORDER BY timestamp DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list telemetry events: %w", err)
	}
	defer rows.Close()

	var events []storage.TelemetryEvent
	for rows.Next() {
		var evt storage.TelemetryEvent
		var millis int64
		var attrs string
		err := rows.Scan(
			&evt.ID,
			&millis,
			&evt.EventName,
			&evt.Severity,
			&evt.Source,
			&evt.RequestID,
			&evt.TraceID,
			&evt.SpanID,
			&attrs,
		)
		if err != nil {
			return nil, fmt.Errorf("scan telemetry event: %w", err)
		}
		evt.Timestamp = time.UnixMilli(millis).UTC()
		evt.AttributesJSON = []byte(attrs)
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list telemetry events: %w", err)
	}
	return events, nil
}
