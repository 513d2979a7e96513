package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/okastrup/renteregner.dk/internal/platform/timeouts"
	"github.com/okastrup/renteregner.dk/internal/storage"
)

const telemetryRecentLimit = 50

// TelemetryEventEntry represents one readable telemetry record.
type TelemetryEventEntry struct {
	ID         string          `json:"id"`
	Timestamp  string          `json:"timestamp"`
	EventName  string          `json:"event_name"`
	Severity   string          `json:"severity"`
	Source     string          `json:"source"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
}

// TelemetryRecentPayload represents the MCP resource payload for recent
// telemetry events.
type TelemetryRecentPayload struct {
	Events []TelemetryEventEntry `json:"events"`
}

// TelemetryRecentResource defines the MCP resource for recent telemetry.
func TelemetryRecentResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "telemetry_recent",
		Title:       "Recent projection runs",
		Description: "The most recent recorded projection telemetry events",
		MIMEType:    "application/json",
		URI:         "telemetry://recent",
	}
}

// TelemetryRecentResourceHandler returns recent telemetry events as a
// readable resource.
func TelemetryRecentResourceHandler(reader storage.TelemetryReader) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if reader == nil {
			return nil, fmt.Errorf("telemetry reader is not configured")
		}

		uri := TelemetryRecentResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		runCtx, cancel := context.WithTimeout(ctx, timeouts.MCPTool)
		defer cancel()

		events, err := reader.ListRecentTelemetryEvents(runCtx, telemetryRecentLimit)
		if err != nil {
			return nil, fmt.Errorf("list telemetry events: %w", err)
		}

		payload := TelemetryRecentPayload{}
		for _, evt := range events {
			payload.Events = append(payload.Events, TelemetryEventEntry{
				ID:         evt.ID,
				Timestamp:  evt.Timestamp.UTC().Format(time.RFC3339),
				EventName:  evt.EventName,
				Severity:   evt.Severity,
				Source:     evt.Source,
				Attributes: json.RawMessage(evt.AttributesJSON),
			})
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal telemetry events: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
