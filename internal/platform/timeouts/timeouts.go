// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Telemetry caps the time spent recording a telemetry event so a slow
// store never delays a page response.
const Telemetry = 2 * time.Second

// MCPTool caps the time allowed for a single MCP tool call.
const MCPTool = 5 * time.Second
