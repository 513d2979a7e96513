package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/platform/timeouts"
)

// InputsLatestPayload represents the MCP resource payload for the shared
// calculator inputs.
type InputsLatestPayload struct {
	Present bool           `json:"present"`
	Inputs  *inputs.Inputs `json:"inputs,omitempty"`
}

// InputsLatestResource defines the MCP resource for the shared inputs.
func InputsLatestResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "inputs_latest",
		Title:       "Latest calculator inputs",
		Description: "The most recent projection inputs shared across surfaces",
		MIMEType:    "application/json",
		URI:         "inputs://latest",
	}
}

// InputsLatestResourceHandler returns the shared inputs as a readable resource.
func InputsLatestResourceHandler(store inputs.Store) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if store == nil {
			return nil, fmt.Errorf("inputs store is not configured")
		}

		uri := InputsLatestResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		runCtx, cancel := context.WithTimeout(ctx, timeouts.MCPTool)
		defer cancel()

		current, ok, err := store.Current(runCtx)
		if err != nil {
			return nil, fmt.Errorf("read latest inputs: %w", err)
		}

		payload := InputsLatestPayload{Present: ok}
		if ok {
			payload.Inputs = &current
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal latest inputs: %w", err)
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
