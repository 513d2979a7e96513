// Package domain defines the MCP tools and resources for compound
// interest projections.
package domain

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/platform/metrics"
	"github.com/okastrup/renteregner.dk/internal/platform/timeouts"
	"github.com/okastrup/renteregner.dk/internal/projection"
	"github.com/okastrup/renteregner.dk/internal/storage"
	"github.com/okastrup/renteregner.dk/internal/telemetry"
)

// ProjectionInput represents the MCP tool input for projection runs.
type ProjectionInput struct {
	Principal           float64 `json:"principal" jsonschema:"starting balance in DKK"`
	MonthlyContribution float64 `json:"monthly_contribution" jsonschema:"monthly contribution in DKK"`
	AnnualRatePercent   float64 `json:"annual_rate_percent" jsonschema:"expected annual return in percent"`
	Years               int     `json:"years" jsonschema:"investment horizon in years"`
}

// YearEntry represents one yearly snapshot in a projection result.
type YearEntry struct {
	Year         int     `json:"year"`
	StartBalance float64 `json:"start_balance"`
	Contribution float64 `json:"contribution"`
	Interest     float64 `json:"interest"`
	EndBalance   float64 `json:"end_balance"`
}

// ProjectionResult represents the MCP tool output for projection runs.
type ProjectionResult struct {
	FinalBalance     float64     `json:"final_balance" jsonschema:"balance at the end of the horizon"`
	TotalContributed float64     `json:"total_contributed" jsonschema:"principal plus all contributions"`
	TotalInterest    float64     `json:"total_interest" jsonschema:"interest earned over the horizon"`
	Years            []YearEntry `json:"years" jsonschema:"yearly snapshots"`
	Warnings         []string    `json:"warnings,omitempty" jsonschema:"advisory range notes, never blocking"`
}

// ScenarioEntry represents one alternative-rate scenario.
type ScenarioEntry struct {
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	FinalBalance      float64 `json:"final_balance"`
	Base              bool    `json:"base"`
}

// CompareResult represents the MCP tool output for rate comparisons.
type CompareResult struct {
	Scenarios []ScenarioEntry `json:"scenarios" jsonschema:"projections at alternative annual rates"`
}

// ProjectionRunTool defines the MCP tool schema for running a projection.
func ProjectionRunTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "projection_run",
		Description: "Computes compound interest growth year by year for the given inputs",
	}
}

// ProjectionCompareTool defines the MCP tool schema for rate comparisons.
func ProjectionCompareTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "projection_compare",
		Description: "Compares the final balance across alternative annual return rates",
	}
}

// ProjectionRunHandler executes a projection run and shares the inputs with
// the web surface through the store.
func ProjectionRunHandler(engine *projection.Engine, store inputs.Store, emitter *telemetry.Emitter, m *metrics.Metrics) mcp.ToolHandlerFor[ProjectionInput, ProjectionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectionInput) (*mcp.CallToolResult, ProjectionResult, error) {
		if engine == nil {
			return nil, ProjectionResult{}, fmt.Errorf("projection engine is not configured")
		}

		runCtx, cancel := context.WithTimeout(ctx, timeouts.MCPTool)
		defer cancel()

		start := time.Now()
		result := engine.Run(toEngineInput(input))
		m.ObserveProjection(start)
		m.IncrementProjectionRun("mcp")

		if store != nil {
			if err := store.Put(runCtx, toStoredInputs(input, result.Input)); err != nil {
				return nil, ProjectionResult{}, fmt.Errorf("store inputs: %w", err)
			}
		}
		emitRun(runCtx, emitter, result)

		return nil, toProjectionResult(result), nil
	}
}

// ProjectionCompareHandler executes a rate comparison.
func ProjectionCompareHandler(engine *projection.Engine) mcp.ToolHandlerFor[ProjectionInput, CompareResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectionInput) (*mcp.CallToolResult, CompareResult, error) {
		if engine == nil {
			return nil, CompareResult{}, fmt.Errorf("projection engine is not configured")
		}

		result := engine.Run(toEngineInput(input))
		compare := CompareResult{}
		for _, scenario := range result.Scenarios {
			compare.Scenarios = append(compare.Scenarios, ScenarioEntry{
				AnnualRatePercent: scenario.AnnualRatePercent,
				FinalBalance:      scenario.FinalBalance,
				Base:              scenario.Base,
			})
		}
		return nil, compare, nil
	}
}

func toEngineInput(input ProjectionInput) projection.Input {
	stored := inputs.Inputs{
		Principal:           input.Principal,
		MonthlyContribution: input.MonthlyContribution,
		AnnualRatePercent:   input.AnnualRatePercent,
		Years:               input.Years,
	}
	return stored.ProjectionInput()
}

// toStoredInputs keeps the caller's monthly figure but takes the rest from
// the normalized engine input so the web surface prefills sane values.
func toStoredInputs(input ProjectionInput, normalized projection.Input) inputs.Inputs {
	monthly := input.MonthlyContribution
	if monthly < 0 {
		monthly = 0
	}
	return inputs.Inputs{
		Principal:           normalized.Principal,
		MonthlyContribution: monthly,
		AnnualRatePercent:   normalized.AnnualRatePercent,
		Years:               normalized.Years,
	}
}

func toProjectionResult(result projection.Result) ProjectionResult {
	out := ProjectionResult{
		FinalBalance:     result.Summary.FinalBalance,
		TotalContributed: result.Summary.TotalContributed,
		TotalInterest:    result.Summary.TotalInterest,
		Warnings:         validityWarnings(result.Validity),
	}
	for _, snapshot := range result.Snapshots {
		if snapshot.Year == 0 {
			continue
		}
		out.Years = append(out.Years, YearEntry{
			Year:         snapshot.Year,
			StartBalance: snapshot.StartBalance,
			Contribution: snapshot.Contribution,
			Interest:     snapshot.Interest,
			EndBalance:   snapshot.EndBalance,
		})
	}
	return out
}

func validityWarnings(v projection.Validity) []string {
	var warnings []string
	if !v.Principal {
		warnings = append(warnings, fmt.Sprintf("principal exceeds %d DKK", projection.MaxPrincipal))
	}
	if !v.Contribution {
		warnings = append(warnings, fmt.Sprintf("annual contribution exceeds %d DKK", projection.MaxAnnualContribution))
	}
	if !v.Rate {
		warnings = append(warnings, fmt.Sprintf("annual rate exceeds %d percent", projection.MaxRatePercent))
	}
	if !v.Years {
		warnings = append(warnings, fmt.Sprintf("horizon exceeds %d years", projection.MaxYears))
	}
	return warnings
}

func emitRun(ctx context.Context, emitter *telemetry.Emitter, result projection.Result) {
	emitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.Telemetry)
	defer cancel()

	err := emitter.Emit(emitCtx, storage.TelemetryEvent{
		EventName: "projection.run",
		Severity:  string(telemetry.SeverityInfo),
		Source:    "mcp",
		Attributes: map[string]any{
			"principal":           result.Input.Principal,
			"annual_contribution": result.Input.AnnualContribution,
			"rate_percent":        result.Input.AnnualRatePercent,
			"years":               result.Input.Years,
			"final_balance":       result.Summary.FinalBalance,
		},
	})
	if err != nil {
		log.Printf("mcp: emit telemetry: %v", err)
	}
}
