// Package inputs holds the latest calculator inputs a visitor submitted,
// so the landing page and the MCP surface can prefill from the same state.
package inputs

import (
	"context"

	"github.com/okastrup/renteregner.dk/internal/projection"
)

// Inputs are the raw figures a visitor types into the calculator form.
// The contribution is the monthly amount shown in the form; annualize it
// through ProjectionInput before projecting.
type Inputs struct {
	Principal           float64 `json:"principal"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRatePercent   float64 `json:"annual_rate_percent"`
	Years               int     `json:"years"`
}

// ProjectionInput converts form figures into the annual terms the
// projection engine works in.
func (in Inputs) ProjectionInput() projection.Input {
	return projection.Input{
		Principal:          in.Principal,
		AnnualContribution: in.MonthlyContribution * 12,
		AnnualRatePercent:  in.AnnualRatePercent,
		Years:              in.Years,
	}
}

// Store persists the most recent inputs and notifies subscribers when they
// change.
type Store interface {
	// Current returns the latest stored inputs. The second return is false
	// when nothing has been stored yet.
	Current(ctx context.Context) (Inputs, bool, error)
	// Put replaces the stored inputs and notifies subscribers.
	Put(ctx context.Context, in Inputs) error
	// Subscribe registers fn to run on every Put. The returned func
	// unsubscribes.
	Subscribe(fn func(Inputs)) (func(), error)
}
