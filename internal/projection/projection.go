package projection

import "math"

// Snapshot captures the investment state at a single year boundary.
type Snapshot struct {
	// Year is the zero-based sequence index.
	Year int
	// StartBalance is the balance at the beginning of the year.
	StartBalance float64
	// Contribution is the amount added during the year. For year zero this
	// is the initial principal.
	Contribution float64
	// Interest is the interest accrued during the year.
	Interest float64
	// EndBalance is the balance after contribution and interest.
	EndBalance float64
	// TotalContributed is the running sum of all contributions, the
	// initial principal included.
	TotalContributed float64
}

// Input holds the parameters of a projection.
type Input struct {
	// Principal is the initial lump-sum amount.
	Principal float64
	// AnnualContribution is the recurring amount added once per simulated
	// year. Callers holding a monthly figure multiply by twelve before
	// calling; the engine never converts units.
	AnnualContribution float64
	// AnnualRatePercent is the nominal yearly growth rate in percent.
	AnnualRatePercent float64
	// Years is the number of simulated years.
	Years int
}

// Normalize coerces an input onto the engine's total domain. Non-finite or
// negative numerics become zero and Years is floored to one. Projection is a
// total function over normalized inputs; range checks stay advisory.
func Normalize(in Input) Input {
	in.Principal = normalizeAmount(in.Principal)
	in.AnnualContribution = normalizeAmount(in.AnnualContribution)
	in.AnnualRatePercent = normalizeAmount(in.AnnualRatePercent)
	if in.Years < 1 {
		in.Years = 1
	}
	return in
}

func normalizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Project maps an input to the full ordered snapshot sequence. The sequence
// has exactly in.Years+1 entries, year zero holding the principal alone.
// Contribution is added before interest is computed for the year, so interest
// accrues on the post-contribution balance. No rounding is applied; display
// formatting is a presentation concern.
func Project(in Input) []Snapshot {
	in = Normalize(in)
	rate := in.AnnualRatePercent / 100

	snapshots := make([]Snapshot, 0, in.Years+1)
	snapshots = append(snapshots, Snapshot{
		Year:             0,
		Contribution:     in.Principal,
		EndBalance:       in.Principal,
		TotalContributed: in.Principal,
	})

	balance := in.Principal
	contributed := in.Principal
	for year := 1; year <= in.Years; year++ {
		start := balance
		balance += in.AnnualContribution
		contributed += in.AnnualContribution
		interest := balance * rate
		balance += interest
		snapshots = append(snapshots, Snapshot{
			Year:             year,
			StartBalance:     start,
			Contribution:     in.AnnualContribution,
			Interest:         interest,
			EndBalance:       balance,
			TotalContributed: contributed,
		})
	}
	return snapshots
}
