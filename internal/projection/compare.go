package projection

// Scenario pairs an alternate annual rate with the final balance it would
// produce for otherwise identical inputs.
type Scenario struct {
	// AnnualRatePercent is the shifted rate of this scenario.
	AnnualRatePercent float64
	// FinalBalance is the end balance after the full duration.
	FinalBalance float64
	// Base marks the scenario carrying the caller's own rate.
	Base bool
}

// rateGaps returns the wide and narrow comparison gaps for a base rate. The
// gaps shrink with the base rate so low-rate projections still get visibly
// distinct neighbours, with floors keeping the narrow band meaningful.
func rateGaps(ratePercent float64) (wide, narrow float64) {
	switch {
	case ratePercent >= 15:
		return 8, 4
	case ratePercent >= 8:
		return 6, 3
	case ratePercent >= 4:
		return 3, 1.5
	default:
		return max(1, ratePercent*0.4), max(0.5, ratePercent*0.2)
	}
}

// Compare projects the same principal, contribution and duration under the
// base rate and four shifted rates. Scenarios are ordered by rate ascending,
// shifted rates never drop below zero, and rates that clamp onto the same
// value collapse into a single scenario so exactly one carries the base flag.
func Compare(in Input) []Scenario {
	in = Normalize(in)
	wide, narrow := rateGaps(in.AnnualRatePercent)

	rates := []float64{
		max(0, in.AnnualRatePercent-wide),
		max(0, in.AnnualRatePercent-narrow),
		in.AnnualRatePercent,
		in.AnnualRatePercent + narrow,
		in.AnnualRatePercent + wide,
	}
	const baseIndex = 2

	scenarios := make([]Scenario, 0, len(rates))
	for i, rate := range rates {
		if n := len(scenarios); n > 0 && scenarios[n-1].AnnualRatePercent == rate {
			if i == baseIndex {
				scenarios[n-1].Base = true
			}
			continue
		}
		shifted := in
		shifted.AnnualRatePercent = rate
		snapshots := Project(shifted)
		scenarios = append(scenarios, Scenario{
			AnnualRatePercent: rate,
			FinalBalance:      snapshots[len(snapshots)-1].EndBalance,
			Base:              i == baseIndex,
		})
	}
	return scenarios
}
