package projection

// Display range limits. Values outside these ranges are flagged for inline
// user feedback but never block computation.
const (
	MaxPrincipal          = 100_000_000
	MaxAnnualContribution = 12_000_000
	MaxRatePercent        = 50
	MaxYears              = 100
)

// Validity carries per-field advisory range flags.
type Validity struct {
	Principal    bool
	Contribution bool
	Rate         bool
	Years        bool
}

// OK reports whether every field sits inside its documented range.
func (v Validity) OK() bool {
	return v.Principal && v.Contribution && v.Rate && v.Years
}

// Validate flags fields outside their documented display ranges. The
// projection still runs with whatever numeric values are present.
func Validate(in Input) Validity {
	return Validity{
		Principal:    in.Principal >= 0 && in.Principal <= MaxPrincipal,
		Contribution: in.AnnualContribution >= 0 && in.AnnualContribution <= MaxAnnualContribution,
		Rate:         in.AnnualRatePercent >= 0 && in.AnnualRatePercent <= MaxRatePercent,
		Years:        in.Years >= 1 && in.Years <= MaxYears,
	}
}
