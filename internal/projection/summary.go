package projection

// Summary holds the aggregates derived from one full snapshot sequence.
type Summary struct {
	// FinalBalance is the end balance of the last snapshot.
	FinalBalance float64
	// TotalContributed is the running contribution total after the last year.
	TotalContributed float64
	// TotalInterest is FinalBalance minus TotalContributed.
	TotalInterest float64
	// InterestPercent is the interest earned relative to the amount
	// contributed, in percent. Zero when nothing was contributed.
	InterestPercent float64
}

// Summarize derives the aggregate figures from a snapshot sequence.
func Summarize(snapshots []Snapshot) Summary {
	if len(snapshots) == 0 {
		return Summary{}
	}
	last := snapshots[len(snapshots)-1]
	summary := Summary{
		FinalBalance:     last.EndBalance,
		TotalContributed: last.TotalContributed,
	}
	summary.TotalInterest = summary.FinalBalance - summary.TotalContributed
	if summary.TotalContributed != 0 {
		summary.InterestPercent = summary.TotalInterest / summary.TotalContributed * 100
	}
	return summary
}
