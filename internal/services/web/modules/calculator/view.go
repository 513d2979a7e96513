package calculator

import (
	"strconv"

	"github.com/okastrup/renteregner.dk/internal/format"
	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/projection"
	webtemplates "github.com/okastrup/renteregner.dk/internal/services/web/templates"
)

// formValues echoes inputs back into the form fields.
func formValues(in inputs.Inputs) webtemplates.FormValues {
	return webtemplates.FormValues{
		Principal: formValue(in.Principal),
		Monthly:   formValue(in.MonthlyContribution),
		Rate:      formValue(in.AnnualRatePercent),
		Years:     strconv.Itoa(in.Years),
	}
}

// resultsView maps a projection result onto the pre-formatted display model.
func resultsView(result projection.Result) webtemplates.ResultsView {
	view := webtemplates.ResultsView{
		Summary: webtemplates.SummaryView{
			Final:         format.DKK(result.Summary.FinalBalance),
			Contributed:   format.DKK(result.Summary.TotalContributed),
			Interest:      format.DKK(result.Summary.TotalInterest),
			InterestShare: format.Percent(result.Summary.InterestPercent),
		},
	}
	for _, scenario := range result.Scenarios {
		view.Scenarios = append(view.Scenarios, webtemplates.ScenarioView{
			Rate:  format.Percent(scenario.AnnualRatePercent),
			Final: format.CompactDKK(scenario.FinalBalance),
			Base:  scenario.Base,
		})
	}
	final := result.Summary.FinalBalance
	for _, snapshot := range result.Snapshots {
		view.Bars = append(view.Bars, webtemplates.BarView{
			Label:          strconv.Itoa(snapshot.Year),
			HeightPercent:  sharePercent(snapshot.EndBalance, final),
			ContribPercent: sharePercent(snapshot.TotalContributed, snapshot.EndBalance),
		})
		view.Rows = append(view.Rows, webtemplates.YearRow{
			Year:         strconv.Itoa(snapshot.Year),
			Start:        format.DKK(snapshot.StartBalance),
			Contribution: format.DKK(snapshot.Contribution),
			Interest:     format.DKK(snapshot.Interest),
			End:          format.DKK(snapshot.EndBalance),
		})
	}
	return view
}

// sharePercent returns part/whole as a clamped integer percentage.
func sharePercent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	pct := int(part / whole * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
