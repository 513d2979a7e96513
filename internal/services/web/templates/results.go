package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// SummaryView carries the headline projection figures, pre-formatted.
type SummaryView struct {
	Final         string
	Contributed   string
	Interest      string
	InterestShare string
}

// ScenarioView is one row of the rate comparison.
type ScenarioView struct {
	Rate  string
	Final string
	Base  bool
}

// BarView is one chart bar. Heights are integer percentages so the template
// emits stable style attributes.
type BarView struct {
	// Label is the year shown under the bar.
	Label string
	// HeightPercent sizes the bar relative to the final balance.
	HeightPercent int
	// ContribPercent is the contributed share of this bar's height.
	ContribPercent int
}

// YearRow is one year of the projection table, pre-formatted.
type YearRow struct {
	Year         string
	Start        string
	Contribution string
	Interest     string
	End          string
}

// ResultsView bundles everything the results fragment renders.
type ResultsView struct {
	Summary   SummaryView
	Bars      []BarView
	Scenarios []ScenarioView
	Rows      []YearRow
}

// Results renders the projection results fragment. The enclosing element id
// matches the form's hx-target so HTMX swaps it in place.
func Results(loc Localizer, view ResultsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="results" class="results">
`); err != nil {
			return err
		}
		if err := renderSummary(w, loc, view.Summary); err != nil {
			return err
		}
		if err := renderChart(w, loc, view.Bars); err != nil {
			return err
		}
		if err := renderScenarios(w, loc, view.Scenarios); err != nil {
			return err
		}
		if err := renderYearTable(w, loc, view.Rows); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</section>\n")
		return err
	})
}

func renderSummary(w io.Writer, loc Localizer, summary SummaryView) error {
	cards := []struct {
		labelKey string
		value    string
	}{
		{labelKey: "calculator.results.final", value: summary.Final},
		{labelKey: "calculator.results.contributed", value: summary.Contributed},
		{labelKey: "calculator.results.interest", value: summary.Interest},
		{labelKey: "calculator.results.interest_share", value: summary.InterestShare},
	}
	if _, err := io.WriteString(w, `<div class="summary-cards">
`); err != nil {
		return err
	}
	for _, card := range cards {
		if _, err := fmt.Fprintf(w, `<div class="summary-card"><span class="summary-label">%s</span><span class="summary-value">%s</span></div>
`,
			templ.EscapeString(T(loc, card.labelKey)),
			templ.EscapeString(card.value),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}

func renderChart(w io.Writer, loc Localizer, bars []BarView) error {
	if len(bars) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<div class="chart">
<h2>%s</h2>
<div class="chart-bars">
`, templ.EscapeString(T(loc, "calculator.chart.title"))); err != nil {
		return err
	}
	for _, bar := range bars {
		if _, err := fmt.Fprintf(w, `<div class="chart-col"><div class="chart-bar" style="height:%d%%"><div class="chart-bar-contrib" style="height:%d%%"></div></div><span class="chart-label">%s</span></div>
`,
			bar.HeightPercent,
			bar.ContribPercent,
			templ.EscapeString(bar.Label),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>\n</div>\n")
	return err
}

func renderScenarios(w io.Writer, loc Localizer, scenarios []ScenarioView) error {
	if len(scenarios) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<div class="compare">
<h2>%s</h2>
<ul class="compare-list">
`, templ.EscapeString(T(loc, "calculator.compare.title"))); err != nil {
		return err
	}
	for _, scenario := range scenarios {
		class := "compare-item"
		badge := ""
		if scenario.Base {
			class += " compare-item-base"
			badge = fmt.Sprintf(`<span class="compare-badge">%s</span>`, templ.EscapeString(T(loc, "calculator.compare.base")))
		}
		if _, err := fmt.Fprintf(w, `<li class="%s"><span>%s</span><span>%s</span>%s</li>
`,
			class,
			templ.EscapeString(scenario.Rate),
			templ.EscapeString(scenario.Final),
			badge,
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</ul>\n</div>\n")
	return err
}

func renderYearTable(w io.Writer, loc Localizer, rows []YearRow) error {
	if len(rows) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<table class="year-table">
<thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead>
<tbody>
`,
		templ.EscapeString(T(loc, "calculator.table.year")),
		templ.EscapeString(T(loc, "calculator.table.start")),
		templ.EscapeString(T(loc, "calculator.table.contribution")),
		templ.EscapeString(T(loc, "calculator.table.interest")),
		templ.EscapeString(T(loc, "calculator.table.end")),
	); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>
`,
			templ.EscapeString(row.Year),
			templ.EscapeString(row.Start),
			templ.EscapeString(row.Contribution),
			templ.EscapeString(row.Interest),
			templ.EscapeString(row.End),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</tbody>\n</table>\n")
	return err
}
