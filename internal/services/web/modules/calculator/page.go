package calculator

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/okastrup/renteregner.dk/internal/projection"
	webtemplates "github.com/okastrup/renteregner.dk/internal/services/web/templates"
)

// calculatorPage combines the heading, the form and the results fragment
// into the full-page body.
func calculatorPage(loc webtemplates.Localizer, values webtemplates.FormValues, validity projection.Validity, results webtemplates.ResultsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
`, templ.EscapeString(webtemplates.T(loc, "calculator.title"))); err != nil {
			return err
		}
		if err := webtemplates.CalculatorForm(loc, values, validity).Render(ctx, w); err != nil {
			return err
		}
		return webtemplates.Results(loc, results).Render(ctx, w)
	})
}
