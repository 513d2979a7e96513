package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/okastrup/renteregner.dk/internal/projection"
)

// FormValues carries the raw form strings echoed back to the visitor.
type FormValues struct {
	Principal string
	Monthly   string
	Rate      string
	Years     string
}

// CalculatorForm renders the input form with inline advisory hints.
func CalculatorForm(loc Localizer, values FormValues, validity projection.Validity) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form class="calculator-form" method="post" action="/beregner" hx-post="/beregner" hx-target="#results" hx-swap="outerHTML">
`); err != nil {
			return err
		}
		fields := []struct {
			name     string
			labelKey string
			value    string
			hintKey  string
			valid    bool
		}{
			{name: "startbeloeb", labelKey: "calculator.form.principal", value: values.Principal, hintKey: "calculator.validity.principal", valid: validity.Principal},
			{name: "indskud", labelKey: "calculator.form.monthly", value: values.Monthly, hintKey: "calculator.validity.contribution", valid: validity.Contribution},
			{name: "afkast", labelKey: "calculator.form.rate", value: values.Rate, hintKey: "calculator.validity.rate", valid: validity.Rate},
			{name: "aar", labelKey: "calculator.form.years", value: values.Years, hintKey: "calculator.validity.years", valid: validity.Years},
		}
		for _, field := range fields {
			if err := renderField(w, loc, field.name, field.labelKey, field.value, field.hintKey, field.valid); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<button type="submit">%s</button>
</form>
`, templ.EscapeString(T(loc, "calculator.form.submit")))
		return err
	})
}

func renderField(w io.Writer, loc Localizer, name, labelKey, value, hintKey string, valid bool) error {
	hint := ""
	if !valid {
		hint = fmt.Sprintf(`<span class="field-hint">%s</span>`, templ.EscapeString(T(loc, hintKey)))
	}
	_, err := fmt.Fprintf(w, `<label class="field">
<span>%s</span>
<input type="text" inputmode="decimal" name="%s" value="%s">
%s</label>
`,
		templ.EscapeString(T(loc, labelKey)),
		templ.EscapeString(name),
		templ.EscapeString(value),
		hint,
	)
	return err
}
