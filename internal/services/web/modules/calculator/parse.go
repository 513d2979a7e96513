package calculator

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/okastrup/renteregner.dk/internal/inputs"
)

// Form field names follow the Danish UI.
const (
	fieldPrincipal = "startbeloeb"
	fieldMonthly   = "indskud"
	fieldRate      = "afkast"
	fieldYears     = "aar"
)

// defaultInputs seeds the page before a visitor has typed anything.
var defaultInputs = inputs.Inputs{
	Principal:           0,
	MonthlyContribution: 5000,
	AnnualRatePercent:   7,
	Years:               20,
}

// parseInputs reads calculator inputs from form or query values. Unparseable
// numbers collapse to zero so the page never rejects a submission.
func parseInputs(values url.Values) inputs.Inputs {
	return inputs.Inputs{
		Principal:           parseAmount(values.Get(fieldPrincipal)),
		MonthlyContribution: parseAmount(values.Get(fieldMonthly)),
		AnnualRatePercent:   parseAmount(values.Get(fieldRate)),
		Years:               parseYears(values.Get(fieldYears)),
	}
}

// hasInputs reports whether any calculator field is present in values.
func hasInputs(values url.Values) bool {
	for _, field := range []string{fieldPrincipal, fieldMonthly, fieldRate, fieldYears} {
		if strings.TrimSpace(values.Get(field)) != "" {
			return true
		}
	}
	return false
}

// parseAmount accepts Danish-formatted numbers: "." as thousands separator
// and "," as decimal mark, with plain machine formats also accepted.
func parseAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	raw = strings.ReplaceAll(raw, " ", "")
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	} else if isDanishGrouping(raw) {
		raw = strings.ReplaceAll(raw, ".", "")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// isDanishGrouping reports whether every "."-separated group after the first
// has exactly three digits, i.e. "." is a thousands separator.
func isDanishGrouping(raw string) bool {
	if !strings.Contains(raw, ".") {
		return false
	}
	groups := strings.Split(raw, ".")
	for i := 1; i < len(groups); i++ {
		if len(groups[i]) != 3 {
			return false
		}
		for _, ch := range groups[i] {
			if ch < '0' || ch > '9' {
				return false
			}
		}
	}
	return true
}

func parseYears(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 1
	}
	return value
}

// formValue renders a float for echoing into a form input, Danish decimal
// comma included.
func formValue(value float64) string {
	if value == 0 {
		return "0"
	}
	return strings.ReplaceAll(strconv.FormatFloat(value, 'f', -1, 64), ".", ",")
}
