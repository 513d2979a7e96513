// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	Calculator   = "/beregner"
	Health       = "/up"
	Metrics      = "/metrics"
	StaticPrefix = "/static/"
)

// CalculatorWithInputs returns the calculator route with prefilled query
// values, keeping shared links reproducible.
func CalculatorWithInputs(principal, monthly, rate, years string) string {
	query := url.Values{}
	setTrimmed(query, "startbeloeb", principal)
	setTrimmed(query, "indskud", monthly)
	setTrimmed(query, "afkast", rate)
	setTrimmed(query, "aar", years)
	if len(query) == 0 {
		return Calculator
	}
	return Calculator + "?" + query.Encode()
}

func setTrimmed(query url.Values, key, value string) {
	value = strings.TrimSpace(value)
	if value != "" {
		query.Set(key, value)
	}
}
