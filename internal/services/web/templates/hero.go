package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// HeroView carries the animated landing hero figures.
type HeroView struct {
	// CounterTarget is the pre-formatted end figure the counter settles on.
	CounterTarget string
	// CounterSteps are the raw animation frames for the counter script.
	CounterSteps []float64
	// CTAHref links into the calculator, optionally with prefilled inputs.
	CTAHref string
}

// Hero renders the landing hero with the animated savings counter.
func Hero(loc Localizer, view HeroView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		ctaHref := view.CTAHref
		if ctaHref == "" {
			ctaHref = "/beregner"
		}
		_, err := fmt.Fprintf(w, `<section class="hero">
<h1>%s</h1>
<p class="hero-subtitle">%s</p>
<p class="hero-example">%s</p>
<div class="hero-counter" data-counter-steps="%s" data-counter-target="%s">
<span class="hero-counter-label">%s</span>
<span class="hero-counter-value">%s</span>
</div>
<a class="cta" href="%s">%s</a>
</section>
`,
			templ.EscapeString(T(loc, "landing.hero.title")),
			templ.EscapeString(T(loc, "landing.hero.subtitle")),
			templ.EscapeString(T(loc, "landing.hero.example")),
			templ.EscapeString(encodeCounterSteps(view.CounterSteps)),
			templ.EscapeString(view.CounterTarget),
			templ.EscapeString(T(loc, "landing.counter.label")),
			templ.EscapeString(view.CounterTarget),
			templ.EscapeString(ctaHref),
			templ.EscapeString(T(loc, "landing.hero.cta")),
		)
		return err
	})
}

// Explainer renders the compound-interest explainer section.
func Explainer(loc Localizer, ctaHref string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if ctaHref == "" {
			ctaHref = "/beregner"
		}
		_, err := fmt.Fprintf(w, `<section class="explainer">
<h2>%s</h2>
<p>%s</p>
<a class="cta-secondary" href="%s">%s</a>
</section>
`,
			templ.EscapeString(T(loc, "landing.explainer.title")),
			templ.EscapeString(T(loc, "landing.explainer.body")),
			templ.EscapeString(ctaHref),
			templ.EscapeString(T(loc, "landing.explainer.cta")),
		)
		return err
	})
}

func encodeCounterSteps(steps []float64) string {
	if len(steps) == 0 {
		return ""
	}
	parts := make([]string, len(steps))
	for i, step := range steps {
		parts[i] = strconv.FormatFloat(step, 'f', 0, 64)
	}
	return strings.Join(parts, ",")
}
