// Package landing serves the marketing front page with the animated
// savings counter.
package landing

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/okastrup/renteregner.dk/internal/format"
	"github.com/okastrup/renteregner.dk/internal/inputs"
	"github.com/okastrup/renteregner.dk/internal/motion"
	"github.com/okastrup/renteregner.dk/internal/projection"
	"github.com/okastrup/renteregner.dk/internal/services/web/platform/httpx"
	webi18n "github.com/okastrup/renteregner.dk/internal/services/web/platform/i18n"
	"github.com/okastrup/renteregner.dk/internal/services/web/platform/pagerender"
	"github.com/okastrup/renteregner.dk/internal/services/web/routepath"
	webtemplates "github.com/okastrup/renteregner.dk/internal/services/web/templates"
)

// marketingInputs back the flagship hero figure: 5.000 kr. a month for 20
// years at 20 pct. annual return.
var marketingInputs = inputs.Inputs{
	Principal:           0,
	MonthlyContribution: 5000,
	AnnualRatePercent:   20,
	Years:               20,
}

const (
	counterDuration = 2 * time.Second
	counterFrames   = 40
)

// Dependencies wires the landing module into shared infrastructure.
type Dependencies struct {
	Engine *projection.Engine
	Store  inputs.Store
}

// Module handles the front page route.
type Module struct {
	engine *projection.Engine
	store  inputs.Store
}

// New creates the landing module.
func New(deps Dependencies) *Module {
	return &Module{engine: deps.Engine, store: deps.Store}
}

// Routes registers the landing routes on mux.
func (m *Module) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", m.handleHome)
}

func (m *Module) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	loc, _ := webi18n.ResolveLocalizer(w, r)

	heroInputs := marketingInputs
	if m.store != nil {
		if stored, ok, err := m.store.Current(ctx); err == nil && ok {
			heroInputs = stored
		}
	}

	result := m.engine.Run(heroInputs.ProjectionInput())
	counter := motion.Counter{
		From:     0,
		Target:   result.Summary.FinalBalance,
		Duration: counterDuration,
	}

	view := webtemplates.HeroView{
		CounterTarget: format.CompactDKK(result.Summary.FinalBalance),
		CounterSteps:  counter.Steps(counterFrames),
		CTAHref: routepath.CalculatorWithInputs(
			amountParam(heroInputs.Principal),
			amountParam(heroInputs.MonthlyContribution),
			amountParam(heroInputs.AnnualRatePercent),
			strconv.Itoa(heroInputs.Years),
		),
	}

	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "core.brand.tagline"),
		Fragment: homePage(loc, view),
	})
	if err != nil {
		log.Printf("landing: render page: %v", err)
	}
}

func amountParam(value float64) string {
	if value == 0 {
		return ""
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
