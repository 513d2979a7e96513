package landing

import (
	"context"
	"io"

	"github.com/a-h/templ"

	webtemplates "github.com/okastrup/renteregner.dk/internal/services/web/templates"
)

func homePage(loc webtemplates.Localizer, view webtemplates.HeroView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := webtemplates.Hero(loc, view).Render(ctx, w); err != nil {
			return err
		}
		return webtemplates.Explainer(loc, view.CTAHref).Render(ctx, w)
	})
}
