package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	webi18n "github.com/okastrup/renteregner.dk/internal/services/web/platform/i18n"
	"github.com/okastrup/renteregner.dk/internal/services/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title        string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
}

// Layout renders the site shell around the page children.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		lang := page.Lang
		if lang == "" {
			lang = "da-DK"
		}
		title := page.Title
		if title == "" {
			title = T(page.Loc, "core.brand.name")
		}

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/styles.css">
<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>
<script src="/static/app.js" defer></script>
</head>
<body>
`, templ.EscapeString(lang), templ.EscapeString(title)); err != nil {
			return err
		}

		if err := renderHeader(w, page); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main id="main" class="main">`); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}

		if err := renderFooter(w, page.Loc); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

func renderHeader(w io.Writer, page PageContext) error {
	danishURL := webi18n.LanguageURL(page.CurrentPath, page.CurrentQuery, "da-DK")
	englishURL := webi18n.LanguageURL(page.CurrentPath, page.CurrentQuery, "en-US")

	_, err := fmt.Fprintf(w, `<header class="site-header">
<a class="brand" href="%s">%s</a>
<nav class="site-nav">
<a href="%s">%s</a>
<a href="%s">%s</a>
</nav>
<nav class="lang-nav">
<a href="%s">%s</a>
<a href="%s">%s</a>
</nav>
</header>
`,
		routepath.Root,
		templ.EscapeString(T(page.Loc, "core.brand.name")),
		routepath.Root,
		templ.EscapeString(T(page.Loc, "core.nav.home")),
		routepath.Calculator,
		templ.EscapeString(T(page.Loc, "core.nav.calculator")),
		templ.EscapeString(danishURL),
		templ.EscapeString(T(page.Loc, "core.language.danish")),
		templ.EscapeString(englishURL),
		templ.EscapeString(T(page.Loc, "core.language.english")),
	)
	return err
}

func renderFooter(w io.Writer, loc Localizer) error {
	_, err := fmt.Fprintf(w, `<footer class="site-footer"><p>%s</p></footer>
`, templ.EscapeString(T(loc, "core.footer.disclaimer")))
	return err
}
