package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return fmt.Sprintf("%d | %s", statusCode, T(loc, "core.error.title"))
	}
	return T(loc, "core.error.title")
}

// ErrorState renders the shared error fragment.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="error-state">
<h1>%d</h1>
<h2>%s</h2>
<p>%s</p>
<a class="cta" href="/">%s</a>
</section>
`,
			statusCode,
			templ.EscapeString(T(loc, "core.error.title")),
			templ.EscapeString(T(loc, "core.error.body")),
			templ.EscapeString(T(loc, "core.error.back")),
		)
		return err
	})
}
