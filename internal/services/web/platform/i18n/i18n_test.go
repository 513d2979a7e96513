package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTagDefaultsToDanish(t *testing.T) {
	t.Parallel()

	tag, persist := ResolveTag(httptest.NewRequest(http.MethodGet, "/", nil))
	if tag.String() != "da-DK" {
		t.Fatalf("tag = %s, want da-DK", tag)
	}
	if persist {
		t.Fatal("default should not request cookie persistence")
	}
}

func TestResolveTagQueryParamWins(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=en-US", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "da-DK"})

	tag, persist := ResolveTag(req)
	if tag.String() != "en-US" {
		t.Fatalf("tag = %s, want en-US", tag)
	}
	if !persist {
		t.Fatal("query param selection should be persisted")
	}
}

func TestResolveTagCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})

	tag, persist := ResolveTag(req)
	if tag.String() != "en-US" {
		t.Fatalf("tag = %s, want en-US", tag)
	}
	if persist {
		t.Fatal("cookie selection should not re-persist")
	}
}

func TestResolveTagAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-GB;q=0.9, en;q=0.8")

	tag, _ := ResolveTag(req)
	if tag.String() != "en-US" {
		t.Fatalf("tag = %s, want en-US", tag)
	}
}

func TestResolveTagIgnoresUnsupportedQueryValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=zz-ZZ", nil)
	tag, persist := ResolveTag(req)
	if tag.String() != "da-DK" {
		t.Fatalf("tag = %s, want fallback da-DK", tag)
	}
	if persist {
		t.Fatal("unsupported value should not persist a cookie")
	}
}

func TestResolveLocalizerSetsCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=en-US", nil)
	rr := httptest.NewRecorder()
	printer, lang := ResolveLocalizer(rr, req)
	if printer == nil {
		t.Fatal("expected printer")
	}
	if lang != "en-US" {
		t.Fatalf("lang = %s", lang)
	}

	cookies := rr.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == LangCookieName && cookie.Value == "en-US" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected language cookie")
	}
}

func TestPrinterUsesCatalogMessages(t *testing.T) {
	t.Parallel()

	printer := Printer(Default())
	if got := printer.Sprintf("calculator.form.submit"); got != "Beregn" {
		t.Fatalf("da-DK submit = %q, want Beregn", got)
	}

	english, _ := ParseTag("en-US")
	if got := Printer(english).Sprintf("calculator.form.submit"); got != "Calculate" {
		t.Fatalf("en-US submit = %q, want Calculate", got)
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/beregner", "aar=20", "en-US")
	if got != "/beregner?aar=20&lang=en-US" {
		t.Fatalf("LanguageURL = %q", got)
	}
	if got := LanguageURL("", "", "da-DK"); got != "/?lang=da-DK" {
		t.Fatalf("LanguageURL empty path = %q", got)
	}
}
