package weberror

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/okastrup/renteregner.dk/internal/services/web/platform/errors"
	webi18n "github.com/okastrup/renteregner.dk/internal/services/web/platform/i18n"
)

func TestShouldRenderErrorPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{status: http.StatusNotFound, want: true},
		{status: http.StatusInternalServerError, want: true},
		{status: http.StatusServiceUnavailable, want: true},
		{status: http.StatusBadRequest, want: false},
		{status: http.StatusOK, want: false},
	}
	for _, tc := range tests {
		if got := ShouldRenderErrorPage(tc.status); got != tc.want {
			t.Fatalf("ShouldRenderErrorPage(%d) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestPublicMessagePrefersLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(webi18n.Default())
	err := apperrors.EK(apperrors.KindInvalidInput, "calculator.validity.rate", "rate too high")
	if got := PublicMessage(loc, err); got != "Afkastet er urealistisk højt" {
		t.Fatalf("PublicMessage = %q", got)
	}
}

func TestPublicMessageFallsBackToStatusText(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(webi18n.Default())
	err := apperrors.E(apperrors.KindNotFound, "")
	if got := PublicMessage(loc, err); got != http.StatusText(http.StatusNotFound) {
		t.Fatalf("PublicMessage = %q", got)
	}
}

func TestWriteErrorPageRendersLocalizedPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteErrorPage(rr, httptest.NewRequest(http.MethodGet, "/missing", nil), http.StatusNotFound)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Noget gik galt") {
		t.Fatalf("body missing localized title:\n%s", rr.Body.String())
	}
}

func TestWriteErrorUsesPlainReplyForBadRequest(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteError(rr, httptest.NewRequest(http.MethodPost, "/beregner", nil), apperrors.E(apperrors.KindInvalidInput, "bad"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "<!DOCTYPE html>") {
		t.Fatal("bad request should not render the error page")
	}
}
