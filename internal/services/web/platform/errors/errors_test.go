package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: E(KindInvalidInput, "bad input"), want: http.StatusBadRequest},
		{err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{err: E(KindUnknown, "boom"), want: http.StatusInternalServerError},
		{err: fmt.Errorf("plain"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestHTTPStatusUnwrapsWrappedError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handler: %w", E(KindInvalidInput, "bad"))
	if got := HTTPStatus(wrapped); got != http.StatusBadRequest {
		t.Fatalf("HTTPStatus(wrapped) = %d, want %d", got, http.StatusBadRequest)
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindInvalidInput, " calculator.validity.rate ", "too high")); got != "calculator.validity.rate" {
		t.Fatalf("LocalizationKey = %q", got)
	}
	if got := LocalizationKey(fmt.Errorf("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
}

func TestErrorMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindUnavailable}
	if err.Error() != "unavailable" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
