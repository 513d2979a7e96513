// Package health exposes the liveness endpoint used by deploy checks.
package health

import (
	"log"
	"net/http"

	"github.com/okastrup/renteregner.dk/internal/services/web/platform/httpx"
)

// Module handles health routes.
type Module struct{}

// New creates the health module.
func New() *Module {
	return &Module{}
}

// Routes registers the health routes on mux.
func (m *Module) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /up", m.handleUp)
}

func (m *Module) handleUp(w http.ResponseWriter, _ *http.Request) {
	if err := httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		log.Printf("health: write response: %v", err)
	}
}
