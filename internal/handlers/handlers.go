package handlers

import (
	"net/http"

	"gitdash/internal/config"
	"gitdash/internal/gitrepo"
	"gitdash/internal/store"
)

// Handler is a facade that delegates to specialized handlers.
type Handler struct {
	*LocalHandler
	*NotesHandler
	*HostingHandler
}

// NewHandler creates a new Handler with all sub-handlers.
func NewHandler(repos *gitrepo.Service, st *store.Store, settings *config.Settings) *Handler {
	return &Handler{
		LocalHandler:   NewLocalHandler(repos),
		NotesHandler:   NewNotesHandler(st),
		HostingHandler: NewHostingHandler(settings.HostingAPIBase, settings.HostingToken),
	}
}

// HealthCheck returns the health status of the service
// @Summary Health check
// @Description Returns the health status of the service
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
