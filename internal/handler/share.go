package handler

import (
	"log/slog"
	"net/http"

	"github.com/yourorg/starchart/internal/contracts"
	"github.com/yourorg/starchart/internal/service"
)

// ShareHandler builds shareable references to constellations.
type ShareHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewShareHandler creates a new share handler.
func NewShareHandler(catalog *service.CatalogService, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{catalog: catalog, logger: logger}
}

// Share handles POST /api/share.
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs := contracts.DecodeShare(r.Body)
	if fieldErrs != nil {
		writeInvalidInput(w, fieldErrs)
		return
	}

	writeJSON(w, http.StatusOK, h.catalog.Share(req.ConstellationID))
}
