package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yourorg/starchart/internal/domain"
	"github.com/yourorg/starchart/internal/service"
)

// ConstellationsHandler serves catalog reads.
type ConstellationsHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewConstellationsHandler creates a new constellations handler.
func NewConstellationsHandler(catalog *service.CatalogService, logger *slog.Logger) *ConstellationsHandler {
	return &ConstellationsHandler{catalog: catalog, logger: logger}
}

// List handles GET /api/constellations.
func (h *ConstellationsHandler) List(w http.ResponseWriter, r *http.Request) {
	constellations, err := h.catalog.ListConstellations()
	if err != nil {
		h.logger.Error("failed to list constellations", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch constellations")
		return
	}

	writeJSON(w, http.StatusOK, constellations)
}

// Get handles GET /api/constellations/{id}.
func (h *ConstellationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	constellation, err := h.catalog.GetConstellation(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Constellation not found")
			return
		}
		h.logger.Error("failed to get constellation",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch constellation")
		return
	}

	writeJSON(w, http.StatusOK, constellation)
}
