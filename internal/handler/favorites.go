package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/yourorg/starchart/internal/contracts"
	"github.com/yourorg/starchart/internal/service"
)

// FavoritesHandler serves the demo user's favorites and applies add/remove
// mutations. Request bodies are schema-validated before any store call.
type FavoritesHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(catalog *service.CatalogService, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{catalog: catalog, logger: logger}
}

// List handles GET /api/favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.catalog.ListFavorites(demoUserID)
	if err != nil {
		h.logger.Error("failed to list favorites", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	writeJSON(w, http.StatusOK, ids)
}

// Toggle handles POST /api/favorites.
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs := contracts.DecodeFavoriteToggle(r.Body)
	if fieldErrs != nil {
		writeInvalidInput(w, fieldErrs)
		return
	}

	switch req.Action {
	case contracts.ActionAdd:
		favorite, err := h.catalog.AddFavorite(demoUserID, req.ConstellationID)
		if err != nil {
			h.writeMutationError(w, req.ConstellationID, err)
			return
		}
		writeJSON(w, http.StatusCreated, favorite)

	case contracts.ActionRemove:
		if err := h.catalog.RemoveFavorite(demoUserID, req.ConstellationID); err != nil {
			h.writeMutationError(w, req.ConstellationID, err)
			return
		}
		writeMessage(w, http.StatusOK, "Removed from favorites")
	}
}

func (h *FavoritesHandler) writeMutationError(w http.ResponseWriter, constellationID string, err error) {
	if errors.Is(err, service.ErrUnknownConstellation) {
		writeInvalidInput(w, []contracts.FieldError{{
			Field:   "constellationId",
			Message: "constellation does not exist",
		}})
		return
	}
	h.logger.Error("failed to update favorites",
		slog.String("constellation_id", constellationID),
		slog.String("error", err.Error()),
	)
	writeMessage(w, http.StatusInternalServerError, "Failed to update favorites")
}
