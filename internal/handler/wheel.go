package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/yourorg/starchart/internal/service"
	"github.com/yourorg/starchart/pkg/radial"
)

// WheelHandler serves precomputed radial positions for the zodiac wheel so
// clients don't each reimplement the placement trigonometry.
type WheelHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// WheelItem is one constellation's slot on the wheel. Anchors maps two
// container edges (one of top/bottom, one of left/right) to percentage
// offsets, e.g. {"top": "8.00%", "right": "13.70%"}.
type WheelItem struct {
	ID      string            `json:"id"`
	Symbol  string            `json:"symbol"`
	Anchors map[string]string `json:"anchors"`
}

// NewWheelHandler creates a new wheel handler.
func NewWheelHandler(catalog *service.CatalogService, logger *slog.Logger) *WheelHandler {
	return &WheelHandler{catalog: catalog, logger: logger}
}

// Get handles GET /api/wheel.
func (h *WheelHandler) Get(w http.ResponseWriter, r *http.Request) {
	constellations, err := h.catalog.ListConstellations()
	if err != nil {
		h.logger.Error("failed to build wheel", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Failed to build wheel layout")
		return
	}

	positions := radial.Layout(len(constellations))
	items := make([]WheelItem, len(constellations))
	for i, c := range constellations {
		p := positions[i]
		items[i] = WheelItem{
			ID:     c.ID,
			Symbol: c.Symbol,
			Anchors: map[string]string{
				p.VAnchor: fmt.Sprintf("%.2f%%", p.VOffset),
				p.HAnchor: fmt.Sprintf("%.2f%%", p.HOffset),
			},
		}
	}

	writeJSON(w, http.StatusOK, items)
}
