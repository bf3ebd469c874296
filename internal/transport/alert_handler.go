package transport

import (
	"net/http"

	"shelfsmart/internal/expiry"
	"shelfsmart/internal/middleware"
	"shelfsmart/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AlertsResponse is the alert summary plus its total. Buckets overlap on
// purpose: an item both low on stock and expiring soon contributes to both
// subtotals.
type AlertsResponse struct {
	expiry.Summary
	Total int `json:"total"`
}

// AlertHandler serves the classified alert buckets.
type AlertHandler struct {
	inventory service.InventoryService
	logger    *zap.Logger
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(inventory service.InventoryService, logger *zap.Logger) *AlertHandler {
	return &AlertHandler{inventory: inventory, logger: logger}
}

// RegisterRoutes registers the alert routes.
func (h *AlertHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/alerts", h.Get)
}

// Get classifies the current inventory snapshot and returns the buckets.
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.inventory.Alerts(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute alerts", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute alerts")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, AlertsResponse{
		Summary: summary,
		Total:   summary.TotalAlerts(),
	})
}
