package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"retail-dashboard/internal/errors"
	"retail-dashboard/internal/observability"
	"retail-dashboard/internal/services"
)

const cacheControl = "public, max-age=300"

// Query parameters the dashboard sends on the sales and inventory routes.
// They are accepted and logged but never applied; the full dataset is
// always returned.
var filterParams = []string{"startDate", "endDate", "storeIds", "region", "storeType"}

type APIHandlers struct {
	retail *services.Retail
	logger *slog.Logger
}

func NewAPIHandlers(retail *services.Retail, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		retail: retail,
		logger: logger,
	}
}

func (h *APIHandlers) HandleStores(w http.ResponseWriter, r *http.Request) {
	data := h.retail.Stores()

	headers := map[string]string{
		"Cache-Control": cacheControl,
	}

	errors.WriteSuccessWithHeaders(w, data, headers)
}

func (h *APIHandlers) HandleSales(w http.ResponseWriter, r *http.Request) {
	h.logIgnoredFilters(r)

	data := h.retail.Sales()

	headers := map[string]string{
		"Cache-Control": cacheControl,
	}

	errors.WriteSuccessWithHeaders(w, data, headers)
}

func (h *APIHandlers) HandleInventory(w http.ResponseWriter, r *http.Request) {
	h.logIgnoredFilters(r)

	data := h.retail.Inventory()

	headers := map[string]string{
		"Cache-Control": cacheControl,
	}

	errors.WriteSuccessWithHeaders(w, data, headers)
}

func (h *APIHandlers) HandleStoreDetail(w http.ResponseWriter, r *http.Request) {
	storeID := r.PathValue("storeId")

	detail, ok := h.retail.StoreDetail(storeID)
	if !ok {
		requestID := observability.GetRequestID(r.Context())
		errors.WriteError(w, h.logger, errors.NotFound(fmt.Sprintf("store %q not found", storeID)), requestID)
		return
	}

	headers := map[string]string{
		"Cache-Control": cacheControl,
	}

	errors.WriteSuccessWithHeaders(w, detail, headers)
}

func (h *APIHandlers) HandleFilters(w http.ResponseWriter, r *http.Request) {
	data := h.retail.Filters()

	headers := map[string]string{
		"Cache-Control": cacheControl,
	}

	errors.WriteSuccessWithHeaders(w, data, headers)
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.retail.Stats()

	errors.WriteSuccess(w, stats)
}

func (h *APIHandlers) logIgnoredFilters(r *http.Request) {
	query := r.URL.Query()
	attrs := make([]any, 0, len(filterParams)*2)
	for _, p := range filterParams {
		if v := query.Get(p); v != "" {
			attrs = append(attrs, p, v)
		}
	}
	if len(attrs) > 0 {
		h.logger.Debug("filter params accepted but not applied", attrs...)
	}
}
