package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"retail-dashboard/internal/services"
)

// SSEHandlers push dataset snapshots to the dashboard front end as
// datastar signal patches.
type SSEHandlers struct {
	retail *services.Retail
	logger *slog.Logger
}

func NewSSEHandlers(retail *services.Retail, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		retail: retail,
		logger: logger,
	}
}

func (h *SSEHandlers) HandleSales(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	jsonData, err := json.Marshal(map[string]any{
		"salesData": h.retail.Sales(),
	})
	if err != nil {
		h.logger.Error("marshal sales data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleInventory(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	jsonData, err := json.Marshal(map[string]any{
		"inventoryData": h.retail.Inventory(),
	})
	if err != nil {
		h.logger.Error("marshal inventory data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	allSignals, err := json.Marshal(map[string]any{
		"storesData":    h.retail.Stores(),
		"salesData":     h.retail.Sales(),
		"inventoryData": h.retail.Inventory(),
		"filterOptions": h.retail.Filters(),
	})
	if err != nil {
		h.logger.Error("marshal refresh signals", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
