package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewSSEHandlers(t *testing.T) {
	retail := createTestRetail(t)
	logger := slog.Default()
	handlers := NewSSEHandlers(retail, logger)

	if handlers == nil {
		t.Fatal("NewSSEHandlers() returned nil")
	}
	if handlers.retail != retail {
		t.Error("NewSSEHandlers() should set retail field")
	}
}

func TestSSEHandlers_HandleSales(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewSSEHandlers(retail, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/sse/sales", nil)
	w := httptest.NewRecorder()

	handlers.HandleSales(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Errorf("expected event-stream content type, got %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "datastar-patch-signals") {
		t.Error("expected a datastar signal patch event")
	}
	if !strings.Contains(body, "salesData") {
		t.Error("expected salesData signal in body")
	}
	if !strings.Contains(body, "totalSales") {
		t.Error("expected sales summary fields in signal payload")
	}
}

func TestSSEHandlers_HandleInventory(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewSSEHandlers(retail, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/sse/inventory", nil)
	w := httptest.NewRecorder()

	handlers.HandleInventory(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "inventoryData") {
		t.Error("expected inventoryData signal in body")
	}
	if !strings.Contains(body, "turnoverRate") {
		t.Error("expected inventory fields in signal payload")
	}
}

func TestSSEHandlers_HandleRefreshAll(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewSSEHandlers(retail, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/sse/refresh-all", nil)
	w := httptest.NewRecorder()

	handlers.HandleRefreshAll(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	body := w.Body.String()
	for _, signal := range []string{"storesData", "salesData", "inventoryData", "filterOptions"} {
		if !strings.Contains(body, signal) {
			t.Errorf("expected %s signal in refresh-all body", signal)
		}
	}
}

func TestSSEHandlers_HeaderConsistency(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewSSEHandlers(retail, slog.Default())

	endpoints := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"sales", handlers.HandleSales},
		{"inventory", handlers.HandleInventory},
		{"refresh-all", handlers.HandleRefreshAll},
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			endpoint.handler(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("expected event-stream content type, got %q", ct)
			}
		})
	}
}
