package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retail-dashboard/internal/services"
)

func createTestRetail(t *testing.T) *services.Retail {
	t.Helper()
	r := services.NewRetail()
	if err := r.Initialize(context.Background(), 42, 5); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	return r
}

func TestNewAPIHandlers(t *testing.T) {
	retail := createTestRetail(t)
	logger := slog.Default()
	handlers := NewAPIHandlers(retail, logger)

	if handlers == nil {
		t.Error("NewAPIHandlers() returned nil")
	}

	if handlers.retail != retail {
		t.Error("NewAPIHandlers() should set retail field")
	}
}

func TestAPIHandlers_HandleStores(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewAPIHandlers(retail, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	w := httptest.NewRecorder()

	handlers.HandleStores(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected content-type 'application/json', got %q", ct)
	}

	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=300" {
		t.Errorf("expected cache-control 'public, max-age=300', got %q", cc)
	}

	var response struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if !response.Success {
		t.Error("expected success=true in response")
	}

	if len(response.Data) != 5 {
		t.Fatalf("expected 5 stores, got %d", len(response.Data))
	}

	requiredFields := []string{"id", "name", "region", "type", "address", "openDate", "size", "coordinates", "manager"}
	for i, store := range response.Data {
		for _, field := range requiredFields {
			if _, ok := store[field]; !ok {
				t.Errorf("store %d missing field %q", i, field)
			}
		}
		coords, ok := store["coordinates"].(map[string]interface{})
		if !ok {
			t.Errorf("store %d coordinates should be an object", i)
			continue
		}
		if _, ok := coords["lat"]; !ok {
			t.Errorf("store %d coordinates missing lat", i)
		}
		if _, ok := coords["lng"]; !ok {
			t.Errorf("store %d coordinates missing lng", i)
		}
	}
}

func TestAPIHandlers_HandleSales(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewAPIHandlers(retail, slog.Default())

	// Filter params are accepted but never applied.
	paths := []string{
		"/api/sales",
		"/api/sales?startDate=2023-01-01&endDate=2023-02-01",
		"/api/sales?storeIds=ST001,ST002&region=West&storeType=Flagship",
		"/api/sales?startDate=not-a-date",
	}

	var bodies []string
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		handlers.HandleSales(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusOK, w.Code)
		}

		var response struct {
			Success bool `json:"success"`
			Data    struct {
				Summary struct {
					TotalSales float64 `json:"totalSales"`
				} `json:"summary"`
				ByDate []json.RawMessage `json:"byDate"`
			} `json:"data"`
		}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("%s: failed to decode JSON: %v", path, err)
		}
		if !response.Success {
			t.Errorf("%s: expected success=true", path)
		}
		if response.Data.Summary.TotalSales <= 0 {
			t.Errorf("%s: expected positive total sales", path)
		}
		if len(response.Data.ByDate) == 0 {
			t.Errorf("%s: expected daily records", path)
		}

		bodies = append(bodies, string(mustMarshal(t, response)))
	}

	// Same dataset regardless of query params.
	for i := 1; i < len(bodies); i++ {
		if bodies[i] != bodies[0] {
			t.Errorf("response for %s differs from unfiltered response", paths[i])
		}
	}
}

func TestAPIHandlers_HandleInventory(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewAPIHandlers(retail, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/inventory?region=West&storeType=Outlet", nil)
	w := httptest.NewRecorder()

	handlers.HandleInventory(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Summary struct {
				TotalValue float64 `json:"totalValue"`
			} `json:"summary"`
			ByCategory []json.RawMessage `json:"byCategory"`
			ByStore    []json.RawMessage `json:"byStore"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if !response.Success {
		t.Error("expected success=true in response")
	}
	if response.Data.Summary.TotalValue <= 0 {
		t.Error("expected positive inventory value")
	}
	if len(response.Data.ByStore) != 5 {
		t.Errorf("expected 5 store inventory rows, got %d", len(response.Data.ByStore))
	}
}

func TestAPIHandlers_HandleStoreDetail(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewAPIHandlers(retail, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/stores/ST001/details", nil)
	req.SetPathValue("storeId", "ST001")
	w := httptest.NewRecorder()

	handlers.HandleStoreDetail(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			ID                    string            `json:"id"`
			StaffCount            int               `json:"staffCount"`
			StaffPerformance      []json.RawMessage `json:"staffPerformance"`
			HistoricalPerformance []json.RawMessage `json:"historicalPerformance"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if !response.Success {
		t.Error("expected success=true in response")
	}
	if response.Data.ID != "ST001" {
		t.Errorf("expected detail for ST001, got %q", response.Data.ID)
	}
	if response.Data.StaffCount == 0 {
		t.Error("expected non-zero staff count")
	}
	if len(response.Data.HistoricalPerformance) != 6 {
		t.Errorf("expected 6 history entries, got %d", len(response.Data.HistoricalPerformance))
	}
}

func TestAPIHandlers_HandleStoreDetail_NotFound(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewAPIHandlers(retail, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/stores/ST999/details", nil)
	req.SetPathValue("storeId", "ST999")
	w := httptest.NewRecorder()

	handlers.HandleStoreDetail(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var response struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if response.Success {
		t.Error("expected success=false in response")
	}
	if response.Error.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND error code, got %q", response.Error.Code)
	}
}

func TestAPIHandlers_HandleFilters(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewAPIHandlers(retail, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/filters", nil)
	w := httptest.NewRecorder()

	handlers.HandleFilters(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Regions     []string          `json:"regions"`
			StoreTypes  []string          `json:"storeTypes"`
			Categories  []string          `json:"categories"`
			Departments []string          `json:"departments"`
			TimeRanges  []json.RawMessage `json:"timeRanges"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if !response.Success {
		t.Error("expected success=true in response")
	}
	if len(response.Data.Regions) == 0 || len(response.Data.StoreTypes) == 0 ||
		len(response.Data.Categories) == 0 || len(response.Data.Departments) == 0 ||
		len(response.Data.TimeRanges) == 0 {
		t.Errorf("all five filter lists must be non-empty: %+v", response.Data)
	}
}

func TestAPIHandlers_HandleHealth(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewAPIHandlers(retail, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handlers.HandleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	// Health responses must not be cached.
	if cc := w.Header().Get("Cache-Control"); cc != "" {
		t.Errorf("health endpoint should not set cache-control, got %q", cc)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected health data in response")
	}
	if status, ok := data["status"].(string); !ok || status != "healthy" {
		t.Errorf("expected status 'healthy', got %q", status)
	}
	if timestamp, ok := data["timestamp"].(string); !ok || timestamp == "" {
		t.Error("expected non-empty timestamp")
	} else if _, err := time.Parse(time.RFC3339, timestamp); err != nil {
		t.Errorf("invalid timestamp format: %v", err)
	}
}

func TestAPIHandlers_HandleStats(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewAPIHandlers(retail, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()

	handlers.HandleStats(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if !response.Success {
		t.Error("expected success=true in response")
	}
	if stores, ok := response.Data["stores"].(float64); !ok || stores != 5 {
		t.Errorf("expected stats[stores] = 5, got %v", response.Data["stores"])
	}
}

func TestAPIHandlers_HeaderConsistency(t *testing.T) {
	retail := createTestRetail(t)
	handlers := NewAPIHandlers(retail, slog.Default())

	apiEndpoints := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"stores", handlers.HandleStores},
		{"sales", handlers.HandleSales},
		{"inventory", handlers.HandleInventory},
		{"filters", handlers.HandleFilters},
	}

	for _, endpoint := range apiEndpoints {
		t.Run(endpoint.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			endpoint.handler(w, req)

			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected content-type 'application/json', got %q", ct)
			}

			if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=300" {
				t.Errorf("expected cache-control 'public, max-age=300', got %q", cc)
			}

			var response map[string]interface{}
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Errorf("response should be valid JSON: %v", err)
			}

			if success, ok := response["success"].(bool); !ok || !success {
				t.Error("expected success=true in response")
			}
		})
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}
