package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"retail-dashboard/internal/generator"
	"retail-dashboard/internal/models"
)

// Retail holds the generated dataset for the process lifetime. It is
// populated exactly once at startup; after that every access is a read,
// so concurrent requests need no coordination beyond the RWMutex that
// guards the initial swap.
type Retail struct {
	mu      sync.RWMutex
	dataset *generator.Dataset
	logger  *slog.Logger
}

func NewRetail() *Retail {
	return &Retail{
		dataset: &generator.Dataset{
			StoreDetails: make(map[string]models.StoreDetail),
		},
		logger: slog.Default(),
	}
}

// Initialize generates the dataset and installs it. Failure here means the
// process has nothing to serve and should abort startup.
func (r *Retail) Initialize(ctx context.Context, seed uint64, storeCount int) error {
	start := time.Now()
	ds, err := generator.New(seed).Generate(ctx, storeCount)
	if err != nil {
		return fmt.Errorf("initialize dataset: %w", err)
	}

	r.mu.Lock()
	r.dataset = ds
	r.mu.Unlock()

	r.logger.Info("retail dataset initialized",
		"stores", len(ds.Stores),
		"duration", time.Since(start),
	)
	return nil
}

// SetDataset installs a prebuilt dataset. Used by tests.
func (r *Retail) SetDataset(ds *generator.Dataset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dataset = ds
}

func (r *Retail) Stores() []models.Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dataset.Stores
}

func (r *Retail) Sales() models.SalesData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dataset.Sales
}

func (r *Retail) Inventory() models.InventoryData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dataset.Inventory
}

// StoreDetail reports the detail record for id, or false if the id is not
// part of the generated store list.
func (r *Retail) StoreDetail(id string) (models.StoreDetail, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	detail, ok := r.dataset.StoreDetails[id]
	return detail, ok
}

func (r *Retail) Filters() models.FilterOptions {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dataset.Filters
}

// Stats exposes dataset counters for monitoring.
func (r *Retail) Stats() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return map[string]any{
		"stores":         len(r.dataset.Stores),
		"store_details":  len(r.dataset.StoreDetails),
		"sales_days":     len(r.dataset.Sales.ByDate),
		"sales_regions":  len(r.dataset.Sales.ByRegion),
		"inventory_rows": len(r.dataset.Inventory.ByStore),
		"seed":           r.dataset.Seed,
		"generated_at":   r.dataset.GeneratedAt,
	}
}
