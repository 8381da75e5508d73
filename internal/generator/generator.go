// Package generator synthesizes the retail dataset the dashboard serves:
// stores, sales rollups, inventory rollups, and per-store detail records.
// Generation is deterministic for a given seed.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"retail-dashboard/internal/models"
)

const DefaultStoreCount = 200

// Stream offsets for the per-branch random sources. Keeping stores on its
// own stream means adding draws to one branch never shifts another.
const (
	streamStores = iota + 1
	streamSales
	streamInventory
	streamDetails
)

// Dataset is everything generated for one process lifetime. It is never
// mutated after Generate returns.
type Dataset struct {
	Stores       []models.Store
	Sales        models.SalesData
	Inventory    models.InventoryData
	StoreDetails map[string]models.StoreDetail
	Filters      models.FilterOptions
	Seed         uint64
	GeneratedAt  time.Time
}

type Generator struct {
	seed   uint64
	logger *slog.Logger
}

func New(seed uint64) *Generator {
	return &Generator{
		seed:   seed,
		logger: slog.Default(),
	}
}

// Generate builds the full dataset. Stores are built first; the three
// dependent branches each read the store slice and nothing else, so they
// run concurrently on their own random streams.
func (g *Generator) Generate(ctx context.Context, storeCount int) (*Dataset, error) {
	if storeCount < 1 {
		return nil, fmt.Errorf("store count must be at least 1, got %d", storeCount)
	}

	start := time.Now()
	stores := g.stores(newDraws(g.seed, streamStores), storeCount)

	ds := &Dataset{
		Stores:      stores,
		Filters:     Filters(),
		Seed:        g.seed,
		GeneratedAt: start,
	}

	var wg errgroup.Group
	wg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		ds.Sales = g.sales(newDraws(g.seed, streamSales), stores)
		return nil
	})
	wg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		ds.Inventory = g.inventory(newDraws(g.seed, streamInventory), stores)
		return nil
	})
	wg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		ds.StoreDetails = g.details(newDraws(g.seed, streamDetails), stores)
		return nil
	})

	if err := wg.Wait(); err != nil {
		return nil, fmt.Errorf("generate dataset: %w", err)
	}

	g.logger.Info("dataset generated",
		"stores", len(ds.Stores),
		"seed", g.seed,
		"duration", time.Since(start),
	)
	return ds, nil
}
