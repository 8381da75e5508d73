package generator

import "retail-dashboard/internal/models"

// inventory builds the inventory aggregate. The summary and both breakdowns
// are independent draws; nothing is reconciled across them.
func (g *Generator) inventory(d *draws, stores []models.Store) models.InventoryData {
	summary := models.InventorySummary{
		TotalValue:        d.floatBetween(5000000, 15000000, 2),
		TotalItems:        d.intBetween(500000, 1500000),
		TurnoverRate:      d.floatBetween(2, 6, 1),
		OutOfStockPercent: d.floatBetween(0.01, 0.08, 3),
	}

	byCategory := make([]models.CategoryInventory, 0, len(categories))
	for _, category := range categories {
		byCategory = append(byCategory, models.CategoryInventory{
			Category:     category,
			Value:        d.floatBetween(500000, 2000000, 2),
			Items:        d.intBetween(50000, 200000),
			TurnoverRate: d.floatBetween(2, 6, 1),
		})
	}

	byStore := make([]models.StoreInventory, 0, len(stores))
	for _, s := range stores {
		items := d.intBetween(20000, 80000)
		byStore = append(byStore, models.StoreInventory{
			StoreID:         s.ID,
			StoreName:       s.Name,
			Value:           d.floatBetween(200000, 800000, 2),
			Items:           items,
			TurnoverRate:    d.floatBetween(2, 6, 1),
			OutOfStockItems: int(float64(items) * d.floatBetween(0.01, 0.05, 3)),
		})
	}

	return models.InventoryData{
		Summary:    summary,
		ByCategory: byCategory,
		ByStore:    byStore,
	}
}
