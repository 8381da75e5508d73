package generator

import (
	"fmt"

	"retail-dashboard/internal/models"
)

// History spans 2022Q1 through 2023Q2, exactly six quarters.
var historyQuarters = []struct {
	year    int
	quarter int
}{
	{2022, 1}, {2022, 2}, {2022, 3}, {2022, 4},
	{2023, 1}, {2023, 2},
}

// details builds one StoreDetail per store, keyed by store ID.
func (g *Generator) details(d *draws, stores []models.Store) map[string]models.StoreDetail {
	out := make(map[string]models.StoreDetail, len(stores))
	for _, s := range stores {
		out[s.ID] = models.StoreDetail{
			Store:                 s,
			StaffCount:            d.intBetween(20, 60),
			SalesByDepartment:     g.departmentSales(d),
			StaffPerformance:      g.staffPerformance(d),
			Inventory:             g.inventoryDetail(d, s),
			HistoricalPerformance: g.history(d),
		}
	}
	return out
}

func (g *Generator) departmentSales(d *draws) []models.DepartmentSales {
	out := make([]models.DepartmentSales, 0, len(departments))
	var total float64
	for _, dept := range departments {
		sales := d.floatBetween(50000, 200000, 2)
		total += sales
		out = append(out, models.DepartmentSales{
			Department:    dept,
			Sales:         sales,
			PercentChange: d.floatBetween(-15, 15, 1),
		})
	}
	for i := range out {
		out[i].PercentOfStore = roundTo(out[i].Sales/total, 2)
	}
	return out
}

func (g *Generator) staffPerformance(d *draws) []models.StaffPerformance {
	count := d.intBetween(5, 10)
	out := make([]models.StaffPerformance, 0, count)
	for i := 0; i < count; i++ {
		sales := d.floatBetween(50000, 150000, 2)
		transactions := d.intBetween(500, 1500)
		out = append(out, models.StaffPerformance{
			Name:                  d.fullName(),
			Position:              pickOne(d, staffPositions),
			Sales:                 sales,
			Transactions:          transactions,
			AveragePerTransaction: roundTo(sales/float64(transactions), 2),
		})
	}
	return out
}

func (g *Generator) inventoryDetail(d *draws, s models.Store) models.InventoryDetail {
	count := d.intBetween(5, 10)
	items := make([]models.TopSellingItem, 0, count)
	for i := 0; i < count; i++ {
		category := pickOne(d, categories)
		items = append(items, models.TopSellingItem{
			ProductID: fmt.Sprintf("P%s-%03d", s.ID[2:], i+1),
			Name:      pickOne(d, productsByCategory[category]),
			UnitsSold: d.intBetween(100, 1000),
			Revenue:   d.floatBetween(5000, 50000, 2),
		})
	}
	return models.InventoryDetail{
		TotalValue:      d.floatBetween(200000, 800000, 2),
		TurnoverRate:    d.floatBetween(2, 6, 1),
		TopSellingItems: items,
	}
}

func (g *Generator) history(d *draws) []models.QuarterlyPerformance {
	out := make([]models.QuarterlyPerformance, 0, len(historyQuarters))
	for _, q := range historyQuarters {
		sales := d.floatBetween(400000, 900000, 2)
		transactions := d.intBetween(5000, 15000)
		out = append(out, models.QuarterlyPerformance{
			Year:         q.year,
			Quarter:      q.quarter,
			Sales:        sales,
			Transactions: transactions,
			AverageValue: roundTo(sales/float64(transactions), 2),
		})
	}
	return out
}
