package generator

import (
	"time"

	"retail-dashboard/internal/models"
)

const (
	salesWindowDays = 120

	// Synthetic per-store contribution used for percentOfRegion. Region
	// shares are computed against storeCount * this figure, not against
	// the region's drawn sales total; the dashboard expects that shape.
	syntheticStoreSales = 200000
)

var salesWindowStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// sales builds the full sales aggregate from the store slice. Store counts
// per region are exact; every monetary figure is an independent draw.
func (g *Generator) sales(d *draws, stores []models.Store) models.SalesData {
	byDate := g.salesByDate(d)
	byRegion := g.salesByRegion(d, stores)
	byCategory := g.salesByCategory(d)
	byStore := g.salesByStore(d, stores)

	// The summary adds the daily totals and the regional totals even
	// though they describe overlapping revenue. Consumers rely on this
	// shape, so it is preserved; see DESIGN.md.
	var totalSales float64
	var totalTransactions int
	for _, day := range byDate {
		totalSales += day.Sales
		totalTransactions += day.Transactions
	}
	for _, region := range byRegion {
		totalSales += region.Sales
	}
	totalSales = roundTo(totalSales, 2)

	percentChange := d.floatBetween(-10, 5, 1)
	summary := models.SalesSummary{
		TotalSales:              totalSales,
		ComparisonSales:         roundTo(totalSales/(1+percentChange/100), 2),
		PercentChange:           percentChange,
		AverageTransactionValue: roundTo(totalSales/float64(totalTransactions), 2),
		TransactionCount:        totalTransactions,
		ConversionRate:          d.floatBetween(0.2, 0.3, 2),
	}

	return models.SalesData{
		Summary:    summary,
		ByDate:     byDate,
		ByRegion:   byRegion,
		ByCategory: byCategory,
		ByStore:    byStore,
	}
}

func (g *Generator) salesByDate(d *draws) []models.DailySales {
	out := make([]models.DailySales, 0, salesWindowDays)
	for i := 0; i < salesWindowDays; i++ {
		sales := d.floatBetween(80000, 120000, 2)
		transactions := d.intBetween(1200, 1800)
		out = append(out, models.DailySales{
			Date:         salesWindowStart.AddDate(0, 0, i).Format("2006-01-02"),
			Sales:        sales,
			Transactions: transactions,
			AverageValue: roundTo(sales/float64(transactions), 2),
		})
	}
	return out
}

func (g *Generator) salesByRegion(d *draws, stores []models.Store) []models.RegionSales {
	counts := make(map[string]int)
	for _, s := range stores {
		counts[s.Region]++
	}

	out := make([]models.RegionSales, 0, len(regions))
	var total float64
	for _, region := range regions {
		sales := d.floatBetween(800000, 1200000, 2)
		total += sales
		out = append(out, models.RegionSales{
			Region:     region,
			Sales:      sales,
			StoreCount: counts[region],
		})
	}
	for i := range out {
		out[i].PercentOfTotal = roundTo(out[i].Sales/total, 2)
	}
	return out
}

func (g *Generator) salesByCategory(d *draws) []models.CategorySales {
	out := make([]models.CategorySales, 0, len(categories))
	var total float64
	for _, category := range categories {
		sales := d.floatBetween(500000, 1500000, 2)
		percentChange := d.floatBetween(-20, 10, 1)
		total += sales
		out = append(out, models.CategorySales{
			Category:        category,
			Sales:           sales,
			ComparisonSales: roundTo(sales/(1+percentChange/100), 2),
			PercentChange:   percentChange,
		})
	}
	for i := range out {
		out[i].PercentOfTotal = roundTo(out[i].Sales/total, 2)
	}
	return out
}

func (g *Generator) salesByStore(d *draws, stores []models.Store) []models.StoreSales {
	counts := make(map[string]int)
	for _, s := range stores {
		counts[s.Region]++
	}

	out := make([]models.StoreSales, 0, len(stores))
	for i, s := range stores {
		sales := d.floatBetween(100000, 300000, 2)
		regionTotal := float64(counts[s.Region] * syntheticStoreSales)
		out = append(out, models.StoreSales{
			StoreID:   s.ID,
			StoreName: s.Name,
			Region:    s.Region,
			Sales:     sales,
			// Not a true ranking; ties and non-monotonic order are expected.
			Rank:            i%50 + 1,
			PercentOfRegion: roundTo(sales/regionTotal, 2),
			PercentChange:   d.floatBetween(-15, 15, 1),
		})
	}
	return out
}
