package generator

import (
	"fmt"
	"time"

	"retail-dashboard/internal/models"
)

var (
	openDateStart = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	openDateEnd   = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
)

// stores builds count store records. IDs are sequential and zero-padded,
// so they are unique by construction; every other field may repeat.
func (g *Generator) stores(d *draws, count int) []models.Store {
	out := make([]models.Store, 0, count)
	for i := 1; i <= count; i++ {
		region := pickOne(d, regions)
		city := pickOne(d, citiesByRegion[region])
		storeType := pickOne(d, storeTypes)

		out = append(out, models.Store{
			ID:          fmt.Sprintf("ST%03d", i),
			Name:        fmt.Sprintf("%s %s Store", city, storeType),
			Region:      region,
			Type:        storeType,
			Address:     fmt.Sprintf("%d %s, %s", d.intBetween(100, 9999), pickOne(d, streetNames), city),
			OpenDate:    d.dateBetween(openDateStart, openDateEnd).Format("2006-01-02"),
			Size:        d.intBetween(5000, 20000),
			Coordinates: d.coordinates(region),
			Manager:     d.fullName(),
		})
	}
	return out
}
