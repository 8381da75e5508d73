package generator

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"retail-dashboard/internal/models"
)

const coordJitter = 1.5

// draws wraps a per-branch random source. Each generation branch owns its
// own source, so branches never contend and a fixed seed reproduces the
// whole dataset.
type draws struct {
	rand *rand.Rand
}

func newDraws(seed, stream uint64) *draws {
	return &draws{rand: rand.New(rand.NewPCG(seed, stream))}
}

// intBetween returns a uniform integer in [min, max].
func (d *draws) intBetween(min, max int) int {
	return min + d.rand.IntN(max-min+1)
}

// floatBetween returns a uniform float in [min, max) rounded to the given
// number of decimal places.
func (d *draws) floatBetween(min, max float64, decimals int) float64 {
	return roundTo(min+d.rand.Float64()*(max-min), decimals)
}

// pickOne returns a uniform element of pool. An empty pool is a programming
// error in the fixed catalogs and aborts generation.
func pickOne[T any](d *draws, pool []T) T {
	if len(pool) == 0 {
		panic(fmt.Sprintf("generator: pickOne on empty %T pool", pool))
	}
	return pool[d.rand.IntN(len(pool))]
}

// dateBetween returns a uniform instant in [start, end).
func (d *draws) dateBetween(start, end time.Time) time.Time {
	span := end.Sub(start)
	return start.Add(time.Duration(d.rand.Int64N(int64(span))))
}

// coordinates jitters the region's fixed center by up to ±1.5 degrees on
// each axis, 4-decimal precision.
func (d *draws) coordinates(region string) models.Coordinates {
	center, ok := regionCenters[region]
	if !ok {
		panic(fmt.Sprintf("generator: no center for region %q", region))
	}
	return models.Coordinates{
		Lat: roundTo(center.Lat+(d.rand.Float64()*2-1)*coordJitter, 4),
		Lng: roundTo(center.Lng+(d.rand.Float64()*2-1)*coordJitter, 4),
	}
}

func (d *draws) fullName() string {
	return pickOne(d, firstNames) + " " + pickOne(d, lastNames)
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
