package game

import (
	"math"

	"github.com/AnnaReese/Citidle/internal/dataset"
)

const (
	earthRadiusKm = 6371.0
	kmToMiles     = 0.621371
)

// Tier is a named proximity bucket assigned to a guess by its distance to
// the target. Closer guesses get warmer tiers.
type Tier string

const (
	TierCorrect  Tier = "correct"
	TierVeryHot  Tier = "very_hot"
	TierHot      Tier = "hot"
	TierWarm     Tier = "warm"
	TierCool     Tier = "cool"
	TierCold     Tier = "cold"
	TierVeryCold Tier = "very_cold"
)

// tierBreakpoints are inclusive upper bounds in miles, checked in ascending
// order; the first bound that holds wins. Distances beyond the last bound
// are TierVeryCold.
var tierBreakpoints = []struct {
	limit float64
	tier  Tier
}{
	{0, TierCorrect},
	{50, TierVeryHot},
	{150, TierHot},
	{300, TierWarm},
	{600, TierCool},
	{1000, TierCold},
}

// tierColors are the hex colors presentation layers use for each tier.
var tierColors = map[Tier]string{
	TierCorrect:  "#00FF00",
	TierVeryHot:  "#FF0000",
	TierHot:      "#FF4500",
	TierWarm:     "#FFA500",
	TierCool:     "#FFD700",
	TierCold:     "#87CEEB",
	TierVeryCold: "#E0E0E0",
}

// Distance returns the great-circle distance between two cities in miles,
// computed with the haversine formula on a 6371 km earth radius. It is
// symmetric and Distance(a, a) == 0.
func Distance(a, b dataset.CityRecord) float64 {
	lat1 := a.Lat * math.Pi / 180
	lng1 := a.Lng * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lng2 := b.Lng * math.Pi / 180

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Clamp against floating-point drift pushing the asin argument past 1
	// for antipodal points.
	c := 2 * math.Asin(math.Min(1, math.Sqrt(h)))

	return earthRadiusKm * c * kmToMiles
}

// TierFor classifies a distance in miles into its proximity tier.
func TierFor(miles float64) Tier {
	for _, bp := range tierBreakpoints {
		if miles <= bp.limit {
			return bp.tier
		}
	}
	return TierVeryCold
}

// Color returns the hex color associated with the tier.
func (t Tier) Color() string {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return tierColors[TierVeryCold]
}
