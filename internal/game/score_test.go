package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnnaReese/Citidle/internal/dataset"
	"github.com/AnnaReese/Citidle/internal/game"
)

var (
	newYork    = dataset.CityRecord{Name: "New York City", State: "NY", Lat: 40.7128, Lng: -74.0060}
	losAngeles = dataset.CityRecord{Name: "Los Angeles", State: "CA", Lat: 34.0522, Lng: -118.2437}
	chicago    = dataset.CityRecord{Name: "Chicago", State: "IL", Lat: 41.8781, Lng: -87.6298}
	houston    = dataset.CityRecord{Name: "Houston", State: "TX", Lat: 29.7604, Lng: -95.3698}
	newOrleans = dataset.CityRecord{Name: "New Orleans", State: "LA", Lat: 29.9511, Lng: -90.0715}
)

func TestDistanceKnownPairs(t *testing.T) {
	tests := []struct {
		name  string
		a, b  dataset.CityRecord
		miles float64
	}{
		{"coast to coast", newYork, losAngeles, 2445.56},
		{"nyc to new orleans", newYork, newOrleans, 1168.36},
		{"chicago to houston", chicago, houston, 941.88},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.miles, game.Distance(tt.a, tt.b), 0.01)
		})
	}
}

func TestDistanceZeroToSelf(t *testing.T) {
	assert.Zero(t, game.Distance(chicago, chicago))
}

func TestDistanceSymmetric(t *testing.T) {
	assert.InDelta(t, game.Distance(newYork, losAngeles), game.Distance(losAngeles, newYork), 1e-9)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		miles float64
		want  game.Tier
	}{
		{0, game.TierCorrect},
		{0.1, game.TierVeryHot},
		{50, game.TierVeryHot},
		{50.1, game.TierHot},
		{150, game.TierHot},
		{300, game.TierWarm},
		{600, game.TierCool},
		{1000, game.TierCold},
		{1000.1, game.TierVeryCold},
		{12000, game.TierVeryCold},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, game.TierFor(tt.miles), "miles=%g", tt.miles)
	}
}

func TestTierColors(t *testing.T) {
	assert.Equal(t, "#00FF00", game.TierCorrect.Color())
	assert.Equal(t, "#FF0000", game.TierVeryHot.Color())
	assert.Equal(t, "#E0E0E0", game.TierVeryCold.Color())

	// Unknown tiers fall back to the coldest color.
	assert.Equal(t, "#E0E0E0", game.Tier("nope").Color())
}
