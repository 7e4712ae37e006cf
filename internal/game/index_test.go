package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnnaReese/Citidle/internal/dataset"
	"github.com/AnnaReese/Citidle/internal/game"
)

func testRecords() []dataset.CityRecord {
	return []dataset.CityRecord{
		{Name: "Portland", State: "OR", Lat: 45.5152, Lng: -122.6784, Population: 652503},
		{Name: "Portland", State: "ME", Lat: 43.6591, Lng: -70.2568, Population: 668000},
		{Name: "New York City", State: "NY", Lat: 40.7128, Lng: -74.0060, Population: 8336817},
		{Name: "St. Louis", State: "MO", Lat: 38.6270, Lng: -90.1994, Population: 300576},
	}
}

func TestFindCitiesByPlainName(t *testing.T) {
	ix := game.BuildIndex(testRecords())

	matches := ix.FindCities("new york city")
	require.Len(t, matches, 1)
	assert.Equal(t, "NY", matches[0].State)
}

func TestFindCitiesThroughAlias(t *testing.T) {
	ix := game.BuildIndex(testRecords())

	matches := ix.FindCities("NYC")
	require.Len(t, matches, 1)
	assert.Equal(t, "New York City", matches[0].Name)
}

func TestFindCitiesStateQualified(t *testing.T) {
	ix := game.BuildIndex(testRecords())

	tests := []struct {
		query string
		state string
	}{
		{"Portland, OR", "OR"},
		{"Portland OR", "OR"},
		{"portland, me", "ME"},
		{"portland me", "ME"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			matches := ix.FindCities(tt.query)
			require.Len(t, matches, 1)
			assert.Equal(t, tt.state, matches[0].State)
		})
	}
}

// An unqualified shared name returns every match in insertion order, so
// first-match tie-breaking is stable across runs.
func TestFindCitiesSharedNameInsertionOrder(t *testing.T) {
	ix := game.BuildIndex(testRecords())

	matches := ix.FindCities("Portland")
	require.Len(t, matches, 2)
	assert.Equal(t, "OR", matches[0].State)
	assert.Equal(t, "ME", matches[1].State)
}

func TestFindCitiesNormalizesPunctuation(t *testing.T) {
	ix := game.BuildIndex(testRecords())

	for _, query := range []string{"St. Louis", "st louis", "Saint Louis", "ST. LOUIS, MO"} {
		matches := ix.FindCities(query)
		require.NotEmpty(t, matches, "query %q", query)
		assert.Equal(t, "St. Louis", matches[0].Name, "query %q", query)
	}
}

func TestFindCitiesUnknown(t *testing.T) {
	ix := game.BuildIndex(testRecords())

	assert.Empty(t, ix.FindCities("Atlantis"))
	assert.Empty(t, ix.FindCities(""))
}

func TestKeysAreSortedPlainNames(t *testing.T) {
	ix := game.BuildIndex(testRecords())

	assert.Equal(t, []string{"new york", "portland", "st louis"}, ix.Keys())
}
