// Package dataset loads the reference list of US cities used as the game
// pool. The canonical source is a CSV with a required header row and the
// columns name, state, lat, lng, and population in any order. A copy of the
// dataset (US cities with population of 300k or more) is embedded in the
// binary so the game works with no external files.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed data/cities.csv
var defaultCSV []byte

// ErrDatasetNotFound indicates the backing CSV file is absent. Loading the
// dataset is a startup step; callers should treat this as fatal.
var ErrDatasetNotFound = errors.New("cities dataset not found")

// CityRecord is one row of the reference dataset. Records are created once
// at load time and shared read-only for the process lifetime; identity is
// the (Name, State) pair.
type CityRecord struct {
	Name       string  `json:"name"`
	State      string  `json:"state"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Population int     `json:"population"`
}

// requiredColumns must all be present in the CSV header.
var requiredColumns = []string{"name", "state", "lat", "lng", "population"}

// Load parses city records from CSV data. The header row is required and
// column order does not matter. Rows with an empty name are skipped.
// Numeric fields coerce to zero when missing or malformed rather than
// failing the load, which tolerates partial data.
func Load(r io.Reader) ([]CityRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset header missing column %q", name)
		}
	}

	var records []CityRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		name := strings.TrimSpace(field(row, cols["name"]))
		if name == "" {
			continue
		}

		records = append(records, CityRecord{
			Name:       name,
			State:      strings.TrimSpace(field(row, cols["state"])),
			Lat:        parseFloatOrZero(field(row, cols["lat"])),
			Lng:        parseFloatOrZero(field(row, cols["lng"])),
			Population: parsePopulation(field(row, cols["population"])),
		})
	}
	return records, nil
}

// LoadFile loads city records from a CSV file on disk. A missing file is
// reported as ErrDatasetNotFound.
func LoadFile(path string) ([]CityRecord, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer fh.Close()
	return Load(fh)
}

// Default returns the embedded reference dataset.
func Default() ([]CityRecord, error) {
	return Load(bytes.NewReader(defaultCSV))
}

// FilterMinPopulation returns the records with Population >= minimum,
// preserving input order.
func FilterMinPopulation(records []CityRecord, minimum int) []CityRecord {
	filtered := make([]CityRecord, 0, len(records))
	for _, rec := range records {
		if rec.Population >= minimum {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parsePopulation accepts integer or decimal strings ("978908" or
// "978908.0") and truncates toward zero. Returns 0 on failure.
func parsePopulation(s string) int {
	return int(parseFloatOrZero(s))
}
