package game

import (
	"sort"
	"strings"

	"github.com/AnnaReese/Citidle/internal/dataset"
)

// Index maps normalized lookup keys to the city records that answer to
// them. Three keys are registered per record: the plain normalized name,
// "<name>, <state>" and "<name> <state>" (state lowercased), the latter two
// so a guess like "Portland, OR" lands on the right record. Per-key record
// order is insertion order, which makes first-match tie-breaking between
// same-named cities deterministic.
//
// An Index is built once and is safe for concurrent reads.
type Index struct {
	byKey map[string][]dataset.CityRecord
	keys  []string // sorted plain normalized keys, no state variants
}

// BuildIndex constructs the lookup index from the loaded dataset.
func BuildIndex(records []dataset.CityRecord) *Index {
	ix := &Index{byKey: make(map[string][]dataset.CityRecord, len(records)*3)}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		key := Normalize(rec.Name)
		ix.byKey[key] = append(ix.byKey[key], rec)
		if !seen[key] {
			seen[key] = true
			ix.keys = append(ix.keys, key)
		}

		if rec.State != "" {
			state := strings.ToLower(rec.State)
			commaKey := key + ", " + state
			spaceKey := key + " " + state
			ix.byKey[commaKey] = append(ix.byKey[commaKey], rec)
			ix.byKey[spaceKey] = append(ix.byKey[spaceKey], rec)
		}
	}
	sort.Strings(ix.keys)
	return ix
}

// FindCities resolves a free-text query to matching records. The query is
// normalized and looked up directly; if that misses and the normalized
// query still contains a comma, the name and state parts around the first
// comma are retried as a composite key. Unknown cities yield an empty
// slice, never an error.
func (ix *Index) FindCities(query string) []dataset.CityRecord {
	key := Normalize(query)
	if matches, ok := ix.byKey[key]; ok {
		return matches
	}

	if name, state, found := strings.Cut(key, ","); found {
		composite := strings.TrimSpace(name) + ", " + strings.TrimSpace(state)
		return ix.byKey[composite]
	}
	return nil
}

// Keys returns the sorted plain normalized keys (state-qualified variants
// excluded). The slice is shared; callers must not modify it.
func (ix *Index) Keys() []string {
	return ix.keys
}

// firstForKey returns the first record registered under a plain key.
func (ix *Index) firstForKey(key string) (dataset.CityRecord, bool) {
	records := ix.byKey[key]
	if len(records) == 0 {
		return dataset.CityRecord{}, false
	}
	return records[0], true
}
