package game

import (
	"crypto/sha256"
	"errors"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/AnnaReese/Citidle/internal/dataset"
)

// cstZone is Central Standard Time (UTC-6) applied year-round. The daily
// reset deliberately ignores daylight saving so the same wall-clock boundary
// applies on every date and the selection stays reproducible.
var cstZone = time.FixedZone("CST", -6*60*60)

const dateLayout = "2006-01-02"

// ErrEmptyPool indicates the dataset produced no eligible cities.
var ErrEmptyPool = errors.New("no eligible cities in pool")

// Selector deterministically maps a calendar date to a target city. Every
// player sees the same target on the same CST date: the ISO date string is
// hashed with SHA-256, the digest is taken as a big unsigned integer, and
// reduced modulo the pool size.
//
// The pool is one record per distinct normalized-name bucket (the first
// inserted, so duplicates collapse deterministically), sorted by lowercase
// name then lowercase state. Same dataset in, same pool out, same city per
// date across runs.
type Selector struct {
	pool  []dataset.CityRecord
	clock clockwork.Clock
}

// NewSelector builds a Selector over the index's eligible pool using the
// real clock.
func NewSelector(ix *Index) (*Selector, error) {
	return NewSelectorWithClock(ix, clockwork.NewRealClock())
}

// NewSelectorWithClock is NewSelector with an injected time source so tests
// can freeze the current date.
func NewSelectorWithClock(ix *Index, clock clockwork.Clock) (*Selector, error) {
	pool := make([]dataset.CityRecord, 0, len(ix.Keys()))
	for _, key := range ix.Keys() {
		if rec, ok := ix.firstForKey(key); ok {
			pool = append(pool, rec)
		}
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	sort.Slice(pool, func(i, j int) bool {
		ni, nj := strings.ToLower(pool[i].Name), strings.ToLower(pool[j].Name)
		if ni != nj {
			return ni < nj
		}
		return strings.ToLower(pool[i].State) < strings.ToLower(pool[j].State)
	})
	return &Selector{pool: pool, clock: clock}, nil
}

// CityFor returns the target city for the given calendar date.
func (s *Selector) CityFor(date time.Time) dataset.CityRecord {
	sum := sha256.Sum256([]byte(date.Format(dateLayout)))
	n := new(big.Int).SetBytes(sum[:])
	idx := n.Mod(n, big.NewInt(int64(len(s.pool)))).Int64()
	return s.pool[idx]
}

// CityToday returns the target for the current CST date.
func (s *Selector) CityToday() dataset.CityRecord {
	return s.CityFor(s.CSTDate())
}

// CSTDate returns the current calendar date in CST, truncated to midnight.
func (s *Selector) CSTDate() time.Time {
	now := s.clock.Now().In(cstZone)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, cstZone)
}

// TimeUntilReset returns the time remaining until the next daily target,
// i.e. the next midnight CST. The result is always in [0, 24h).
func (s *Selector) TimeUntilReset() time.Duration {
	now := s.clock.Now().In(cstZone)
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, cstZone)
	return midnight.Sub(now)
}

// PoolSize returns the number of eligible cities.
func (s *Selector) PoolSize() int {
	return len(s.pool)
}

// Pool returns a copy of the eligible city list in selection order.
func (s *Selector) Pool() []dataset.CityRecord {
	out := make([]dataset.CityRecord, len(s.pool))
	copy(out, s.pool)
	return out
}
