package game

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AnnaReese/Citidle/internal/dataset"
)

// GuessResult is the immutable outcome of one scored guess.
type GuessResult struct {
	City          dataset.CityRecord `json:"city"`
	DistanceMiles float64            `json:"distance_miles"`
	Tier          Tier               `json:"color_tier"`
	Correct       bool               `json:"is_correct"`
}

// Session is the per-player state of one day's game. It has two states:
// active (accepting guesses) and won (terminal). A session is mutated only
// through Engine.SubmitGuess, which serializes access with the session
// mutex, so a single session is safe under concurrent requests.
type Session struct {
	mu sync.Mutex

	id         string
	target     dataset.CityRecord
	date       time.Time
	guesses    []GuessResult
	won        bool
	createdAt  time.Time
	lastActive time.Time
}

func newSession(target dataset.CityRecord, date, now time.Time) *Session {
	return &Session{
		id:         uuid.NewString(),
		target:     target,
		date:       date,
		createdAt:  now,
		lastActive: now,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Target returns the city the player is trying to find. Presentation layers
// use this for explicit reveal flows (giving up); Summary withholds it until
// the game is won.
func (s *Session) Target() dataset.CityRecord { return s.target }

// Date returns the calendar date the session's target was selected for.
func (s *Session) Date() time.Time { return s.date }

// Won reports whether the target has been found.
func (s *Session) Won() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.won
}

// GuessCount returns the number of scored guesses so far. Unknown and
// invalid guesses are never counted.
func (s *Session) GuessCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.guesses)
}

// LastActive returns when the session last accepted a submission, for idle
// expiry by session registries.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Summary is a snapshot of a session for presentation layers. Target is
// populated only once the game is won.
type Summary struct {
	Won        bool                `json:"is_won"`
	GuessCount int                 `json:"guess_count"`
	Target     *dataset.CityRecord `json:"target,omitempty"`
	Guesses    []GuessResult       `json:"guesses"`
}

// snapshot builds a Summary under the session lock.
func (s *Session) snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	guesses := make([]GuessResult, len(s.guesses))
	copy(guesses, s.guesses)

	sum := Summary{
		Won:        s.won,
		GuessCount: len(s.guesses),
		Guesses:    guesses,
	}
	if s.won {
		target := s.target
		sum.Target = &target
	}
	return sum
}
