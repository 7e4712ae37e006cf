package game

import (
	"errors"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/AnnaReese/Citidle/internal/dataset"
)

var (
	// ErrCityNotFound means the guess matched no index entry. Recoverable;
	// the session is left unchanged.
	ErrCityNotFound = errors.New("city not found")

	// ErrEmptyGuess means the guess text was blank. Rejected before lookup.
	ErrEmptyGuess = errors.New("empty guess")

	// ErrAlreadyWon means a guess arrived after the session was won.
	// Post-win guesses are never scored.
	ErrAlreadyWon = errors.New("game already won")
)

// Engine owns the city index and daily selector and orchestrates game
// sessions. It is constructed once at startup and is safe for concurrent
// use: the index and pool are read-only, and per-session mutation is
// serialized by the session's own lock.
type Engine struct {
	index    *Index
	selector *Selector
	clock    clockwork.Clock
}

// NewEngine builds an Engine over the dataset using the real clock.
func NewEngine(records []dataset.CityRecord) (*Engine, error) {
	return NewEngineWithClock(records, clockwork.NewRealClock())
}

// NewEngineWithClock is NewEngine with an injected time source.
func NewEngineWithClock(records []dataset.CityRecord, clock clockwork.Clock) (*Engine, error) {
	index := BuildIndex(records)
	selector, err := NewSelectorWithClock(index, clock)
	if err != nil {
		return nil, err
	}
	return &Engine{index: index, selector: selector, clock: clock}, nil
}

// Index returns the engine's city index.
func (e *Engine) Index() *Index { return e.index }

// Selector returns the engine's daily selector.
func (e *Engine) Selector() *Selector { return e.selector }

// StartGame creates an active session targeting today's city (CST date).
func (e *Engine) StartGame() *Session {
	return e.StartGameFor(e.selector.CSTDate())
}

// StartGameFor creates an active session targeting the city for the given
// calendar date.
func (e *Engine) StartGameFor(date time.Time) *Session {
	return newSession(e.selector.CityFor(date), date, e.clock.Now())
}

// SubmitGuess resolves a free-text guess against the index, scores it
// against the session target, and appends the result. Blank input returns
// ErrEmptyGuess, unmatched input ErrCityNotFound, and submissions after the
// win ErrAlreadyWon; in all three cases the session is unchanged.
//
// When a normalized key holds several records, the first inserted wins;
// players disambiguate with a state qualifier ("portland, or").
func (e *Engine) SubmitGuess(s *Session, text string) (GuessResult, error) {
	if strings.TrimSpace(text) == "" {
		return GuessResult{}, ErrEmptyGuess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.won {
		return GuessResult{}, ErrAlreadyWon
	}

	matches := e.index.FindCities(text)
	if len(matches) == 0 {
		return GuessResult{}, ErrCityNotFound
	}

	guessed := matches[0]
	miles := Distance(guessed, s.target)
	correct := miles == 0 ||
		(strings.EqualFold(guessed.Name, s.target.Name) &&
			strings.EqualFold(guessed.State, s.target.State))

	result := GuessResult{
		City:          guessed,
		DistanceMiles: miles,
		Tier:          TierFor(miles),
		Correct:       correct,
	}
	s.guesses = append(s.guesses, result)
	s.lastActive = e.clock.Now()
	if correct {
		s.won = true
	}
	return result, nil
}

// Summary returns a snapshot of the session; the target is included only
// once the game is won.
func (e *Engine) Summary(s *Session) Summary {
	return s.snapshot()
}

// FindCities resolves a query against the engine's index.
func (e *Engine) FindCities(query string) []dataset.CityRecord {
	return e.index.FindCities(query)
}
