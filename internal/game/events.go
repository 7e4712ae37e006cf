package game

import "time"

// GuessEvent is the analytics record emitted for every scored guess. It is
// transport-agnostic; the kafka adapter serializes and publishes it when
// event publishing is enabled.
type GuessEvent struct {
	SessionID     string    `json:"session_id,omitempty"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	DistanceMiles float64   `json:"distance_miles"`
	Tier          Tier      `json:"color_tier"`
	Correct       bool      `json:"is_correct"`
	GameDate      string    `json:"game_date"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// NewGuessEvent builds the event for a scored guess. sessionID is empty for
// stateless (one-shot) guesses.
func NewGuessEvent(sessionID string, gameDate time.Time, result GuessResult, submittedAt time.Time) GuessEvent {
	return GuessEvent{
		SessionID:     sessionID,
		City:          result.City.Name,
		State:         result.City.State,
		DistanceMiles: result.DistanceMiles,
		Tier:          result.Tier,
		Correct:       result.Correct,
		GameDate:      gameDate.Format(dateLayout),
		SubmittedAt:   submittedAt,
	}
}
