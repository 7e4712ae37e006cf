package http

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnnaReese/Citidle/internal/dataset"
	"github.com/AnnaReese/Citidle/internal/game"
)

const notFoundMessage = "City not found. Make sure it's a US city with 300k+ population."

type guessRequest struct {
	Guess string `json:"guess"`
}

type revealRequest struct {
	Confirm bool `json:"confirm"`
}

// guessResponse mirrors the result shape of a scored guess.
type guessResponse struct {
	City          dataset.CityRecord  `json:"city"`
	DistanceMiles float64             `json:"distance_miles"`
	Tier          game.Tier           `json:"color_tier"`
	Color         string              `json:"color"`
	Correct       bool                `json:"is_correct"`
	Target        *dataset.CityRecord `json:"target,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"cities": s.engine.Selector().PoolSize(),
	})
}

// handleGameInfo reports pool size, the current CST date, and the time
// remaining until the next daily target.
func (s *Server) handleGameInfo(c *gin.Context) {
	sel := s.engine.Selector()
	remaining := sel.TimeUntilReset()
	total := int(remaining.Seconds())

	c.JSON(http.StatusOK, gin.H{
		"total_cities": sel.PoolSize(),
		"cst_date":     sel.CSTDate().Format("2006-01-02"),
		"time_until_reset": gin.H{
			"hours":         total / 3600,
			"minutes":       (total % 3600) / 60,
			"seconds":       total % 60,
			"total_seconds": total,
		},
	})
}

// handleTargetHash returns a deterministic digest of today's target so a
// client can verify a win locally without the answer being revealed.
func (s *Server) handleTargetHash(c *gin.Context) {
	target := s.engine.Selector().CityToday()
	c.JSON(http.StatusOK, gin.H{"target_hash": targetHash(target)})
}

func targetHash(target dataset.CityRecord) string {
	key := strings.ToLower(target.Name) + "," + strings.ToLower(target.State)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}

// handleStatelessGuess scores a one-shot guess against today's target with
// no server-side session.
func (s *Server) handleStatelessGuess(c *gin.Context) {
	var req guessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing 'guess' in request body"})
		return
	}
	if strings.TrimSpace(req.Guess) == "" {
		s.metrics.GuessesInvalid.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "empty guess"})
		return
	}

	matches := s.engine.FindCities(req.Guess)
	if len(matches) == 0 {
		s.metrics.GuessesUnknown.Inc()
		c.JSON(http.StatusOK, gin.H{"success": false, "error": notFoundMessage, "guess": req.Guess})
		return
	}

	guessed := matches[0]
	target := s.engine.Selector().CityToday()
	miles := game.Distance(guessed, target)
	result := game.GuessResult{
		City:          guessed,
		DistanceMiles: miles,
		Tier:          game.TierFor(miles),
		Correct: miles == 0 ||
			(strings.EqualFold(guessed.Name, target.Name) &&
				strings.EqualFold(guessed.State, target.State)),
	}

	s.metrics.GuessesScored.WithLabelValues(string(result.Tier)).Inc()
	s.publishGuess(c.Request.Context(), "", s.engine.Selector().CSTDate(), result)

	resp := guessResponse{
		City:          result.City,
		DistanceMiles: round1(result.DistanceMiles),
		Tier:          result.Tier,
		Color:         result.Tier.Color(),
		Correct:       result.Correct,
	}
	if result.Correct {
		resp.Target = &target
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": resp})
}

// handleReveal returns today's answer for players giving up. The request
// must carry an explicit confirmation.
func (s *Server) handleReveal(c *gin.Context) {
	var req revealRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "must confirm reveal"})
		return
	}
	target := s.engine.Selector().CityToday()
	c.JSON(http.StatusOK, gin.H{"success": true, "target": target})
}

func (s *Server) handleCreateSession(c *gin.Context) {
	session := s.engine.StartGame()
	s.sessions.add(session)
	s.metrics.SessionsStarted.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"session_id":   session.ID(),
		"game_date":    session.Date().Format("2006-01-02"),
		"total_cities": s.engine.Selector().PoolSize(),
	})
}

func (s *Server) handleGetSession(c *gin.Context) {
	session, ok := s.sessions.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, s.engine.Summary(session))
}

func (s *Server) handleSessionGuess(c *gin.Context) {
	session, ok := s.sessions.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "session not found"})
		return
	}

	var req guessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing 'guess' in request body"})
		return
	}

	result, err := s.engine.SubmitGuess(session, req.Guess)
	switch {
	case errors.Is(err, game.ErrEmptyGuess):
		s.metrics.GuessesInvalid.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "empty guess"})
		return
	case errors.Is(err, game.ErrAlreadyWon):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "game already won"})
		return
	case errors.Is(err, game.ErrCityNotFound):
		s.metrics.GuessesUnknown.Inc()
		c.JSON(http.StatusOK, gin.H{"success": false, "error": notFoundMessage, "guess": req.Guess})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return
	}

	s.metrics.GuessesScored.WithLabelValues(string(result.Tier)).Inc()
	if result.Correct {
		s.metrics.GamesWon.Inc()
	}
	s.publishGuess(c.Request.Context(), session.ID(), session.Date(), result)

	resp := guessResponse{
		City:          result.City,
		DistanceMiles: round1(result.DistanceMiles),
		Tier:          result.Tier,
		Color:         result.Tier.Color(),
		Correct:       result.Correct,
	}
	if result.Correct {
		target := session.Target()
		resp.Target = &target
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": resp, "guess_count": session.GuessCount()})
}

// publishGuess emits an analytics event. Publishing is best-effort: errors
// are logged and counted, never returned to the player.
func (s *Server) publishGuess(ctx context.Context, sessionID string, gameDate time.Time, result game.GuessResult) {
	if s.publisher == nil {
		return
	}
	event := game.NewGuessEvent(sessionID, gameDate, result, s.clock.Now())

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := s.publisher.PublishGuess(pubCtx, event); err != nil {
		s.metrics.EventPublishErrors.Inc()
		s.logger.Warn("guess event publish failed", "error", err, "session_id", sessionID)
		return
	}
	s.metrics.EventsPublished.Inc()
}

func round1(miles float64) float64 {
	return math.Round(miles*10) / 10
}
