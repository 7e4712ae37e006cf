package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/AnnaReese/Citidle/internal/adapter/http"
	"github.com/AnnaReese/Citidle/internal/dataset"
	"github.com/AnnaReese/Citidle/internal/game"
	"github.com/AnnaReese/Citidle/internal/observability"
)

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []game.GuessEvent
}

func (p *capturePublisher) PublishGuess(_ context.Context, event game.GuessEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) all() []game.GuessEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]game.GuessEvent(nil), p.events...)
}

// newTestServer serves the embedded dataset with the clock frozen at noon
// UTC on 2026-01-01 CST, whose daily target is New Orleans, LA.
func newTestServer(t *testing.T, publisher httpadapter.GuessPublisher) *httpadapter.Server {
	t.Helper()
	records, err := dataset.Default()
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(time.Date(2026, time.January, 1, 18, 0, 0, 0, time.UTC))
	engine, err := game.NewEngineWithClock(records, clock)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return httpadapter.NewServer(":0", engine, time.Hour, clock, publisher,
		logger, observability.NewMetricsForTesting())
}

func doJSON(t *testing.T, srv *httpadapter.Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	srv.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), "body: %s", rec.Body.String())
	return rec, decoded
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)
	rec, body := doJSON(t, srv, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyz(t *testing.T) {
	srv := newTestServer(t, nil)
	rec, body := doJSON(t, srv, http.MethodGet, "/readyz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, float64(66), body["cities"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestGameInfo(t *testing.T) {
	srv := newTestServer(t, nil)
	rec, body := doJSON(t, srv, http.MethodGet, "/api/game/info", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(66), body["total_cities"])
	assert.Equal(t, "2026-01-01", body["cst_date"])

	// Frozen at 12:00 CST, so 12h to the next midnight.
	reset, ok := body["time_until_reset"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(12), reset["hours"])
	assert.Equal(t, float64(0), reset["minutes"])
	assert.Equal(t, float64(12*3600), reset["total_seconds"])
}

func TestTargetHash(t *testing.T) {
	srv := newTestServer(t, nil)
	rec, body := doJSON(t, srv, http.MethodGet, "/api/game/target-hash", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	// sha256("new orleans,la"), first 8 bytes.
	assert.Equal(t, "f46dd16107be5776", body["target_hash"])
}

func TestStatelessGuess(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("wrong city", func(t *testing.T) {
		rec, body := doJSON(t, srv, http.MethodPost, "/api/guess", map[string]string{"guess": "NYC"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])

		result := body["result"].(map[string]any)
		assert.Equal(t, 1168.4, result["distance_miles"])
		assert.Equal(t, "very_cold", result["color_tier"])
		assert.Equal(t, "#E0E0E0", result["color"])
		assert.Equal(t, false, result["is_correct"])
		assert.Nil(t, result["target"])

		city := result["city"].(map[string]any)
		assert.Equal(t, "New York City", city["name"])
	})

	t.Run("correct city reveals target", func(t *testing.T) {
		rec, body := doJSON(t, srv, http.MethodPost, "/api/guess", map[string]string{"guess": "nola"})
		require.Equal(t, http.StatusOK, rec.Code)

		result := body["result"].(map[string]any)
		assert.Equal(t, true, result["is_correct"])
		assert.Equal(t, "correct", result["color_tier"])

		target := result["target"].(map[string]any)
		assert.Equal(t, "New Orleans", target["name"])
		assert.Equal(t, "LA", target["state"])
	})

	t.Run("unknown city", func(t *testing.T) {
		rec, body := doJSON(t, srv, http.MethodPost, "/api/guess", map[string]string{"guess": "Atlantis"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Atlantis", body["guess"])
		assert.Contains(t, body["error"], "City not found")
	})

	t.Run("blank guess", func(t *testing.T) {
		rec, _ := doJSON(t, srv, http.MethodPost, "/api/guess", map[string]string{"guess": "  "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/guess", bytes.NewReader([]byte("{")))
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReveal(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, _ := doJSON(t, srv, http.MethodPost, "/api/reveal", map[string]bool{"confirm": false})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := doJSON(t, srv, http.MethodPost, "/api/reveal", map[string]bool{"confirm": true})
	require.Equal(t, http.StatusOK, rec.Code)
	target := body["target"].(map[string]any)
	assert.Equal(t, "New Orleans", target["name"])
}

func TestSessionLifecycle(t *testing.T) {
	publisher := &capturePublisher{}
	srv := newTestServer(t, publisher)

	rec, body := doJSON(t, srv, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID, ok := body["session_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, "2026-01-01", body["game_date"])

	base := "/api/sessions/" + sessionID

	rec, body = doJSON(t, srv, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["is_won"])
	assert.Equal(t, float64(0), body["guess_count"])
	assert.Nil(t, body["target"])

	rec, body = doJSON(t, srv, http.MethodPost, base+"/guess", map[string]string{"guess": "Chicago"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["guess_count"])

	rec, body = doJSON(t, srv, http.MethodPost, base+"/guess", map[string]string{"guess": "New Orleans"})
	require.Equal(t, http.StatusOK, rec.Code)
	result := body["result"].(map[string]any)
	assert.Equal(t, true, result["is_correct"])
	assert.Equal(t, float64(2), body["guess_count"])

	// The won session rejects further guesses.
	rec, _ = doJSON(t, srv, http.MethodPost, base+"/guess", map[string]string{"guess": "Houston"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body = doJSON(t, srv, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["is_won"])
	target := body["target"].(map[string]any)
	assert.Equal(t, "New Orleans", target["name"])

	events := publisher.all()
	require.Len(t, events, 2)
	assert.Equal(t, sessionID, events[0].SessionID)
	assert.Equal(t, "2026-01-01", events[0].GameDate)
	assert.Equal(t, "Chicago", events[0].City)
	assert.True(t, events[1].Correct)
}

func TestSessionGuessErrors(t *testing.T) {
	srv := newTestServer(t, nil)

	rec, _ := doJSON(t, srv, http.MethodGet, "/api/sessions/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/sessions/does-not-exist/guess", map[string]string{"guess": "Chicago"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, body := doJSON(t, srv, http.MethodPost, "/api/sessions", nil)
	base := "/api/sessions/" + body["session_id"].(string)

	rec, _ = doJSON(t, srv, http.MethodPost, base+"/guess", map[string]string{"guess": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = doJSON(t, srv, http.MethodPost, base+"/guess", map[string]string{"guess": "Atlantis"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["success"])
}
