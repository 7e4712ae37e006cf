package http

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/AnnaReese/Citidle/internal/game"
	"github.com/AnnaReese/Citidle/internal/observability"
)

// sweepInterval bounds how stale an expired session can linger.
const sweepInterval = time.Minute

// sessionRegistry holds live sessions in memory. Sessions are never
// persisted; an idle session past the TTL is discarded by the sweeper.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
	ttl      time.Duration
	clock    clockwork.Clock
	metrics  *observability.Metrics
}

func newSessionRegistry(ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*game.Session),
		ttl:      ttl,
		clock:    clock,
		metrics:  metrics,
	}
}

func (r *sessionRegistry) add(s *game.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
	r.metrics.ActiveSessions.Set(float64(len(r.sessions)))
}

func (r *sessionRegistry) get(id string) (*game.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// run sweeps expired sessions until the context is cancelled.
func (r *sessionRegistry) run(ctx context.Context) {
	ticker := r.clock.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			r.sweep()
		}
	}
}

func (r *sessionRegistry) sweep() {
	cutoff := r.clock.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if s.LastActive().Before(cutoff) {
			delete(r.sessions, id)
		}
	}
	r.metrics.ActiveSessions.Set(float64(len(r.sessions)))
}
