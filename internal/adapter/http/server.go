// Package http exposes the game over a JSON API, plus the service health,
// readiness, and metrics endpoints. Handlers are pure translation; all game
// logic lives in internal/game.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AnnaReese/Citidle/internal/game"
	"github.com/AnnaReese/Citidle/internal/observability"
)

// GuessPublisher emits analytics events for scored guesses. A nil publisher
// disables publishing.
type GuessPublisher interface {
	PublishGuess(ctx context.Context, event game.GuessEvent) error
}

const publishTimeout = 2 * time.Second

// Server hosts the Citidle HTTP API.
type Server struct {
	httpServer *http.Server
	engine     *game.Engine
	sessions   *sessionRegistry
	publisher  GuessPublisher
	clock      clockwork.Clock
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer wires the router. sessionTTL bounds how long idle sessions are
// retained; publisher may be nil.
func NewServer(addr string, engine *game.Engine, sessionTTL time.Duration, clock clockwork.Clock, publisher GuessPublisher, logger *slog.Logger, metrics *observability.Metrics) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		engine:    engine,
		sessions:  newSessionRegistry(sessionTTL, clock, metrics),
		publisher: publisher,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}

	router.GET("/healthz", s.handleHealth)
	router.GET("/readyz", s.handleReady)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.GET("/game/info", s.handleGameInfo)
	api.GET("/game/target-hash", s.handleTargetHash)
	api.POST("/guess", s.handleStatelessGuess)
	api.POST("/reveal", s.handleReveal)
	api.POST("/sessions", s.handleCreateSession)
	api.GET("/sessions/:id", s.handleGetSession)
	api.POST("/sessions/:id/guess", s.handleSessionGuess)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// RunSessionSweeper expires idle sessions until the context is cancelled.
func (s *Server) RunSessionSweeper(ctx context.Context) {
	s.sessions.run(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
