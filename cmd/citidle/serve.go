package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	httpadapter "github.com/AnnaReese/Citidle/internal/adapter/http"
	kafkaadapter "github.com/AnnaReese/Citidle/internal/adapter/kafka"
	"github.com/AnnaReese/Citidle/internal/config"
	"github.com/AnnaReese/Citidle/internal/observability"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Citidle HTTP API server.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindFlags(cmd, v)
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.String("http-addr", ":8080", "address for the HTTP server (env: CITIDLE_HTTP_ADDR)")
	fs.Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout (env: CITIDLE_SHUTDOWN_TIMEOUT)")
	fs.Duration("session-ttl", time.Hour, "idle time before sessions are discarded (env: CITIDLE_SESSION_TTL)")
	fs.Bool("events-enabled", false, "publish guess events to Kafka (env: CITIDLE_EVENTS_ENABLED)")
	fs.String("kafka-brokers", "localhost:9092", "comma-separated Kafka broker list (env: CITIDLE_KAFKA_BROKERS)")
	fs.String("kafka-topic", "citidle-guesses", "Kafka topic for guess events (env: CITIDLE_KAFKA_TOPIC)")

	return cmd
}

func runServe(parent context.Context, cfg *config.Config) error {
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	// Guess event publishing (feature-flagged via CITIDLE_EVENTS_ENABLED).
	var publisher httpadapter.GuessPublisher
	var writer *kafkaadapter.Writer
	if cfg.EventsEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("guess event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("guess event publishing disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, engine, cfg.SessionTTL,
		clockwork.NewRealClock(), publisher, logger, metrics)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server listening",
			"addr", cfg.HTTPAddr,
			"pool_size", engine.Selector().PoolSize())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go srv.RunSessionSweeper(ctx)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
	return nil
}
