// Package kafka publishes guess analytics events to a Kafka topic. The
// publisher is feature-flagged; when disabled the game runs without it and
// publish failures are never surfaced to players.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/AnnaReese/Citidle/internal/config"
	"github.com/AnnaReese/Citidle/internal/game"
)

// Writer produces guess events to a Kafka topic.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured guess topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishGuess serializes and publishes a single guess event.
func (w *Writer) PublishGuess(ctx context.Context, event game.GuessEvent) error {
	msg, err := serializeGuessEvent(event)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeGuessEvent marshals a GuessEvent into a Kafka message. Messages
// are keyed by game date so one day's guesses stay on one partition.
func serializeGuessEvent(event game.GuessEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize guess event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.GameDate),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "color_tier", Value: []byte(event.Tier)},
			{Key: "is_correct", Value: []byte(strconv.FormatBool(event.Correct))},
		},
	}, nil
}
