// Package events publishes moderation events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/SillyFizy/grow/internal/config"
)

// Event types written to the message "type" header.
const (
	TypePlantPromoted      = "plant.promoted"
	TypeSubmissionRejected = "submission.rejected"
)

// PlantPromoted is published after a promotion commits.
type PlantPromoted struct {
	SubmissionID int64     `json:"submission_id"`
	PlantID      int64     `json:"plant_id"`
	At           time.Time `json:"at"`
}

// SubmissionsRejected is published after a reject commits.
type SubmissionsRejected struct {
	SubmissionIDs []int64   `json:"submission_ids"`
	At            time.Time `json:"at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes moderation events. A Publisher without a writer drops
// every event, which is how publishing is disabled.
type Publisher struct {
	w       messageWriter
	log     *slog.Logger
	timeout time.Duration
}

// NewPublisher returns a Kafka-backed publisher, or a no-op one when no
// brokers are configured.
func NewPublisher(cfg config.KafkaConfig, logger *slog.Logger) *Publisher {
	p := &Publisher{log: logger.With("component", "events"), timeout: 5 * time.Second}
	if !cfg.Enabled() {
		return p
	}
	p.w = newKafkaWriter(cfg, p.log)
	return p
}

// writerBatchTimeout bounds how long the writer waits to fill a batch.
const writerBatchTimeout = 10 * time.Millisecond

// newKafkaWriter builds an async writer: WriteMessages only enqueues, so
// publishing never holds up a moderation request. Delivery failures are
// reported through Completion.
func newKafkaWriter(cfg config.KafkaConfig, log *slog.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers()...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           writerBatchTimeout,
		Completion:             completionLogger(log),
	}
}

func completionLogger(log *slog.Logger) func([]kafka.Message, error) {
	return func(msgs []kafka.Message, err error) {
		if err == nil {
			return
		}
		log.Warn("deliver events failed",
			slog.Int("messages", len(msgs)),
			slog.String("error", err.Error()),
		)
	}
}

func newPublisherWithWriter(w messageWriter, logger *slog.Logger) *Publisher {
	return &Publisher{w: w, log: logger, timeout: 5 * time.Second}
}

// Enabled reports whether events are actually sent.
func (p *Publisher) Enabled() bool { return p.w != nil }

// PlantPromoted publishes a promotion, keyed by submission id.
func (p *Publisher) PlantPromoted(ctx context.Context, submissionID, plantID int64, at time.Time) {
	p.publish(ctx, TypePlantPromoted, strconv.FormatInt(submissionID, 10), PlantPromoted{
		SubmissionID: submissionID,
		PlantID:      plantID,
		At:           at.UTC(),
	})
}

// SubmissionsRejected publishes a bulk rejection.
func (p *Publisher) SubmissionsRejected(ctx context.Context, ids []int64, at time.Time) {
	if len(ids) == 0 {
		return
	}
	p.publish(ctx, TypeSubmissionRejected, strconv.FormatInt(ids[0], 10), SubmissionsRejected{
		SubmissionIDs: ids,
		At:            at.UTC(),
	})
}

// publish never returns an error: moderation has already committed, so a
// failed write is only logged.
func (p *Publisher) publish(ctx context.Context, eventType, key string, payload any) {
	if p.w == nil {
		return
	}

	value, err := json.Marshal(payload)
	if err != nil {
		p.log.ErrorContext(ctx, "encode event", slog.String("type", eventType), slog.String("error", err.Error()))
		return
	}

	// The request context may already be done once the response is written.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	err = p.w.WriteMessages(writeCtx, kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Headers: []kafka.Header{{Key: "type", Value: []byte(eventType)}},
	})
	if err != nil {
		p.log.WarnContext(ctx, "publish event failed",
			slog.String("type", eventType),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p.w == nil {
		return nil
	}
	if err := p.w.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}
