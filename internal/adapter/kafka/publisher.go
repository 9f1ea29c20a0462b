package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"wildfire-ca/internal/config"
	"wildfire-ca/internal/core"
	"wildfire-ca/internal/observability"
	"wildfire-ca/internal/scenario"
	"wildfire-ca/internal/sims/firespread"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// StepMessage is the JSON payload published for every simulated hour.
type StepMessage struct {
	Seed     int64              `json:"seed"`
	Ignition firespread.Cell    `json:"ignition"`
	Hour     int                `json:"hour"`
	Weather  firespread.Weather `json:"weather"`
	Metrics  firespread.Metrics `json:"metrics"`
}

// Publisher produces one message per step to a Kafka topic.
// It implements scenario.StepObserver.
type Publisher struct {
	writer  messageWriter
	timeout time.Duration
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewPublisher creates a Kafka producer for the configured step topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return newPublisher(w, cfg.PublishTimeout, logger, metrics)
}

func newPublisher(w messageWriter, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{writer: w, timeout: timeout, logger: logger, metrics: metrics}
}

// ObserveStep publishes rec. Messages of one run share a key so they land on
// the same partition in hour order.
func (p *Publisher) ObserveStep(run *scenario.Run, rec scenario.StepRecord, _ *core.FloatGrid) error {
	msg, err := serializeToMessage(run, rec)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		if p.metrics != nil {
			p.metrics.PublishErrors.Inc()
		}
		p.logger.Error("publish step failed", "seed", run.Seed, "hour", rec.Hour, "error", err)
		return fmt.Errorf("publish step %d: %w", rec.Hour, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a step record into a Kafka message.
func serializeToMessage(run *scenario.Run, rec scenario.StepRecord) (kafkago.Message, error) {
	data, err := json.Marshal(StepMessage{
		Seed:     run.Seed,
		Ignition: run.Ignition,
		Hour:     rec.Hour,
		Weather:  rec.Weather,
		Metrics:  rec.Metrics,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize step record: %w", err)
	}
	key := fmt.Sprintf("%d/%d/%d", run.Seed, run.Ignition.Row, run.Ignition.Col)
	return kafkago.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "hour", Value: []byte(strconv.Itoa(rec.Hour))},
			{Key: "started_at", Value: []byte(run.StartedAt.Format(time.RFC3339))},
		},
	}, nil
}
