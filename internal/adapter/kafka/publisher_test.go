package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire-ca/internal/observability"
	"wildfire-ca/internal/scenario"
	"wildfire-ca/internal/sims/firespread"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 8, 2, 14, 0, 0, 0, time.UTC)
	run := &scenario.Run{Seed: 42, Ignition: firespread.Cell{Row: 3, Col: 4}, StartedAt: now}
	rec := scenario.StepRecord{
		Hour:    2,
		Weather: firespread.Weather{WindSpeed: 12, WindDirection: 45, Temperature: 31, Humidity: 40},
		Metrics: firespread.Metrics{BurnedAreaHectares: 1.5, BurnedCells: 6},
	}

	msg, err := serializeToMessage(run, rec)
	require.NoError(t, err)

	assert.Equal(t, []byte("42/3/4"), msg.Key)
	var decoded StepMessage
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, 2, decoded.Hour)
	assert.Equal(t, rec.Weather, decoded.Weather)
	assert.Equal(t, rec.Metrics, decoded.Metrics)
	assert.Contains(t, string(msg.Value), `"burned_area_hectares":1.5`)

	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "hour", msg.Headers[0].Key)
	assert.Equal(t, []byte("2"), msg.Headers[0].Value)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestPublisherPublishesEveryStep(t *testing.T) {
	fw := &fakeWriter{}
	pub := newPublisher(fw, time.Second, nil, observability.NewMetricsForTesting())

	cfg := firespread.DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	d := scenario.NewDriver(cfg, scenario.WithClock(clockwork.NewFakeClock()), scenario.WithObservers(pub))
	_, err := d.Run(firespread.Cell{Row: 10, Col: 10}, scenario.DefaultRequest().Weather, 4)
	require.NoError(t, err)

	require.Len(t, fw.msgs, 4)
	for i, msg := range fw.msgs {
		assert.Equal(t, fw.msgs[0].Key, msg.Key)
		assert.Equal(t, []byte{byte('0' + i)}, msg.Headers[0].Value)
	}

	require.NoError(t, pub.Close())
	assert.True(t, fw.closed)
}

func TestPublisherFailureAbortsRun(t *testing.T) {
	fw := &fakeWriter{err: errors.New("broker down")}
	m := observability.NewMetricsForTesting()
	pub := newPublisher(fw, time.Second, nil, m)

	cfg := firespread.DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	run, err := scenario.NewDriver(cfg, scenario.WithObservers(pub)).Run(firespread.Cell{Row: 5, Col: 5}, scenario.DefaultRequest().Weather, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
	assert.Len(t, run.Steps, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PublishErrors))
}
