package kafka

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/wrench-attack-stats/internal/aggregate"
	"github.com/couchcryptid/wrench-attack-stats/internal/dashboard"
	"github.com/couchcryptid/wrench-attack-stats/internal/observability"
)

type mockWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (m *mockWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if m.err != nil {
		return m.err
	}
	m.msgs = append(m.msgs, msgs...)
	return nil
}

func (m *mockWriter) Close() error {
	m.closed = true
	return nil
}

func testSnapshot() *dashboard.Snapshot {
	return &dashboard.Snapshot{
		Version:     "abcdef0123456789",
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Summary:     aggregate.Summary{Total: 3},
		Years:       []aggregate.Bucket{{Key: "2021", S1: 1, S2: 1, S3: 1, Total: 3}},
	}
}

func headers(msg kafkago.Message) map[string]string {
	out := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		out[h.Key] = string(h.Value)
	}
	return out
}

func TestSnapshotMessages(t *testing.T) {
	snap := testSnapshot()
	msgs, err := snapshotMessages(snap)
	require.NoError(t, err)
	require.Len(t, msgs, len(sections(snap)))

	seen := make(map[string]bool)
	for _, msg := range msgs {
		h := headers(msg)
		assert.Equal(t, "abcdef0123456789", h[HeaderVersion])
		assert.Equal(t, "2026-03-01T12:00:00Z", h[HeaderGeneratedAt])
		assert.Equal(t, snap.Version+"/"+h[HeaderSection], string(msg.Key))
		assert.False(t, seen[h[HeaderSection]], "duplicate section %s", h[HeaderSection])
		seen[h[HeaderSection]] = true
	}

	assert.JSONEq(t, `[{"key":"2021","s1":1,"s2":1,"s3":1,"s4":0,"s5":0,"total":3}]`, string(msgs[1].Value))
}

func TestPublisher_Publish(t *testing.T) {
	w := &mockWriter{}
	p := NewPublisherWithWriter(w, slog.Default(), observability.NewMetricsForTesting())

	require.NoError(t, p.Publish(context.Background(), testSnapshot()))
	assert.Len(t, w.msgs, len(sections(testSnapshot())))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_PublishError(t *testing.T) {
	w := &mockWriter{err: errors.New("broker down")}
	p := NewPublisherWithWriter(w, slog.Default(), observability.NewMetricsForTesting())

	err := p.Publish(context.Background(), testSnapshot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abcdef0123456789")
	assert.Contains(t, err.Error(), "broker down")
}
