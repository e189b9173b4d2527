//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/wrench-attack-stats/internal/adapter/kafka"
	"github.com/couchcryptid/wrench-attack-stats/internal/aggregate"
	"github.com/couchcryptid/wrench-attack-stats/internal/config"
	"github.com/couchcryptid/wrench-attack-stats/internal/dashboard"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
	"github.com/couchcryptid/wrench-attack-stats/internal/observability"
)

const testSnapshotTopic = "test-snapshots"

// TestSnapshotPublishRoundTrip builds the dashboard snapshot from the
// compiled-in dataset, publishes it through the Kafka adapter, and reads every
// section back.
func TestSnapshotPublishRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSnapshotTopic)

	cfg := &config.Config{
		KafkaBrokers:       []string{broker},
		KafkaSnapshotTopic: testSnapshotTopic,
		PublishEnabled:     true,
	}

	ds, err := domain.LoadDataset()
	require.NoError(t, err)
	metrics := observability.NewMetricsForTesting()
	svc := dashboard.NewService(ds, clockwork.NewRealClock(), discardLogger(), metrics)
	snap, err := svc.Snapshot()
	require.NoError(t, err)

	pub := kafka.NewPublisher(cfg, discardLogger(), metrics)
	t.Cleanup(func() { _ = pub.Close() })
	require.NoError(t, pub.Publish(ctx, snap))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSnapshotTopic,
		GroupID:     fmt.Sprintf("test-snapshot-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	bySection := make(map[string]kafkago.Message)
	for len(bySection) < 15 {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read snapshot message")

		headers := make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, snap.Version, headers[kafka.HeaderVersion])
		_, err = time.Parse(time.RFC3339, headers[kafka.HeaderGeneratedAt])
		assert.NoError(t, err, "generated_at should be RFC3339")
		bySection[headers[kafka.HeaderSection]] = msg
	}

	var summary aggregate.Summary
	require.NoError(t, json.Unmarshal(bySection["summary"].Value, &summary))
	assert.Equal(t, 269, summary.Total)

	var years []aggregate.Bucket
	require.NoError(t, json.Unmarshal(bySection["years"].Value, &years))
	assert.Len(t, years, 12)

	assert.Equal(t, snap.Version+"/market-cap", string(bySection["market-cap"].Key))
}
