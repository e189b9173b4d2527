package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/wrench-attack-stats/internal/config"
	"github.com/couchcryptid/wrench-attack-stats/internal/dashboard"
	"github.com/couchcryptid/wrench-attack-stats/internal/observability"
)

// Header keys set on every snapshot message.
const (
	HeaderVersion     = "dataset_version"
	HeaderSection     = "section"
	HeaderGeneratedAt = "generated_at"
)

// MessageWriter is the subset of *kafkago.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher writes dashboard snapshots to a Kafka topic, one message per
// snapshot section.
type Publisher struct {
	writer  MessageWriter
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewPublisher creates a Kafka producer for the configured snapshot topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSnapshotTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return NewPublisherWithWriter(w, logger, metrics)
}

// NewPublisherWithWriter wraps an existing writer.
func NewPublisherWithWriter(w MessageWriter, logger *slog.Logger, metrics *observability.Metrics) *Publisher {
	return &Publisher{writer: w, logger: logger, metrics: metrics}
}

// Publish serializes every section of snap and writes them in a single
// WriteMessages call.
func (p *Publisher) Publish(ctx context.Context, snap *dashboard.Snapshot) error {
	msgs, err := snapshotMessages(snap)
	if err != nil {
		p.metrics.SnapshotsPublished.WithLabelValues("error").Inc()
		return err
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.metrics.SnapshotsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("publish snapshot %s: %w", snap.Version, err)
	}
	p.metrics.SnapshotsPublished.WithLabelValues("success").Inc()
	p.logger.Info("snapshot published", "version", snap.Version, "messages", len(msgs))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

type section struct {
	name  string
	value any
}

func sections(snap *dashboard.Snapshot) []section {
	return []section{
		{"summary", snap.Summary},
		{"years", snap.Years},
		{"months", snap.Months},
		{"cumulative", snap.Cumulative},
		{"year-percentages", snap.YearRows},
		{"region-years", snap.RegionYears},
		{"region-percentages", snap.RegionRows},
		{"severity-pie", snap.SeverityPie},
		{"region-pie", snap.RegionPie},
		{"market-cap", snap.MarketCap},
		{"yearly-market-cap", snap.YearlyMarketCap},
		{"rates", snap.Rates},
		{"monthly-regression", snap.MonthlyRegression},
		{"yearly-regression", snap.YearlyRegression},
		{"cities", snap.Cities},
	}
}

// snapshotMessages marshals each section into a message keyed
// "<version>/<section>".
func snapshotMessages(snap *dashboard.Snapshot) ([]kafkago.Message, error) {
	secs := sections(snap)
	generatedAt := []byte(snap.GeneratedAt.Format(time.RFC3339))
	msgs := make([]kafkago.Message, 0, len(secs))
	for _, s := range secs {
		data, err := json.Marshal(s.value)
		if err != nil {
			return nil, fmt.Errorf("serialize snapshot section %s: %w", s.name, err)
		}
		msgs = append(msgs, kafkago.Message{
			Key:   []byte(snap.Version + "/" + s.name),
			Value: data,
			Headers: []kafkago.Header{
				{Key: HeaderVersion, Value: []byte(snap.Version)},
				{Key: HeaderSection, Value: []byte(s.name)},
				{Key: HeaderGeneratedAt, Value: generatedAt},
			},
		})
	}
	return msgs, nil
}
