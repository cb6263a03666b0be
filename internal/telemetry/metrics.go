package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/wolfeidau/taskseed"
)

// Metrics holds all the OpenTelemetry metric instruments
type Metrics struct {
	// Generation metrics
	EntitiesGeneratedTotal metric.Int64Counter
	StageDuration          metric.Float64Histogram

	// Content provider metrics
	ContentRequestsTotal  metric.Int64Counter
	ContentFallbacksTotal metric.Int64Counter

	// Sink metrics
	RowsPublishedTotal metric.Int64Counter
	PublishDuration    metric.Float64Histogram

	// Validation metrics
	ValidationViolationsTotal metric.Int64Counter
}

var (
	once    sync.Once
	metrics *Metrics
)

// GetMetrics returns the singleton Metrics instance, initializing it if necessary
func GetMetrics() *Metrics {
	once.Do(func() {
		metrics = initMetrics()
	})
	return metrics
}

// initMetrics creates and registers all metric instruments
func initMetrics() *Metrics {
	meter := otel.GetMeterProvider().Meter(meterName)

	m := &Metrics{}

	m.EntitiesGeneratedTotal, _ = meter.Int64Counter(
		"taskseed.entities.generated.total",
		metric.WithDescription("Total number of entities generated per table"),
		metric.WithUnit("{entity}"),
	)

	m.StageDuration, _ = meter.Float64Histogram(
		"taskseed.stage.duration",
		metric.WithDescription("Duration of each generation stage"),
		metric.WithUnit("ms"),
	)

	m.ContentRequestsTotal, _ = meter.Int64Counter(
		"taskseed.content.requests.total",
		metric.WithDescription("Total number of content provider requests"),
		metric.WithUnit("{request}"),
	)

	m.ContentFallbacksTotal, _ = meter.Int64Counter(
		"taskseed.content.fallbacks.total",
		metric.WithDescription("Total number of content requests served by template fallback"),
		metric.WithUnit("{request}"),
	)

	m.RowsPublishedTotal, _ = meter.Int64Counter(
		"taskseed.rows.published.total",
		metric.WithDescription("Total number of rows published to the sink"),
		metric.WithUnit("{row}"),
	)

	m.PublishDuration, _ = meter.Float64Histogram(
		"taskseed.publish.duration",
		metric.WithDescription("Duration of sink publish operations"),
		metric.WithUnit("ms"),
	)

	m.ValidationViolationsTotal, _ = meter.Int64Counter(
		"taskseed.validation.violations.total",
		metric.WithDescription("Total number of validation violations found"),
		metric.WithUnit("{violation}"),
	)

	return m
}

// RecordEntities adds generated entity counts for a table.
func (m *Metrics) RecordEntities(ctx context.Context, table string, count int) {
	m.EntitiesGeneratedTotal.Add(ctx, int64(count),
		metric.WithAttributes(attribute.String("table", table)))
}

// RecordStage records the wall time of a completed generation stage.
func (m *Metrics) RecordStage(ctx context.Context, stage string, elapsed time.Duration) {
	m.StageDuration.Record(ctx, float64(elapsed.Milliseconds()),
		metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordContentRequest counts one provider request.
func (m *Metrics) RecordContentRequest(ctx context.Context, provider string) {
	m.ContentRequestsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("provider", provider)))
}

// RecordContentFallback counts one request served by the template fallback.
func (m *Metrics) RecordContentFallback(ctx context.Context, provider string) {
	m.ContentFallbacksTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("provider", provider)))
}

// RecordPublish counts rows published to a sink table.
func (m *Metrics) RecordPublish(ctx context.Context, sink, table string, rows int) {
	m.RowsPublishedTotal.Add(ctx, int64(rows),
		metric.WithAttributes(
			attribute.String("sink", sink),
			attribute.String("table", table),
		))
}

// RecordPublishDuration records the wall time of one complete publish.
func (m *Metrics) RecordPublishDuration(ctx context.Context, sink string, elapsed time.Duration) {
	m.PublishDuration.Record(ctx, float64(elapsed.Milliseconds()),
		metric.WithAttributes(attribute.String("sink", sink)))
}

// RecordViolations counts validation violations per category.
func (m *Metrics) RecordViolations(ctx context.Context, category string, count int) {
	m.ValidationViolationsTotal.Add(ctx, int64(count),
		metric.WithAttributes(attribute.String("category", category)))
}
