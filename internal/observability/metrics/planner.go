package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	plannerMeterName = "studyplan.service"
)

type PlannerMetrics struct {
	plansGenerated         metric.Int64Counter
	topicsScheduled        metric.Int64Histogram
	topicsCompleted        metric.Int64Counter
	planGenerationDuration metric.Float64Histogram
	suggestions            metric.Int64Counter
}

func NewPlannerMetrics() (*PlannerMetrics, error) {
	meter := otel.Meter(plannerMeterName)

	plansGenerated, err := meter.Int64Counter(
		"studyplan_plans_generated_total",
		metric.WithDescription("Total number of daily plans generated"),
		metric.WithUnit("{plan}"),
	)
	if err != nil {
		return nil, err
	}

	topicsScheduled, err := meter.Int64Histogram(
		"studyplan_topics_scheduled",
		metric.WithDescription("Topics scheduled per generated plan"),
		metric.WithUnit("{topic}"),
		metric.WithExplicitBucketBoundaries(
			0, 1, 2, 3, 5, 8, 12, 20,
		),
	)
	if err != nil {
		return nil, err
	}

	topicsCompleted, err := meter.Int64Counter(
		"studyplan_topics_completed_total",
		metric.WithDescription("Total number of scheduled topics marked completed"),
		metric.WithUnit("{topic}"),
	)
	if err != nil {
		return nil, err
	}

	planGenerationDuration, err := meter.Float64Histogram(
		"studyplan_plan_generation_duration_seconds",
		metric.WithDescription("Time spent assembling a daily plan"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	suggestions, err := meter.Int64Counter(
		"studyplan_adjustment_suggestions_total",
		metric.WithDescription("Distribution of adjustment suggestions by kind"),
		metric.WithUnit("{suggestion}"),
	)
	if err != nil {
		return nil, err
	}

	return &PlannerMetrics{
		plansGenerated:         plansGenerated,
		topicsScheduled:        topicsScheduled,
		topicsCompleted:        topicsCompleted,
		planGenerationDuration: planGenerationDuration,
		suggestions:            suggestions,
	}, nil
}

func (m *PlannerMetrics) RecordPlanGenerated(ctx context.Context, weekend bool) {
	m.plansGenerated.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("weekend", weekend),
	))
}

func (m *PlannerMetrics) RecordTopicsScheduled(ctx context.Context, count int) {
	m.topicsScheduled.Record(ctx, int64(count))
}

func (m *PlannerMetrics) RecordTopicCompleted(ctx context.Context, kind string) {
	m.topicsCompleted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *PlannerMetrics) RecordPlanGenerationDuration(ctx context.Context, duration time.Duration) {
	m.planGenerationDuration.Record(ctx, duration.Seconds())
}

func (m *PlannerMetrics) RecordSuggestion(ctx context.Context, kind string) {
	m.suggestions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}
