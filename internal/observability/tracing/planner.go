package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const plannerTracerName = "github.com/studybuddy/study-planning/internal/service/plan"

func PlannerTracer() trace.Tracer {
	return otel.Tracer(plannerTracerName)
}

func StartPlanGenerationSpan(ctx context.Context, dateKey string, pace, availableHours int) (context.Context, trace.Span) {
	return PlannerTracer().Start(ctx, "studyplan.generate",
		trace.WithAttributes(
			attribute.String("plan.date", dateKey),
			attribute.Int("plan.learning_pace", pace),
			attribute.Int("plan.available_hours", availableHours),
		),
	)
}

func RecordPlanGenerationResult(span trace.Span, scheduledCount, totalMinutes, breakCount int, err error) {
	span.SetAttributes(
		attribute.Int("plan.scheduled_count", scheduledCount),
		attribute.Int("plan.total_study_minutes", totalMinutes),
		attribute.Int("plan.break_count", breakCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func StartTopicCompletionSpan(ctx context.Context, dateKey string, topicIndex int) (context.Context, trace.Span) {
	return PlannerTracer().Start(ctx, "studyplan.complete_topic",
		trace.WithAttributes(
			attribute.String("plan.date", dateKey),
			attribute.Int("plan.topic_index", topicIndex),
		),
	)
}

func StartSuggestionSpan(ctx context.Context, dateKey string, remainingMinutes int) (context.Context, trace.Span) {
	return PlannerTracer().Start(ctx, "studyplan.suggest_adjustment",
		trace.WithAttributes(
			attribute.String("plan.date", dateKey),
			attribute.Int("plan.remaining_minutes", remainingMinutes),
		),
	)
}

func RecordSuggestionResult(span trace.Span, kind string, incompleteCount int) {
	span.SetAttributes(
		attribute.String("suggestion.kind", kind),
		attribute.Int("suggestion.incomplete_count", incompleteCount),
	)
	span.SetStatus(codes.Ok, "")
}
