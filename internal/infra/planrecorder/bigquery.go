//go:build gcloud

package planrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/studybuddy/study-planning/internal/domain"
)

type generationRow struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	Date           string    `bigquery:"date"`
	Weekend        bool      `bigquery:"weekend"`
	LearningPace   int64     `bigquery:"learning_pace"`
	AvailableHours int64     `bigquery:"available_hours"`
	ScheduledCount int64     `bigquery:"scheduled_count"`
	UrgentCount    int64     `bigquery:"urgent_count"`
	TotalMinutes   int64     `bigquery:"total_minutes"`
	BreakCount     int64     `bigquery:"break_count"`
}

type completionRow struct {
	RecordedAt       time.Time `bigquery:"recorded_at"`
	Date             string    `bigquery:"date"`
	TopicID          string    `bigquery:"topic_id"`
	TopicKind        string    `bigquery:"topic_kind"`
	EstimatedMinutes int64     `bigquery:"estimated_minutes"`
	ActualMinutes    int64     `bigquery:"actual_minutes"`
}

type bigQueryRecorder struct {
	client             *bigquery.Client
	generationInserter *bigquery.Inserter
	completionInserter *bigquery.Inserter
}

// SinkConfigured reports whether NewRecorder would target BigQuery rather
// than the noop fallback.
func (c *Config) SinkConfigured() bool {
	return !c.Disabled && c.BigQueryProjectID != ""
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PlanResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, plan result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	dataset := client.Dataset(cfg.BigQueryDataset)

	slog.InfoContext(ctx, "plan result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
	)

	return &bigQueryRecorder{
		client:             client,
		generationInserter: dataset.Table(cfg.BigQueryTable + "_generations").Inserter(),
		completionInserter: dataset.Table(cfg.BigQueryTable + "_completions").Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordPlanGenerated(ctx context.Context, record domain.PlanGenerationRecord) error {
	row := &generationRow{
		RecordedAt:     time.Now(),
		Date:           record.DateKey,
		Weekend:        record.Weekend,
		LearningPace:   int64(record.LearningPace),
		AvailableHours: int64(record.AvailableHours),
		ScheduledCount: int64(record.ScheduledCount),
		UrgentCount:    int64(record.UrgentCount),
		TotalMinutes:   int64(record.TotalMinutes),
		BreakCount:     int64(record.BreakCount),
	}

	if err := r.generationInserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert plan generation to BigQuery",
			slog.String("error", err.Error()),
			slog.String("date", record.DateKey),
		)
	}

	return nil
}

func (r *bigQueryRecorder) RecordTopicCompleted(ctx context.Context, record domain.TopicCompletionRecord) error {
	row := &completionRow{
		RecordedAt:       time.Now(),
		Date:             record.DateKey,
		TopicID:          record.TopicID,
		TopicKind:        record.TopicKind,
		EstimatedMinutes: int64(record.EstimatedMinutes),
		ActualMinutes:    int64(record.ActualMinutes),
	}

	if err := r.completionInserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert topic completion to BigQuery",
			slog.String("error", err.Error()),
			slog.String("date", record.DateKey),
			slog.String("topic_id", record.TopicID),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
