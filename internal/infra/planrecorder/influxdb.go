//go:build !gcloud

package planrecorder

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/studybuddy/study-planning/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

// SinkConfigured reports whether NewRecorder would return a real sink
// rather than the noop fallback.
func (c *Config) SinkConfigured() bool {
	return !c.Disabled && c.InfluxDBToken != "" && c.InfluxDBOrg != ""
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.PlanResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "plan result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, plan result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "plan result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordPlanGenerated(ctx context.Context, record domain.PlanGenerationRecord) error {
	point := influxdb2.NewPoint(
		"plan_generated",
		map[string]string{
			"date":    record.DateKey,
			"weekend": strconv.FormatBool(record.Weekend),
		},
		map[string]any{
			"learning_pace":   record.LearningPace,
			"available_hours": record.AvailableHours,
			"scheduled_count": record.ScheduledCount,
			"urgent_count":    record.UrgentCount,
			"total_minutes":   record.TotalMinutes,
			"break_count":     record.BreakCount,
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write plan generation to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("date", record.DateKey),
		)
	}

	return nil
}

func (r *influxDBRecorder) RecordTopicCompleted(ctx context.Context, record domain.TopicCompletionRecord) error {
	point := influxdb2.NewPoint(
		"topic_completed",
		map[string]string{
			"date": record.DateKey,
			"kind": record.TopicKind,
		},
		map[string]any{
			"topic_id":          record.TopicID,
			"estimated_minutes": record.EstimatedMinutes,
			"actual_minutes":    record.ActualMinutes,
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write topic completion to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("date", record.DateKey),
			slog.String("topic_id", record.TopicID),
		)
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
