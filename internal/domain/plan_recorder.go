package domain

import (
	"context"
)

type PlanGenerationRecord struct {
	DateKey        string
	Weekend        bool
	LearningPace   int
	AvailableHours int
	ScheduledCount int
	UrgentCount    int
	TotalMinutes   int
	BreakCount     int
}

type TopicCompletionRecord struct {
	DateKey          string
	TopicID          string
	TopicKind        string
	EstimatedMinutes int
	ActualMinutes    int
}

// PlanResultRecorder ships planning outcomes to an analytics sink.
// Implementations must tolerate sink outages without failing the request path.
type PlanResultRecorder interface {
	RecordPlanGenerated(ctx context.Context, record PlanGenerationRecord) error
	RecordTopicCompleted(ctx context.Context, record TopicCompletionRecord) error
	Flush(ctx context.Context) error
	Close() error
}
