package planrecorder

import (
	"context"

	"github.com/studybuddy/study-planning/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.PlanResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordPlanGenerated(_ context.Context, _ domain.PlanGenerationRecord) error {
	return nil
}

func (n *noopRecorder) RecordTopicCompleted(_ context.Context, _ domain.TopicCompletionRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
