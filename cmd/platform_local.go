//go:build !gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/studybuddy/study-planning/internal/config"
	"github.com/studybuddy/study-planning/internal/infra/refreshqueue"
)

func initRefreshQueue(_ context.Context, cfg *config.Config) (refreshqueue.RefreshQueue, func() error, error) {
	if cfg.RefreshQueue.TasksURL == "" {
		slog.Warn("REFRESH_TASKS_URL not set, plan refresh scheduling disabled")

		return nil, nil, nil
	}

	q := refreshqueue.NewLocalTasksClient(
		cfg.RefreshQueue.TasksURL,
		cfg.RefreshQueue.QueueName,
		cfg.RefreshQueue.MaxRetries,
	)

	slog.Info("refresh queue initialized",
		slog.String("type", "local_tasks"),
		slog.String("url", cfg.RefreshQueue.TasksURL),
		slog.String("queue", cfg.RefreshQueue.QueueName),
	)

	return q, nil, nil
}
