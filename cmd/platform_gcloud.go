//go:build gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/studybuddy/study-planning/internal/config"
	"github.com/studybuddy/study-planning/internal/infra/refreshqueue"
)

func initRefreshQueue(ctx context.Context, cfg *config.Config) (refreshqueue.RefreshQueue, func() error, error) {
	cloudTasksClient, err := refreshqueue.NewCloudTasksClient(
		ctx,
		cfg.RefreshQueue.GCloudProjectID,
		cfg.RefreshQueue.GCloudLocationID,
		cfg.RefreshQueue.GCloudQueueID,
		cfg.RefreshQueue.GCloudTargetURL,
		cfg.RefreshQueue.MaxRetries,
	)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("refresh queue initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.RefreshQueue.GCloudProjectID),
		slog.String("location", cfg.RefreshQueue.GCloudLocationID),
		slog.String("queue", cfg.RefreshQueue.GCloudQueueID),
	)

	cleanup := func() error {
		if err := cloudTasksClient.Close(); err != nil {
			slog.Warn("failed to close cloud tasks client", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return cloudTasksClient, cleanup, nil
}
