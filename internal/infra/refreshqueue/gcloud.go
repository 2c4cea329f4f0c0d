//go:build gcloud

package refreshqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CloudTasksClient registers refresh callbacks with Google Cloud Tasks.
type CloudTasksClient struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
	maxRetries int
}

func NewCloudTasksClient(ctx context.Context, projectID, locationID, queueID, targetURL string, maxRetries int) (*CloudTasksClient, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &CloudTasksClient{
		client:     client,
		projectID:  projectID,
		locationID: locationID,
		queueID:    queueID,
		targetURL:  targetURL,
		maxRetries: maxRetries,
	}, nil
}

func (c *CloudTasksClient) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s", c.projectID, c.locationID, c.queueID)
}

func (c *CloudTasksClient) taskPath(taskID string) string {
	return fmt.Sprintf("%s/tasks/%s", c.queuePath(), taskID)
}

func (c *CloudTasksClient) ScheduleRefresh(ctx context.Context, task *RefreshTask) (*TaskResponse, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refresh task: %w", err)
	}

	req := &cloudtaskspb.CreateTaskRequest{
		Parent: c.queuePath(),
		Task: &cloudtaskspb.Task{
			MessageType: &cloudtaskspb.Task_HttpRequest{
				HttpRequest: &cloudtaskspb.HttpRequest{
					HttpMethod: cloudtaskspb.HttpMethod_POST,
					Url:        c.targetURL,
					Headers: map[string]string{
						"Content-Type": "application/json",
					},
					Body: payload,
				},
			},
		},
	}

	if task.TaskID != "" {
		req.Task.Name = c.taskPath(task.TaskID)
	}
	if !task.ScheduleAt.IsZero() {
		req.Task.ScheduleTime = timestamppb.New(task.ScheduleAt)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying cloud tasks task creation",
				slog.String("task_id", task.TaskID),
				slog.String("date", task.Date),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		created, err := c.client.CreateTask(ctx, req)
		if err == nil {
			slog.Info("refresh task registered to cloud tasks",
				slog.String("task_name", created.GetName()),
				slog.String("date", task.Date),
			)
			return &TaskResponse{
				Name:         created.GetName(),
				ScheduleTime: created.GetScheduleTime().AsTime(),
				CreateTime:   created.GetCreateTime().AsTime(),
			}, nil
		}

		if status.Code(err) == codes.AlreadyExists {
			slog.Info("refresh task already registered",
				slog.String("task_id", task.TaskID),
				slog.String("date", task.Date),
			)
			return &TaskResponse{Name: c.taskPath(task.TaskID)}, nil
		}

		lastErr = err
		slog.Warn("failed to create cloud tasks task",
			slog.String("task_id", task.TaskID),
			slog.String("date", task.Date),
			slog.String("error", err.Error()),
		)
	}

	return nil, fmt.Errorf("failed to register refresh task after %d retries: %w", c.maxRetries, lastErr)
}

func (c *CloudTasksClient) DeleteTask(ctx context.Context, taskID string) error {
	err := c.client.DeleteTask(ctx, &cloudtaskspb.DeleteTaskRequest{
		Name: c.taskPath(taskID),
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			slog.Info("refresh task not found in cloud tasks (may have run)",
				slog.String("task_id", taskID),
			)
			return nil
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	slog.Info("refresh task deleted from cloud tasks",
		slog.String("task_id", taskID),
	)
	return nil
}

func (c *CloudTasksClient) Close() error {
	return c.client.Close()
}
