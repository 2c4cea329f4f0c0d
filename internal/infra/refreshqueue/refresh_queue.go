package refreshqueue

import "context"

//go:generate mockgen -source=refresh_queue.go -destination=mock.go -package=refreshqueue

// RefreshQueue schedules a callback that regenerates a learner's plan,
// typically for the following morning.
type RefreshQueue interface {
	ScheduleRefresh(ctx context.Context, task *RefreshTask) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) error
}
