package refreshqueue

import "time"

type RefreshTask struct {
	TaskID     string    `json:"-"`
	ScheduleAt time.Time `json:"-"`

	Date           string `json:"date"`
	LearningPace   int    `json:"learning_pace"`
	AvailableHours int    `json:"available_hours"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type LocalTaskRequest struct {
	Task LocalTask `json:"task"`
}

type LocalTask struct {
	HTTPRequest  LocalHTTPRequest `json:"httpRequest"`
	ScheduleTime string           `json:"scheduleTime,omitempty"`
}

type LocalHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type LocalTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
