package stub

// Wire shapes mirror the Cloud Tasks-compatible JSON the planner's refresh
// queue client sends.
type TaskRequest struct {
	Task Task `json:"task"`
}

type Task struct {
	HTTPRequest  HTTPRequest `json:"httpRequest"`
	ScheduleTime string      `json:"scheduleTime,omitempty"`
}

type HTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type TaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}

// RefreshPayload is the decoded task body registered by the planner.
type RefreshPayload struct {
	Date           string `json:"date"`
	LearningPace   int    `json:"learning_pace"`
	AvailableHours int    `json:"available_hours"`
}

type TaskView struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Queue        string         `json:"queue"`
	ScheduleTime string         `json:"schedule_time,omitempty"`
	CreateTime   string         `json:"create_time"`
	Payload      RefreshPayload `json:"payload"`
}

type ListTasksResponse struct {
	Tasks []TaskView `json:"tasks"`
	Count int        `json:"count"`
}
