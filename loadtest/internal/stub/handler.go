package stub

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	storage *TaskStorage
}

func NewHandler(storage *TaskStorage) *Handler {
	return &Handler{storage: storage}
}

// POST /reset?queue=...
func (h *Handler) HandleReset(c *gin.Context) {
	queue := c.Query("queue")

	if queue == "" {
		h.storage.ResetAll()
	} else {
		h.storage.Reset(queue)
	}

	slog.Info("reset tasks", slog.String("queue", queue))

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"queue":  queue,
	})
}

// POST /tasks and POST /tasks/:queue
// Accepts a Cloud Tasks-compatible create request with a base64 body.
func (h *Handler) HandleCreateTask(c *gin.Context) {
	queue := c.Param("queue")
	if queue == "" {
		queue = "default"
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, err := base64.StdEncoding.DecodeString(req.Task.HTTPRequest.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 task body"})
		return
	}

	var payload RefreshPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task payload: " + err.Error()})
		return
	}
	if payload.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task payload missing date"})
		return
	}

	var scheduleTime time.Time
	if req.Task.ScheduleTime != "" {
		scheduleTime, err = time.Parse(time.RFC3339, req.Task.ScheduleTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduleTime: " + req.Task.ScheduleTime})
			return
		}
	}

	task, created := h.storage.Add(queue, payload, scheduleTime)

	slog.Info("task registered",
		slog.String("queue", queue),
		slog.String("task_id", task.ID),
		slog.String("date", payload.Date),
		slog.Bool("created", created),
	)

	status := http.StatusCreated
	if !created {
		// Re-registering the same date is treated as success so retries
		// from the planner stay idempotent.
		status = http.StatusOK
	}

	c.JSON(status, taskResponse(task))
}

// GET /tasks?queue=...
func (h *Handler) HandleListTasks(c *gin.Context) {
	queue := c.Query("queue")

	tasks := h.storage.List(queue)

	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		view := TaskView{
			ID:         t.ID,
			Name:       t.Name,
			Queue:      t.Queue,
			CreateTime: t.CreateTime.Format(time.RFC3339),
			Payload:    t.Payload,
		}
		if !t.ScheduleTime.IsZero() {
			view.ScheduleTime = t.ScheduleTime.Format(time.RFC3339)
		}
		views = append(views, view)
	}

	slog.Debug("list tasks",
		slog.String("queue", queue),
		slog.Int("count", len(views)),
	)

	c.JSON(http.StatusOK, ListTasksResponse{
		Tasks: views,
		Count: len(views),
	})
}

// DELETE /tasks/:id
func (h *Handler) HandleDeleteTask(c *gin.Context) {
	id := c.Param("id")

	if !h.storage.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	slog.Debug("task deleted", slog.String("task_id", id))

	c.Status(http.StatusNoContent)
}

func taskResponse(t *StoredTask) TaskResponse {
	resp := TaskResponse{
		Name:       t.Name,
		CreateTime: t.CreateTime.Format(time.RFC3339),
	}
	if !t.ScheduleTime.IsZero() {
		resp.ScheduleTime = t.ScheduleTime.Format(time.RFC3339)
	}
	return resp
}
