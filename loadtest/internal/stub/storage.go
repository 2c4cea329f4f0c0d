package stub

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

type StoredTask struct {
	ID           string
	Name         string
	Queue        string
	ScheduleTime time.Time
	CreateTime   time.Time
	Payload      RefreshPayload
}

type TaskStorage struct {
	mu    sync.RWMutex
	tasks map[string]map[string]*StoredTask // queue -> taskID -> task
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		tasks: make(map[string]map[string]*StoredTask),
	}
}

func (s *TaskStorage) Reset(queue string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, queue)
}

func (s *TaskStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[string]map[string]*StoredTask)
}

// Add stores the task unless one with the same ID already exists in the
// queue. The returned task is the stored one either way.
func (s *TaskStorage) Add(queue string, payload RefreshPayload, scheduleTime time.Time) (*StoredTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tasks[queue] == nil {
		s.tasks[queue] = make(map[string]*StoredTask)
	}

	id := taskIDFor(payload.Date)
	if existing, ok := s.tasks[queue][id]; ok {
		return existing, false
	}

	task := &StoredTask{
		ID:           id,
		Name:         fmt.Sprintf("queues/%s/tasks/%s", queue, id),
		Queue:        queue,
		ScheduleTime: scheduleTime,
		CreateTime:   time.Now().UTC(),
		Payload:      payload,
	}
	s.tasks[queue][id] = task

	return task, true
}

// Delete removes the task by ID from whichever queue holds it.
func (s *TaskStorage) Delete(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for queue, tasks := range s.tasks {
		if _, ok := tasks[taskID]; ok {
			delete(tasks, taskID)
			if len(tasks) == 0 {
				delete(s.tasks, queue)
			}
			return true
		}
	}

	return false
}

// List returns tasks in a queue ordered by schedule time. An empty queue
// name returns tasks from every queue.
func (s *TaskStorage) List(queue string) []*StoredTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*StoredTask
	for q, tasks := range s.tasks {
		if queue != "" && q != queue {
			continue
		}
		for _, t := range tasks {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduleTime.Equal(out[j].ScheduleTime) {
			return out[i].ScheduleTime.Before(out[j].ScheduleTime)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// taskIDFor matches the ID convention the planner uses when registering
// refresh tasks.
func taskIDFor(date string) string {
	return "refresh-" + date
}
