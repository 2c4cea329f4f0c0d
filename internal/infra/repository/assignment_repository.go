package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/studybuddy/study-planning/internal/domain"
)

const assignmentKeyPrefix = "studyplan:assignment:"

type assignmentRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	Deadline    time.Time `json:"deadline"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type assignmentRepository struct {
	client *redis.Client
}

func NewAssignmentRepository(client *redis.Client) domain.AssignmentRepository {
	return &assignmentRepository{
		client: client,
	}
}

func (r *assignmentRepository) SaveAssignment(ctx context.Context, assignment *domain.Assignment) error {
	if assignment == nil || assignment.ID == "" {
		return ErrInvalidAssignmentData
	}

	data, err := json.Marshal(assignmentRecord{
		ID:          assignment.ID,
		Title:       assignment.Title,
		Description: assignment.Description,
		Type:        assignment.Type.String(),
		Deadline:    assignment.Deadline,
		Status:      assignment.Status.String(),
		CreatedAt:   assignment.CreatedAt,
	})
	if err != nil {
		return ErrInvalidAssignmentData
	}

	return r.client.Set(ctx, assignmentKeyPrefix+assignment.ID, data, 0).Err()
}

func (r *assignmentRepository) GetAssignment(ctx context.Context, id string) (*domain.Assignment, error) {
	data, err := r.client.Get(ctx, assignmentKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, err
	}

	var record assignmentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidAssignmentData
	}

	return recordToAssignment(&record), nil
}

func (r *assignmentRepository) ListAssignments(ctx context.Context) ([]*domain.Assignment, error) {
	assignments := make([]*domain.Assignment, 0)

	iter := r.client.Scan(ctx, 0, assignmentKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		id := iter.Val()[len(assignmentKeyPrefix):]

		assignment, err := r.GetAssignment(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrAssignmentNotFound) {
				continue
			}
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	sort.Slice(assignments, func(i, j int) bool {
		if !assignments[i].Deadline.Equal(assignments[j].Deadline) {
			return assignments[i].Deadline.Before(assignments[j].Deadline)
		}
		return assignments[i].ID < assignments[j].ID
	})

	return assignments, nil
}

func (r *assignmentRepository) DeleteAssignment(ctx context.Context, id string) error {
	return r.client.Del(ctx, assignmentKeyPrefix+id).Err()
}

func recordToAssignment(record *assignmentRecord) *domain.Assignment {
	return &domain.Assignment{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		Type:        domain.AssignmentType(record.Type),
		Deadline:    record.Deadline,
		Status:      domain.AssignmentStatus(record.Status),
		CreatedAt:   record.CreatedAt,
	}
}
