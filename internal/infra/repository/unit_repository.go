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

const unitKeyPrefix = "studyplan:unit:"

type unitRecord struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Color           string    `json:"color,omitempty"`
	Icon            string    `json:"icon,omitempty"`
	TotalTopics     int       `json:"total_topics"`
	CompletedTopics int       `json:"completed_topics"`
	CreatedAt       time.Time `json:"created_at"`
}

type unitRepository struct {
	client *redis.Client
}

func NewUnitRepository(client *redis.Client) domain.UnitRepository {
	return &unitRepository{
		client: client,
	}
}

func (r *unitRepository) SaveUnit(ctx context.Context, unit *domain.Unit) error {
	if unit == nil || unit.ID == "" {
		return ErrInvalidUnitData
	}

	data, err := json.Marshal(unitRecord{
		ID:              unit.ID,
		Name:            unit.Name,
		Description:     unit.Description,
		Color:           unit.Color,
		Icon:            unit.Icon,
		TotalTopics:     unit.TotalTopics,
		CompletedTopics: unit.CompletedTopics,
		CreatedAt:       unit.CreatedAt,
	})
	if err != nil {
		return ErrInvalidUnitData
	}

	// Units persist indefinitely; progress updates rewrite the same key.
	return r.client.Set(ctx, unitKeyPrefix+unit.ID, data, 0).Err()
}

func (r *unitRepository) GetUnit(ctx context.Context, id string) (*domain.Unit, error) {
	data, err := r.client.Get(ctx, unitKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, err
	}

	var record unitRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidUnitData
	}

	return recordToUnit(&record), nil
}

func (r *unitRepository) ListUnits(ctx context.Context) ([]*domain.Unit, error) {
	units := make([]*domain.Unit, 0)

	iter := r.client.Scan(ctx, 0, unitKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		id := iter.Val()[len(unitKeyPrefix):]

		unit, err := r.GetUnit(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrUnitNotFound) {
				continue
			}
			return nil, err
		}
		units = append(units, unit)
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	// Scan order is unspecified; creation order keeps plan output stable.
	sort.Slice(units, func(i, j int) bool {
		if !units[i].CreatedAt.Equal(units[j].CreatedAt) {
			return units[i].CreatedAt.Before(units[j].CreatedAt)
		}
		return units[i].ID < units[j].ID
	})

	return units, nil
}

func (r *unitRepository) DeleteUnit(ctx context.Context, id string) error {
	return r.client.Del(ctx, unitKeyPrefix+id).Err()
}

func recordToUnit(record *unitRecord) *domain.Unit {
	return &domain.Unit{
		ID:              record.ID,
		Name:            record.Name,
		Description:     record.Description,
		Color:           record.Color,
		Icon:            record.Icon,
		TotalTopics:     record.TotalTopics,
		CompletedTopics: record.CompletedTopics,
		CreatedAt:       record.CreatedAt,
	}
}
