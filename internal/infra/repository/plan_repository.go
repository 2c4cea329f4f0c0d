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

const (
	planKeyPrefix = "studyplan:plan:"

	// Plans are regenerated daily; keeping a few weeks covers streak and
	// weekly aggregates with room to spare.
	planTTL = 45 * 24 * time.Hour
)

type planRecord struct {
	DateKey            string        `json:"date_key"`
	ScheduledTopics    []topicRecord `json:"scheduled_topics"`
	CompletedTopics    []topicRecord `json:"completed_topics"`
	TotalStudyMinutes  int           `json:"total_study_minutes"`
	ActualStudyMinutes int           `json:"actual_study_minutes"`
	Breaks             []breakRecord `json:"breaks"`
	GeneratedAt        time.Time     `json:"generated_at"`
}

type topicRecord struct {
	ID               string     `json:"id"`
	Kind             string     `json:"kind"`
	Title            string     `json:"title"`
	UnitID           string     `json:"unit_id,omitempty"`
	UnitName         string     `json:"unit_name,omitempty"`
	AssignmentID     string     `json:"assignment_id,omitempty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	Tier             string     `json:"tier"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	Completed        bool       `json:"completed"`
	ActualMinutes    int        `json:"actual_minutes,omitempty"`
}

type breakRecord struct {
	OffsetMinutes   int    `json:"offset_minutes"`
	DurationMinutes int    `json:"duration_minutes"`
	Suggestion      string `json:"suggestion"`
}

type planRepository struct {
	client *redis.Client
}

func NewPlanRepository(client *redis.Client) domain.PlanRepository {
	return &planRepository{
		client: client,
	}
}

func (r *planRepository) SavePlan(ctx context.Context, plan *domain.DailyPlan) error {
	if plan == nil || plan.DateKey == "" {
		return ErrInvalidPlanData
	}

	data, err := json.Marshal(planToRecord(plan))
	if err != nil {
		return ErrInvalidPlanData
	}

	key := planKeyPrefix + plan.DateKey
	return r.client.Set(ctx, key, data, planTTL).Err()
}

func (r *planRepository) GetPlanByDate(ctx context.Context, dateKey string) (*domain.DailyPlan, error) {
	key := planKeyPrefix + dateKey

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}

	var record planRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidPlanData
	}

	return recordToPlan(&record), nil
}

func (r *planRepository) ListPlans(ctx context.Context) ([]*domain.DailyPlan, error) {
	pattern := planKeyPrefix + "*"
	plans := make([]*domain.DailyPlan, 0)

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		dateKey := iter.Val()[len(planKeyPrefix):]

		plan, err := r.GetPlanByDate(ctx, dateKey)
		if err != nil {
			if errors.Is(err, domain.ErrPlanNotFound) {
				continue
			}
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	// Scan order is unspecified; date keys sort chronologically.
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].DateKey < plans[j].DateKey
	})

	return plans, nil
}

func (r *planRepository) DeletePlan(ctx context.Context, dateKey string) error {
	return r.client.Del(ctx, planKeyPrefix+dateKey).Err()
}

func planToRecord(plan *domain.DailyPlan) *planRecord {
	record := &planRecord{
		DateKey:            plan.DateKey,
		ScheduledTopics:    topicsToRecords(plan.ScheduledTopics),
		CompletedTopics:    topicsToRecords(plan.CompletedTopics),
		TotalStudyMinutes:  plan.TotalStudyMinutes,
		ActualStudyMinutes: plan.ActualStudyMinutes,
		Breaks:             make([]breakRecord, 0, len(plan.Breaks)),
		GeneratedAt:        plan.GeneratedAt,
	}
	for _, b := range plan.Breaks {
		record.Breaks = append(record.Breaks, breakRecord(b))
	}
	return record
}

func recordToPlan(record *planRecord) *domain.DailyPlan {
	plan := &domain.DailyPlan{
		DateKey:            record.DateKey,
		ScheduledTopics:    recordsToTopics(record.ScheduledTopics),
		CompletedTopics:    recordsToTopics(record.CompletedTopics),
		TotalStudyMinutes:  record.TotalStudyMinutes,
		ActualStudyMinutes: record.ActualStudyMinutes,
		Breaks:             make([]domain.Break, 0, len(record.Breaks)),
		GeneratedAt:        record.GeneratedAt,
	}
	for _, b := range record.Breaks {
		plan.Breaks = append(plan.Breaks, domain.Break(b))
	}
	return plan
}

func topicsToRecords(topics []domain.CandidateTopic) []topicRecord {
	records := make([]topicRecord, 0, len(topics))
	for _, t := range topics {
		records = append(records, topicRecord{
			ID:               t.ID,
			Kind:             t.Kind.String(),
			Title:            t.Title,
			UnitID:           t.UnitID,
			UnitName:         t.UnitName,
			AssignmentID:     t.AssignmentID,
			EstimatedMinutes: t.EstimatedMinutes,
			Tier:             t.Tier.String(),
			Deadline:         t.Deadline,
			Completed:        t.Completed,
			ActualMinutes:    t.ActualMinutes,
		})
	}
	return records
}

func recordsToTopics(records []topicRecord) []domain.CandidateTopic {
	topics := make([]domain.CandidateTopic, 0, len(records))
	for _, r := range records {
		topics = append(topics, domain.CandidateTopic{
			ID:               r.ID,
			Kind:             domain.TopicKind(r.Kind),
			Title:            r.Title,
			UnitID:           r.UnitID,
			UnitName:         r.UnitName,
			AssignmentID:     r.AssignmentID,
			EstimatedMinutes: r.EstimatedMinutes,
			Tier:             domain.Tier(r.Tier),
			Deadline:         r.Deadline,
			Completed:        r.Completed,
			ActualMinutes:    r.ActualMinutes,
		})
	}
	return topics
}
