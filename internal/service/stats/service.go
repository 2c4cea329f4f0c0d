package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/studybuddy/study-planning/internal/domain"
)

// weeklyWindowDays is the rolling window for the weekly study-time figure.
const weeklyWindowDays = 7

type Summary struct {
	TotalPlans          int     `json:"total_plans"`
	TotalActualMinutes  int     `json:"total_actual_minutes"`
	TotalPlannedMinutes int     `json:"total_planned_minutes"`
	CompletionRate      float64 `json:"completion_rate"`
	StudyStreakDays     int     `json:"study_streak_days"`
	WeeklyStudyMinutes  int     `json:"weekly_study_minutes"`
	AverageDailyMinutes float64 `json:"average_daily_minutes"`

	TotalUnits          int     `json:"total_units"`
	TotalTopics         int     `json:"total_topics"`
	CompletedTopics     int     `json:"completed_topics"`
	TopicCompletionRate float64 `json:"topic_completion_rate"`

	TotalAssignments   int `json:"total_assignments"`
	PendingAssignments int `json:"pending_assignments"`
	OverdueAssignments int `json:"overdue_assignments"`
}

// Service aggregates progress figures across units, assignments and stored
// plans. It only reads; all numbers are computed per request.
type Service struct {
	unitRepo       domain.UnitRepository
	assignmentRepo domain.AssignmentRepository
	planRepo       domain.PlanRepository
}

func NewService(
	unitRepo domain.UnitRepository,
	assignmentRepo domain.AssignmentRepository,
	planRepo domain.PlanRepository,
) *Service {
	return &Service{
		unitRepo:       unitRepo,
		assignmentRepo: assignmentRepo,
		planRepo:       planRepo,
	}
}

// Summary computes the progress snapshot as of now. CompletionRate is the
// percentage of planned study time actually logged across all stored plans;
// AverageDailyMinutes is actual time averaged over generated plans.
func (s *Service) Summary(ctx context.Context, now time.Time) (*Summary, error) {
	units, err := s.unitRepo.ListUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	assignments, err := s.assignmentRepo.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	plans, err := s.planRepo.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}

	summary := &Summary{
		TotalPlans:       len(plans),
		TotalUnits:       len(units),
		TotalAssignments: len(assignments),
	}

	for _, p := range plans {
		summary.TotalActualMinutes += p.ActualStudyMinutes
		summary.TotalPlannedMinutes += p.TotalStudyMinutes
	}
	if summary.TotalPlannedMinutes > 0 {
		summary.CompletionRate = round1(float64(summary.TotalActualMinutes) / float64(summary.TotalPlannedMinutes) * 100)
	}
	planCount := summary.TotalPlans
	if planCount < 1 {
		planCount = 1
	}
	summary.AverageDailyMinutes = round1(float64(summary.TotalActualMinutes) / float64(planCount))

	for _, u := range units {
		summary.TotalTopics += u.TotalTopics
		summary.CompletedTopics += u.CompletedTopics
	}
	if summary.TotalTopics > 0 {
		summary.TopicCompletionRate = float64(summary.CompletedTopics) / float64(summary.TotalTopics)
	}

	for _, a := range assignments {
		if a.IsCompleted() {
			continue
		}
		summary.PendingAssignments++
		if a.Deadline.Before(now) {
			summary.OverdueAssignments++
		}
	}

	byDate := make(map[string]*domain.DailyPlan, len(plans))
	for _, p := range plans {
		byDate[p.DateKey] = p
	}

	summary.StudyStreakDays = studyStreak(byDate, now)
	summary.WeeklyStudyMinutes = weeklyStudyMinutes(byDate, now)

	return summary, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// studyStreak counts consecutive days with recorded study time, walking back
// from today. A day without a plan, or with a plan but no completed study,
// ends the streak. Today itself may still be in progress, so an idle today
// does not break a streak carried from yesterday.
func studyStreak(byDate map[string]*domain.DailyPlan, now time.Time) int {
	streak := 0
	day := now.UTC()

	for i := 0; ; i++ {
		key := domain.DateKeyFor(day)
		p, ok := byDate[key]
		active := ok && p.ActualStudyMinutes > 0

		if active {
			streak++
		} else if i > 0 {
			break
		}

		day = day.AddDate(0, 0, -1)
	}

	return streak
}

func weeklyStudyMinutes(byDate map[string]*domain.DailyPlan, now time.Time) int {
	total := 0
	day := now.UTC()
	for i := 0; i < weeklyWindowDays; i++ {
		if p, ok := byDate[domain.DateKeyFor(day)]; ok {
			total += p.ActualStudyMinutes
		}
		day = day.AddDate(0, 0, -1)
	}
	return total
}
