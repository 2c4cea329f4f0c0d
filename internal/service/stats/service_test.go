package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/studybuddy/study-planning/internal/domain"
)

func newTestService(t *testing.T) (*Service, *domain.MockUnitRepository, *domain.MockAssignmentRepository, *domain.MockPlanRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	unitRepo := domain.NewMockUnitRepository(ctrl)
	assignmentRepo := domain.NewMockAssignmentRepository(ctrl)
	planRepo := domain.NewMockPlanRepository(ctrl)

	return NewService(unitRepo, assignmentRepo, planRepo), unitRepo, assignmentRepo, planRepo
}

func planOn(dateKey string, actualMinutes, plannedMinutes int) *domain.DailyPlan {
	return &domain.DailyPlan{
		DateKey:            dateKey,
		ActualStudyMinutes: actualMinutes,
		TotalStudyMinutes:  plannedMinutes,
	}
}

func TestSummary(t *testing.T) {
	svc, unitRepo, assignmentRepo, planRepo := newTestService(t)

	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

	unitRepo.EXPECT().ListUnits(gomock.Any()).Return([]*domain.Unit{
		{ID: "u1", TotalTopics: 10, CompletedTopics: 4},
		{ID: "u2", TotalTopics: 10, CompletedTopics: 1},
	}, nil)
	assignmentRepo.EXPECT().ListAssignments(gomock.Any()).Return([]*domain.Assignment{
		// Completed before its deadline passed; never counts as overdue.
		{ID: "a1", Status: domain.AssignmentStatusCompleted, Deadline: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "a2", Status: domain.AssignmentStatusPending, Deadline: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "a3", Status: domain.AssignmentStatusInProgress, Deadline: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
	}, nil)
	planRepo.EXPECT().ListPlans(gomock.Any()).Return([]*domain.DailyPlan{
		planOn("2024-03-14", 60, 120),
		planOn("2024-03-13", 90, 120),
		planOn("2024-03-12", 120, 120),
		// Gap on 2024-03-11 ends the streak.
		planOn("2024-03-10", 45, 90),
		// Outside the weekly window but inside the totals.
		planOn("2024-03-01", 300, 300),
	}, nil)

	got, err := svc.Summary(context.Background(), now)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if got.TotalPlans != 5 {
		t.Errorf("TotalPlans = %d, want 5", got.TotalPlans)
	}
	if got.TotalActualMinutes != 615 {
		t.Errorf("TotalActualMinutes = %d, want 615", got.TotalActualMinutes)
	}
	if got.TotalPlannedMinutes != 750 {
		t.Errorf("TotalPlannedMinutes = %d, want 750", got.TotalPlannedMinutes)
	}
	// 615/750 logged, as a percentage rounded to one decimal.
	if got.CompletionRate != 82.0 {
		t.Errorf("CompletionRate = %v, want 82.0", got.CompletionRate)
	}
	// 615 actual minutes over 5 generated plans.
	if got.AverageDailyMinutes != 123.0 {
		t.Errorf("AverageDailyMinutes = %v, want 123.0", got.AverageDailyMinutes)
	}
	if got.TotalUnits != 2 {
		t.Errorf("TotalUnits = %d, want 2", got.TotalUnits)
	}
	if got.TotalTopics != 20 || got.CompletedTopics != 5 {
		t.Errorf("topics = %d/%d, want 5/20", got.CompletedTopics, got.TotalTopics)
	}
	if got.TopicCompletionRate != 0.25 {
		t.Errorf("TopicCompletionRate = %v, want 0.25", got.TopicCompletionRate)
	}
	if got.TotalAssignments != 3 || got.PendingAssignments != 2 {
		t.Errorf("assignments = %d pending of %d, want 2 of 3", got.PendingAssignments, got.TotalAssignments)
	}
	if got.OverdueAssignments != 1 {
		t.Errorf("OverdueAssignments = %d, want 1", got.OverdueAssignments)
	}
	if got.StudyStreakDays != 3 {
		t.Errorf("StudyStreakDays = %d, want 3", got.StudyStreakDays)
	}
	// 60+90+120+45 within the last 7 days.
	if got.WeeklyStudyMinutes != 315 {
		t.Errorf("WeeklyStudyMinutes = %d, want 315", got.WeeklyStudyMinutes)
	}
}

func TestSummaryCompletionRateRounding(t *testing.T) {
	svc, unitRepo, assignmentRepo, planRepo := newTestService(t)

	unitRepo.EXPECT().ListUnits(gomock.Any()).Return(nil, nil)
	assignmentRepo.EXPECT().ListAssignments(gomock.Any()).Return(nil, nil)
	planRepo.EXPECT().ListPlans(gomock.Any()).Return([]*domain.DailyPlan{
		planOn("2024-03-14", 100, 300),
	}, nil)

	got, err := svc.Summary(context.Background(), time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	// 100/300 = 33.333...%, rounded to one decimal.
	if got.CompletionRate != 33.3 {
		t.Errorf("CompletionRate = %v, want 33.3", got.CompletionRate)
	}
	if got.AverageDailyMinutes != 100.0 {
		t.Errorf("AverageDailyMinutes = %v, want 100.0", got.AverageDailyMinutes)
	}
}

func TestSummaryIdleTodayKeepsStreak(t *testing.T) {
	svc, unitRepo, assignmentRepo, planRepo := newTestService(t)

	now := time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC)

	unitRepo.EXPECT().ListUnits(gomock.Any()).Return(nil, nil)
	assignmentRepo.EXPECT().ListAssignments(gomock.Any()).Return(nil, nil)
	planRepo.EXPECT().ListPlans(gomock.Any()).Return([]*domain.DailyPlan{
		planOn("2024-03-13", 90, 120),
		planOn("2024-03-12", 60, 120),
	}, nil)

	got, err := svc.Summary(context.Background(), now)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if got.StudyStreakDays != 2 {
		t.Errorf("StudyStreakDays = %d, want 2 when today has no study yet", got.StudyStreakDays)
	}
}

func TestSummaryEmpty(t *testing.T) {
	svc, unitRepo, assignmentRepo, planRepo := newTestService(t)

	unitRepo.EXPECT().ListUnits(gomock.Any()).Return(nil, nil)
	assignmentRepo.EXPECT().ListAssignments(gomock.Any()).Return(nil, nil)
	planRepo.EXPECT().ListPlans(gomock.Any()).Return(nil, nil)

	got, err := svc.Summary(context.Background(), time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if got.TotalPlans != 0 {
		t.Errorf("TotalPlans = %d, want 0", got.TotalPlans)
	}
	if got.CompletionRate != 0 {
		t.Errorf("CompletionRate = %v, want 0 with no planned time", got.CompletionRate)
	}
	if got.AverageDailyMinutes != 0 {
		t.Errorf("AverageDailyMinutes = %v, want 0 with no plans", got.AverageDailyMinutes)
	}
	if got.TopicCompletionRate != 0 {
		t.Errorf("TopicCompletionRate = %v, want 0 with no topics", got.TopicCompletionRate)
	}
	if got.StudyStreakDays != 0 {
		t.Errorf("StudyStreakDays = %d, want 0", got.StudyStreakDays)
	}
}

func TestSummaryRepositoryError(t *testing.T) {
	svc, unitRepo, _, _ := newTestService(t)

	wantErr := errors.New("redis down")
	unitRepo.EXPECT().ListUnits(gomock.Any()).Return(nil, wantErr)

	_, err := svc.Summary(context.Background(), time.Now())
	if !errors.Is(err, wantErr) {
		t.Errorf("Summary() error = %v, want wrapping %v", err, wantErr)
	}
}
