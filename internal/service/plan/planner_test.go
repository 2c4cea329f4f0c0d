package plan

import (
	"reflect"
	"testing"
	"time"

	"github.com/studybuddy/study-planning/internal/domain"
)

func fixtureUnits() []domain.Unit {
	return []domain.Unit{
		{ID: "u-anatomy", Name: "anatomy", TotalTopics: 12, CompletedTopics: 2},
		{ID: "u-immunology", Name: "immunology", TotalTopics: 10, CompletedTopics: 6},
		{ID: "u-physiology", Name: "physiology", TotalTopics: 8, CompletedTopics: 8},
	}
}

func fixtureAssignments(reference time.Time) []domain.Assignment {
	return []domain.Assignment{
		{
			ID:       "a-essay",
			Title:    "Histology essay",
			Type:     domain.AssignmentTypeAssignment,
			Deadline: reference.AddDate(0, 0, 1),
			Status:   domain.AssignmentStatusPending,
		},
		{
			ID:       "a-cat",
			Title:    "Pharmacology CAT",
			Type:     domain.AssignmentTypeCAT,
			Deadline: reference.AddDate(0, 0, 4),
			Status:   domain.AssignmentStatusPending,
		},
		{
			ID:       "a-far",
			Title:    "Term paper",
			Type:     domain.AssignmentTypeAssignment,
			Deadline: reference.AddDate(0, 0, 30),
			Status:   domain.AssignmentStatusPending,
		},
	}
}

func TestBuildDailyPlanDeterministic(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	units := fixtureUnits()
	assignments := fixtureAssignments(date)

	p := NewPlanner(nil)

	first, err := p.BuildDailyPlan(date, units, assignments, 45, 4)
	if err != nil {
		t.Fatalf("BuildDailyPlan() error = %v", err)
	}
	second, err := p.BuildDailyPlan(date, units, assignments, 45, 4)
	if err != nil {
		t.Fatalf("BuildDailyPlan() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("BuildDailyPlan() is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBuildDailyPlanInvariants(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	units := fixtureUnits()
	assignments := fixtureAssignments(date)

	p := NewPlanner(nil)
	got, err := p.BuildDailyPlan(date, units, assignments, 45, 4)
	if err != nil {
		t.Fatalf("BuildDailyPlan() error = %v", err)
	}

	if got.DateKey != "2024-03-11" {
		t.Errorf("DateKey = %q, want 2024-03-11", got.DateKey)
	}

	// Pace 45 over 4 hours on a Monday: 4 * 45/50 = 3.6h = 216 minutes.
	if got.TotalStudyMinutes != 216 {
		t.Errorf("TotalStudyMinutes = %d, want 216", got.TotalStudyMinutes)
	}

	if got.ScheduledMinutes() > got.TotalStudyMinutes {
		t.Errorf("scheduled %d minutes, exceeds budget %d", got.ScheduledMinutes(), got.TotalStudyMinutes)
	}

	// The urgent assignment due tomorrow outranks everything else.
	if len(got.ScheduledTopics) == 0 {
		t.Fatal("BuildDailyPlan() scheduled no topics")
	}
	if got.ScheduledTopics[0].AssignmentID != "a-essay" {
		t.Errorf("first topic = %+v, want the assignment due tomorrow", got.ScheduledTopics[0])
	}

	// Tier ordering is monotonic over the scheduled list.
	for i := 1; i < len(got.ScheduledTopics); i++ {
		if got.ScheduledTopics[i].Tier.Rank() < got.ScheduledTopics[i-1].Tier.Rank() {
			t.Errorf("tier order violated at %d: %v after %v",
				i, got.ScheduledTopics[i].Tier, got.ScheduledTopics[i-1].Tier)
		}
	}

	// The fully completed unit contributes nothing.
	for _, topic := range got.ScheduledTopics {
		if topic.UnitID == "u-physiology" {
			t.Errorf("completed unit contributed topic %+v", topic)
		}
	}

	// The assignment outside the urgent window is not scheduled.
	for _, topic := range got.ScheduledTopics {
		if topic.AssignmentID == "a-far" {
			t.Errorf("assignment beyond the urgent window was scheduled: %+v", topic)
		}
	}

	for _, b := range got.Breaks {
		if b.OffsetMinutes >= got.TotalStudyMinutes {
			t.Errorf("break at offset %d lies beyond the %d minute budget", b.OffsetMinutes, got.TotalStudyMinutes)
		}
	}

	if !got.GeneratedAt.IsZero() {
		t.Errorf("GeneratedAt = %v, want zero before persistence", got.GeneratedAt)
	}
}

func TestBuildDailyPlanInvalidInputs(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	p := NewPlanner(nil)

	if _, err := p.BuildDailyPlan(date, nil, nil, 0, 4); err != domain.ErrInvalidPace {
		t.Errorf("BuildDailyPlan(pace=0) error = %v, want %v", err, domain.ErrInvalidPace)
	}
	if _, err := p.BuildDailyPlan(date, nil, nil, 45, 0); err != domain.ErrInvalidHours {
		t.Errorf("BuildDailyPlan(hours=0) error = %v, want %v", err, domain.ErrInvalidHours)
	}
}

func TestBuildDailyPlanEmptyInputs(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	p := NewPlanner(nil)

	got, err := p.BuildDailyPlan(date, nil, nil, 45, 4)
	if err != nil {
		t.Fatalf("BuildDailyPlan() error = %v", err)
	}
	if len(got.ScheduledTopics) != 0 {
		t.Errorf("ScheduledTopics = %v, want empty", got.ScheduledTopics)
	}
	if got.TotalStudyMinutes != 216 {
		t.Errorf("TotalStudyMinutes = %d, want 216 even with nothing to schedule", got.TotalStudyMinutes)
	}
}

func TestBuildDailyPlanWeekend(t *testing.T) {
	saturday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	p := NewPlanner(nil)

	got, err := p.BuildDailyPlan(saturday, fixtureUnits(), nil, 50, 4)
	if err != nil {
		t.Fatalf("BuildDailyPlan() error = %v", err)
	}
	if got.TotalStudyMinutes != 168 {
		t.Errorf("TotalStudyMinutes = %d, want 168 on a weekend", got.TotalStudyMinutes)
	}
}
