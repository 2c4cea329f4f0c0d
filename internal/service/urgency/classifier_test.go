package urgency

import (
	"testing"
	"time"

	"github.com/studybuddy/study-planning/internal/domain"
)

func TestClassify(t *testing.T) {
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     domain.Tier
	}{
		{
			name:     "due today is high",
			deadline: reference,
			want:     domain.TierHigh,
		},
		{
			name:     "due in 2 days is high",
			deadline: reference.AddDate(0, 0, 2),
			want:     domain.TierHigh,
		},
		{
			name:     "due in 3 days is medium",
			deadline: reference.AddDate(0, 0, 3),
			want:     domain.TierMedium,
		},
		{
			name:     "due in 5 days is medium",
			deadline: reference.AddDate(0, 0, 5),
			want:     domain.TierMedium,
		},
		{
			name:     "due in 6 days is low",
			deadline: reference.AddDate(0, 0, 6),
			want:     domain.TierLow,
		},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := domain.Assignment{Deadline: tt.deadline}
			if got := c.Classify(a, reference); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterUrgent(t *testing.T) {
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	mk := func(id string, daysFromNow int, status domain.AssignmentStatus) domain.Assignment {
		return domain.Assignment{
			ID:       id,
			Deadline: reference.AddDate(0, 0, daysFromNow),
			Status:   status,
		}
	}

	assignments := []domain.Assignment{
		mk("late", -1, domain.AssignmentStatusPending),
		mk("soon", 1, domain.AssignmentStatusPending),
		mk("done", 2, domain.AssignmentStatusCompleted),
		mk("week-edge", 7, domain.AssignmentStatusPending),
		mk("far", 8, domain.AssignmentStatusPending),
		mk("today", 0, domain.AssignmentStatusInProgress),
	}

	got := NewClassifier().FilterUrgent(assignments, reference)

	wantIDs := []string{"today", "soon", "week-edge"}
	if len(got) != len(wantIDs) {
		t.Fatalf("FilterUrgent() returned %d assignments, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("FilterUrgent()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestFilterUrgentEmpty(t *testing.T) {
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	got := NewClassifier().FilterUrgent(nil, reference)
	if len(got) != 0 {
		t.Errorf("FilterUrgent(nil) = %v, want empty", got)
	}
}
