package breaks

import (
	"testing"

	"github.com/studybuddy/study-planning/internal/domain"
)

func TestSchedule(t *testing.T) {
	tests := []struct {
		name              string
		totalStudyMinutes int
		want              []domain.Break
	}{
		{
			name:              "short session gets no breaks",
			totalStudyMinutes: 50,
			want:              []domain.Break{},
		},
		{
			name:              "just over one interval",
			totalStudyMinutes: 60,
			want: []domain.Break{
				{OffsetMinutes: 50, DurationMinutes: 15, Suggestion: suggestionMovement},
			},
		},
		{
			name:              "two short breaks",
			totalStudyMinutes: 130,
			want: []domain.Break{
				{OffsetMinutes: 50, DurationMinutes: 15, Suggestion: suggestionMovement},
				{OffsetMinutes: 115, DurationMinutes: 15, Suggestion: suggestionHydration},
			},
		},
		{
			name:              "long break after two hours of study",
			totalStudyMinutes: 240,
			want: []domain.Break{
				{OffsetMinutes: 50, DurationMinutes: 15, Suggestion: suggestionMovement},
				{OffsetMinutes: 115, DurationMinutes: 15, Suggestion: suggestionHydration},
				{OffsetMinutes: 180, DurationMinutes: 30, Suggestion: suggestionLongRest},
			},
		},
		{
			name:              "zero budget",
			totalStudyMinutes: 0,
			want:              []domain.Break{},
		},
	}

	s := NewScheduler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Schedule(tt.totalStudyMinutes)

			if len(got) != len(tt.want) {
				t.Fatalf("Schedule(%d) returned %d breaks, want %d: %+v",
					tt.totalStudyMinutes, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Schedule(%d)[%d] = %+v, want %+v", tt.totalStudyMinutes, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScheduleOffsetsWithinBudget(t *testing.T) {
	s := NewScheduler()
	for _, total := range []int{51, 100, 130, 200, 480} {
		for _, b := range s.Schedule(total) {
			if b.OffsetMinutes >= total {
				t.Errorf("Schedule(%d) placed break at offset %d, beyond the budget", total, b.OffsetMinutes)
			}
		}
	}
}

func TestSuggestionFor(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{offset: 50, want: suggestionMovement},
		{offset: 60, want: suggestionMovement},
		{offset: 61, want: suggestionHydration},
		{offset: 120, want: suggestionHydration},
		{offset: 121, want: suggestionLongRest},
	}

	for _, tt := range tests {
		if got := suggestionFor(tt.offset); got != tt.want {
			t.Errorf("suggestionFor(%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}
