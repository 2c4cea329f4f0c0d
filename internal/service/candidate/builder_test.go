package candidate

import (
	"errors"
	"testing"
	"time"

	"github.com/studybuddy/study-planning/internal/domain"
	"github.com/studybuddy/study-planning/internal/service/urgency"
)

func newTestBuilder() *Builder {
	return NewBuilder(urgency.NewClassifier(), nil)
}

func TestBuildInvalidPace(t *testing.T) {
	b := newTestBuilder()
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := b.Build(nil, nil, reference, 0)
	if !errors.Is(err, domain.ErrInvalidPace) {
		t.Errorf("Build() error = %v, want %v", err, domain.ErrInvalidPace)
	}
}

func TestBuildAssignmentCandidates(t *testing.T) {
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	deadline := reference.AddDate(0, 0, 1)

	urgent := []domain.Assignment{
		{
			ID:       "a1",
			Title:    "Essay on renal physiology",
			Type:     domain.AssignmentTypeAssignment,
			Deadline: deadline,
		},
		{
			ID:       "a2",
			Title:    "Midterm CAT",
			Type:     domain.AssignmentTypeCAT,
			Deadline: reference.AddDate(0, 0, 4),
		},
	}

	got, err := newTestBuilder().Build(nil, urgent, reference, 80)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Build() returned %d candidates, want 2", len(got))
	}

	first := got[0]
	if first.Title != "Work on Essay on renal physiology" {
		t.Errorf("Title = %q, want %q", first.Title, "Work on Essay on renal physiology")
	}
	if first.UnitName != "ASSIGNMENT" {
		t.Errorf("UnitName = %q, want ASSIGNMENT", first.UnitName)
	}
	if first.EstimatedMinutes != 60 {
		t.Errorf("EstimatedMinutes = %d, want 60 at baseline pace", first.EstimatedMinutes)
	}
	if first.Tier != domain.TierHigh {
		t.Errorf("Tier = %v, want %v", first.Tier, domain.TierHigh)
	}
	if first.Deadline == nil || !first.Deadline.Equal(deadline) {
		t.Errorf("Deadline = %v, want %v", first.Deadline, deadline)
	}

	second := got[1]
	if second.UnitName != "CAT" {
		t.Errorf("UnitName = %q, want CAT", second.UnitName)
	}
	if second.EstimatedMinutes != 90 {
		t.Errorf("EstimatedMinutes = %d, want 90 at baseline pace", second.EstimatedMinutes)
	}
	if second.Tier != domain.TierMedium {
		t.Errorf("Tier = %v, want %v", second.Tier, domain.TierMedium)
	}
}

func TestBuildStudyCandidates(t *testing.T) {
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	units := []domain.Unit{
		{ID: "u1", Name: "anatomy", TotalTopics: 10, CompletedTopics: 2},
		{ID: "u2", Name: "immunology", TotalTopics: 10, CompletedTopics: 9},
		{ID: "u3", Name: "physiology", TotalTopics: 5, CompletedTopics: 5},
	}

	got, err := newTestBuilder().Build(units, nil, reference, 80)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// u1 contributes two topics, u2 one (only one remaining), u3 none.
	if len(got) != 3 {
		t.Fatalf("Build() returned %d candidates, want 3", len(got))
	}

	if got[0].Title != "Nervous System" {
		t.Errorf("got[0].Title = %q, want templated title for anatomy topic 3", got[0].Title)
	}
	if got[0].UnitID != "u1" || got[0].Kind != domain.TopicKindStudy {
		t.Errorf("got[0] = %+v, want study topic for u1", got[0])
	}
	if got[0].Tier != domain.TierHigh {
		t.Errorf("u1 tier = %v, want %v at 20%% completion", got[0].Tier, domain.TierHigh)
	}
	if got[2].UnitID != "u2" {
		t.Errorf("got[2].UnitID = %q, want u2", got[2].UnitID)
	}
	if got[2].Tier != domain.TierLow {
		t.Errorf("u2 tier = %v, want %v at 90%% completion", got[2].Tier, domain.TierLow)
	}
}

func TestBuildTemplatedTitles(t *testing.T) {
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	units := []domain.Unit{
		{ID: "u1", Name: "anatomy", TotalTopics: 20, CompletedTopics: 0},
	}

	got, err := newTestBuilder().Build(units, nil, reference, 80)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Build() returned %d candidates, want 2", len(got))
	}

	templates := DefaultTemplates()
	for i, c := range got {
		want := templates.TitleFor("anatomy", i+1)
		if c.Title != want {
			t.Errorf("got[%d].Title = %q, want %q", i, c.Title, want)
		}
	}
}

func TestBuildGenericTitleFallback(t *testing.T) {
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	units := []domain.Unit{
		{ID: "u1", Name: "astrophysics", TotalTopics: 3, CompletedTopics: 0},
	}

	got, err := newTestBuilder().Build(units, nil, reference, 80)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got[0].Title != "astrophysics - Topic 1" {
		t.Errorf("Title = %q, want generic fallback", got[0].Title)
	}
}

func TestEstimatePaceScaling(t *testing.T) {
	tests := []struct {
		name string
		pace int
		want int
	}{
		{name: "baseline pace", pace: 80, want: 45},
		{name: "slower pace stretches", pace: 40, want: 90},
		{name: "very slow pace clamps to max", pace: 10, want: 90},
		{name: "very fast pace clamps to min", pace: 400, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimateStudyMinutes(tt.pace); got != tt.want {
				t.Errorf("estimateStudyMinutes(%d) = %d, want %d", tt.pace, got, tt.want)
			}
		})
	}
}

func TestEstimateAssignmentClamp(t *testing.T) {
	// 60 * (80/10) = 480 clamps to 180.
	if got := estimateAssignmentMinutes(domain.AssignmentTypeAssignment, 10); got != 180 {
		t.Errorf("estimateAssignmentMinutes(assignment, 10) = %d, want 180", got)
	}
	// 90 * (80/400) = 18 clamps to 30.
	if got := estimateAssignmentMinutes(domain.AssignmentTypeCAT, 400); got != 30 {
		t.Errorf("estimateAssignmentMinutes(cat, 400) = %d, want 30", got)
	}
}

func TestTopicIDDeterministic(t *testing.T) {
	a := topicID(domain.TopicKindStudy, "u1", 3)
	b := topicID(domain.TopicKindStudy, "u1", 3)
	c := topicID(domain.TopicKindStudy, "u1", 4)

	if a != b {
		t.Errorf("topicID not deterministic: %q != %q", a, b)
	}
	if a == c {
		t.Errorf("topicID collides across indices: %q", a)
	}
}
