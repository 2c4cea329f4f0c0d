package domain

import (
	"time"
)

// TopicKind tells whether a candidate topic was generated from a pending
// assignment or from a unit's regular study progression.
type TopicKind string

const (
	TopicKindAssignment TopicKind = "assignment"
	TopicKindStudy      TopicKind = "study"
)

func (k TopicKind) String() string {
	return string(k)
}

type CandidateTopic struct {
	ID               string     `json:"id"`
	Kind             TopicKind  `json:"kind"`
	Title            string     `json:"title"`
	UnitID           string     `json:"unit_id,omitempty"`
	UnitName         string     `json:"unit_name,omitempty"`
	AssignmentID     string     `json:"assignment_id,omitempty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	Tier             Tier       `json:"tier"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	Completed        bool       `json:"completed"`
	ActualMinutes    int        `json:"actual_minutes,omitempty"`
}

// Break is a rest slot at a study-elapsed offset, not a wall-clock time.
type Break struct {
	OffsetMinutes   int    `json:"offset_minutes"`
	DurationMinutes int    `json:"duration_minutes"`
	Suggestion      string `json:"suggestion"`
}

type DailyPlan struct {
	DateKey            string           `json:"date_key"`
	ScheduledTopics    []CandidateTopic `json:"scheduled_topics"`
	CompletedTopics    []CandidateTopic `json:"completed_topics"`
	TotalStudyMinutes  int              `json:"total_study_minutes"`
	ActualStudyMinutes int              `json:"actual_study_minutes"`
	Breaks             []Break          `json:"breaks"`
	GeneratedAt        time.Time        `json:"generated_at"`
}

func NewDailyPlan(dateKey string, scheduled []CandidateTopic, totalStudyMinutes int, breaks []Break) *DailyPlan {
	if scheduled == nil {
		scheduled = make([]CandidateTopic, 0)
	}
	if breaks == nil {
		breaks = make([]Break, 0)
	}
	return &DailyPlan{
		DateKey:            dateKey,
		ScheduledTopics:    scheduled,
		CompletedTopics:    make([]CandidateTopic, 0),
		TotalStudyMinutes:  totalStudyMinutes,
		ActualStudyMinutes: 0,
		Breaks:             breaks,
	}
}

func (p *DailyPlan) ScheduledMinutes() int {
	total := 0
	for _, t := range p.ScheduledTopics {
		total += t.EstimatedMinutes
	}
	return total
}

func (p *DailyPlan) RemainingMinutes() int {
	remaining := p.TotalStudyMinutes - p.ActualStudyMinutes
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CompleteTopic records the scheduled topic at index as completed.
// The scheduled list keeps its entries so topic indices stay stable
// across completions.
func (p *DailyPlan) CompleteTopic(index, actualMinutes int) error {
	if index < 0 || index >= len(p.ScheduledTopics) {
		return ErrTopicIndexOutOfRange
	}

	p.ScheduledTopics[index].Completed = true

	completed := p.ScheduledTopics[index]
	completed.ActualMinutes = actualMinutes
	p.CompletedTopics = append(p.CompletedTopics, completed)
	p.ActualStudyMinutes += actualMinutes

	return nil
}

// DateKeyFor normalizes a time to the calendar-date key under which a
// single plan per day is stored.
func DateKeyFor(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
