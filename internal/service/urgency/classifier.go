package urgency

import (
	"sort"
	"time"

	"github.com/studybuddy/study-planning/internal/domain"
)

const (
	// HighUrgencyDays is the maximum days-until-due for an assignment to be
	// classified as high urgency.
	HighUrgencyDays = 2
	// MediumUrgencyDays is the maximum days-until-due for medium urgency.
	MediumUrgencyDays = 5
	// UrgentWindowDays bounds how far ahead an assignment may be due and
	// still be scheduled for the reference day.
	UrgentWindowDays = 7
)

type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify buckets an assignment by deadline proximity to the reference date.
func (c *Classifier) Classify(assignment domain.Assignment, reference time.Time) domain.Tier {
	daysUntilDue := int(assignment.Deadline.Sub(reference).Hours() / 24)

	switch {
	case daysUntilDue <= HighUrgencyDays:
		return domain.TierHigh
	case daysUntilDue <= MediumUrgencyDays:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}

// FilterUrgent returns the non-completed assignments due within the urgent
// window [reference, reference+7d], sorted by deadline ascending. Past-due
// assignments are excluded; overdue bookkeeping happens elsewhere.
func (c *Classifier) FilterUrgent(assignments []domain.Assignment, reference time.Time) []domain.Assignment {
	windowEnd := reference.AddDate(0, 0, UrgentWindowDays)

	urgent := make([]domain.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.IsCompleted() {
			continue
		}
		if a.Deadline.Before(reference) || a.Deadline.After(windowEnd) {
			continue
		}
		urgent = append(urgent, a)
	}

	sort.SliceStable(urgent, func(i, j int) bool {
		return urgent[i].Deadline.Before(urgent[j].Deadline)
	})

	return urgent
}
