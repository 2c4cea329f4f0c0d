package breaks

import (
	"github.com/studybuddy/study-planning/internal/domain"
)

const (
	// IntervalMinutes is the stretch of study between the end of one break
	// and the start of the next.
	IntervalMinutes = 50

	ShortBreakMinutes = 15
	LongBreakMinutes  = 30

	// LongBreakThreshold is the study-elapsed offset from which breaks
	// lengthen to LongBreakMinutes.
	LongBreakThreshold = 120

	suggestionMovement  = "Take a short walk or stretch"
	suggestionHydration = "Get some fresh air and hydrate"
	suggestionLongRest  = "Take a longer break - eat something, walk outside, or rest your eyes"
)

type Scheduler struct{}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule lays out rest breaks across the study budget. Offsets are
// minutes of study elapsed, not wall-clock times. A budget of 50 minutes
// or less gets no breaks.
func (s *Scheduler) Schedule(totalStudyMinutes int) []domain.Break {
	scheduled := make([]domain.Break, 0)

	for t := IntervalMinutes; t < totalStudyMinutes; {
		duration := ShortBreakMinutes
		if t >= LongBreakThreshold {
			duration = LongBreakMinutes
		}

		scheduled = append(scheduled, domain.Break{
			OffsetMinutes:   t,
			DurationMinutes: duration,
			Suggestion:      suggestionFor(t),
		})

		t += IntervalMinutes + duration
	}

	return scheduled
}

func suggestionFor(offsetMinutes int) string {
	switch {
	case offsetMinutes <= 60:
		return suggestionMovement
	case offsetMinutes <= 120:
		return suggestionHydration
	default:
		return suggestionLongRest
	}
}
