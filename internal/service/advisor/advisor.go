package advisor

import (
	"fmt"

	"github.com/studybuddy/study-planning/internal/domain"
)

// SuggestionKind is the closed set of advice the advisor can give, so
// callers can handle every case exhaustively.
type SuggestionKind string

const (
	SuggestionContinue    SuggestionKind = "continue"
	SuggestionReview      SuggestionKind = "review"
	SuggestionWrapUp      SuggestionKind = "wrap_up"
	SuggestionAllComplete SuggestionKind = "all_complete"
)

func (k SuggestionKind) String() string {
	return string(k)
}

const (
	// ContinueThresholdMinutes: remaining time above it means another full
	// topic is worth starting.
	ContinueThresholdMinutes = 60
	// WrapUpThresholdMinutes: remaining time below it means wind down.
	WrapUpThresholdMinutes = 20

	maxPostponedTopics = 2
)

type Suggestion struct {
	Kind            SuggestionKind `json:"kind"`
	Message         string         `json:"message"`
	NextTopicTitle  string         `json:"next_topic_title,omitempty"`
	PostponedTitles []string       `json:"postponed_titles,omitempty"`
}

type Advisor struct{}

func NewAdvisor() *Advisor {
	return &Advisor{}
}

// Advise recommends a next action from the plan's completion state and the
// minutes left in the day's budget. Completion is matched by display title.
func (a *Advisor) Advise(scheduled, completed []domain.CandidateTopic, remainingMinutes int) Suggestion {
	completedTitles := make(map[string]struct{}, len(completed))
	for _, t := range completed {
		completedTitles[t.Title] = struct{}{}
	}

	incomplete := make([]domain.CandidateTopic, 0, len(scheduled))
	for _, t := range scheduled {
		if _, ok := completedTitles[t.Title]; !ok {
			incomplete = append(incomplete, t)
		}
	}

	if len(incomplete) == 0 {
		return Suggestion{
			Kind:    SuggestionAllComplete,
			Message: "Great job! All topics completed.",
		}
	}

	switch {
	case remainingMinutes > ContinueThresholdMinutes:
		return Suggestion{
			Kind:           SuggestionContinue,
			Message:        fmt.Sprintf("You have %d minutes left. Consider working on: %s", remainingMinutes, incomplete[0].Title),
			NextTopicTitle: incomplete[0].Title,
		}
	case remainingMinutes >= WrapUpThresholdMinutes:
		return Suggestion{
			Kind:    SuggestionReview,
			Message: "Perfect time for a quick review of today's completed topics.",
		}
	default:
		postponed := make([]string, 0, maxPostponedTopics)
		for _, t := range incomplete {
			if len(postponed) == maxPostponedTopics {
				break
			}
			postponed = append(postponed, t.Title)
		}
		return Suggestion{
			Kind:            SuggestionWrapUp,
			Message:         "Good stopping point! Plan these topics for tomorrow.",
			PostponedTitles: postponed,
		}
	}
}
