package candidate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studybuddy/study-planning/internal/domain"
	"github.com/studybuddy/study-planning/internal/service/urgency"
)

const (
	// maxTopicsPerUnitPerDay caps how many study topics a single unit may
	// contribute to one day's candidate list.
	maxTopicsPerUnitPerDay = 2

	assignmentBaseMinutes = 60
	catBaseMinutes        = 90
	studyBaseMinutes      = 45

	// paceBaseline is the pace at which base estimates apply unchanged;
	// slower paces stretch the estimate proportionally.
	paceBaseline = 80

	assignmentMinMinutes = 30
	assignmentMaxMinutes = 180
	studyMinMinutes      = 20
	studyMaxMinutes      = 90

	highTierCompletionRatio   = 0.3
	mediumTierCompletionRatio = 0.7
)

// topicNamespace seeds the deterministic v5 IDs assigned to candidate topics,
// so rebuilding from identical inputs yields identical IDs.
var topicNamespace = uuid.MustParse("5b918f9e-40b7-4f3e-8ec7-1c1d6f3a2b90")

type Builder struct {
	classifier *urgency.Classifier
	templates  Templates
}

func NewBuilder(classifier *urgency.Classifier, templates Templates) *Builder {
	if templates == nil {
		templates = DefaultTemplates()
	}
	return &Builder{
		classifier: classifier,
		templates:  templates,
	}
}

// Build flattens urgent assignments and incomplete units into one candidate
// list. Assignment candidates come first, in the caller's (deadline) order.
func (b *Builder) Build(
	units []domain.Unit,
	urgentAssignments []domain.Assignment,
	reference time.Time,
	pace int,
) ([]domain.CandidateTopic, error) {
	if pace <= 0 {
		return nil, domain.ErrInvalidPace
	}

	candidates := make([]domain.CandidateTopic, 0, len(urgentAssignments)+len(units)*maxTopicsPerUnitPerDay)

	for _, a := range urgentAssignments {
		deadline := a.Deadline
		candidates = append(candidates, domain.CandidateTopic{
			ID:               topicID(domain.TopicKindAssignment, a.ID, 0),
			Kind:             domain.TopicKindAssignment,
			Title:            "Work on " + a.Title,
			UnitName:         strings.ToUpper(a.Type.String()),
			AssignmentID:     a.ID,
			EstimatedMinutes: estimateAssignmentMinutes(a.Type, pace),
			Tier:             b.classifier.Classify(a, reference),
			Deadline:         &deadline,
		})
	}

	for _, u := range units {
		remaining := u.RemainingTopics()
		if remaining <= 0 {
			continue
		}

		count := remaining
		if count > maxTopicsPerUnitPerDay {
			count = maxTopicsPerUnitPerDay
		}

		tier := unitTier(u)
		for i := 0; i < count; i++ {
			topicNumber := u.CompletedTopics + i + 1
			candidates = append(candidates, domain.CandidateTopic{
				ID:               topicID(domain.TopicKindStudy, u.ID, topicNumber),
				Kind:             domain.TopicKindStudy,
				Title:            b.templates.TitleFor(u.Name, topicNumber),
				UnitID:           u.ID,
				UnitName:         u.Name,
				EstimatedMinutes: estimateStudyMinutes(pace),
				Tier:             tier,
			})
		}
	}

	return candidates, nil
}

func estimateAssignmentMinutes(t domain.AssignmentType, pace int) int {
	base := assignmentBaseMinutes
	if t == domain.AssignmentTypeCAT {
		base = catBaseMinutes
	}
	return clampMinutes(scaleByPace(base, pace), assignmentMinMinutes, assignmentMaxMinutes)
}

func estimateStudyMinutes(pace int) int {
	return clampMinutes(scaleByPace(studyBaseMinutes, pace), studyMinMinutes, studyMaxMinutes)
}

func scaleByPace(base, pace int) int {
	return int(float64(base) * (float64(paceBaseline) / float64(pace)))
}

func clampMinutes(minutes, lo, hi int) int {
	if minutes < lo {
		return lo
	}
	if minutes > hi {
		return hi
	}
	return minutes
}

func unitTier(u domain.Unit) domain.Tier {
	ratio := u.CompletionRatio()
	switch {
	case ratio < highTierCompletionRatio:
		return domain.TierHigh
	case ratio < mediumTierCompletionRatio:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}

func topicID(kind domain.TopicKind, sourceID string, index int) string {
	name := fmt.Sprintf("%s:%s:%d", kind, sourceID, index)
	return uuid.NewSHA1(topicNamespace, []byte(name)).String()
}
