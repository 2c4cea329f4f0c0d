package plan

import (
	"time"

	"github.com/studybuddy/study-planning/internal/domain"
	"github.com/studybuddy/study-planning/internal/service/allocate"
	"github.com/studybuddy/study-planning/internal/service/breaks"
	"github.com/studybuddy/study-planning/internal/service/budget"
	"github.com/studybuddy/study-planning/internal/service/candidate"
	"github.com/studybuddy/study-planning/internal/service/priority"
	"github.com/studybuddy/study-planning/internal/service/urgency"
)

// Planner assembles a daily plan from the current units and assignments.
// It reads no clock and draws no randomness: the same inputs always yield
// the same plan, including topic IDs. GeneratedAt is stamped by the caller
// at persist time.
type Planner struct {
	classifier *urgency.Classifier
	builder    *candidate.Builder
	sorter     *priority.Sorter
	allocator  *allocate.Allocator
	breaks     *breaks.Scheduler
	budget     *budget.Calculator
}

func NewPlanner(templates candidate.Templates) *Planner {
	classifier := urgency.NewClassifier()
	return &Planner{
		classifier: classifier,
		builder:    candidate.NewBuilder(classifier, templates),
		sorter:     priority.NewSorter(),
		allocator:  allocate.NewAllocator(),
		breaks:     breaks.NewScheduler(),
		budget:     budget.NewCalculator(),
	}
}

// BuildDailyPlan runs the full pipeline: budget, urgency filter, candidate
// generation, priority sort, greedy allocation, break layout.
func (p *Planner) BuildDailyPlan(
	date time.Time,
	units []domain.Unit,
	assignments []domain.Assignment,
	pace, availableHours int,
) (*domain.DailyPlan, error) {
	totalMinutes, err := p.budget.EffectiveMinutes(date, pace, availableHours)
	if err != nil {
		return nil, err
	}

	urgent := p.classifier.FilterUrgent(assignments, date)

	candidates, err := p.builder.Build(units, urgent, date, pace)
	if err != nil {
		return nil, err
	}

	sorted := p.sorter.Sort(candidates)
	scheduled := p.allocator.Allocate(sorted, totalMinutes)
	restBreaks := p.breaks.Schedule(totalMinutes)

	return domain.NewDailyPlan(domain.DateKeyFor(date), scheduled, totalMinutes, restBreaks), nil
}

// CountUrgent reports how many assignments fall inside the urgent window
// for the given reference date.
func (p *Planner) CountUrgent(assignments []domain.Assignment, reference time.Time) int {
	return len(p.classifier.FilterUrgent(assignments, reference))
}
