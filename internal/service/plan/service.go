package plan

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/studybuddy/study-planning/internal/domain"
	"github.com/studybuddy/study-planning/internal/infra/refreshqueue"
	"github.com/studybuddy/study-planning/internal/observability/metrics"
	"github.com/studybuddy/study-planning/internal/observability/tracing"
	"github.com/studybuddy/study-planning/internal/service/advisor"
)

// refreshHourUTC is the hour at which the next day's automatic plan
// regeneration fires.
const refreshHourUTC = 6

// Service owns the read-compute-write cycle around stored plans. All
// mutations of a given date's plan are serialized through a per-date lock,
// so concurrent completions cannot drop each other's updates.
type Service struct {
	planner        *Planner
	advisor        *advisor.Advisor
	unitRepo       domain.UnitRepository
	assignmentRepo domain.AssignmentRepository
	planRepo       domain.PlanRepository
	metrics        *metrics.PlannerMetrics
	recorder       domain.PlanResultRecorder
	refreshQueue   refreshqueue.RefreshQueue

	mu        sync.Mutex
	dateLocks map[string]*sync.Mutex
}

// NewService wires the planning pipeline. recorder and refreshQueue may be
// nil; the service then skips analytics and automatic refresh scheduling.
func NewService(
	planner *Planner,
	unitRepo domain.UnitRepository,
	assignmentRepo domain.AssignmentRepository,
	planRepo domain.PlanRepository,
	plannerMetrics *metrics.PlannerMetrics,
	recorder domain.PlanResultRecorder,
	refreshQueue refreshqueue.RefreshQueue,
) *Service {
	return &Service{
		planner:        planner,
		advisor:        advisor.NewAdvisor(),
		unitRepo:       unitRepo,
		assignmentRepo: assignmentRepo,
		planRepo:       planRepo,
		metrics:        plannerMetrics,
		recorder:       recorder,
		refreshQueue:   refreshQueue,
		dateLocks:      make(map[string]*sync.Mutex),
	}
}

func (s *Service) dateLock(dateKey string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.dateLocks[dateKey]
	if !ok {
		l = &sync.Mutex{}
		s.dateLocks[dateKey] = l
	}
	return l
}

// Generate builds the plan for the given date from the current units and
// assignments and stores it, replacing any plan already stored for that date.
func (s *Service) Generate(ctx context.Context, params GenerateParams) (*domain.DailyPlan, error) {
	dateKey := domain.DateKeyFor(params.Date)

	ctx, span := tracing.StartPlanGenerationSpan(ctx, dateKey, params.LearningPace, params.AvailableHours)
	defer span.End()

	lock := s.dateLock(dateKey)
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()

	unitPtrs, err := s.unitRepo.ListUnits(ctx)
	if err != nil {
		tracing.RecordPlanGenerationResult(span, 0, 0, 0, err)
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	assignmentPtrs, err := s.assignmentRepo.ListAssignments(ctx)
	if err != nil {
		tracing.RecordPlanGenerationResult(span, 0, 0, 0, err)
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	units := make([]domain.Unit, 0, len(unitPtrs))
	for _, u := range unitPtrs {
		units = append(units, *u)
	}
	assignments := make([]domain.Assignment, 0, len(assignmentPtrs))
	for _, a := range assignmentPtrs {
		assignments = append(assignments, *a)
	}

	generated, err := s.planner.BuildDailyPlan(params.Date, units, assignments, params.LearningPace, params.AvailableHours)
	if err != nil {
		tracing.RecordPlanGenerationResult(span, 0, 0, 0, err)
		return nil, err
	}
	generated.GeneratedAt = time.Now().UTC()

	if err := s.planRepo.SavePlan(ctx, generated); err != nil {
		tracing.RecordPlanGenerationResult(span, len(generated.ScheduledTopics), generated.TotalStudyMinutes, len(generated.Breaks), err)
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	weekend := isWeekend(params.Date)
	if s.metrics != nil {
		s.metrics.RecordPlanGenerated(ctx, weekend)
		s.metrics.RecordTopicsScheduled(ctx, len(generated.ScheduledTopics))
		s.metrics.RecordPlanGenerationDuration(ctx, time.Since(start))
	}

	if s.recorder != nil {
		record := domain.PlanGenerationRecord{
			DateKey:        dateKey,
			Weekend:        weekend,
			LearningPace:   params.LearningPace,
			AvailableHours: params.AvailableHours,
			ScheduledCount: len(generated.ScheduledTopics),
			UrgentCount:    s.planner.CountUrgent(assignments, params.Date),
			TotalMinutes:   generated.TotalStudyMinutes,
			BreakCount:     len(generated.Breaks),
		}
		if err := s.recorder.RecordPlanGenerated(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to record plan generation",
				slog.String("date", dateKey),
				slog.String("error", err.Error()),
			)
		}
	}

	s.scheduleNextRefresh(ctx, params)

	slog.InfoContext(ctx, "daily plan generated",
		slog.String("date", dateKey),
		slog.Int("scheduled_topics", len(generated.ScheduledTopics)),
		slog.Int("total_study_minutes", generated.TotalStudyMinutes),
		slog.Int("breaks", len(generated.Breaks)),
		slog.Bool("weekend", weekend),
	)

	tracing.RecordPlanGenerationResult(span, len(generated.ScheduledTopics), generated.TotalStudyMinutes, len(generated.Breaks), nil)
	return generated, nil
}

func (s *Service) scheduleNextRefresh(ctx context.Context, params GenerateParams) {
	if s.refreshQueue == nil {
		return
	}

	next := params.Date.UTC().AddDate(0, 0, 1)
	nextKey := domain.DateKeyFor(next)
	scheduleAt := time.Date(next.Year(), next.Month(), next.Day(), refreshHourUTC, 0, 0, 0, time.UTC)

	task := &refreshqueue.RefreshTask{
		TaskID:         "refresh-" + nextKey,
		ScheduleAt:     scheduleAt,
		Date:           nextKey,
		LearningPace:   params.LearningPace,
		AvailableHours: params.AvailableHours,
	}

	if _, err := s.refreshQueue.ScheduleRefresh(ctx, task); err != nil {
		slog.WarnContext(ctx, "failed to schedule next plan refresh",
			slog.String("date", nextKey),
			slog.String("error", err.Error()),
		)
	}
}

// GetByDate returns the stored plan for the date, or domain.ErrPlanNotFound.
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*domain.DailyPlan, error) {
	return s.planRepo.GetPlanByDate(ctx, domain.DateKeyFor(date))
}

func (s *Service) List(ctx context.Context) ([]*domain.DailyPlan, error) {
	return s.planRepo.ListPlans(ctx)
}

func (s *Service) Delete(ctx context.Context, date time.Time) error {
	return s.planRepo.DeletePlan(ctx, domain.DateKeyFor(date))
}

// CompleteTopic marks the scheduled topic at the given index as done and
// persists the updated plan. The scheduled list keeps its entries, so the
// same index refers to the same topic for the whole day.
func (s *Service) CompleteTopic(ctx context.Context, params CompleteTopicParams) (*domain.DailyPlan, error) {
	dateKey := domain.DateKeyFor(params.Date)

	ctx, span := tracing.StartTopicCompletionSpan(ctx, dateKey, params.TopicIndex)
	defer span.End()

	lock := s.dateLock(dateKey)
	lock.Lock()
	defer lock.Unlock()

	stored, err := s.planRepo.GetPlanByDate(ctx, dateKey)
	if err != nil {
		return nil, err
	}

	if err := stored.CompleteTopic(params.TopicIndex, params.ActualMinutes); err != nil {
		return nil, err
	}

	if err := s.planRepo.SavePlan(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	topic := stored.ScheduledTopics[params.TopicIndex]
	if s.metrics != nil {
		s.metrics.RecordTopicCompleted(ctx, topic.Kind.String())
	}

	if s.recorder != nil {
		record := domain.TopicCompletionRecord{
			DateKey:          dateKey,
			TopicID:          topic.ID,
			TopicKind:        topic.Kind.String(),
			EstimatedMinutes: topic.EstimatedMinutes,
			ActualMinutes:    params.ActualMinutes,
		}
		if err := s.recorder.RecordTopicCompleted(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to record topic completion",
				slog.String("date", dateKey),
				slog.String("topic_id", topic.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	slog.InfoContext(ctx, "topic completed",
		slog.String("date", dateKey),
		slog.Int("topic_index", params.TopicIndex),
		slog.String("topic_id", topic.ID),
		slog.Int("actual_minutes", params.ActualMinutes),
	)

	return stored, nil
}

// SuggestAdjustments recommends what to do with the rest of the day's budget.
func (s *Service) SuggestAdjustments(ctx context.Context, date time.Time) (advisor.Suggestion, error) {
	dateKey := domain.DateKeyFor(date)

	stored, err := s.planRepo.GetPlanByDate(ctx, dateKey)
	if err != nil {
		return advisor.Suggestion{}, err
	}

	remaining := stored.RemainingMinutes()
	ctx, span := tracing.StartSuggestionSpan(ctx, dateKey, remaining)
	defer span.End()

	suggestion := s.advisor.Advise(stored.ScheduledTopics, stored.CompletedTopics, remaining)

	if s.metrics != nil {
		s.metrics.RecordSuggestion(ctx, suggestion.Kind.String())
	}
	tracing.RecordSuggestionResult(span, suggestion.Kind.String(), len(stored.ScheduledTopics)-len(stored.CompletedTopics))

	return suggestion, nil
}

func isWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
