package domain

import "context"

//go:generate mockgen -source=plan_repository.go -destination=plan_repository_mock.go -package=domain

// PlanRepository stores one DailyPlan per calendar date. SavePlan replaces
// any plan already stored under the same date key.
type PlanRepository interface {
	SavePlan(ctx context.Context, plan *DailyPlan) error
	GetPlanByDate(ctx context.Context, dateKey string) (*DailyPlan, error)
	ListPlans(ctx context.Context) ([]*DailyPlan, error)
	DeletePlan(ctx context.Context, dateKey string) error
}
