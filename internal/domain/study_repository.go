package domain

import "context"

//go:generate mockgen -source=study_repository.go -destination=study_repository_mock.go -package=domain

type UnitRepository interface {
	SaveUnit(ctx context.Context, unit *Unit) error
	GetUnit(ctx context.Context, id string) (*Unit, error)
	ListUnits(ctx context.Context) ([]*Unit, error)
	DeleteUnit(ctx context.Context, id string) error
}

type AssignmentRepository interface {
	SaveAssignment(ctx context.Context, assignment *Assignment) error
	GetAssignment(ctx context.Context, id string) (*Assignment, error)
	ListAssignments(ctx context.Context) ([]*Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
}
