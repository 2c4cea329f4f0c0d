package repository

import "errors"

var (
	ErrRedisConnection       = errors.New("redis connection error")
	ErrInvalidPlanData       = errors.New("invalid plan data")
	ErrInvalidUnitData       = errors.New("invalid unit data")
	ErrInvalidAssignmentData = errors.New("invalid assignment data")
)
