package domain

import "errors"

var (
	ErrInvalidPace          = errors.New("learning pace must be positive")
	ErrInvalidHours         = errors.New("available hours must be positive")
	ErrTopicIndexOutOfRange = errors.New("topic index out of range")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrUnitNotFound         = errors.New("unit not found")
	ErrAssignmentNotFound   = errors.New("assignment not found")
)
