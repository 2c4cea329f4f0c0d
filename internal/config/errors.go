package config

import "errors"

var (
	ErrRedisAddrMissing      = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB        = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidLearningPace   = errors.New("DEFAULT_LEARNING_PACE must be an integer between 1 and 80")
	ErrInvalidAvailableHours = errors.New("DEFAULT_AVAILABLE_HOURS must be a positive integer")
)
