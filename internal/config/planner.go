package config

import (
	"os"
	"strconv"
)

const (
	defaultLearningPaceEnv   = "DEFAULT_LEARNING_PACE"
	defaultAvailableHoursEnv = "DEFAULT_AVAILABLE_HOURS"

	defaultLearningPace   = 45
	defaultAvailableHours = 4

	// maxLearningPace matches the candidate estimator's baseline; beyond it
	// every estimate clamps to the minimum and pace stops meaning anything.
	maxLearningPace = 80
)

type PlannerConfig struct {
	DefaultLearningPace   int
	DefaultAvailableHours int
}

func LoadPlannerConfig() (*PlannerConfig, error) {
	pace := defaultLearningPace
	if v := os.Getenv(defaultLearningPaceEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidLearningPace
		}
		pace = parsed
	}

	hours := defaultAvailableHours
	if v := os.Getenv(defaultAvailableHoursEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidAvailableHours
		}
		hours = parsed
	}

	cfg := &PlannerConfig{
		DefaultLearningPace:   pace,
		DefaultAvailableHours: hours,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *PlannerConfig) Validate() error {
	if c == nil {
		return ErrInvalidLearningPace
	}
	if c.DefaultLearningPace <= 0 || c.DefaultLearningPace > maxLearningPace {
		return ErrInvalidLearningPace
	}
	if c.DefaultAvailableHours <= 0 {
		return ErrInvalidAvailableHours
	}
	return nil
}
