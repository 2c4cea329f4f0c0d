package budget

import (
	"math"
	"time"

	"github.com/studybuddy/study-planning/internal/domain"
)

const (
	// MaxDailyStudyHours caps the effective budget regardless of pace.
	MaxDailyStudyHours = 8.0

	// WeekendReductionFactor shrinks Saturday and Sunday budgets by 30%.
	WeekendReductionFactor = 0.7

	// paceMidpoint is the pace at which the multiplier is exactly 1.0.
	paceMidpoint = 50.0
)

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// EffectiveMinutes converts the caller's available hours into the day's
// study-minute budget, adjusted for learning pace and reduced on weekends.
func (c *Calculator) EffectiveMinutes(date time.Time, pace, availableHours int) (int, error) {
	if pace <= 0 {
		return 0, domain.ErrInvalidPace
	}
	if availableHours <= 0 {
		return 0, domain.ErrInvalidHours
	}

	paceMultiplier := float64(pace) / paceMidpoint

	effectiveHours := float64(availableHours) * paceMultiplier
	if effectiveHours > MaxDailyStudyHours {
		effectiveHours = MaxDailyStudyHours
	}

	if isWeekend(date) {
		effectiveHours *= WeekendReductionFactor
	}

	return int(math.Round(effectiveHours * 60)), nil
}

func isWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
