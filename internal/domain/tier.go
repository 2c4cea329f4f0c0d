package domain

// Tier is the coarse priority bucket assigned to a candidate topic.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

func (t Tier) String() string {
	return string(t)
}

// Rank returns the ordering rank of the tier; lower ranks are scheduled first.
func (t Tier) Rank() int {
	switch t {
	case TierHigh:
		return 0
	case TierMedium:
		return 1
	case TierLow:
		return 2
	default:
		return 3
	}
}
