package domain

import "time"

type Unit struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Color           string    `json:"color"`
	Icon            string    `json:"icon"`
	TotalTopics     int       `json:"total_topics"`
	CompletedTopics int       `json:"completed_topics"`
	CreatedAt       time.Time `json:"created_at"`
}

func (u *Unit) RemainingTopics() int {
	return u.TotalTopics - u.CompletedTopics
}

// CompletionRatio treats a unit without any topics as fully unstarted.
func (u *Unit) CompletionRatio() float64 {
	if u.TotalTopics <= 0 {
		return 0
	}
	return float64(u.CompletedTopics) / float64(u.TotalTopics)
}
