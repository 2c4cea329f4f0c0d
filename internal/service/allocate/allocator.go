package allocate

import (
	"github.com/studybuddy/study-planning/internal/domain"
)

// MinPartialMinutes is the smallest leftover slot worth filling with a
// shrunken topic.
const MinPartialMinutes = 20

type Allocator struct{}

func NewAllocator() *Allocator {
	return &Allocator{}
}

// Allocate packs candidates into the minute budget with a single greedy pass
// in the given priority order. A candidate that does not fit whole may be
// accepted once with its estimate shrunk to the leftover minutes, after
// which allocation stops entirely. Later, shorter candidates are never
// reconsidered; this is a deliberate simplification, not an optimal packing.
func (a *Allocator) Allocate(candidates []domain.CandidateTopic, availableMinutes int) []domain.CandidateTopic {
	allocated := make([]domain.CandidateTopic, 0, len(candidates))
	allocatedMinutes := 0

	for _, c := range candidates {
		if allocatedMinutes+c.EstimatedMinutes <= availableMinutes {
			allocated = append(allocated, c)
			allocatedMinutes += c.EstimatedMinutes
			continue
		}

		remaining := availableMinutes - allocatedMinutes
		if remaining >= MinPartialMinutes {
			c.EstimatedMinutes = remaining
			allocated = append(allocated, c)
		}
		break
	}

	return allocated
}
