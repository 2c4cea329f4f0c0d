package priority

import (
	"sort"

	"github.com/studybuddy/study-planning/internal/domain"
)

type Sorter struct{}

func NewSorter() *Sorter {
	return &Sorter{}
}

// Sort orders candidates by (tier rank, deadline) and returns a new slice.
// Candidates without a deadline sort after all deadlined candidates of the
// same tier. The sort is stable, so builder order breaks remaining ties.
// The result is consumed once by the allocator; it is not re-evaluated as
// time is spent.
func (s *Sorter) Sort(candidates []domain.CandidateTopic) []domain.CandidateTopic {
	sorted := make([]domain.CandidateTopic, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Tier.Rank(), sorted[j].Tier.Rank()
		if ri != rj {
			return ri < rj
		}

		di, dj := sorted[i].Deadline, sorted[j].Deadline
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})

	return sorted
}
