package engine

import (
	"github.com/tatianab/budget-survival/internal/catalog"
	"github.com/tatianab/budget-survival/internal/models"
)

// Selector picks the next event from a pool.
type Selector struct {
	rng Rand
}

func NewSelector(rng Rand) *Selector {
	return &Selector{rng: rng}
}

// Pick filters the pool against the player and draws one candidate
// uniformly. A drawn non-repeatable event leaves the pool. When nothing can
// be drawn a filler event is returned and the pool is untouched.
func (s *Selector) Pick(pool *Pool, player *models.PlayerState) models.Event {
	if pool.Len() == 0 {
		return catalog.CalmDay()
	}

	var candidates []int
	for i, e := range pool.events {
		if eligible(e, player) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return catalog.FreeDay()
	}

	chosen := pool.events[candidates[s.rng.IntN(len(candidates))]].Clone()
	if !chosen.Repeatable {
		pool.remove(chosen.Description)
	}
	return chosen
}

func eligible(e models.Event, player *models.PlayerState) bool {
	if e.RequiredItem != "" && !player.Inventory.Has(e.RequiredItem) {
		return false
	}
	if e.ForbiddenItem != "" && player.Inventory.Has(e.ForbiddenItem) {
		return false
	}
	// Only the single previous event is excluded; repeatables may come back
	// the day after.
	if player.LastEventDescription != "" && e.Description == player.LastEventDescription {
		return false
	}
	return true
}
