package engine

import (
	"slices"

	"github.com/tatianab/budget-survival/internal/catalog"
	"github.com/tatianab/budget-survival/internal/models"
)

// Pool is the working set of events for the current cycle.
type Pool struct {
	source func() []models.Event
	events []models.Event
}

// NewPool returns an empty pool that refills from source on Reset. A nil
// source means the full catalog.
func NewPool(source func() []models.Event) *Pool {
	if source == nil {
		source = catalog.All
	}
	return &Pool{source: source}
}

// Reset refills the pool with a fresh copy of every source event.
func (p *Pool) Reset() {
	p.events = p.source()
}

// RemovePlayed drops every event whose description appears in history.
func (p *Pool) RemovePlayed(history []string) {
	if len(history) == 0 {
		return
	}
	played := make(map[string]struct{}, len(history))
	for _, desc := range history {
		played[desc] = struct{}{}
	}
	p.events = slices.DeleteFunc(p.events, func(e models.Event) bool {
		_, ok := played[e.Description]
		return ok
	})
}

func (p *Pool) Len() int { return len(p.events) }

// contains reports whether an event with the description is still in the pool.
func (p *Pool) contains(description string) bool {
	return slices.ContainsFunc(p.events, func(e models.Event) bool {
		return e.Description == description
	})
}

func (p *Pool) remove(description string) {
	p.events = slices.DeleteFunc(p.events, func(e models.Event) bool {
		return e.Description == description
	})
}
