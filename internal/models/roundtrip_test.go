package models_test

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/tatianab/budget-survival/internal/catalog"
	"github.com/tatianab/budget-survival/internal/models"
)

var allFlags = []string{
	catalog.FlagMonthlyTicket,
	catalog.FlagNoCar,
	catalog.FlagBrokenCar,
	catalog.FlagBreakdownRisk,
	catalog.FlagUntreatedTooth,
	catalog.FlagUntreatedTooth2,
	catalog.FlagMissingTooth,
	catalog.FlagMice,
	catalog.FlagPigeons,
	catalog.FlagIllness,
}

func randomPlayer(rng *rand.Rand, descriptions []string) *models.PlayerState {
	p := &models.PlayerState{
		Day:       1 + rng.IntN(31),
		Budget:    float64(rng.IntN(1_000_000)-250_000) / 100,
		Happiness: rng.IntN(models.MaxStat + 1),
		Comfort:   rng.IntN(models.MaxStat + 1),
		Inventory: models.NewInventory(),
	}
	for _, f := range allFlags {
		if rng.IntN(2) == 0 {
			p.Inventory.Add(f)
		}
	}
	for range rng.IntN(len(descriptions) + 1) {
		p.PlayedEventsHistory = append(p.PlayedEventsHistory, descriptions[rng.IntN(len(descriptions))])
	}
	if rng.IntN(4) > 0 {
		p.LastEventDescription = descriptions[rng.IntN(len(descriptions))]
	}
	return p
}

func TestEncodeDecodeRandomStates(t *testing.T) {
	var descriptions []string
	for _, e := range catalog.All() {
		descriptions = append(descriptions, e.Description)
	}
	rng := rand.New(rand.NewPCG(7, 2024))

	for i := range 500 {
		p := randomPlayer(rng, descriptions)

		var buf bytes.Buffer
		if err := models.Encode(&buf, p); err != nil {
			t.Fatalf("case %d: encode: %v", i, err)
		}
		got, err := models.Decode(&buf)
		if err != nil {
			t.Fatalf("case %d: decode: %v", i, err)
		}

		if got.Day != p.Day || got.Budget != p.Budget || got.Happiness != p.Happiness || got.Comfort != p.Comfort {
			t.Fatalf("case %d: expected stats %+v, got %+v", i, p, got)
		}
		want, have := p.Inventory.Items(), got.Inventory.Items()
		slices.Sort(want)
		slices.Sort(have)
		if !slices.Equal(want, have) {
			t.Fatalf("case %d: expected inventory %v, got %v", i, want, have)
		}
		if !slices.Equal(got.PlayedEventsHistory, p.PlayedEventsHistory) {
			t.Fatalf("case %d: expected history %v, got %v", i, p.PlayedEventsHistory, got.PlayedEventsHistory)
		}
		if got.LastEventDescription != p.LastEventDescription {
			t.Fatalf("case %d: expected last event %q, got %q", i, p.LastEventDescription, got.LastEventDescription)
		}
	}
}
