package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	enginemock "github.com/tatianab/budget-survival/internal/engine/mock"
	"github.com/tatianab/budget-survival/internal/models"
)

func TestResolveReflex(t *testing.T) {
	t.Run("green light saves without penalty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := enginemock.NewMockStore(ctrl)
		store.EXPECT().Save(gomock.Any()).Return(nil)
		e := newTestEngine(t, store)
		e.StartNewGame()

		out, err := e.ResolveReflex(true)
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Contains(t, out.Message(), "SUKCES!")
		assert.Equal(t, 2000.0, e.Player().Budget)
	})

	t.Run("red light costs the fine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := enginemock.NewMockStore(ctrl)
		store.EXPECT().Save(gomock.Any()).Return(nil)
		e := newTestEngine(t, store)
		e.StartNewGame()

		out, err := e.ResolveReflex(false)
		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.Contains(t, out.Message(), "PORAŻKA!")
		assert.Equal(t, 2000.0-ReflexPenalty, e.Player().Budget)
		assert.Equal(t, 50, e.Player().Happiness)
	})

	t.Run("requires a running game", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		e := newTestEngine(t, enginemock.NewMockStore(ctrl))
		_, err := e.ResolveReflex(true)
		assert.ErrorIs(t, err, ErrNotRunning)
	})
}

func TestReflexDelayRange(t *testing.T) {
	rng := seeded(5)
	for range 500 {
		d := ReflexDelay(rng)
		require.GreaterOrEqual(t, d, time.Second)
		require.Less(t, d, 3*time.Second)
	}
}

func TestMouseCountRange(t *testing.T) {
	rng := seeded(6)
	counts := make(map[int]int)
	for range 200 {
		counts[MouseCount(rng)]++
	}
	assert.Len(t, counts, 2)
	assert.Positive(t, counts[4])
	assert.Positive(t, counts[5])
}

func TestDescribeChoice(t *testing.T) {
	p := models.NewPlayerState()
	p.Budget = -20
	p.Inventory.Add("Myszy")

	got := DescribeChoice(models.Choice{
		Label:          "Ignorujesz ją",
		Cost:           80,
		HappinessDelta: 5,
		ComfortDelta:   -3,
		FlagToAdd:      "Myszy",
		FlagToRemove:   "Gołębie",
	}, p)

	assert.Equal(t, "DECYZJA: Ignorujesz ją\n\n"+
		"- Koszt: 80 PLN\n"+
		"+ 5 Szczęście\n"+
		"- 3 Komfort\n"+
		"\nOTRZYMANO: Myszy"+
		"\nUTRACONO: Gołębie"+
		"\nUWAGA: Debet!", got)
}

func TestDescribeChoiceGain(t *testing.T) {
	got := DescribeChoice(models.Choice{Label: "Biorę nadgodziny", Cost: -250}, models.NewPlayerState())
	assert.Equal(t, "DECYZJA: Biorę nadgodziny\n\n+ Zysk: 250 PLN", got)
}
