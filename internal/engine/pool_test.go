package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/budget-survival/internal/catalog"
)

func TestPool_ResetLoadsFullCatalog(t *testing.T) {
	pool := NewPool(nil)
	assert.Equal(t, 0, pool.Len())

	pool.Reset()
	assert.Equal(t, catalog.Len(), pool.Len())

	pool.remove("Musisz zapłacić rachunki.")
	require.Equal(t, catalog.Len()-1, pool.Len())

	pool.Reset()
	assert.Equal(t, catalog.Len(), pool.Len(), "reset should restore removed events")
	assert.True(t, pool.contains("Musisz zapłacić rachunki."))
}

func TestPool_MutationDoesNotLeakIntoCatalog(t *testing.T) {
	pool := NewPool(nil)
	pool.Reset()
	pool.events[0].Choices[0].Cost = -1e6
	pool.events = pool.events[:0]

	fresh := catalog.All()
	require.NotEmpty(t, fresh)
	assert.NotEqual(t, -1e6, fresh[0].Choices[0].Cost)
}

func TestPool_RemovePlayed(t *testing.T) {
	pool := NewPool(nil)
	pool.Reset()

	t.Run("empty history is a no-op", func(t *testing.T) {
		pool.RemovePlayed(nil)
		assert.Equal(t, catalog.Len(), pool.Len())
	})

	t.Run("drops matching descriptions", func(t *testing.T) {
		pool.RemovePlayed([]string{
			"Musisz zapłacić rachunki.",
			"Zauważyłeś mysz w swoim mieszkaniu.",
			"not in the catalog",
		})
		assert.Equal(t, catalog.Len()-2, pool.Len())
		assert.False(t, pool.contains("Musisz zapłacić rachunki."))
		assert.False(t, pool.contains("Zauważyłeś mysz w swoim mieszkaniu."))
	})
}
