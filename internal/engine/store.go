package engine

import "github.com/tatianab/budget-survival/internal/models"

//go:generate mockgen -destination=mock/mock.go -package=enginemock github.com/tatianab/budget-survival/internal/engine Store

// Store persists a single player state. models.FileStore is the production
// implementation.
type Store interface {
	Save(p *models.PlayerState) error
	Load() (*models.PlayerState, error)
}

// Rand is the randomness the engine needs. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}
