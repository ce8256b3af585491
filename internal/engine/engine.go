package engine

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/tatianab/budget-survival/internal/models"
)

const (
	DaysPerMonth   = 30
	MonthlyStipend = 2000.0
)

var (
	ErrNotRunning = errors.New("no game in progress")
	ErrNoStore    = errors.New("store is required")
)

// State is the phase of the game loop.
type State int

const (
	StateMenu State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// GameOver is the terminal outcome of a run.
type GameOver struct {
	Reason  models.GameOverReason
	Message string
}

var (
	gameOverBankruptcy = GameOver{
		Reason:  models.ReasonBankruptcy,
		Message: "BANKRUCTWO!\nNie stac cię na życie.",
	}
	gameOverNervousCollapse = GameOver{
		Reason:  models.ReasonNervousCollapse,
		Message: "ZAŁAMANIE NERWOWE!\nTwój poziom szczęścia spadł do zera. Nie masz siły wstać z łóżka.",
	}
	gameOverExhaustion = GameOver{
		Reason:  models.ReasonExhaustion,
		Message: "WYCIEŃCZENIE!\nTwój poziom komfortu spadł do zera. Nie da się żyć w takich warunkach.",
	}
)

type Config struct {
	Store Store
	// Rand defaults to a PCG seeded from the clock.
	Rand Rand
	// Catalog defaults to catalog.All.
	Catalog func() []models.Event
	Logger  *slog.Logger
}

// Engine drives a single playthrough. It is not safe for concurrent use;
// the UI calls it from one goroutine.
type Engine struct {
	store    Store
	rng      Rand
	pool     *Pool
	selector *Selector
	log      *slog.Logger

	state    State
	player   *models.PlayerState
	gameOver GameOver

	monthsCompleted int
	daysPlayed      int
}

func New(cfg Config) (*Engine, error) {
	if cfg.Store == nil {
		return nil, ErrNoStore
	}
	rng := cfg.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:    cfg.Store,
		rng:      rng,
		pool:     NewPool(cfg.Catalog),
		selector: NewSelector(rng),
		log:      logger,
		state:    StateMenu,
	}, nil
}

func (e *Engine) StartNewGame() {
	e.player = models.NewPlayerState()
	e.pool.Reset()
	e.beginRun()
	e.log.Info("new game started")
}

// LoadGame restores the saved player. On failure the engine is left exactly
// as it was and false is returned.
func (e *Engine) LoadGame() bool {
	p, err := e.store.Load()
	if err != nil {
		if errors.Is(err, models.ErrNoSave) {
			e.log.Info("no saved game")
		} else {
			e.log.Warn("load failed", "error", err)
		}
		return false
	}
	e.player = p
	e.pool.Reset()
	e.pool.RemovePlayed(p.PlayedEventsHistory)
	e.beginRun()
	e.log.Info("game loaded", "day", p.Day, "budget", p.Budget, "pool", e.pool.Len())
	return true
}

func (e *Engine) beginRun() {
	e.state = StateRunning
	e.gameOver = GameOver{}
	e.monthsCompleted = 0
	e.daysPlayed = 0
}

// SaveGame persists the current player. Failures are logged, never returned.
func (e *Engine) SaveGame() {
	if e.player == nil {
		return
	}
	if err := e.store.Save(e.player); err != nil {
		e.log.Warn("save failed", "error", err)
	}
}

// DrawNextEvent picks today's event and records it on the player.
func (e *Engine) DrawNextEvent() (models.Event, error) {
	if e.state != StateRunning {
		return models.Event{}, ErrNotRunning
	}
	ev := e.selector.Pick(e.pool, e.player)
	e.player.LastEventDescription = ev.Description
	if !ev.Repeatable {
		e.player.PlayedEventsHistory = append(e.player.PlayedEventsHistory, ev.Description)
	}
	return ev, nil
}

// ApplyChoice applies the choice's effects, clamps stats and saves.
func (e *Engine) ApplyChoice(c models.Choice) error {
	if e.state != StateRunning {
		return ErrNotRunning
	}
	p := e.player
	p.Budget -= c.Cost
	p.Happiness += c.HappinessDelta
	p.Comfort += c.ComfortDelta
	if c.FlagToRemove != "" {
		p.Inventory.Remove(c.FlagToRemove)
	}
	if c.FlagToAdd != "" {
		p.Inventory.Add(c.FlagToAdd)
	}
	p.ClampStats()
	e.SaveGame()
	return nil
}

// ApplyMandate debits a fine and saves; stats and inventory are untouched.
func (e *Engine) ApplyMandate(amount float64) error {
	if e.state != StateRunning {
		return ErrNotRunning
	}
	e.player.Budget -= amount
	e.SaveGame()
	return nil
}

// NextDay advances the day counter without bounds checks; see MonthEnded.
func (e *Engine) NextDay() error {
	if e.state != StateRunning {
		return ErrNotRunning
	}
	e.player.Day++
	e.daysPlayed++
	return nil
}

// MonthEnded reports whether the day counter has run past the month.
func (e *Engine) MonthEnded() bool {
	return e.player != nil && e.player.Day > DaysPerMonth
}

// NextMonth pays the stipend and refills the pool. Inventory and history
// carry over.
func (e *Engine) NextMonth() error {
	if e.state != StateRunning {
		return ErrNotRunning
	}
	e.player.Day = models.StartingDay
	e.player.Budget += MonthlyStipend
	e.pool.Reset()
	e.monthsCompleted++
	e.log.Info("month completed", "months", e.monthsCompleted, "budget", e.player.Budget)
	return nil
}

// CheckGameOver ends the run when a stat has collapsed. Budget is checked
// first, then happiness, then comfort.
func (e *Engine) CheckGameOver() (GameOver, bool) {
	switch e.state {
	case StateGameOver:
		return e.gameOver, true
	case StateMenu:
		return GameOver{}, false
	}

	p := e.player
	var over GameOver
	switch {
	case p.Budget <= 0:
		over = gameOverBankruptcy
	case p.Happiness <= 0:
		over = gameOverNervousCollapse
	case p.Comfort <= 0:
		over = gameOverExhaustion
	default:
		return GameOver{}, false
	}
	e.state = StateGameOver
	e.gameOver = over
	e.log.Info("game over", "reason", over.Reason, "day", p.Day, "months", e.monthsCompleted)
	return over, true
}

// ReturnToMenu drops the active player.
func (e *Engine) ReturnToMenu() {
	e.state = StateMenu
	e.player = nil
}

func (e *Engine) State() State { return e.state }

func (e *Engine) IsRunning() bool { return e.state == StateRunning }

// Player returns a copy of the active player, or nil in the menu.
func (e *Engine) Player() *models.PlayerState {
	if e.player == nil {
		return nil
	}
	return e.player.Clone()
}

// Summary describes the current session's run.
func (e *Engine) Summary() models.RunSummary {
	s := models.RunSummary{
		Reason:          e.gameOver.Reason,
		MonthsCompleted: e.monthsCompleted,
		DaysPlayed:      e.daysPlayed,
	}
	if p := e.player; p != nil {
		s.Day = p.Day
		s.Budget = p.Budget
		s.Happiness = p.Happiness
		s.Comfort = p.Comfort
	}
	return s
}

// Rand exposes the engine's randomness to minigame presentation.
func (e *Engine) Rand() Rand { return e.rng }
