package models

// MinigameKind tags events that are resolved by an interactive minigame.
type MinigameKind string

const (
	MinigameNone       MinigameKind = "none"
	MinigameReflex     MinigameKind = "reflex"
	MinigameMouseCatch MinigameKind = "mouse-catch"
)

// Choice is one selectable resolution of an event.
// A negative Cost is a net gain.
type Choice struct {
	Label          string  `yaml:"label"`
	Cost           float64 `yaml:"cost"`
	HappinessDelta int     `yaml:"happiness_delta"`
	ComfortDelta   int     `yaml:"comfort_delta"`
	FlagToAdd      string  `yaml:"flag_to_add,omitempty"`
	FlagToRemove   string  `yaml:"flag_to_remove,omitempty"`
}

// Event is a day's occurrence. The description doubles as its identifier.
type Event struct {
	Description   string       `yaml:"description"`
	Choices       []Choice     `yaml:"choices"`
	Repeatable    bool         `yaml:"repeatable"`
	RequiredItem  string       `yaml:"required_item,omitempty"`
	ForbiddenItem string       `yaml:"forbidden_item,omitempty"`
	Minigame      MinigameKind `yaml:"minigame,omitempty"`
}

// HasMinigame reports whether the event is resolved by a minigame first.
func (e Event) HasMinigame() bool {
	return e.Minigame != "" && e.Minigame != MinigameNone
}

// Clone returns a copy whose choice slice is not shared with e.
func (e Event) Clone() Event {
	c := e
	if e.Choices != nil {
		c.Choices = make([]Choice, len(e.Choices))
		copy(c.Choices, e.Choices)
	}
	return c
}

const (
	StartingDay    = 1
	StartingBudget = 2000.0
	StartingStat   = 50
	MinStat        = 0
	MaxStat        = 100
)

// PlayerState is the save-bearing state of a single playthrough.
type PlayerState struct {
	Day                  int
	Budget               float64
	Happiness            int
	Comfort              int
	Inventory            Inventory
	PlayedEventsHistory  []string
	LastEventDescription string
}

// NewPlayerState returns the state of a fresh game.
func NewPlayerState() *PlayerState {
	return &PlayerState{
		Day:       StartingDay,
		Budget:    StartingBudget,
		Happiness: StartingStat,
		Comfort:   StartingStat,
	}
}

// ClampStats pins happiness and comfort into [MinStat, MaxStat].
func (p *PlayerState) ClampStats() {
	p.Happiness = clamp(p.Happiness)
	p.Comfort = clamp(p.Comfort)
}

// Clone returns a deep copy of p.
func (p *PlayerState) Clone() *PlayerState {
	c := *p
	c.Inventory = p.Inventory.Clone()
	if p.PlayedEventsHistory != nil {
		c.PlayedEventsHistory = append([]string(nil), p.PlayedEventsHistory...)
	}
	return &c
}

func clamp(v int) int {
	return max(MinStat, min(MaxStat, v))
}

// GameOverReason names the stat that ended a run.
type GameOverReason string

const (
	ReasonNone            GameOverReason = ""
	ReasonBankruptcy      GameOverReason = "bankruptcy"
	ReasonNervousCollapse GameOverReason = "nervous-collapse"
	ReasonExhaustion      GameOverReason = "exhaustion"
)

// RunSummary describes a playthrough for the run journal.
type RunSummary struct {
	Reason          GameOverReason
	MonthsCompleted int
	DaysPlayed      int
	Day             int
	Budget          float64
	Happiness       int
	Comfort         int
}
