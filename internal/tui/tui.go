package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/budget-survival/internal/engine"
	"github.com/tatianab/budget-survival/internal/models"
)

const (
	narrationTimeout = 10 * time.Second
	journalTimeout   = 5 * time.Second

	noSaveNotice   = "Brak zapisu gry!"
	newMonthNotice = "Nowy miesiąc! Otrzymujesz: +2000 PLN."
)

// Narrator produces an optional comment for the result screen.
type Narrator interface {
	Narrate(ctx context.Context, event models.Event, choice models.Choice, p *models.PlayerState) (string, error)
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	RecordRun(ctx context.Context, summary models.RunSummary) (string, error)
}

type Options struct {
	Narrator Narrator
	Journal  RunRecorder
	Logger   *slog.Logger
}

type screen int

const (
	screenMenu screen = iota
	screenEvent
	screenReflex
	screenMouse
	screenResult
	screenMonthEnd
	screenGameOver
)

var (
	menuOptions     = []string{"Nowa gra", "Wczytaj grę", "Wyjdź"}
	monthEndOptions = []string{"Kolejny miesiąc", "Menu główne", "Wyjdź"}
)

type model struct {
	screen screen
	engine *engine.Engine
	opts   Options
	log    *slog.Logger

	keys      keyMap
	help      help.Model
	happiness progress.Model
	comfort   progress.Model

	cursor int
	notice string

	event     models.Event
	result    string
	narration string
	resultSeq int

	lightGreen  bool
	reflexRound int

	mice   map[cell]bool
	aim    cell
	caught int

	gameOver engine.GameOver

	width  int
	height int
}

type lightGreenMsg struct {
	round int
}

type narrationMsg struct {
	seq  int
	text string
}

func NewModel(eng *engine.Engine, opts Options) model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return model{
		screen:    screenMenu,
		engine:    eng,
		opts:      opts,
		log:       logger,
		keys:      newKeyMap(),
		help:      help.New(),
		happiness: progress.New(progress.WithDefaultGradient(), progress.WithWidth(statBarWidth)),
		comfort:   progress.New(progress.WithGradient("#5A56E0", "#3CB371"), progress.WithWidth(statBarWidth)),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case lightGreenMsg:
		if m.screen == screenReflex && msg.round == m.reflexRound {
			m.lightGreen = true
		}
		return m, nil

	case narrationMsg:
		if m.screen == screenResult && msg.seq == m.resultSeq {
			m.narration = msg.text
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenEvent:
			return m.updateEvent(msg)
		case screenReflex:
			return m.updateReflex(msg)
		case screenMouse:
			return m.updateMouse(msg)
		case screenResult:
			return m.updateResult(msg)
		case screenMonthEnd:
			return m.updateMonthEnd(msg)
		case screenGameOver:
			if key.Matches(msg, m.keys.Select) {
				m.engine.ReturnToMenu()
				m.screen = screenMenu
				m.cursor = 0
			}
			return m, nil
		}
	}
	return m, nil
}

// moveCursor handles up/down on a list of n entries.
func (m *model) moveCursor(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return true
	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
		return true
	}
	return false
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveCursor(msg, len(menuOptions)) || !key.Matches(msg, m.keys.Select) {
		return m, nil
	}
	switch m.cursor {
	case 0:
		m.engine.StartNewGame()
		m.notice = ""
		return m.nextTurn()
	case 1:
		if !m.engine.LoadGame() {
			m.notice = noSaveNotice
			return m, nil
		}
		m.notice = ""
		return m.nextTurn()
	default:
		return m, tea.Quit
	}
}

func (m model) updateEvent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveCursor(msg, len(m.event.Choices)) || !key.Matches(msg, m.keys.Select) {
		return m, nil
	}
	if len(m.event.Choices) == 0 {
		return m.showResult("", nil)
	}
	choice := m.event.Choices[m.cursor]
	if err := m.engine.ApplyChoice(choice); err != nil {
		m.log.Error("apply choice", "error", err)
		return m.backToMenu()
	}
	cmd := m.narrate(choice)
	return m.showResult(engine.DescribeChoice(choice, m.engine.Player()), cmd)
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Select) {
		return m, nil
	}
	if over, ok := m.engine.CheckGameOver(); ok {
		m.gameOver = over
		m.screen = screenGameOver
		return m, m.recordRun(m.engine.Summary())
	}
	if err := m.engine.NextDay(); err != nil {
		m.log.Error("next day", "error", err)
		return m.backToMenu()
	}
	m.notice = ""
	return m.nextTurn()
}

func (m model) updateMonthEnd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveCursor(msg, len(monthEndOptions)) || !key.Matches(msg, m.keys.Select) {
		return m, nil
	}
	switch m.cursor {
	case 0:
		if err := m.engine.NextMonth(); err != nil {
			m.log.Error("next month", "error", err)
			return m.backToMenu()
		}
		m.notice = newMonthNotice
		return m.nextTurn()
	case 1:
		return m.backToMenu()
	default:
		return m, tea.Quit
	}
}

// nextTurn shows either the month summary or today's event.
func (m model) nextTurn() (tea.Model, tea.Cmd) {
	m.cursor = 0
	if m.engine.MonthEnded() {
		m.screen = screenMonthEnd
		return m, nil
	}
	ev, err := m.engine.DrawNextEvent()
	if err != nil {
		m.log.Error("draw event", "error", err)
		return m.backToMenu()
	}
	m.event = ev
	switch ev.Minigame {
	case models.MinigameReflex:
		return m.startReflex()
	case models.MinigameMouseCatch:
		return m.startMouseCatch()
	}
	m.screen = screenEvent
	return m, nil
}

func (m model) showResult(text string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.screen = screenResult
	m.result = text
	m.narration = ""
	return m, cmd
}

func (m model) backToMenu() (tea.Model, tea.Cmd) {
	m.engine.ReturnToMenu()
	m.screen = screenMenu
	m.cursor = 0
	return m, nil
}

// narrate bumps the result sequence so late replies for an earlier screen
// are dropped.
func (m *model) narrate(choice models.Choice) tea.Cmd {
	m.resultSeq++
	if m.opts.Narrator == nil {
		return nil
	}
	seq := m.resultSeq
	n := m.opts.Narrator
	event := m.event
	player := m.engine.Player()
	logger := m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), narrationTimeout)
		defer cancel()
		text, err := n.Narrate(ctx, event, choice, player)
		if err != nil {
			logger.Warn("narration failed", "error", err)
			return nil
		}
		return narrationMsg{seq: seq, text: text}
	}
}

func (m model) recordRun(summary models.RunSummary) tea.Cmd {
	if m.opts.Journal == nil {
		return nil
	}
	rec := m.opts.Journal
	logger := m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
		defer cancel()
		id, err := rec.RecordRun(ctx, summary)
		if err != nil {
			logger.Warn("record run failed", "error", err)
			return nil
		}
		logger.Info("run recorded", "id", id, "reason", summary.Reason)
		return nil
	}
}

func Run(eng *engine.Engine, opts Options) error {
	p := tea.NewProgram(NewModel(eng, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
