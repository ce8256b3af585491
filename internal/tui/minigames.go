package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/budget-survival/internal/engine"
)

const (
	gridCols = 8
	gridRows = 4
)

type cell struct {
	row, col int
}

// startReflex shows the red light and schedules the switch to green. The
// round number lets a tick from an abandoned round be ignored.
func (m model) startReflex() (tea.Model, tea.Cmd) {
	m.screen = screenReflex
	m.lightGreen = false
	m.reflexRound++
	round := m.reflexRound
	delay := engine.ReflexDelay(m.engine.Rand())
	return m, tea.Tick(delay, func(time.Time) tea.Msg {
		return lightGreenMsg{round: round}
	})
}

func (m model) updateReflex(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Select) {
		return m, nil
	}
	outcome, err := m.engine.ResolveReflex(m.lightGreen)
	if err != nil {
		m.log.Error("resolve reflex", "error", err)
		return m.backToMenu()
	}
	m.reflexRound++
	m.resultSeq++
	return m.showResult(outcome.Message(), nil)
}

// startMouseCatch scatters mice over the grid. Once all are caught the
// event's own choices are offered.
func (m model) startMouseCatch() (tea.Model, tea.Cmd) {
	rng := m.engine.Rand()
	n := engine.MouseCount(rng)
	m.mice = make(map[cell]bool, n)
	for len(m.mice) < n {
		m.mice[cell{row: rng.IntN(gridRows), col: rng.IntN(gridCols)}] = true
	}
	m.aim = cell{}
	m.caught = 0
	m.screen = screenMouse
	return m, nil
}

func (m model) updateMouse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.aim.row > 0 {
			m.aim.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.aim.row < gridRows-1 {
			m.aim.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.aim.col > 0 {
			m.aim.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.aim.col < gridCols-1 {
			m.aim.col++
		}
	case key.Matches(msg, m.keys.Select):
		if !m.mice[m.aim] {
			return m, nil
		}
		mice := make(map[cell]bool, len(m.mice))
		for c := range m.mice {
			if c != m.aim {
				mice[c] = true
			}
		}
		m.mice = mice
		m.caught++
		if len(m.mice) == 0 {
			m.screen = screenEvent
			m.cursor = 0
		}
	}
	return m, nil
}
