package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/budget-survival/internal/catalog"
	"github.com/tatianab/budget-survival/internal/models"
)

const statBarWidth = 24

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	optionStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	lightStyle = lipgloss.NewStyle().
			Width(14).
			Height(5).
			Align(lipgloss.Center, lipgloss.Center).
			Bold(true)

	cellStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center)

	aimStyle = cellStyle.
			Background(lipgloss.Color("#5F5F87"))
)

var itemGlyphs = map[string]string{
	catalog.FlagMonthlyTicket:   "🚌",
	catalog.FlagUntreatedTooth:  "🦷",
	catalog.FlagUntreatedTooth2: "🤕",
	catalog.FlagMissingTooth:    "😶",
	catalog.FlagBrokenCar:       "🔧",
	catalog.FlagBreakdownRisk:   "🔧",
	catalog.FlagMice:            "🐭",
	catalog.FlagPigeons:         "🐦",
	catalog.FlagNoCar:           "🚶",
	catalog.FlagIllness:         "🦠",
}

func glyph(item string) string {
	if g, ok := itemGlyphs[item]; ok {
		return g
	}
	return "📦"
}

func (m model) View() string {
	var (
		body     string
		bindings []key.Binding
	)

	switch m.screen {
	case screenMenu:
		body = titleStyle.Render("PRZETRWAJ MIESIĄC") + "\n\n" + renderOptions(menuOptions, m.cursor)
		if m.notice != "" {
			body += "\n\n" + alertStyle.Render(m.notice)
		}
		bindings = m.keys.listHelp()

	case screenEvent:
		body = m.renderEvent()
		bindings = m.keys.listHelp()

	case screenReflex:
		body = m.renderReflex()
		bindings = m.keys.confirmHelp()

	case screenMouse:
		body = m.renderMouse()
		bindings = m.keys.gridHelp()

	case screenResult:
		body = gameStyle.Render(m.result)
		if m.narration != "" {
			body += "\n\n" + helpStyle.Render(m.narration)
		}
		body += "\n\n" + optionStyle.Render("[Enter] Dalej")
		bindings = m.keys.confirmHelp()

	case screenMonthEnd:
		body = titleStyle.Render("KONIEC MIESIĄCA") + "\n\n" +
			"Przetrwałeś kolejny miesiąc!\n\n" +
			renderOptions(monthEndOptions, m.cursor)
		bindings = m.keys.listHelp()

	case screenGameOver:
		body = alertStyle.Render("KONIEC GRY") + "\n\n" + gameStyle.Render(m.gameOver.Message) +
			"\n\n" + optionStyle.Render("[Enter] Menu główne")
		bindings = m.keys.confirmHelp()
	}

	mainView := body
	if panel := m.renderState(); panel != "" {
		width := m.width * 3 / 4
		if width <= 0 {
			width = 60
		}
		mainView = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(width).Render(body),
			panel,
		)
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.help.ShortHelpView(bindings),
	) + "\n"
}

func renderOptions(options []string, cursor int) string {
	lines := make([]string, len(options))
	for i, o := range options {
		if i == cursor {
			lines[i] = selectedStyle.Render("> " + o)
		} else {
			lines[i] = optionStyle.Render("  " + o)
		}
	}
	return strings.Join(lines, "\n")
}

func (m model) renderEvent() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n\n")
	}
	b.WriteString(gameStyle.Render(m.event.Description) + "\n\n")
	labels := make([]string, len(m.event.Choices))
	for i, c := range m.event.Choices {
		labels[i] = c.Label
	}
	b.WriteString(renderOptions(labels, m.cursor))
	return b.String()
}

func (m model) renderReflex() string {
	light := lightStyle.Background(lipgloss.Color("#D70000")).Render("STÓJ")
	if m.lightGreen {
		light = lightStyle.Background(lipgloss.Color("#00AF00")).Render("IDŹ")
	}
	return gameStyle.Render(m.event.Description) + "\n\n" + light + "\n\n" +
		helpStyle.Render("Naciśnij Enter, gdy zapali się zielone światło.")
}

func (m model) renderMouse() string {
	var b strings.Builder
	b.WriteString(gameStyle.Render("Złap wszystkie myszy!") + "\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("Złapane: %d, zostało: %d", m.caught, len(m.mice))) + "\n\n")
	for r := range gridRows {
		cells := make([]string, gridCols)
		for c := range gridCols {
			pos := cell{row: r, col: c}
			content := "·"
			if m.mice[pos] {
				content = "🐭"
			}
			if pos == m.aim {
				cells[c] = aimStyle.Render(content)
			} else {
				cells[c] = cellStyle.Render(content)
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	return b.String()
}

func (m model) renderState() string {
	if m.screen == screenMenu {
		return ""
	}
	p := m.engine.Player()
	if p == nil {
		return ""
	}

	stats := titleStyle.Render("STATUS") + "\n" +
		fmt.Sprintf("Dzień: %d\n", p.Day) +
		fmt.Sprintf("Budżet: %.2f PLN\n\n", p.Budget) +
		"Szczęście\n" + m.happiness.ViewAs(statFraction(p.Happiness)) + "\n" +
		"Komfort\n" + m.comfort.ViewAs(statFraction(p.Comfort)) + "\n\n"

	inventory := titleStyle.Render("BONUSY") + "\n"
	items := p.Inventory.Items()
	if len(items) == 0 {
		inventory += "Brak bonusów"
	}
	for _, item := range items {
		inventory += glyph(item) + " " + item + "\n"
	}

	width := m.width / 4
	if width < statBarWidth+4 {
		width = statBarWidth + 4
	}
	return stateStyle.Width(width).Render(stats + inventory)
}

func statFraction(v int) float64 {
	return float64(v-models.MinStat) / float64(models.MaxStat-models.MinStat)
}
