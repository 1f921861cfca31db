package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Padding(0, 2)
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))
	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	bestWinStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))
	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

// newLevelTable builds the difficulty chart shown on the title screen.
func newLevelTable(selected config.Difficulty) table.Model {
	columns := []table.Column{
		{Title: "Key", Width: 4},
		{Title: "Level", Width: 11},
		{Title: "AI aim error", Width: 13},
		{Title: "AI speed", Width: 9},
		{Title: "Ball speed-up", Width: 14},
	}

	rows := make([]table.Row, 0, len(config.Difficulties()))
	for _, d := range config.Difficulties() {
		p := d.Profile()
		speedUp := "-"
		if p.SpeedUpPerPoint {
			speedUp = fmt.Sprintf("+%g/point", pong.BallSpeedStep)
		}
		rows = append(rows, table.Row{
			fmt.Sprint(int(d) + 1),
			capitalize(d.String()),
			fmt.Sprintf("±%g", p.OffsetFraction*pong.PaddleHeight),
			fmt.Sprintf("%gx", p.SpeedMultiplier),
			speedUp,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	if selected.Valid() {
		t.SetCursor(int(selected))
	}
	return t
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m Model) titleView() string {
	mode := "1 player vs AI"
	if m.session.Mode() == config.ModeVersus {
		mode = "2 players: W/S vs arrows"
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("P  O  N  G"),
		subtleStyle.Render(mode),
		"",
		tableStyle.Render(m.levels.View()),
		"",
		subtleStyle.Render("Press 1-4 to choose a level, any other key plays Easy"),
		"",
		m.help.View(titleKeys(m.keys)),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) playingView() string {
	game := m.session.Game()
	left, right := game.Scores()

	score := fmt.Sprintf("%02d    %s    %02d", left, capitalize(game.Options().Difficulty.String()), right)
	if m.session.Mode() == config.ModeVersus {
		score = fmt.Sprintf("%02d    %02d", left, right)
	}
	if m.cfg.Loop.ShowFPS {
		score += subtleStyle.Render(fmt.Sprintf("    %.0f tps", m.meter.Rate()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hudStyle.Render(score)),
		m.canvas.Frame(),
		m.help.View(m.keys),
	)
}

func (m Model) resultView(screen pong.Screen) string {
	headline, style := resultHeadline(screen, m.session.Mode())

	var final string
	if game := m.session.Game(); game != nil {
		left, right := game.Scores()
		final = fmt.Sprintf("Final score  %02d - %02d", left, right)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		style.Render(headline),
		"",
		final,
		"",
		subtleStyle.Render("Back to the title in a moment"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// resultHeadline names the outcome from the left player's point of view,
// or by side in versus mode.
func resultHeadline(screen pong.Screen, mode config.Mode) (string, lipgloss.Style) {
	if mode == config.ModeVersus {
		if screen == pong.ScreenLose {
			return "RIGHT PLAYER WINS", winStyle
		}
		return "LEFT PLAYER WINS", winStyle
	}

	switch screen {
	case pong.ScreenBestWin:
		return "WINNINGEST!  You beat the Impossible AI", bestWinStyle
	case pong.ScreenWin:
		return "YOU WIN", winStyle
	default:
		return "YOU LOSE", loseStyle
	}
}
