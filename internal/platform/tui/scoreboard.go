package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkotenko/gemfall/internal/registry"
	"github.com/dkotenko/gemfall/internal/storage"
)

// maxScores is how many entries the scoreboard loads per game.
const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high-score screen. It shows
// one table per registered game mode, switchable with tab.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	scores     []storage.ScoreEntry
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}

	return m
}

// createTable creates the score table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: 18},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

	return t
}

// loadScores loads scores for the given game ID.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores = nil
	if m.store != nil {
		if scores, err := m.store.TopScores(gameID, maxScores); err == nil {
			m.scores = scores
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadScores(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor--
				if m.gameCursor < 0 {
					m.gameCursor = len(m.games) - 1
				}
				m.loadScores(m.games[m.gameCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		if len(m.games) > 0 {
			m.loadScores(m.games[m.gameCursor].ID)
		}
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(tableStyle.Render(
			emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")), m.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText pads a (possibly multi-line) block so it is horizontally centered.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the scoreboard screen until the user quits it.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
