package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

// maxRuns is the number of best runs loaded per scenario.
const maxRuns = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next scenario")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev scenario")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type scoreboardExit int

const (
	stayOnScoreboard scoreboardExit = iota
	exitToMenu
	exitQuit
)

// ScoreboardModel browses stored runs one scenario at a time.
type ScoreboardModel struct {
	store     *storage.Store
	scenarios []registry.GameInfo
	cursor    int
	runs      []storage.RunRecord
	stats     *storage.ScenarioStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	exit      scoreboardExit
}

// NewScoreboardModel creates a scoreboard showing initial first, if registered.
func NewScoreboardModel(store *storage.Store, initial string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:     store,
		scenarios: registry.List(),
		help:      help.New(),
		keys:      DefaultScoreboardKeyMap(),
		width:     width,
		height:    height,
	}
	for i, s := range m.scenarios {
		if s.ID == initial {
			m.cursor = i
		}
	}
	m.table = newRunTable(width, height)
	m.load()
	return m
}

func newRunTable(width, height int) table.Model {
	date := 14
	if width > 80 {
		date = 20
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 9},
			{Title: "Kills", Width: 6},
			{Title: "Deaths", Width: 6},
			{Title: "Ticks", Width: 8},
			{Title: "Date", Width: date},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-12, 3)),
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

// load reads runs and totals for the selected scenario.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.scenarios) > 0 {
		id := m.scenarios[m.cursor].ID
		m.runs, _ = m.store.TopRuns(id, maxRuns)
		m.stats, _ = m.store.Stats(id)
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Kills),
			strconv.Itoa(r.Deaths),
			strconv.Itoa(r.Ticks),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(delta int) {
	if n := len(m.scenarios); n > 0 {
		m.cursor = (m.cursor + delta + n) % n
		m.load()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation; scrolling is delegated to the table.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = exitQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = exitToMenu
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunTable(m.width, m.height)
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the tabs, the totals line, the run table and help.
func (m ScoreboardModel) View() string {
	if m.exit != stayOnScoreboard {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(m.width, titleStyle.Render("HIGH SCORES")))
	b.WriteString("\n\n")
	b.WriteString(center(m.width, m.tabs()))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.Runs > 0 {
		summary := fmt.Sprintf("%d runs   best %d   avg %.0f   kills %d   deaths %d",
			m.stats.Runs, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalKills, m.stats.TotalDeaths)
		b.WriteString(center(m.width, subtleStyle.Render(summary)))
		b.WriteString("\n")
	}

	body := emptyStyle.Render("No runs recorded yet.\nFinish a run to set a high score!")
	if len(m.runs) > 0 {
		body = m.table.View()
	}
	b.WriteString(center(m.width, panelStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(center(m.width, subtleStyle.Render(m.help.View(m.keys))))
	return b.String()
}

// tabs lists scenario titles, falling back to the current one when they do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.scenarios) == 0 {
		return subtleStyle.Render("no scenarios")
	}
	tabs := make([]string, len(m.scenarios))
	for i, s := range m.scenarios {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(s.Title)
		} else {
			tabs[i] = tabStyle.Render(s.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.width > 0 && lipgloss.Width(line) > m.width-4 {
		line = activeTabStyle.Render("< " + m.scenarios[m.cursor].Title + " >")
	}
	return line
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.exit == exitToMenu
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.exit == exitQuit
}

// RunScoreboard shows the scoreboard starting at scenario initial.
// goBack is true when the player asked to return to the menu.
func RunScoreboard(store *storage.Store, initial string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, initial, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
