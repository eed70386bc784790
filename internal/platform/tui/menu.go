package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

// MenuItem is one playable scenario with its stored results.
type MenuItem struct {
	ScenarioID string
	Title      string
	HighScore  int
	Runs       int
}

type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePlay
	choiceScoreboard
	choiceQuit
)

// MenuModel is the Bubble Tea model for the scenario picker.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper
	choice menuChoice
}

// NewMenuModel lists every registered scenario. A nil store shows no results.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.ScenarioStats
	if store != nil {
		stats, _ = store.AllStats()
	}

	scenarios := registry.List()
	items := make([]MenuItem, len(scenarios))
	for i, s := range scenarios {
		items[i] = MenuItem{ScenarioID: s.ID, Title: s.Title}
		if st, ok := stats[s.ID]; ok {
			items[i].HighScore, items[i].Runs = st.HighScore, st.Runs
		}
	}

	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and ends the program once a choice is made.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		n := max(len(m.items), 1)
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = (m.cursor + n - 1) % n
		case MenuActionDown:
			m.cursor = (m.cursor + 1) % n
		case MenuActionSelect:
			if len(m.items) > 0 {
				m.choice = choicePlay
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.choice = choiceScoreboard
			return m, tea.Quit
		case MenuActionQuit, MenuActionBack:
			m.choice = choiceQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the scenario list.
func (m MenuModel) View() string {
	if m.choice != choiceNone {
		return ""
	}
	w := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(w, titleStyle.Render("S H M U P")))
	b.WriteString("\n\n")
	b.WriteString(center(w, subtleStyle.Render("Select a scenario")))
	b.WriteString("\n\n")

	for i, it := range m.items {
		results := "no runs yet"
		if it.Runs > 0 {
			results = fmt.Sprintf("best %d (%d runs)", it.HighScore, it.Runs)
		}
		line := fmt.Sprintf("%-18s %-22s", it.Title, results)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(center(w, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(w, subtleStyle.Render("up/down: navigate   enter: play   tab: scores   q: quit")))
	b.WriteString("\n")
	return b.String()
}

// MenuResult is what the player picked.
type MenuResult struct {
	ScenarioID      string
	Config          core.RuntimeConfig // Carries size changes seen by the menu
	WantsScoreboard bool
	Quit            bool
}

// Result reports the choice made in the menu.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config}
	switch m.choice {
	case choicePlay:
		res.ScenarioID = m.items[m.cursor].ScenarioID
	case choiceScoreboard:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res
}

// RunMenu shows the menu until the player picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
