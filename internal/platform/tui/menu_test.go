package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return runeKey([]rune(s)[0])
}

func press(m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyMsg(k))
	}
	return m, cmd
}

func TestMenuListsScenariosWithResults(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{40, 90} {
		if _, err := store.SaveRun(storage.RunRecord{ScenarioID: "fake", Score: score}); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	m := NewMenuModel(store, core.DefaultConfig())
	var item *MenuItem
	for i := range m.items {
		if m.items[i].ScenarioID == "fake" {
			item = &m.items[i]
		}
	}
	if item == nil {
		t.Fatal("fake scenario not listed")
	}
	if item.HighScore != 90 || item.Runs != 2 {
		t.Errorf("item = %+v, expected best 90 over 2 runs", *item)
	}

	view := m.View()
	for _, want := range []string{"S H M U P", "Fake", "best 90 (2 runs)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestMenuWithoutStore(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if len(m.items) == 0 {
		t.Fatal("expected registered scenarios")
	}
	if !strings.Contains(m.View(), "no runs yet") {
		t.Error("scenarios without runs should say so")
	}
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	n := len(m.items)

	got, _ := press(m, "up")
	if c := got.(MenuModel).cursor; c != n-1 {
		t.Errorf("up from top: cursor = %d, expected %d", c, n-1)
	}
	got, _ = press(got, "down")
	if c := got.(MenuModel).cursor; c != 0 {
		t.Errorf("down from bottom: cursor = %d, expected 0", c)
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		key        string
		scenario   bool
		scoreboard bool
		quit       bool
	}{
		{key: "enter", scenario: true},
		{key: " ", scenario: true},
		{key: "tab", scoreboard: true},
		{key: "q", quit: true},
		{key: "esc", quit: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := NewMenuModel(nil, core.DefaultConfig())
			got, cmd := press(m, tt.key)
			if !isQuit(cmd) {
				t.Fatal("a choice should end the menu program")
			}
			res := got.(MenuModel).Result()
			if (res.ScenarioID != "") != tt.scenario || res.WantsScoreboard != tt.scoreboard || res.Quit != tt.quit {
				t.Errorf("Result() = %+v", res)
			}
			if got.View() != "" {
				t.Error("view should be empty after a choice")
			}
		})
	}
}

func TestMenuKeepsWindowSize(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	got, _ := m.Update(tea.WindowSizeMsg{Width: 132, Height: 50})
	got, _ = press(got, "q")
	cfg := got.(MenuModel).Result().Config
	if cfg.ScreenW != 132 || cfg.ScreenH != 50 {
		t.Errorf("config size = %dx%d, expected 132x50", cfg.ScreenW, cfg.ScreenH)
	}
}
