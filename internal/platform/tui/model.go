package tui

import (
	"fmt"
	"io"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// defaultWorld is used when the game does not report its playfield.
var defaultWorld = core.NewRect(0, 0, 1280, 720)

// Model is the Bubble Tea model for a shmup run.
type Model struct {
	game      registry.Game
	store     *storage.Store
	config    core.RuntimeConfig
	screen    *core.Screen
	presenter *ScreenPresenter
	keys      *KeyMapper
	latch     *KeyLatch
	clock     *tickClock
	log       *log.Logger
	run       *runStatus
}

// runStatus is shared between copies of the value-receiver model.
type runStatus struct {
	state    core.GameState
	saved    bool
	quitting bool
	err      error
}

// NewModel resets game and prepares a model for it.
// A nil sprite loader in cfg is replaced with the built-in atlas.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	atlas := NewSpriteAtlas()
	if cfg.Sprites == nil {
		cfg.Sprites = atlas
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: start %s: %w", game.ID(), err)
	}

	world := defaultWorld
	if w, ok := game.(interface{ World() core.Rect }); ok {
		world = w.World()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	presenter := NewScreenPresenter(screen, atlas, world)
	presenter.Top = hudRows

	return Model{
		game:      game,
		store:     store,
		config:    cfg,
		screen:    screen,
		presenter: presenter,
		keys:      NewKeyMapper(),
		latch:     NewKeyLatch(0),
		clock:     &tickClock{},
		log:       logger,
		run:       &runStatus{state: game.State()},
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.log.Info("run started", "scenario", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey latches input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	// ctrl+c leaves immediately even if ticks have stalled
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if msg.String() == "r" && m.run.state.GameOver {
		return m.restart()
	}

	actions, _ := m.keys.MapKey(msg)
	m.latch.Press(now, actions...)
	return m, nil
}

// handleTick advances the simulation by one step and presents the frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.run.quitting {
		return m, nil
	}

	m.clock.Advance(t)
	in := core.TickInput{
		Input:     m.latch.Poll(t),
		ElapsedMS: m.clock.ElapsedMillis(),
		Now:       m.clock.Now(),
	}

	res := m.game.Step(in)
	m.run.state = res.State
	if res.Quit {
		return m.quit()
	}

	if err := m.presenter.Present(m.game.DrawList()); err != nil {
		m.log.Error("present failed", "err", err)
		m.run.err = err
		return m.quit()
	}

	if m.run.state.GameOver && !m.run.saved {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.run.err = err
		return m.quit()
	}
	m.latch.Reset()
	m.run.state = m.game.State()
	m.run.saved = false
	m.log.Info("run restarted", "scenario", m.game.ID(), "seed", m.config.Seed)
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if !m.run.saved {
		m.saveRun()
	}
	m.run.quitting = true
	return m, tea.Quit
}

// saveRun stores the current result once. Runs without score are not kept.
func (m Model) saveRun() {
	m.run.saved = true
	st := m.run.state
	m.log.Info("run finished", "scenario", m.game.ID(), "score", st.Score, "kills", st.Kills, "deaths", st.Deaths, "frames", st.Frame)
	if m.store == nil || st.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		ScenarioID: m.game.ID(),
		Score:      st.Score,
		Kills:      st.Kills,
		Deaths:     st.Deaths,
		Ticks:      st.Frame,
		Seed:       m.config.Seed,
	})
	if err != nil {
		m.log.Error("cannot save run", "err", err)
	}
}

// View renders the last presented frame with the HUD on top.
func (m Model) View() string {
	if m.run.quitting {
		return ""
	}

	st := m.run.state
	lives := "∞"
	if st.Lives >= 0 {
		lives = strconv.Itoa(st.Lives)
	}
	hud := fmt.Sprintf(" %s  SCORE %d  KILLS %d  LIVES %s", m.game.Title(), st.Score, st.Kills, lives)
	m.screen.FillRect(0, 0, m.screen.Width(), hudRows, ' ', core.ColorDefault)
	m.screen.DrawText(0, 0, hud)

	mid := hudRows + (m.screen.Height()-hudRows)/2
	switch {
	case st.GameOver:
		m.screen.DrawTextCentered(mid, " GAME OVER ")
		m.screen.DrawTextCentered(mid+1, " r: restart  q: quit ")
	case st.Paused:
		m.screen.DrawTextCentered(mid, " PAUSED ")
	}

	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.run.state
}

// Err returns the error that ended the run, if any.
func (m Model) Err() error {
	return m.run.err
}

// Run starts the Bubble Tea program for game and returns its final state.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model, err := NewModel(game, store, cfg, logger)
	if err != nil {
		return core.GameState{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), fm.Err()
	}
	return model.State(), nil
}
