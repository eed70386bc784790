// Package shmup implements a side-scrolling shoot-em-up simulation.
// The game is pure logic: input arrives as logical actions, time as elapsed
// milliseconds and a monotonic clock, and output is a draw list.
package shmup

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
)

// Sprite names the simulation asks the loader for, besides those in config.
const (
	ExplosionSprite = "explosion"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// defaultLogger is used by games created without WithLogger
var defaultLogger *log.Logger

// SetLogger sets the logger for games created afterwards, including those
// created through the registry.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithConfig uses cfg instead of searching for a config file.
func WithConfig(cfg config.ShmupConfig) Option {
	return func(g *Game) {
		g.fixedCfg = &cfg
	}
}

// WithRand replaces the seeded random source.
func WithRand(rng core.Rand) Option {
	return func(g *Game) {
		g.fixedRand = rng
	}
}

// Game implements one shmup scenario.
type Game struct {
	scenarioID string
	title      string

	log       *log.Logger
	fixedCfg  *config.ShmupConfig
	fixedRand core.Rand

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.ShmupConfig
	scenario   config.ScenarioConfig
	difficulty *config.DifficultyManager
	norm       *core.StepNormalizer
	rng        core.Rand
	world      core.Rect

	// Entities, owned here and handed to updates by reference
	arsenal       *Arsenal
	player        *Player
	enemies       []*Enemy
	projectiles   []*Projectile
	background    *Background
	stars         []*StarLayer
	enemyTargets  []Target
	playerTargets []Target

	// Per-tick output
	frame    FrameContext
	drawList []core.DrawItem

	// Game state
	score     int
	kills     int
	deaths    int
	lives     int // -1 = unlimited
	tickCount int
	paused    bool
	pauseHeld bool
	gameOver  bool
}

// New creates a game for the given scenario. Nothing is loaded until Reset.
func New(scenarioID string, opts ...Option) *Game {
	g := &Game{
		scenarioID: scenarioID,
		log:        defaultLogger,
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the scenario identifier.
func (g *Game) ID() string {
	return g.scenarioID
}

// Title returns the scenario's display name.
func (g *Game) Title() string {
	if g.title != "" {
		return g.title
	}
	cfg := config.DefaultShmupConfig()
	if g.fixedCfg != nil {
		cfg = *g.fixedCfg
	}
	if s, ok := cfg.Scenario(g.scenarioID); ok && s.Title != "" {
		return s.Title
	}
	return g.scenarioID
}

// Reset loads configuration and builds a fresh world.
// Invalid configuration is reported as a *core.ConfigurationError.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	g.cfg = cfg

	scenario, ok := cfg.Scenario(g.scenarioID)
	if !ok {
		return core.ConfigErrorf("scenario", "unknown scenario %q", g.scenarioID)
	}
	g.scenario = scenario
	g.title = scenario.Title

	if runtime.Sprites == nil {
		return core.ConfigErrorf("sprites", "no sprite loader configured")
	}

	norm, err := core.NewStepNormalizer(cfg.Timing.NominalFPS, cfg.Timing.MaxDT)
	if err != nil {
		return err
	}
	g.norm = norm
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = g.fixedRand
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(runtime.Seed))
	}
	g.world = core.NewRect(0, 0, cfg.World.Width, cfg.World.Height)

	if err := g.spawnWorld(runtime.Sprites); err != nil {
		return err
	}

	// Initialize game state
	g.score = 0
	g.kills = 0
	g.deaths = 0
	g.lives = cfg.Player.Lives
	if g.lives == 0 {
		g.lives = -1
	}
	g.tickCount = 0
	g.paused = false
	g.pauseHeld = false
	g.gameOver = false
	g.frame = FrameContext{}

	g.buildDrawList()
	g.log.Debug("scenario ready", "scenario", g.scenarioID, "enemies", len(g.enemies), "seed", runtime.Seed)
	return nil
}

func (g *Game) loadConfig() (config.ShmupConfig, error) {
	var cfg config.ShmupConfig
	if g.fixedCfg != nil {
		cfg = *g.fixedCfg
	} else {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyShmupPreset(&cfg, difficultyPreset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Step advances the game by one tick.
// Quit is honoured before anything is simulated.
func (g *Game) Step(in core.TickInput) core.StepResult {
	if in.Input.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	// Handle pause toggle on press, not while held
	pause := in.Input.Has(core.ActionPause)
	if pause && !g.pauseHeld && !g.gameOver {
		g.paused = !g.paused
	}
	g.pauseHeld = pause

	// Don't update if paused or game over
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick(in)
	return core.StepResult{State: g.State()}
}

// DrawList returns the draw list of the last simulated tick.
// The slice is reused by the next Step.
func (g *Game) DrawList() []core.DrawItem {
	return g.drawList
}

// Frame returns the context of the last simulated tick.
func (g *Game) Frame() FrameContext {
	return g.frame
}

// World returns the playfield in world units.
func (g *Game) World() core.Rect {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Kills:    g.kills,
		Deaths:   g.deaths,
		Lives:    g.lives,
		Frame:    g.tickCount,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	for _, s := range config.DefaultShmupConfig().Scenarios {
		id := s.ID
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}
