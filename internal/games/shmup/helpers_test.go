package shmup

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

// squareSprites loads every name as a square image.
type squareSprites struct{}

func (squareSprites) LoadSprite(name string, size float64, by core.SizeBy) (core.Sprite, error) {
	if name == "" {
		return core.Sprite{}, errors.New("empty sprite name")
	}
	w, h, err := core.FitSize(64, 64, size, by)
	if err != nil {
		return core.Sprite{}, err
	}
	return core.Sprite{Name: name, W: w, H: h}, nil
}

// fixedRand returns the same sample forever and identity permutations.
type fixedRand struct {
	f float64
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return 0 }
func (r fixedRand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// duelConfig is the default tuning with a single-enemy scenario.
func duelConfig(archetype string) config.ShmupConfig {
	cfg := config.DefaultShmupConfig()
	cfg.Scenarios = []config.ScenarioConfig{{
		ID:     "duel",
		Title:  "Duel",
		Roster: []config.RosterEntry{{Archetype: archetype, Count: 1}},
	}}
	return cfg
}

func newTestGame(t *testing.T, scenario string, cfg config.ShmupConfig, seed int64) *Game {
	t.Helper()
	g := New(scenario, WithConfig(cfg))
	rt := core.DefaultConfig()
	rt.Seed = seed
	rt.Sprites = squareSprites{}
	if err := g.Reset(rt); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

// nominalTick is one frame at 40 fps (dt = 1).
const nominalTick = 25 * time.Millisecond

// tickInput builds the input for frame n at the nominal rate.
func tickInput(n int, actions ...core.Action) core.TickInput {
	return core.TickInput{
		Input:     core.NewInputFrame(actions...),
		ElapsedMS: 25,
		Now:       time.Duration(n) * nominalTick,
	}
}

func testArsenal(t *testing.T) *Arsenal {
	t.Helper()
	cfg := config.DefaultShmupConfig()
	a, err := newArsenal(&cfg, squareSprites{})
	if err != nil {
		t.Fatalf("newArsenal failed: %v", err)
	}
	return a
}

func testEnemy(t *testing.T, archetype string, cx, cy float64) *Enemy {
	t.Helper()
	cfg := config.DefaultShmupConfig()
	arch, ok := cfg.Archetype(archetype)
	if !ok {
		t.Fatalf("no archetype %q", archetype)
	}
	targeting, err := ParseTargeting("targeting", arch.Targeting)
	if err != nil {
		t.Fatal(err)
	}
	movement, err := ParseMovement("movement", arch.Movement)
	if err != nil {
		t.Fatal(err)
	}
	sprite := core.Sprite{Name: arch.Sprite, W: 100, H: 100}
	explosion := core.Sprite{Name: ExplosionSprite, W: 64, H: 64}
	return newEnemy(arch, targeting, movement, sprite, explosion, cx, cy)
}

func testPlayer(t *testing.T) *Player {
	t.Helper()
	cfg := config.DefaultShmupConfig()
	world := core.NewRect(0, 0, cfg.World.Width, cfg.World.Height)
	ship := core.Sprite{Name: "ship", W: 100, H: 50}
	explosion := core.Sprite{Name: ExplosionSprite, W: 64, H: 64}
	p := newPlayer(&cfg, world, ship, explosion)
	// Start mid-screen so movement is never clamped.
	p.Rect = p.Rect.MoveTo(600, 300)
	p.refreshHitBox()
	return p
}
