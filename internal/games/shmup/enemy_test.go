package shmup

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

func testSteer(cfg *config.ShmupConfig) Steer {
	return Steer{
		DT:     1,
		Player: core.NewRect(600, 300, 100, 50),
		World:  testWorld,
		Tuning: &cfg.Enemies,
	}
}

func TestEnemyRespawnsPastLeftEdge(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	rng := rand.New(rand.NewSource(3))

	xs := make(map[float64]bool)
	for i := 0; i < 50; i++ {
		e := testEnemy(t, "alien1", 400, 300)
		e.Hit()
		e.Opacity = 12
		e.Rect.X = -500
		e.raw.X = -500

		if !e.Update(testSteer(&cfg), []*Enemy{e}, rng) {
			t.Fatal("enemy beyond the left margin should respawn")
		}
		if e.Health != e.OriginalHealth || e.Opacity != e.OriginalOpacity {
			t.Errorf("respawn should restore health and opacity, got %d / %v", e.Health, e.Opacity)
		}
		if e.Rect.X < 1280+100 || e.Rect.X > 1280+100+200 {
			t.Errorf("respawn x = %v outside [1380, 1580]", e.Rect.X)
		}
		xs[e.Rect.X] = true
		if e.Rect.Y < -100 || e.Rect.Y > 720+100 {
			t.Errorf("respawn y = %v outside [-100, 820]", e.Rect.Y)
		}
		if e.raw != e.Rect {
			t.Error("steering position should snap to the respawn point")
		}
	}
	if len(xs) < 10 {
		t.Errorf("respawn x should vary, got %d distinct values over 50 respawns", len(xs))
	}
}

func TestEnemyInsideMarginDoesNotRespawn(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	e := testEnemy(t, "alien2", 0, 300)
	if e.Update(testSteer(&cfg), []*Enemy{e}, fixedRand{0.5}) {
		t.Error("enemy still within the margin must not respawn")
	}
}

func TestEnemySmoothingTrailsSteering(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	e := testEnemy(t, "alien2", 800, 300)
	x0, y0 := e.Rect.X, e.Rect.Y

	// Drift with a fixed sample of 0.5 steers straight left at speed 3.
	e.Update(testSteer(&cfg), []*Enemy{e}, fixedRand{0.5})

	if math.Abs(e.raw.X-(x0-3)) > 1e-9 || e.raw.Y != y0 {
		t.Errorf("steered position = (%v, %v), expected (%v, %v)", e.raw.X, e.raw.Y, x0-3, y0)
	}
	if math.Abs(e.Rect.X-(x0-0.45)) > 1e-9 {
		t.Errorf("visible x = %v, expected 15%% of the way to %v", e.Rect.X, e.raw.X)
	}
}

func TestEnemyCameraShift(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	e := testEnemy(t, "alien2", 800, 300)
	x0, y0 := e.raw.X, e.raw.Y

	s := testSteer(&cfg)
	s.Shift = core.Vec{X: 2, Y: 5}
	e.Update(s, []*Enemy{e}, fixedRand{0.5})

	if math.Abs(e.raw.X-(x0-3-2)) > 1e-9 || math.Abs(e.raw.Y-(y0+5)) > 1e-9 {
		t.Errorf("raw = (%v, %v), expected (%v, %v)", e.raw.X, e.raw.Y, x0-5, y0+5)
	}
}

func TestEnemyAvoidsNeighbour(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	e := testEnemy(t, "alien2", 100, 100)
	other := testEnemy(t, "alien2", 110, 110)
	y0 := e.raw.Y

	e.Update(testSteer(&cfg), []*Enemy{e, other}, fixedRand{0.5})

	if e.raw.Y >= y0 {
		t.Errorf("enemy above its neighbour should be pushed up, y %v -> %v", y0, e.raw.Y)
	}
}

func TestEnemyAvoidsDyingNeighbour(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	e := testEnemy(t, "alien2", 100, 100)
	other := testEnemy(t, "alien2", 110, 110)
	for other.Alive() {
		other.Hit()
	}
	y0 := e.raw.Y

	e.Update(testSteer(&cfg), []*Enemy{e, other}, fixedRand{0.5})

	if e.raw.Y >= y0 {
		t.Errorf("dying neighbour should still push, y %v -> %v", y0, e.raw.Y)
	}
}

// permRand is fixedRand with a scripted visiting order.
type permRand struct {
	fixedRand
	perm []int
}

func (r permRand) Perm(n int) []int { return r.perm }

func TestEnemyAvoidsFirstOverlapOnly(t *testing.T) {
	cfg := config.DefaultShmupConfig()

	// With samples of 0.5, the neighbour below-right pushes (-0.5, -1) and
	// the one above-left pushes (+0.25, +1); drift adds (-1.5, 0).
	tests := []struct {
		name  string
		perm  []int
		slope float64 // dy/dx of the steering step
	}{
		{"below-right first", []int{0, 1, 2}, -1.0 / -2.0},
		{"above-left first", []int{2, 0, 1}, 1.0 / -1.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := testEnemy(t, "alien2", 100, 100)
			below := testEnemy(t, "alien2", 110, 110)
			above := testEnemy(t, "alien2", 90, 90)
			x0, y0 := e.raw.X, e.raw.Y

			e.Update(testSteer(&cfg), []*Enemy{e, below, above}, permRand{fixedRand{0.5}, tc.perm})

			dx, dy := e.raw.X-x0, e.raw.Y-y0
			if math.Abs(dy/dx-tc.slope) > 1e-9 {
				t.Errorf("step (%v, %v) has slope %v, expected %v", dx, dy, dy/dx, tc.slope)
			}
		})
	}
}

func TestEnemyFollowsPlayer(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	e := testEnemy(t, "alien1", 900, 100)
	y0 := e.raw.Y

	// Player is below and to the left.
	e.Update(testSteer(&cfg), []*Enemy{e}, fixedRand{0.5})
	if e.raw.Y <= y0 {
		t.Errorf("follower should move toward the player, y %v -> %v", y0, e.raw.Y)
	}
}

func TestDeadEnemyFades(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	e := testEnemy(t, "alien1", 800, 300)
	for e.Alive() {
		e.Hit()
	}
	e.Update(testSteer(&cfg), []*Enemy{e}, fixedRand{0.5})
	if e.Opacity != 255-15 {
		t.Errorf("opacity = %v, expected 240", e.Opacity)
	}
	if _, ok := e.HitBox(); ok {
		t.Error("dead enemy should not be hittable")
	}
}

func testGunnery(t *testing.T, cfg *config.ShmupConfig) Gunnery {
	return Gunnery{
		Difficulty: 0.5,
		Player:     testPlayer(t),
		World:      testWorld,
		Tuning:     &cfg.Enemies,
	}
}

func TestEnemyCanFire(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	g := testGunnery(t, &cfg)

	tests := []struct {
		name      string
		archetype string
		cx        float64
		dead      bool
		sample    float64
		want      bool
	}{
		{"ahead of player", "alien1", 900, false, 0.5, true},
		{"behind player", "alien1", 300, false, 0.5, false},
		{"behind player lucky", "alien1", 300, false, 0.01, true},
		{"dead", "alien1", 900, true, 0.01, false},
		{"scatter on screen", "boss", 900, false, 0.5, true},
		{"scatter off screen", "boss", 1400, false, 0.01, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := testEnemy(t, tc.archetype, tc.cx, 300)
			if tc.dead {
				e.Health = 0
			}
			if got := e.CanFire(g, fixedRand{tc.sample}); got != tc.want {
				t.Errorf("CanFire = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestEnemyCanFireWhenPlayerDead(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	g := testGunnery(t, &cfg)
	g.Player.Health = 0

	e := testEnemy(t, "alien1", 900, 300)
	if e.CanFire(g, fixedRand{0.5}) {
		t.Error("positional gate should close while the player is dead")
	}
}

func TestEnemyRollFire(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	g := testGunnery(t, &cfg)

	if !testEnemy(t, "boss", 900, 300).RollFire(g, fixedRand{0.99}) {
		t.Error("scatter shooters always pass the roll")
	}

	mirror := testEnemy(t, "alien3", 900, 300)
	if mirror.RollFire(g, fixedRand{0}) {
		t.Error("mirror shooters hold fire until the player shoots")
	}
	g.MirrorReady = true
	if !mirror.RollFire(g, fixedRand{0.1}) {
		t.Error("mirror shooter should fire once the player has shot")
	}

	g.MirrorReady = false
	plain := testEnemy(t, "alien1", 900, 300)
	if !plain.RollFire(g, fixedRand{0.5}) {
		t.Error("0.25 < 0.5 should fire")
	}
	if plain.RollFire(g, fixedRand{0.9}) {
		t.Error("0.81 >= 0.5 should not fire")
	}
}

func TestWoundedEnemyFiresMore(t *testing.T) {
	cfg := config.DefaultShmupConfig()
	g := testGunnery(t, &cfg)
	e := testEnemy(t, "alien2", 900, 300)

	if got := e.fireFactor(g); got != 1 {
		t.Errorf("unhurt factor = %v, expected 1", got)
	}
	prev := e.fireFactor(g)
	for e.Health > 1 {
		e.Hit()
		got := e.fireFactor(g)
		if got <= prev {
			t.Fatalf("factor should grow with damage: %v -> %v", prev, got)
		}
		prev = got
	}
	e.Health = e.OriginalHealth / 2
	if got := e.fireFactor(g); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("half health factor = %v, expected 2.5", got)
	}
}
