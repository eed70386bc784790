package shmup

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

var (
	testWorld  = core.NewRect(0, 0, 1280, 720)
	testBullet = core.Sprite{Name: "bullet", W: 10, H: 10}
)

func TestSpawnProjectileZeroDirection(t *testing.T) {
	_, err := SpawnProjectile(testBullet, core.NewRect(0, 0, 10, 10), core.Vec{}, 10, core.Vec{}, RoleEnemy)
	if err == nil {
		t.Fatal("expected error for zero direction")
	}
	if !core.IsConfigurationError(err) {
		t.Errorf("expected ConfigurationError, got %T", err)
	}
	if !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("expected error to wrap ErrZeroVector, got %v", err)
	}
}

func TestSpawnProjectileCenteredOnOrigin(t *testing.T) {
	origin := core.NewRect(100, 200, 40, 20)
	p, err := SpawnProjectile(testBullet, origin, core.Vec{X: 5, Y: -3}, 10, core.Vec{X: 1}, RoleEnemy)
	if err != nil {
		t.Fatalf("SpawnProjectile failed: %v", err)
	}
	if p.Rect.CenterX() != 125 || p.Rect.CenterY() != 207 {
		t.Errorf("projectile center = (%v, %v), expected (125, 207)", p.Rect.CenterX(), p.Rect.CenterY())
	}
	if !p.Active {
		t.Error("new projectile should be active")
	}
}

func TestProjectileMoveConvention(t *testing.T) {
	p := newProjectile(testBullet, core.NewRect(500, 300, 10, 10), core.Vec{}, 10, core.Vec{X: 1, Y: 0.5}, RoleEnemy)
	x0, y0 := p.Rect.X, p.Rect.Y

	p.Update(2, 3, 4, testWorld, 250, nil)

	// X: speed*dx*dt - shiftX, Y: speed*dy*dt + shiftY
	if got := p.Rect.X - x0; math.Abs(got-17) > 1e-9 {
		t.Errorf("dx = %v, expected 17", got)
	}
	if got := p.Rect.Y - y0; math.Abs(got-14) > 1e-9 {
		t.Errorf("dy = %v, expected 14", got)
	}
}

func TestProjectileKillsEnemyWithOneHealth(t *testing.T) {
	e := testEnemy(t, "alien1", 400, 300)
	e.Health = 1

	p := newProjectile(testBullet, e.Rect, core.Vec{}, 0, core.Vec{X: 1}, RoleEnemy)
	hit, killed := p.Update(1, 0, 0, testWorld, 250, []Target{e})

	if p.Active {
		t.Error("projectile should deactivate on hit")
	}
	if hit != Target(e) || !killed {
		t.Errorf("expected fatal hit on the enemy, got hit=%v killed=%v", hit, killed)
	}
	if e.Health != 0 {
		t.Errorf("enemy health = %d, expected 0", e.Health)
	}
	if e.Sprite.Name != ExplosionSprite {
		t.Errorf("dead enemy should show the explosion, got %q", e.Sprite.Name)
	}
	if e.Sprite.W != e.Rect.W || e.Sprite.H != e.Rect.H {
		t.Errorf("explosion should be scaled to %vx%v, got %vx%v", e.Rect.W, e.Rect.H, e.Sprite.W, e.Sprite.H)
	}
}

func TestProjectileDamagesOnlyFirstTarget(t *testing.T) {
	first := testEnemy(t, "alien1", 400, 300)
	second := testEnemy(t, "alien1", 410, 305)
	h1, h2 := first.Health, second.Health

	p := newProjectile(testBullet, first.Rect, core.Vec{}, 0, core.Vec{X: 1}, RoleEnemy)
	hit, killed := p.Update(1, 0, 0, testWorld, 250, []Target{first, second})

	if hit != Target(first) || killed {
		t.Errorf("expected non-fatal hit on the first target, got hit=%v killed=%v", hit, killed)
	}
	if first.Health != h1-1 {
		t.Errorf("first health = %d, expected %d", first.Health, h1-1)
	}
	if second.Health != h2 {
		t.Errorf("second target must be untouched, health %d", second.Health)
	}

	// Already spent
	if hit, _ := p.Update(1, 0, 0, testWorld, 250, []Target{first, second}); hit != nil {
		t.Error("an inactive projectile must not hit again")
	}
}

func TestProjectileSkipsDeadTargets(t *testing.T) {
	dead := testEnemy(t, "alien1", 400, 300)
	dead.Health = 0
	alive := testEnemy(t, "alien1", 400, 300)

	p := newProjectile(testBullet, dead.Rect, core.Vec{}, 0, core.Vec{X: 1}, RoleEnemy)
	hit, _ := p.Update(1, 0, 0, testWorld, 250, []Target{dead, alive})

	if hit != Target(alive) {
		t.Errorf("expected the live target to be hit, got %v", hit)
	}
	if dead.Health != 0 {
		t.Errorf("dead target health changed to %d", dead.Health)
	}
}

func TestProjectileEmptyTargetSet(t *testing.T) {
	p := newProjectile(testBullet, core.NewRect(600, 300, 10, 10), core.Vec{}, 5, core.Vec{X: 1}, RoleEnemy)
	if hit, killed := p.Update(1, 0, 0, testWorld, 250, nil); hit != nil || killed {
		t.Error("no targets should mean no hit")
	}
	if !p.Active {
		t.Error("projectile on screen should stay active")
	}
}

func TestProjectileOffscreenMargin(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		active bool
	}{
		{"on screen", 600, 300, true},
		{"inside right margin", 1280 + 240, 300, true},
		{"beyond right margin", 1280 + 260, 300, false},
		{"inside left margin", -250, 300, true},
		{"beyond left margin", -265, 300, false},
		{"beyond top margin", 600, -265, false},
		{"beyond bottom margin", 600, 720 + 260, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Projectile{Sprite: testBullet, Rect: core.NewRect(tc.x, tc.y, 10, 10), Dir: core.Vec{X: 1}, Active: true}
			p.Update(1, 0, 0, testWorld, 250, nil)
			if p.Active != tc.active {
				t.Errorf("Active = %v, expected %v", p.Active, tc.active)
			}
		})
	}
}

func TestProjectileDrawItemDimsWhenSpent(t *testing.T) {
	p := newProjectile(testBullet, core.NewRect(0, 0, 10, 10), core.Vec{}, 1, core.Vec{X: 1}, RoleEnemy)
	if got := p.DrawItem(127).Opacity; got != 255 {
		t.Errorf("active opacity = %v, expected 255", got)
	}
	p.Active = false
	if got := p.DrawItem(127).Opacity; got != 127 {
		t.Errorf("spent opacity = %v, expected 127", got)
	}
}
