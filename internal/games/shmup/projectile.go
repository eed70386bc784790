package shmup

import (
	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Target is anything a projectile can strike.
type Target interface {
	// HitBox returns the area that can be struck; ok is false while the
	// target is dead or otherwise untouchable.
	HitBox() (box core.Rect, ok bool)
	// Hit applies one point of damage and reports whether it was fatal.
	Hit() (killed bool)
}

// Projectile is a bullet in flight.
type Projectile struct {
	Sprite core.Sprite
	Rect   core.Rect
	Speed  float64
	Dir    core.Vec
	Target Role
	Active bool
}

// SpawnProjectile creates an active projectile centered on origin's center plus offset.
// dir is used as given; a zero vector is a configuration error.
func SpawnProjectile(sprite core.Sprite, origin core.Rect, offset core.Vec, speed float64, dir core.Vec, target Role) (*Projectile, error) {
	if dir.X == 0 && dir.Y == 0 {
		return nil, &core.ConfigurationError{Field: "projectile.direction", Reason: "must not be zero", Err: core.ErrZeroVector}
	}
	return newProjectile(sprite, origin, offset, speed, dir, target), nil
}

// newProjectile skips the direction check; callers pass directions that cannot be zero.
func newProjectile(sprite core.Sprite, origin core.Rect, offset core.Vec, speed float64, dir core.Vec, target Role) *Projectile {
	return &Projectile{
		Sprite: sprite,
		Rect:   sprite.RectAt(origin.CenterX()+offset.X, origin.CenterY()+offset.Y),
		Speed:  speed,
		Dir:    dir,
		Target: target,
		Active: true,
	}
}

// Update moves the projectile, retires it once it leaves bounds by more than
// margin, and tests it against targets in order. The first target struck is
// damaged and returned; no other target is touched this tick.
func (p *Projectile) Update(dt, shiftX, shiftY float64, bounds core.Rect, margin float64, targets []Target) (hit Target, killed bool) {
	if !p.Active {
		return nil, false
	}

	p.Rect = p.Rect.Move(p.Speed*p.Dir.X*dt-shiftX, p.Speed*p.Dir.Y*dt+shiftY)

	if p.Rect.Right() < bounds.Left()-margin || p.Rect.Left() > bounds.Right()+margin ||
		p.Rect.Bottom() < bounds.Top()-margin || p.Rect.Top() > bounds.Bottom()+margin {
		p.Active = false
		return nil, false
	}

	for _, t := range targets {
		box, ok := t.HitBox()
		if !ok || !p.Rect.CollidesWith(box) {
			continue
		}
		p.Active = false
		return t, t.Hit()
	}
	return nil, false
}

// DrawItem returns how the projectile is displayed. Spent projectiles are dimmed.
func (p *Projectile) DrawItem(dimOpacity float64) core.DrawItem {
	opacity := 255.0
	if !p.Active {
		opacity = dimOpacity
	}
	return core.DrawItem{
		Kind:    core.DrawSprite,
		Sprite:  p.Sprite,
		Rect:    p.Rect,
		Opacity: opacity,
	}
}
