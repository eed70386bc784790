package shmup

import (
	"time"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Enemy is an AI-steered combatant.
type Enemy struct {
	Combatant

	Archetype string
	Points    int
	Speed     float64

	raw core.Rect // Steered position before smoothing
}

func newEnemy(arch config.ArchetypeConfig, targeting Targeting, movement Movement, sprite, explosion core.Sprite, cx, cy float64) *Enemy {
	rect := sprite.RectAt(cx, cy)
	interval := time.Duration(arch.ShotIntervalMS) * time.Millisecond

	e := &Enemy{
		Combatant: newCombatant(RoleEnemy, sprite, explosion, rect, arch.Health, arch.Opacity, interval),
		Archetype: arch.Name,
		Points:    arch.Points,
		Speed:     arch.Speed,
		raw:       rect,
	}
	e.Targeting = targeting
	e.Movement = movement
	return e
}

// HitBox returns the enemy's rect while it is alive.
func (e *Enemy) HitBox() (core.Rect, bool) {
	return e.Rect, e.Alive()
}

// Steer is the per-tick context for enemy movement.
type Steer struct {
	DT     float64
	Shift  core.Vec
	Player core.Rect
	World  core.Rect
	Tuning *config.EnemyConfig
}

// Update steers, smooths, fades and respawns the enemy.
// others is the enemy set as it stood at the start of the tick.
func (e *Enemy) Update(s Steer, others []*Enemy, rng core.Rand) (respawned bool) {
	var total core.Vec

	// Avoidance: push away from the first overlapping neighbour found.
	// Dying neighbours still count until they respawn.
	for _, i := range rng.Perm(len(others)) {
		other := others[i]
		if other == e {
			continue
		}
		grow := s.Tuning.AvoidInflate + rng.Float64()*s.Tuning.AvoidJitter
		if !e.Rect.Inflate(grow, grow).CollidesWith(other.Rect.Inflate(grow, grow)) {
			continue
		}
		if e.Rect.X < other.Rect.X {
			total.X -= rng.Float64()
		} else {
			total.X += rng.Float64() * 0.5
		}
		if e.Rect.Y < other.Rect.Y {
			total.Y -= rng.Float64() * 2
		} else {
			total.Y += rng.Float64() * 2
		}
		break
	}

	// Pursuit: enemies ahead of the player chase its Y harder.
	if e.Movement == MoveFollow {
		ratio := 0.15
		if s.Player.X < e.Rect.X {
			ratio = 0.75
		}
		if s.Player.Y > e.Rect.Y {
			total.Y += rng.Float64() * ratio
		} else {
			total.Y -= rng.Float64() * ratio
		}
	}

	// Drift toward the player's side.
	total.X -= 1 + rng.Float64()

	if dir, err := total.Unit(); err == nil {
		step := dir.Scale(e.Speed * s.DT)
		e.raw = e.raw.Move(step.X-s.Shift.X, step.Y+s.Shift.Y)
	}
	// raw is the target the visible rect is smoothed toward.
	e.Rect = e.Rect.Lerp(e.raw, s.Tuning.Smoothing)

	if !e.Alive() {
		e.Opacity -= s.Tuning.FadeRate * s.DT
	}

	if e.Rect.X < s.World.Left()-s.Tuning.RespawnMargin {
		x := s.World.Right() + s.Tuning.RespawnMargin + rng.Float64()*s.Tuning.RespawnXSpread
		y := s.World.Top() - s.Tuning.RespawnSpread + rng.Float64()*(s.World.H+2*s.Tuning.RespawnSpread)
		e.Rect = e.Rect.MoveTo(x, y)
		e.raw = e.Rect
		e.Reset()
		return true
	}
	return false
}

// Fire shoots the pattern of the enemy's targeting style.
func (e *Enemy) Fire(now time.Duration, a *Arsenal, rng core.Rand) []*Projectile {
	if !e.trigger(now) {
		return nil
	}
	switch e.Targeting {
	case TargetRandomHit:
		return a.aimedShot(e.Rect, a.muzzle(e.Rect, false, rng), rng)
	case TargetMirror:
		return a.aimedShot(e.Rect, a.muzzle(e.Rect, true, rng), rng)
	case TargetRandomXY:
		return a.scatter(e.Rect, rng)
	default:
		return a.aimedShot(e.Rect, core.Vec{}, rng)
	}
}

// Gunnery is the per-tick context for the enemy fire decision.
type Gunnery struct {
	Now         time.Duration
	Difficulty  float64 // Base per-frame fire threshold
	Player      *Player
	World       core.Rect
	Tuning      *config.EnemyConfig
	MirrorReady bool // Player fired within the mirror window
}

// CanFire adds the positional gate of the enemy's targeting style.
func (e *Enemy) CanFire(g Gunnery, rng core.Rand) bool {
	if !e.Combatant.CanFire() {
		return false
	}
	if e.Targeting == TargetRandomXY {
		return g.World.Contains(e.Rect.CenterX(), e.Rect.CenterY())
	}
	if e.Rect.CenterX() > g.Player.Rect.CenterX() && g.Player.Alive() {
		return true
	}
	return rng.Float64() < g.Tuning.FlatFireChance
}

// RollFire is the per-frame Bernoulli draw. Scatter shooters skip it.
func (e *Enemy) RollFire(g Gunnery, rng core.Rand) bool {
	if e.Targeting == TargetRandomXY {
		return true
	}
	factor := e.fireFactor(g)
	if factor <= 0 {
		return false
	}
	return rng.Float64()*rng.Float64() < g.Difficulty*factor
}

func (e *Enemy) fireFactor(g Gunnery) float64 {
	switch e.Targeting {
	case TargetRandomHit:
		wounds := 1 - float64(e.Health)/float64(e.OriginalHealth)
		return 1 + g.Tuning.WoundedFireFactor*wounds
	case TargetMirror:
		if !g.MirrorReady {
			return 0
		}
		return g.Tuning.MirrorFireFactor
	default:
		return 1
	}
}

// DrawItem returns how the enemy is displayed.
func (e *Enemy) DrawItem() core.DrawItem {
	return core.DrawItem{
		Kind:    core.DrawSprite,
		Sprite:  e.Sprite,
		Rect:    e.Rect,
		Opacity: e.Opacity,
	}
}
