package shmup

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Player is the ship under user control.
type Player struct {
	Combatant

	DashFuel     float64
	DashCapacity float64
	Dashing      bool
	Rotation     float64 // Degrees, follows vertical camera shift

	cfg    config.PlayerConfig
	camera config.CameraConfig
	spawn  core.Vec
	world  core.Rect

	hitBox    core.Rect
	hasHitBox bool
	prevHeld  [len(core.Directions)]bool // Raw direction input of the previous frame
	blink     float64
}

func newPlayer(cfg *config.ShmupConfig, world core.Rect, sprite, explosion core.Sprite) *Player {
	spawn := core.Vec{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY}
	if spawn.Y == 0 {
		spawn.Y = world.CenterY() - sprite.H/2
	}
	rect := core.NewRect(spawn.X, spawn.Y, sprite.W, sprite.H)
	interval := time.Duration(cfg.Player.ShotIntervalMS) * time.Millisecond

	p := &Player{
		Combatant:    newCombatant(RolePlayer, sprite, explosion, rect, cfg.Player.Health, cfg.Player.Opacity, interval),
		DashFuel:     cfg.Player.Dash.Capacity,
		DashCapacity: cfg.Player.Dash.Capacity,
		cfg:          cfg.Player,
		camera:       cfg.Camera,
		spawn:        spawn,
		world:        world,
	}
	p.refreshHitBox()
	return p
}

// Fire shoots the twin volley, tilted by the vertical camera shift.
func (p *Player) Fire(now time.Duration, shiftY float64, a *Arsenal) []*Projectile {
	if !p.trigger(now) {
		return nil
	}
	return a.playerVolley(p.Rect, shiftY)
}

// HitBox returns the shrunken collision box. None while dashing or dead.
func (p *Player) HitBox() (core.Rect, bool) {
	return p.hitBox, p.hasHitBox
}

// Control applies one frame of input: dash state, movement and fuel.
// It returns the camera shift produced by the movement and whether the
// player wants to fire this frame.
func (p *Player) Control(in core.InputFrame, dt float64) (shift core.Vec, shoot bool) {
	held := p.heldDirections(in)
	p.updateDash(in.Has(core.ActionDash), dt)

	effective := held
	if p.Dashing {
		// A direction released this frame keeps pushing unless its opposite is pressed.
		for i, d := range core.Directions {
			if !held[i] && p.prevHeld[i] && !in.Has(d.Opposite()) {
				effective[i] = true
			}
		}
	}
	p.prevHeld = held

	if p.Alive() {
		shift = p.move(effective, dt)
	}
	p.Rotation = shift.Y * p.camera.TiltDegrees

	if !p.Dashing {
		shoot = in.Has(core.ActionShoot) && p.CanFire()
		p.DashFuel = math.Min(p.DashCapacity, p.DashFuel+p.cfg.Dash.Regen*dt)
	}
	return shift, shoot
}

func (p *Player) heldDirections(in core.InputFrame) [len(core.Directions)]bool {
	var held [len(core.Directions)]bool
	for i, d := range core.Directions {
		held[i] = in.Has(d)
	}
	return held
}

// updateDash starts, drains and stops the dash. Fuel never goes below zero.
func (p *Player) updateDash(dashHeld bool, dt float64) {
	if !dashHeld || !p.Alive() {
		p.Dashing = false
		return
	}
	if !p.Dashing && p.DashFuel > p.cfg.Dash.MinFuel {
		p.Dashing = true
	}
	if !p.Dashing {
		return
	}
	p.DashFuel -= p.cfg.Dash.Drain * dt
	if p.DashFuel <= 0 {
		p.DashFuel = 0
		p.Dashing = false
	}
}

// move displaces the rect and returns the camera shift it induces.
// held is indexed like core.Directions.
func (p *Player) move(held [len(core.Directions)]bool, dt float64) core.Vec {
	left, right, up, down := held[0], held[1], held[2], held[3]

	m := p.cfg.Speed * dt
	if p.Dashing {
		m += p.cfg.Speed * p.cfg.Dash.Boost * (p.DashFuel / p.DashCapacity) * dt
	}
	if (left || right) && (up || down) {
		m /= math.Sqrt2
	}

	var dx, dy float64
	var shift core.Vec
	if left {
		dx -= m
		shift.X -= p.camera.Left * m
	}
	if right {
		dx += m
		shift.X += p.camera.Right * m
	}
	if up {
		dy -= m
		shift.Y += p.camera.Up * m
	}
	if down {
		dy += m
		shift.Y -= p.camera.Down * m
	}
	if p.Dashing {
		shift.Y *= p.camera.DashYMultiplier
	}

	p.Rect = p.Rect.Move(dx, dy).Clamp(p.world)
	return shift
}

// Update fades a dead ship, blinks a dashing one and respawns once the
// fade has run its course. It reports whether the ship respawned.
func (p *Player) Update(dt float64) (respawned bool) {
	switch {
	case !p.Alive():
		p.Opacity -= p.cfg.FadeRate * dt
	case p.Dashing:
		p.blink += p.cfg.Dash.BlinkRate * dt
		fuel := p.DashFuel / p.DashCapacity
		pulse := (1 + math.Sin(p.blink*2*math.Pi)) / 2
		p.Opacity = p.OriginalOpacity * (0.5*fuel + 0.5*pulse)
	default:
		p.blink = 0
		p.Opacity = p.OriginalOpacity
	}

	if p.Opacity < p.cfg.RespawnOpacity {
		p.Rect = p.Rect.MoveTo(p.spawn.X, p.spawn.Y)
		p.Dashing = false
		p.Reset()
		respawned = true
	}

	p.refreshHitBox()
	return respawned
}

// refreshHitBox recomputes the collision box from the rect.
// The box keeps the rect's top-left corner.
func (p *Player) refreshHitBox() {
	p.hasHitBox = p.Alive() && !p.Dashing
	p.hitBox = p.Rect.ScaleBy(p.cfg.HitboxScale, p.cfg.HitboxScale)
}

// DrawItem returns how the ship is displayed.
func (p *Player) DrawItem() core.DrawItem {
	return core.DrawItem{
		Kind:     core.DrawSprite,
		Sprite:   p.Sprite,
		Rect:     p.Rect,
		Opacity:  p.Opacity,
		Rotation: p.Rotation,
	}
}
