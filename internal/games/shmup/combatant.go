package shmup

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Combatant is the state shared by the player ship and enemies.
// The shot cooldown lives here; each side chooses its own pattern.
type Combatant struct {
	Role      Role
	Targeting Targeting // Enemy only
	Movement  Movement  // Enemy only

	Sprite    core.Sprite
	original  core.Sprite
	explosion core.Sprite
	Rect      core.Rect

	Health          int
	OriginalHealth  int
	Opacity         float64
	OriginalOpacity float64

	LastShot     time.Duration
	ShotInterval time.Duration
	Shots        int // Successful Fire calls
}

func newCombatant(role Role, sprite, explosion core.Sprite, rect core.Rect, health int, opacity float64, interval time.Duration) Combatant {
	return Combatant{
		Role:            role,
		Sprite:          sprite,
		original:        sprite,
		explosion:       explosion,
		Rect:            rect,
		Health:          health,
		OriginalHealth:  health,
		Opacity:         opacity,
		OriginalOpacity: opacity,
		// First shot is allowed at any non-negative clock value.
		LastShot:     -interval - time.Nanosecond,
		ShotInterval: interval,
	}
}

// Alive reports whether health is above zero.
func (c *Combatant) Alive() bool {
	return c.Health > 0
}

// CanFire is the base gate: only living combatants fire.
func (c *Combatant) CanFire() bool {
	return c.Health > 0
}

// Hit applies one point of damage. Reaching zero triggers Die.
func (c *Combatant) Hit() bool {
	if c.Health <= 0 {
		return false
	}
	c.Health--
	if c.Health <= 0 {
		c.Die()
		return true
	}
	return false
}

// Die swaps in the explosion sprite stretched over the current rect.
// Timers are untouched; fading is driven by the owner's update.
func (c *Combatant) Die() {
	c.Sprite = c.explosion.Scaled(c.Rect.W, c.Rect.H)
}

// Reset restores sprite, health and opacity to their original values.
func (c *Combatant) Reset() {
	c.Sprite = c.original
	c.Health = c.OriginalHealth
	c.Opacity = c.OriginalOpacity
}

// trigger starts a shot if the cooldown has elapsed. Inside the cooldown
// it reports false and changes nothing.
func (c *Combatant) trigger(now time.Duration) bool {
	if now <= c.LastShot+c.ShotInterval {
		return false
	}
	c.LastShot = now
	c.Shots++
	return true
}

// Arsenal holds the resolved sprites and tuning for every firing pattern.
type Arsenal struct {
	playerBullet core.Sprite
	player       config.PlayerBullet
	enemyBullet  core.Sprite
	enemy        config.EnemyBullet
	scatterShots []scatterShot
	muzzleOffset float64
}

type scatterShot struct {
	sprite core.Sprite
	speed  float64
	offset core.Vec
}

func newArsenal(cfg *config.ShmupConfig, sprites core.SpriteLoader) (*Arsenal, error) {
	pb, err := sprites.LoadSprite(cfg.Player.Bullet.Sprite, cfg.Player.Bullet.Size, core.SizeByWidth)
	if err != nil {
		return nil, &core.ConfigurationError{Field: "player.bullet.sprite", Reason: "cannot load", Err: err}
	}
	eb, err := sprites.LoadSprite(cfg.Enemies.Bullet.Sprite, cfg.Enemies.Bullet.Size, core.SizeByWidth)
	if err != nil {
		return nil, &core.ConfigurationError{Field: "enemies.bullet.sprite", Reason: "cannot load", Err: err}
	}

	a := &Arsenal{
		playerBullet: pb,
		player:       cfg.Player.Bullet,
		enemyBullet:  eb,
		enemy:        cfg.Enemies.Bullet,
		muzzleOffset: cfg.Enemies.MuzzleOffset,
	}
	for _, s := range cfg.Enemies.Scatter {
		sp, err := sprites.LoadSprite(s.Sprite, s.Size, core.SizeByWidth)
		if err != nil {
			return nil, &core.ConfigurationError{Field: "enemies.scatter.sprite", Reason: "cannot load", Err: err}
		}
		a.scatterShots = append(a.scatterShots, scatterShot{
			sprite: sp,
			speed:  s.Speed,
			offset: core.Vec{X: s.OffsetX, Y: s.OffsetY},
		})
	}
	return a, nil
}

// playerVolley fires two bullets above and below the forward firing point.
// The direction is tilted by the camera shift and left unnormalized.
func (a *Arsenal) playerVolley(origin core.Rect, shiftY float64) []*Projectile {
	dir := core.Vec{X: 1, Y: -shiftY * a.player.Tilt}
	return []*Projectile{
		newProjectile(a.playerBullet, origin, core.Vec{X: a.player.MuzzleX, Y: a.player.Spread}, a.player.Speed, dir, RoleEnemy),
		newProjectile(a.playerBullet, origin, core.Vec{X: a.player.MuzzleX, Y: -a.player.Spread}, a.player.Speed, dir, RoleEnemy),
	}
}

// aimedShot fires one near-horizontal leftward bullet.
// The vertical jitter is the centered mean of three uniform samples.
func (a *Arsenal) aimedShot(origin core.Rect, offset core.Vec, rng core.Rand) []*Projectile {
	mean := (rng.Float64() + rng.Float64() + rng.Float64()) / 3
	raw := core.Vec{X: -1, Y: (mean - 0.5) * 2 * a.enemy.Jitter}
	dir, _ := raw.Unit() // X is always -1
	speed := a.enemy.MinSpeed + rng.Float64()*(a.enemy.MaxSpeed-a.enemy.MinSpeed)
	return []*Projectile{newProjectile(a.enemyBullet, origin, offset, speed, dir, RolePlayer)}
}

// muzzle picks one of two fixed origins, above or below center.
// Forward muzzles also sit ahead of the center.
func (a *Arsenal) muzzle(origin core.Rect, forward bool, rng core.Rand) core.Vec {
	off := core.Vec{Y: origin.H * a.muzzleOffset}
	if forward {
		off.X = -origin.W * a.muzzleOffset
	}
	if rng.Intn(2) == 0 {
		off.Y = -off.Y
	}
	return off
}

// scatter fires one bullet per configured barrel, each in an independent
// random direction over the full circle.
func (a *Arsenal) scatter(origin core.Rect, rng core.Rand) []*Projectile {
	out := make([]*Projectile, 0, len(a.scatterShots))
	for _, s := range a.scatterShots {
		angle := rng.Float64() * 2 * math.Pi
		dir := core.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
		out = append(out, newProjectile(s.sprite, origin, s.offset, s.speed, dir, RolePlayer))
	}
	return out
}
