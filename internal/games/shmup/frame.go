package shmup

import (
	"time"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// FrameContext is recomputed at the start of every simulated tick.
type FrameContext struct {
	Frame      int      // Ticks simulated before this one
	DT         float64  // Step multiplier from the normalizer
	Shift      core.Vec // Camera shift produced by player movement
	Difficulty float64  // Per-frame enemy fire threshold
	Actions    core.InputFrame
	Now        time.Duration // Monotonic clock used for fire cooldowns
}

// tick advances every entity once, in a fixed order:
// player input, background, stars, enemies, projectiles, player update.
func (g *Game) tick(in core.TickInput) {
	dt := g.norm.DT(in.ElapsedMS)
	g.frame = FrameContext{
		Frame:      g.tickCount,
		DT:         dt,
		Difficulty: g.difficulty.FireChance(g.score, g.tickCount),
		Actions:    in.Input,
		Now:        in.Now,
	}

	// Projectiles spawned below are first moved next tick.
	existing := len(g.projectiles)

	shift, shoot := g.player.Control(in.Input, dt)
	g.frame.Shift = shift
	if shoot {
		g.projectiles = append(g.projectiles, g.player.Fire(in.Now, shift.Y, g.arsenal)...)
	}

	g.background.Update(dt)
	for _, l := range g.stars {
		l.Update(dt, shift, g.world, g.rng)
	}

	g.updateEnemies()

	margin := g.cfg.Projectiles.OffscreenMargin
	for _, p := range g.projectiles[:existing] {
		targets := g.playerTargets
		if p.Target == RoleEnemy {
			targets = g.enemyTargets
		}
		if hit, killed := p.Update(dt, shift.X, shift.Y, g.world, margin, targets); killed {
			g.onKill(hit)
		}
	}

	if g.player.Update(dt) {
		g.log.Debug("player respawned", "frame", g.tickCount)
	}
	if g.lives == 0 && !g.player.Alive() && g.player.Opacity <= 0 {
		g.gameOver = true
		g.log.Debug("game over", "score", g.score, "kills", g.kills, "frame", g.tickCount)
	}

	g.buildDrawList()
	g.compactProjectiles()
	g.tickCount++
}

func (g *Game) updateEnemies() {
	steer := Steer{
		DT:     g.frame.DT,
		Shift:  g.frame.Shift,
		Player: g.player.Rect,
		World:  g.world,
		Tuning: &g.cfg.Enemies,
	}
	window := time.Duration(g.cfg.Enemies.MirrorWindowMS) * time.Millisecond
	gun := Gunnery{
		Now:         g.frame.Now,
		Difficulty:  g.frame.Difficulty,
		Player:      g.player,
		World:       g.world,
		Tuning:      &g.cfg.Enemies,
		MirrorReady: g.player.Shots > 0 && g.frame.Now-g.player.LastShot <= window,
	}

	for _, e := range g.enemies {
		if e.Update(steer, g.enemies, g.rng) {
			g.log.Debug("enemy respawned", "archetype", e.Archetype, "frame", g.tickCount)
		}
		if e.CanFire(gun, g.rng) && e.RollFire(gun, g.rng) {
			g.projectiles = append(g.projectiles, e.Fire(g.frame.Now, g.arsenal, g.rng)...)
		}
	}
}

// onKill records a fatal hit.
func (g *Game) onKill(t Target) {
	switch v := t.(type) {
	case *Enemy:
		g.kills++
		g.score += v.Points
		g.log.Debug("enemy destroyed", "archetype", v.Archetype, "score", g.score)
	case *Player:
		g.deaths++
		if g.lives > 0 {
			g.lives--
		}
		g.log.Debug("player destroyed", "deaths", g.deaths, "lives", g.lives)
	}
}

// buildDrawList assembles the frame back to front. Projectiles retired this
// tick are still listed, dimmed.
func (g *Game) buildDrawList() {
	items := g.drawList[:0]
	items = g.background.DrawItems(items)
	for _, l := range g.stars {
		items = l.DrawItems(items)
	}
	for _, e := range g.enemies {
		items = append(items, e.DrawItem())
	}
	dim := g.cfg.Projectiles.DimOpacity
	for _, p := range g.projectiles {
		items = append(items, p.DrawItem(dim))
	}
	items = append(items, g.player.DrawItem())
	g.drawList = items
}

// compactProjectiles drops retired projectiles, keeping order.
func (g *Game) compactProjectiles() {
	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Active {
			live = append(live, p)
		}
	}
	clear(g.projectiles[len(live):])
	g.projectiles = live
}
