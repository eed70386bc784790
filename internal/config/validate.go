package config

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Targeting and movement style names accepted in archetypes.
var (
	TargetingStyles = []string{"random", "random_hit", "mirror", "random_xy"}
	MovementStyles  = []string{"follow", "drift"}
)

// Validate checks the configuration for values the simulation cannot run with.
// The first problem found is returned as a *core.ConfigurationError.
func (c *ShmupConfig) Validate() error {
	checks := []func() error{
		c.validateWorld,
		c.validatePlayer,
		c.validateEnemies,
		c.validateStars,
		c.validateArchetypes,
		c.validateScenarios,
		c.validateDifficulty,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c *ShmupConfig) validateWorld() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return core.ConfigErrorf("world", "size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Timing.NominalFPS <= 0 {
		return core.ConfigErrorf("timing.nominal_fps", "must be positive, got %v", c.Timing.NominalFPS)
	}
	if c.Timing.MaxDT < 0 {
		return core.ConfigErrorf("timing.max_dt", "must not be negative, got %v", c.Timing.MaxDT)
	}
	if c.Projectiles.OffscreenMargin < 0 {
		return core.ConfigErrorf("projectiles.offscreen_margin", "must not be negative, got %v", c.Projectiles.OffscreenMargin)
	}
	return nil
}

func (c *ShmupConfig) validatePlayer() error {
	p := c.Player
	if _, err := core.ParseSizeBy("player.size_by", p.SizeBy); err != nil {
		return err
	}
	switch {
	case p.Size <= 0:
		return core.ConfigErrorf("player.size", "must be positive, got %v", p.Size)
	case p.Speed <= 0:
		return core.ConfigErrorf("player.speed", "must be positive, got %v", p.Speed)
	case p.Health <= 0:
		return core.ConfigErrorf("player.health", "must be positive, got %d", p.Health)
	case p.Lives < 0:
		return core.ConfigErrorf("player.lives", "must not be negative, got %d", p.Lives)
	case p.ShotIntervalMS < 0:
		return core.ConfigErrorf("player.shot_interval_ms", "must not be negative, got %d", p.ShotIntervalMS)
	case p.HitboxScale <= 0 || p.HitboxScale > 1:
		return core.ConfigErrorf("player.hitbox_scale", "must be in (0, 1], got %v", p.HitboxScale)
	case p.RespawnOpacity >= 0:
		return core.ConfigErrorf("player.respawn_opacity", "must be negative, got %v", p.RespawnOpacity)
	case p.Bullet.Speed <= 0:
		return core.ConfigErrorf("player.bullet.speed", "must be positive, got %v", p.Bullet.Speed)
	case p.Bullet.Size <= 0:
		return core.ConfigErrorf("player.bullet.size", "must be positive, got %v", p.Bullet.Size)
	}

	d := p.Dash
	switch {
	case d.Capacity <= 0:
		return core.ConfigErrorf("player.dash.capacity", "must be positive, got %v", d.Capacity)
	case d.MinFuel < 0 || d.MinFuel >= d.Capacity:
		return core.ConfigErrorf("player.dash.min_fuel", "must be in [0, capacity), got %v", d.MinFuel)
	case d.Drain <= 0:
		return core.ConfigErrorf("player.dash.drain", "must be positive, got %v", d.Drain)
	case d.Regen < 0:
		return core.ConfigErrorf("player.dash.regen", "must not be negative, got %v", d.Regen)
	}
	return nil
}

func (c *ShmupConfig) validateEnemies() error {
	e := c.Enemies
	switch {
	case e.Smoothing <= 0 || e.Smoothing > 1:
		return core.ConfigErrorf("enemies.smoothing", "must be in (0, 1], got %v", e.Smoothing)
	case e.RespawnMargin < 0:
		return core.ConfigErrorf("enemies.respawn_margin", "must not be negative, got %v", e.RespawnMargin)
	case e.RespawnXSpread < 0:
		return core.ConfigErrorf("enemies.respawn_x_spread", "must not be negative, got %v", e.RespawnXSpread)
	case e.FlatFireChance < 0 || e.FlatFireChance > 1:
		return core.ConfigErrorf("enemies.flat_fire_chance", "must be in [0, 1], got %v", e.FlatFireChance)
	case e.Bullet.MinSpeed <= 0 || e.Bullet.MaxSpeed < e.Bullet.MinSpeed:
		return core.ConfigErrorf("enemies.bullet", "speed band [%v, %v] is invalid", e.Bullet.MinSpeed, e.Bullet.MaxSpeed)
	case e.Bullet.Size <= 0:
		return core.ConfigErrorf("enemies.bullet.size", "must be positive, got %v", e.Bullet.Size)
	case e.MirrorWindowMS < 0:
		return core.ConfigErrorf("enemies.mirror_window_ms", "must not be negative, got %d", e.MirrorWindowMS)
	}
	for i, s := range e.Scatter {
		if s.Speed <= 0 || s.Size <= 0 {
			return core.ConfigErrorf(fmt.Sprintf("enemies.scatter[%d]", i), "speed and size must be positive")
		}
	}
	return nil
}

func (c *ShmupConfig) validateStars() error {
	for i, l := range c.Stars {
		field := fmt.Sprintf("stars[%d]", i)
		if l.Count < 0 {
			return core.ConfigErrorf(field, "count must not be negative, got %d", l.Count)
		}
		if l.Radius <= 0 {
			return core.ConfigErrorf(field, "radius must be positive, got %v", l.Radius)
		}
		for _, ch := range l.Color {
			if ch < 0 || ch > 255 {
				return core.ConfigErrorf(field, "color channel %d out of range", ch)
			}
		}
	}
	return nil
}

func (c *ShmupConfig) validateArchetypes() error {
	seen := make(map[string]bool, len(c.Archetypes))
	for i, a := range c.Archetypes {
		field := fmt.Sprintf("archetypes[%d]", i)
		if a.Name == "" {
			return core.ConfigErrorf(field+".name", "must not be empty")
		}
		if seen[a.Name] {
			return core.ConfigErrorf(field+".name", "duplicate archetype %q", a.Name)
		}
		seen[a.Name] = true

		if _, err := core.ParseSizeBy(field+".size_by", a.SizeBy); err != nil {
			return err
		}
		switch {
		case a.SizeMin <= 0 || a.SizeMax < a.SizeMin:
			return core.ConfigErrorf(field, "size range [%v, %v] is invalid", a.SizeMin, a.SizeMax)
		case a.Health <= 0:
			return core.ConfigErrorf(field+".health", "must be positive, got %d", a.Health)
		case a.Speed <= 0:
			return core.ConfigErrorf(field+".speed", "must be positive, got %v", a.Speed)
		case a.ShotIntervalMS < 0:
			return core.ConfigErrorf(field+".shot_interval_ms", "must not be negative, got %d", a.ShotIntervalMS)
		case !slices.Contains(TargetingStyles, a.Targeting):
			return core.ConfigErrorf(field+".targeting", "unknown style %q", a.Targeting)
		case !slices.Contains(MovementStyles, a.Movement):
			return core.ConfigErrorf(field+".movement", "unknown style %q", a.Movement)
		case a.Targeting == "random_xy" && len(c.Enemies.Scatter) != 2:
			return core.ConfigErrorf("enemies.scatter", "random_xy needs exactly 2 shots, got %d", len(c.Enemies.Scatter))
		}
	}
	return nil
}

func (c *ShmupConfig) validateScenarios() error {
	if len(c.Scenarios) == 0 {
		return core.ConfigErrorf("scenarios", "at least one scenario is required")
	}
	seen := make(map[string]bool, len(c.Scenarios))
	for i, s := range c.Scenarios {
		field := fmt.Sprintf("scenarios[%d]", i)
		if s.ID == "" {
			return core.ConfigErrorf(field+".id", "must not be empty")
		}
		if seen[s.ID] {
			return core.ConfigErrorf(field+".id", "duplicate scenario %q", s.ID)
		}
		seen[s.ID] = true
		if len(s.Roster) == 0 {
			return core.ConfigErrorf(field+".roster", "must not be empty")
		}
		for j, r := range s.Roster {
			if _, ok := c.Archetype(r.Archetype); !ok {
				return core.ConfigErrorf(fmt.Sprintf("%s.roster[%d]", field, j), "unknown archetype %q", r.Archetype)
			}
			if r.Count <= 0 {
				return core.ConfigErrorf(fmt.Sprintf("%s.roster[%d]", field, j), "count must be positive, got %d", r.Count)
			}
		}
	}
	return nil
}

func (c *ShmupConfig) validateDifficulty() error {
	d := c.Difficulty
	switch d.Progression.Type {
	case ProgressByScore, ProgressByTime, ProgressNone:
	default:
		return core.ConfigErrorf("difficulty.progression.type", "unknown progression %q", d.Progression.Type)
	}
	if d.BaseFireChance < 0 {
		return core.ConfigErrorf("difficulty.base_fire_chance", "must not be negative, got %v", d.BaseFireChance)
	}
	if d.Scaling.FireMultiplier < 0 {
		return core.ConfigErrorf("difficulty.scaling.fire_multiplier", "must not be negative, got %v", d.Scaling.FireMultiplier)
	}
	return nil
}
