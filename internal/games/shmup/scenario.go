package shmup

import (
	"fmt"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
)

// Initial enemy rows keep this distance from the top and bottom edges.
const spawnMarginY = 100

// RegisterScenarios registers scenarios from cfg that are not yet known,
// so config-defined rosters can be played like the built-in ones.
func RegisterScenarios(cfg config.ShmupConfig, opts ...Option) []string {
	var added []string
	for _, s := range cfg.Scenarios {
		if registry.Exists(s.ID) {
			continue
		}
		id := s.ID
		withCfg := append([]Option{WithConfig(cfg)}, opts...)
		registry.Register(id, func() registry.Game {
			return New(id, withCfg...)
		})
		added = append(added, id)
	}
	return added
}

// spawnWorld builds the player, the scenario's enemies and the backdrop.
func (g *Game) spawnWorld(sprites core.SpriteLoader) error {
	cfg := &g.cfg

	arsenal, err := newArsenal(cfg, sprites)
	if err != nil {
		return err
	}
	g.arsenal = arsenal

	explosion, err := sprites.LoadSprite(ExplosionSprite, 0, core.SizeNative)
	if err != nil {
		return &core.ConfigurationError{Field: "sprites." + ExplosionSprite, Reason: "cannot load", Err: err}
	}

	by, err := core.ParseSizeBy("player.size_by", cfg.Player.SizeBy)
	if err != nil {
		return err
	}
	ship, err := sprites.LoadSprite(cfg.Player.Sprite, cfg.Player.Size, by)
	if err != nil {
		return &core.ConfigurationError{Field: "player.sprite", Reason: "cannot load", Err: err}
	}
	g.player = newPlayer(cfg, g.world, ship, explosion)

	g.enemies = g.enemies[:0]
	for i, entry := range g.scenario.Roster {
		arch, ok := cfg.Archetype(entry.Archetype)
		if !ok {
			return core.ConfigErrorf(fmt.Sprintf("scenarios.%s.roster[%d]", g.scenarioID, i), "unknown archetype %q", entry.Archetype)
		}
		for n := 0; n < entry.Count; n++ {
			e, err := g.spawnEnemy(arch, explosion, sprites)
			if err != nil {
				return err
			}
			g.enemies = append(g.enemies, e)
		}
	}

	bg, err := sprites.LoadSprite(cfg.Background.Sprite, cfg.World.Height, core.SizeByHeight)
	if err != nil {
		return &core.ConfigurationError{Field: "background.sprite", Reason: "cannot load", Err: err}
	}
	g.background = newBackground(bg, cfg.Background.Speed)

	g.stars = g.stars[:0]
	for _, layer := range cfg.Stars {
		g.stars = append(g.stars, newStarLayer(layer, g.world, g.rng))
	}

	g.projectiles = g.projectiles[:0]
	g.enemyTargets = make([]Target, len(g.enemies))
	for i, e := range g.enemies {
		g.enemyTargets[i] = e
	}
	g.playerTargets = []Target{g.player}
	return nil
}

// spawnEnemy creates one enemy of an archetype at a random position right of
// the screen's last quarter.
func (g *Game) spawnEnemy(arch config.ArchetypeConfig, explosion core.Sprite, sprites core.SpriteLoader) (*Enemy, error) {
	field := "archetypes." + arch.Name
	targeting, err := ParseTargeting(field+".targeting", arch.Targeting)
	if err != nil {
		return nil, err
	}
	movement, err := ParseMovement(field+".movement", arch.Movement)
	if err != nil {
		return nil, err
	}
	by, err := core.ParseSizeBy(field+".size_by", arch.SizeBy)
	if err != nil {
		return nil, err
	}

	size := arch.SizeMin + g.rng.Float64()*(arch.SizeMax-arch.SizeMin)
	sprite, err := sprites.LoadSprite(arch.Sprite, size, by)
	if err != nil {
		return nil, &core.ConfigurationError{Field: field + ".sprite", Reason: "cannot load", Err: err}
	}

	w, h := g.world.W, g.world.H
	cx := w*3/4 + g.rng.Float64()*g.cfg.Enemies.InitialSpawnSpread
	cy := h / 2
	if h > 2*spawnMarginY {
		cy = spawnMarginY + g.rng.Float64()*(h-2*spawnMarginY)
	}
	return newEnemy(arch, targeting, movement, sprite, explosion, cx, cy), nil
}
