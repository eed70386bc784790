// Package config provides YAML/TOML-based tuning loading and difficulty
// management for the shmup simulation.
package config

// ShmupConfig contains all tuning for the shoot-em-up.
// Rates are expressed per nominal frame and scaled by dt at runtime.
type ShmupConfig struct {
	World       WorldConfig       `yaml:"world" toml:"world"`
	Timing      TimingConfig      `yaml:"timing" toml:"timing"`
	Player      PlayerConfig      `yaml:"player" toml:"player"`
	Camera      CameraConfig      `yaml:"camera" toml:"camera"`
	Enemies     EnemyConfig       `yaml:"enemies" toml:"enemies"`
	Projectiles ProjectileConfig  `yaml:"projectiles" toml:"projectiles"`
	Background  BackgroundConfig  `yaml:"background" toml:"background"`
	Stars       []StarLayerConfig `yaml:"stars" toml:"stars"`
	Archetypes  []ArchetypeConfig `yaml:"archetypes" toml:"archetypes"`
	Scenarios   []ScenarioConfig  `yaml:"scenarios" toml:"scenarios"`
	Difficulty  DifficultyConfig  `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the simulated playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// TimingConfig defines the nominal frame the tuning values are expressed in.
type TimingConfig struct {
	NominalFPS float64 `yaml:"nominal_fps" toml:"nominal_fps"`
	MaxDT      float64 `yaml:"max_dt" toml:"max_dt"` // 0 disables the bound
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Sprite         string       `yaml:"sprite" toml:"sprite"`
	Size           float64      `yaml:"size" toml:"size"`
	SizeBy         string       `yaml:"size_by" toml:"size_by"`
	SpawnX         float64      `yaml:"spawn_x" toml:"spawn_x"`
	SpawnY         float64      `yaml:"spawn_y" toml:"spawn_y"` // 0 = vertical center
	Speed          float64      `yaml:"speed" toml:"speed"`
	Health         int          `yaml:"health" toml:"health"`
	Lives          int          `yaml:"lives" toml:"lives"` // 0 = unlimited
	Opacity        float64      `yaml:"opacity" toml:"opacity"`
	FadeRate       float64      `yaml:"fade_rate" toml:"fade_rate"`
	RespawnOpacity float64      `yaml:"respawn_opacity" toml:"respawn_opacity"`
	HitboxScale    float64      `yaml:"hitbox_scale" toml:"hitbox_scale"`
	ShotIntervalMS int          `yaml:"shot_interval_ms" toml:"shot_interval_ms"`
	Bullet         PlayerBullet `yaml:"bullet" toml:"bullet"`
	Dash           DashConfig   `yaml:"dash" toml:"dash"`
}

// PlayerBullet defines the player's twin shot.
type PlayerBullet struct {
	Sprite  string  `yaml:"sprite" toml:"sprite"`
	Size    float64 `yaml:"size" toml:"size"`
	Speed   float64 `yaml:"speed" toml:"speed"`
	Spread  float64 `yaml:"spread" toml:"spread"`     // Vertical offset of each barrel from the firing point
	MuzzleX float64 `yaml:"muzzle_x" toml:"muzzle_x"` // Firing point relative to the ship's center
	Tilt    float64 `yaml:"tilt" toml:"tilt"`         // Vertical skew per unit of camera shift
}

// DashConfig defines the fuel-gated dash.
type DashConfig struct {
	Capacity  float64 `yaml:"capacity" toml:"capacity"`
	MinFuel   float64 `yaml:"min_fuel" toml:"min_fuel"` // Fuel required to start a dash
	Drain     float64 `yaml:"drain" toml:"drain"`
	Regen     float64 `yaml:"regen" toml:"regen"`
	Boost     float64 `yaml:"boost" toml:"boost"` // Extra speed at full tank, as a multiple of base speed
	BlinkRate float64 `yaml:"blink_rate" toml:"blink_rate"`
}

// CameraConfig defines how player movement turns into camera shift.
// Each value is the fraction of the move magnitude that becomes shift.
type CameraConfig struct {
	Left            float64 `yaml:"left" toml:"left"`
	Right           float64 `yaml:"right" toml:"right"`
	Up              float64 `yaml:"up" toml:"up"`
	Down            float64 `yaml:"down" toml:"down"`
	DashYMultiplier float64 `yaml:"dash_y_multiplier" toml:"dash_y_multiplier"`
	TiltDegrees     float64 `yaml:"tilt_degrees" toml:"tilt_degrees"` // Ship rotation per unit of vertical shift
}

// EnemyConfig defines behaviour shared by all enemies.
type EnemyConfig struct {
	FadeRate           float64       `yaml:"fade_rate" toml:"fade_rate"`
	Smoothing          float64       `yaml:"smoothing" toml:"smoothing"`
	RespawnMargin      float64       `yaml:"respawn_margin" toml:"respawn_margin"`
	RespawnSpread      float64       `yaml:"respawn_spread" toml:"respawn_spread"`
	RespawnXSpread     float64       `yaml:"respawn_x_spread" toml:"respawn_x_spread"` // Width of the band right of the margin
	AvoidInflate       float64       `yaml:"avoid_inflate" toml:"avoid_inflate"`
	AvoidJitter        float64       `yaml:"avoid_jitter" toml:"avoid_jitter"`
	FlatFireChance     float64       `yaml:"flat_fire_chance" toml:"flat_fire_chance"`
	WoundedFireFactor  float64       `yaml:"wounded_fire_factor" toml:"wounded_fire_factor"`
	MirrorFireFactor   float64       `yaml:"mirror_fire_factor" toml:"mirror_fire_factor"`
	MirrorWindowMS     int           `yaml:"mirror_window_ms" toml:"mirror_window_ms"`
	Bullet             EnemyBullet   `yaml:"bullet" toml:"bullet"`
	Scatter            []ScatterShot `yaml:"scatter" toml:"scatter"`
	MuzzleOffset       float64       `yaml:"muzzle_offset" toml:"muzzle_offset"` // Fraction of height between alternate muzzles
	InitialSpawnSpread float64       `yaml:"initial_spawn_spread" toml:"initial_spawn_spread"`
}

// EnemyBullet defines the aimed-left enemy shot.
type EnemyBullet struct {
	Sprite   string  `yaml:"sprite" toml:"sprite"`
	Size     float64 `yaml:"size" toml:"size"`
	MinSpeed float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
	Jitter   float64 `yaml:"jitter" toml:"jitter"` // Vertical spread of the direction
}

// ScatterShot is one barrel of the all-directions pattern.
type ScatterShot struct {
	Sprite  string  `yaml:"sprite" toml:"sprite"`
	Size    float64 `yaml:"size" toml:"size"`
	Speed   float64 `yaml:"speed" toml:"speed"`
	OffsetX float64 `yaml:"offset_x" toml:"offset_x"`
	OffsetY float64 `yaml:"offset_y" toml:"offset_y"`
}

// ProjectileConfig defines projectile lifetime.
type ProjectileConfig struct {
	OffscreenMargin float64 `yaml:"offscreen_margin" toml:"offscreen_margin"`
	DimOpacity      float64 `yaml:"dim_opacity" toml:"dim_opacity"`
}

// BackgroundConfig defines the two-tile scrolling backdrop.
type BackgroundConfig struct {
	Sprite string  `yaml:"sprite" toml:"sprite"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// StarLayerConfig defines one parallax star layer.
type StarLayerConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Count  int     `yaml:"count" toml:"count"`
	Color  [3]int  `yaml:"color" toml:"color"`
	Radius float64 `yaml:"radius" toml:"radius"`
}

// ArchetypeConfig defines an enemy kind.
type ArchetypeConfig struct {
	Name           string  `yaml:"name" toml:"name"`
	Sprite         string  `yaml:"sprite" toml:"sprite"`
	SizeMin        float64 `yaml:"size_min" toml:"size_min"`
	SizeMax        float64 `yaml:"size_max" toml:"size_max"`
	SizeBy         string  `yaml:"size_by" toml:"size_by"`
	Health         int     `yaml:"health" toml:"health"`
	Opacity        float64 `yaml:"opacity" toml:"opacity"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	ShotIntervalMS int     `yaml:"shot_interval_ms" toml:"shot_interval_ms"`
	Targeting      string  `yaml:"targeting" toml:"targeting"` // random, random_hit, mirror, random_xy
	Movement       string  `yaml:"movement" toml:"movement"`   // follow, drift
	Points         int     `yaml:"points" toml:"points"`
}

// ScenarioConfig defines a playable enemy roster.
type ScenarioConfig struct {
	ID     string        `yaml:"id" toml:"id"`
	Title  string        `yaml:"title" toml:"title"`
	Roster []RosterEntry `yaml:"roster" toml:"roster"`
}

// RosterEntry spawns Count enemies of an archetype.
type RosterEntry struct {
	Archetype string `yaml:"archetype" toml:"archetype"`
	Count     int    `yaml:"count" toml:"count"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled        bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel   float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	BaseFireChance float64           `yaml:"base_fire_chance" toml:"base_fire_chance"`
	Progression    ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling        ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FireMultiplier float64 `yaml:"fire_multiplier" toml:"fire_multiplier"` // Added to fire chance multiplier at max difficulty
}

// Archetype returns the archetype with the given name.
func (c *ShmupConfig) Archetype(name string) (ArchetypeConfig, bool) {
	for _, a := range c.Archetypes {
		if a.Name == name {
			return a, true
		}
	}
	return ArchetypeConfig{}, false
}

// Scenario returns the scenario with the given ID.
func (c *ShmupConfig) Scenario(id string) (ScenarioConfig, bool) {
	for _, s := range c.Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return ScenarioConfig{}, false
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
