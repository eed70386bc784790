package config

import (
	_ "embed"
)

//go:embed defaults/shmup.yaml
var defaultShmupYAML []byte

// DefaultShmupConfig returns the default shmup configuration.
// It matches defaults/shmup.yaml and is used when no file can be read.
func DefaultShmupConfig() ShmupConfig {
	return ShmupConfig{
		World: WorldConfig{
			Width:  1280,
			Height: 720,
		},
		Timing: TimingConfig{
			NominalFPS: 40,
			MaxDT:      4,
		},
		Player: PlayerConfig{
			Sprite:         "ship",
			Size:           100,
			SizeBy:         "width",
			SpawnX:         100,
			SpawnY:         0,
			Speed:          6,
			Health:         5,
			Lives:          3,
			Opacity:        200,
			FadeRate:       15,
			RespawnOpacity: -1000,
			HitboxScale:    0.5,
			ShotIntervalMS: 300,
			Bullet: PlayerBullet{
				Sprite:  "blue_bullet",
				Size:    17,
				Speed:   25,
				Spread:  35,
				MuzzleX: -15,
				Tilt:    0.1,
			},
			Dash: DashConfig{
				Capacity:  100,
				MinFuel:   10,
				Drain:     3,
				Regen:     0.5,
				Boost:     1.5,
				BlinkRate: 0.3,
			},
		},
		Camera: CameraConfig{
			Left:            0.05,
			Right:           0.25,
			Up:              0.4,
			Down:            0.5,
			DashYMultiplier: 2,
			TiltDegrees:     1.5,
		},
		Enemies: EnemyConfig{
			FadeRate:          15,
			Smoothing:         0.15,
			RespawnMargin:     100,
			RespawnSpread:     100,
			RespawnXSpread:    200,
			AvoidInflate:      10,
			AvoidJitter:       5,
			FlatFireChance:    0.02,
			WoundedFireFactor: 3,
			MirrorFireFactor:  2,
			MirrorWindowMS:    400,
			Bullet: EnemyBullet{
				Sprite:   "green_bullet",
				Size:     20,
				MinSpeed: 14,
				MaxSpeed: 18,
				Jitter:   0.25,
			},
			Scatter: []ScatterShot{
				{Sprite: "green_bullet", Size: 20, Speed: 10, OffsetX: 0, OffsetY: -20},
				{Sprite: "orange_bullet", Size: 26, Speed: 7, OffsetX: 0, OffsetY: 20},
			},
			MuzzleOffset:       0.25,
			InitialSpawnSpread: 1500,
		},
		Projectiles: ProjectileConfig{
			OffscreenMargin: 250,
			DimOpacity:      127,
		},
		Background: BackgroundConfig{
			Sprite: "background",
			Speed:  2,
		},
		Stars: []StarLayerConfig{
			{Speed: 3.1, Count: 200, Color: [3]int{240, 240, 240}, Radius: 1.9},
			{Speed: 2.4, Count: 200, Color: [3]int{220, 220, 220}, Radius: 1.7},
			{Speed: 1.5, Count: 100, Color: [3]int{150, 150, 150}, Radius: 1.4},
			{Speed: 1.1, Count: 50, Color: [3]int{75, 75, 75}, Radius: 1.2},
		},
		Archetypes: []ArchetypeConfig{
			{
				Name: "alien1", Sprite: "alien1", SizeMin: 100, SizeMax: 115, SizeBy: "width",
				Health: 3, Opacity: 255, Speed: 4, ShotIntervalMS: 300,
				Targeting: "random", Movement: "follow", Points: 100,
			},
			{
				Name: "alien2", Sprite: "alien2", SizeMin: 130, SizeMax: 150, SizeBy: "width",
				Health: 8, Opacity: 255, Speed: 3, ShotIntervalMS: 300,
				Targeting: "random_hit", Movement: "drift", Points: 250,
			},
			{
				Name: "alien3", Sprite: "alien3", SizeMin: 90, SizeMax: 110, SizeBy: "width",
				Health: 4, Opacity: 255, Speed: 5, ShotIntervalMS: 300,
				Targeting: "mirror", Movement: "follow", Points: 150,
			},
			{
				Name: "boss", Sprite: "boss", SizeMin: 220, SizeMax: 220, SizeBy: "width",
				Health: 40, Opacity: 255, Speed: 2, ShotIntervalMS: 600,
				Targeting: "random_xy", Movement: "drift", Points: 2000,
			},
		},
		Scenarios: []ScenarioConfig{
			{
				ID:    "classic",
				Title: "Classic",
				Roster: []RosterEntry{
					{Archetype: "alien1", Count: 8},
					{Archetype: "alien2", Count: 5},
					{Archetype: "alien3", Count: 3},
				},
			},
			{
				ID:    "boss",
				Title: "Boss Rush",
				Roster: []RosterEntry{
					{Archetype: "boss", Count: 1},
					{Archetype: "alien1", Count: 4},
				},
			},
			{
				ID:    "swarm",
				Title: "Swarm",
				Roster: []RosterEntry{
					{Archetype: "alien1", Count: 14},
					{Archetype: "alien3", Count: 6},
				},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			InitialLevel:   0.0,
			BaseFireChance: 0.002,
			Progression: ProgressionConfig{
				Type:  ProgressByTime,
				MaxAt: 7200,
			},
			Scaling: ScalingConfig{
				FireMultiplier: 2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShmupYAML
}
