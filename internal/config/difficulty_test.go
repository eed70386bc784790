package config

import (
	"math"
	"testing"
)

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:        true,
		InitialLevel:   0.2,
		BaseFireChance: 0.002,
		Progression:    ProgressionConfig{Type: ProgressByTime, MaxAt: 1000},
		Scaling:        ScalingConfig{FireMultiplier: 2},
	}
}

func TestDifficultyLevelTime(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0}, // clamped
	}

	for _, tc := range tests {
		got := d.Level(0, tc.ticks)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(ticks=%d) = %v, expected %v", tc.ticks, got, tc.expected)
		}
	}
}

func TestFireChanceMonotonicInTicks(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	prev := d.FireChance(0, 0)
	if math.Abs(prev-0.002*1.4) > 1e-12 {
		t.Errorf("FireChance at tick 0 = %v, expected %v", prev, 0.002*1.4)
	}
	for n := 1; n <= 3000; n++ {
		cur := d.FireChance(0, n)
		if cur < prev {
			t.Fatalf("FireChance decreased at tick %d: %v < %v", n, cur, prev)
		}
		prev = cur
	}
	if math.Abs(prev-0.006) > 1e-12 {
		t.Errorf("FireChance at max = %v, expected 0.006", prev)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.Level(100, 100000) != 0.2 {
		t.Errorf("disabled manager should stay at the initial level, got %v", d.Level(100, 100000))
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := testDifficulty()
	cfg.InitialLevel = 0
	cfg.Progression = ProgressionConfig{Type: ProgressByScore, MaxAt: 100}
	d := NewDifficultyManager(cfg)

	if got := d.Level(50, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(score=50) = %v, expected 0.5", got)
	}
	if got := d.Level(0, 1000000); got != 0 {
		t.Errorf("ticks must not affect score progression, got %v", got)
	}
}

func TestInitialLevelClamps(t *testing.T) {
	tests := []struct {
		initial  float64
		expected float64
	}{
		{5, 1},
		{-1, 0},
		{0.3, 0.3},
	}

	for _, tc := range tests {
		cfg := testDifficulty()
		cfg.Enabled = false
		cfg.InitialLevel = tc.initial
		if got := NewDifficultyManager(cfg).Level(0, 0); got != tc.expected {
			t.Errorf("initial level %v gave %v, expected %v", tc.initial, got, tc.expected)
		}
	}
}

func TestProgressionNone(t *testing.T) {
	cfg := testDifficulty()
	cfg.Progression.Type = ProgressNone
	d := NewDifficultyManager(cfg)

	if got := d.Level(10000, 10000); got != 0.2 {
		t.Errorf("Level with no progression = %v, expected 0.2", got)
	}
}
