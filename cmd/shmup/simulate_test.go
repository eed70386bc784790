package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

func withSimulateFlags(t *testing.T, seed int64, ticks int, save bool) string {
	t.Helper()
	db := filepath.Join(t.TempDir(), "scores.db")
	oldSeed, oldTicks, oldSave, oldFPS, oldDB := flagSeed, flagTicks, flagSave, flagFPS, flagDBPath
	flagSeed, flagTicks, flagSave, flagFPS, flagDBPath = seed, ticks, save, 40, db
	t.Cleanup(func() {
		flagSeed, flagTicks, flagSave, flagFPS, flagDBPath = oldSeed, oldTicks, oldSave, oldFPS, oldDB
	})
	return db
}

func TestSimulateUnknownScenario(t *testing.T) {
	withSimulateFlags(t, 1, 10, false)
	if err := simulate(context.Background(), "no-such-scenario"); err == nil {
		t.Error("unknown scenario should fail")
	}
}

func TestSimulateRunsBuiltInScenarios(t *testing.T) {
	for _, id := range []string{"classic", "boss", "swarm"} {
		t.Run(id, func(t *testing.T) {
			withSimulateFlags(t, 42, 120, false)
			if err := simulate(context.Background(), id); err != nil {
				t.Fatalf("simulate(%s) failed: %v", id, err)
			}
		})
	}
}

func TestSimulateCancelled(t *testing.T) {
	withSimulateFlags(t, 42, 0, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := simulate(ctx, "classic"); err != nil {
		t.Errorf("cancelled simulation should end cleanly, got %v", err)
	}
}

func TestSaveSimulation(t *testing.T) {
	db := withSimulateFlags(t, 7, 0, true)

	state := core.GameState{Score: 300, Kills: 3, Deaths: 1, Frame: 900}
	if err := saveSimulation("classic", 7, state); err != nil {
		t.Fatalf("saveSimulation failed: %v", err)
	}

	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	runs, err := store.AllRuns("classic")
	if err != nil {
		t.Fatalf("AllRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 300 || runs[0].Ticks != 900 || runs[0].Seed != 7 {
		t.Errorf("runs = %+v", runs)
	}
}

func TestFrameCounter(t *testing.T) {
	f := &frameCounter{}
	f.Present(make([]core.DrawItem, 3))
	f.Present(make([]core.DrawItem, 5))
	f.Present(nil)
	if f.frames != 3 || f.peak != 5 {
		t.Errorf("frames = %d, peak = %d; expected 3, 5", f.frames, f.peak)
	}
}
