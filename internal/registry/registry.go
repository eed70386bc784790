// Package registry maps scenario ids to game factories.
// Scenario packages register from init so the front ends can list and
// start them by id.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Game is a playable scenario. Implementations hold simulation state only;
// input, timing and presentation belong to the caller.
type Game interface {
	// ID is the stable key used on the command line and in storage.
	ID() string
	Title() string

	// Reset starts a new run. Bad setup is reported as *core.ConfigurationError.
	Reset(cfg core.RuntimeConfig) error

	// Step advances one tick.
	Step(in core.TickInput) core.StepResult

	// DrawList describes the last simulated tick, back to front.
	DrawList() []core.DrawItem

	State() core.GameState
}

// GameInfo describes a registered scenario.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game.
type Factory func() Game

type entry struct {
	title string
	new   Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. It panics if id is taken.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, taken := entries[id]; taken {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}
	entries[id] = entry{title: title, new: f}
}

// List returns every registered scenario ordered by id.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown scenario %q", id)
	}
	return e.new(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
