package shmup

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Simulation is what the runner drives; *Game satisfies it.
type Simulation interface {
	Step(in core.TickInput) core.StepResult
	DrawList() []core.DrawItem
}

// Runner pulls input and timing from its collaborators, steps a simulation
// and hands every frame to the presenter.
type Runner struct {
	Input     core.InputSource
	Clock     core.FrameClock
	Presenter core.Presenter
	MaxTicks  int // 0 = no limit
	Log       *log.Logger
}

// Run loops until quit, game over, the tick limit or ctx is done.
// Cancellation is observed between ticks and returned as ctx.Err().
func (r *Runner) Run(ctx context.Context, sim Simulation) (core.GameState, error) {
	logger := r.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var state core.GameState
	for ticks := 0; r.MaxTicks <= 0 || ticks < r.MaxTicks; ticks++ {
		if err := ctx.Err(); err != nil {
			return state, err
		}

		in := core.TickInput{
			Input:     r.Input.PollActions(),
			ElapsedMS: r.Clock.ElapsedMillis(),
			Now:       r.Clock.Now(),
		}
		res := sim.Step(in)
		state = res.State
		if res.Quit {
			logger.Debug("quit requested", "frame", state.Frame)
			return state, nil
		}

		if err := r.Presenter.Present(sim.DrawList()); err != nil {
			return state, fmt.Errorf("shmup: present frame %d: %w", state.Frame, err)
		}
		if state.GameOver {
			return state, nil
		}
	}
	logger.Debug("tick limit reached", "ticks", r.MaxTicks)
	return state, nil
}

// FixedStepClock reports a constant frame duration and advances its
// monotonic time by that much on every sample.
type FixedStepClock struct {
	Step time.Duration
	now  time.Duration
}

// NewFixedStepClock creates a clock ticking at fps.
func NewFixedStepClock(fps int) *FixedStepClock {
	if fps <= 0 {
		fps = core.DefaultNominalFPS
	}
	return &FixedStepClock{Step: time.Second / time.Duration(fps)}
}

// ElapsedMillis returns the fixed step and advances the clock.
func (c *FixedStepClock) ElapsedMillis() float64 {
	c.now += c.Step
	return float64(c.Step) / float64(time.Millisecond)
}

// Now returns the time accumulated so far.
func (c *FixedStepClock) Now() time.Duration {
	return c.now
}

// Autopilot is a scripted input source for headless runs: it keeps firing,
// weaves vertically and dashes now and then.
type Autopilot struct {
	rng    core.Rand
	up     bool
	weave  int
	dashIn int
}

// NewAutopilot creates an autopilot driven by rng.
func NewAutopilot(rng core.Rand) *Autopilot {
	return &Autopilot{rng: rng, weave: 20, dashIn: 200}
}

// PollActions returns the actions for the next tick.
func (a *Autopilot) PollActions() core.InputFrame {
	in := core.NewInputFrame(core.ActionShoot)

	a.weave--
	if a.weave <= 0 {
		a.up = !a.up
		a.weave = 10 + a.rng.Intn(40)
	}
	if a.up {
		in.Set(core.ActionUp)
	} else {
		in.Set(core.ActionDown)
	}

	a.dashIn--
	if a.dashIn <= 0 {
		in.Set(core.ActionDash)
		if a.dashIn < -15 {
			a.dashIn = 100 + a.rng.Intn(200)
		}
	}
	return in
}
