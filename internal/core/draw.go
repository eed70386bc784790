package core

import "time"

// DrawKind distinguishes how a draw item is rasterized.
type DrawKind uint8

const (
	DrawSprite DrawKind = iota // Sprite stretched over Rect
	DrawCircle                 // Filled circle inscribed in Rect, using Color
)

// RGB is a plain 24-bit color.
type RGB struct {
	R, G, B uint8
}

// DrawItem is one entry of the per-frame draw list handed to the presenter.
type DrawItem struct {
	Kind     DrawKind
	Sprite   Sprite
	Rect     Rect
	Opacity  float64 // 0 = invisible, 255 = opaque; may be negative while fading
	Rotation float64 // Degrees counter-clockwise, presenters may ignore it
	Color    RGB     // Only for DrawCircle
}

// Presenter displays a finished frame.
type Presenter interface {
	Present(items []DrawItem) error
}

// InputSource provides the logical actions for one tick.
// Devices are already merged and debounced.
type InputSource interface {
	PollActions() InputFrame
}

// FrameClock provides frame timing.
type FrameClock interface {
	// ElapsedMillis returns the duration of the frame that just completed.
	ElapsedMillis() float64
	// Now returns a monotonic timestamp.
	Now() time.Duration
}

// Rand is the random source used by the simulation.
// *math/rand.Rand satisfies it; tests may inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Perm(n int) []int
}
