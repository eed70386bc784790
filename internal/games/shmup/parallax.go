package shmup

import (
	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Background is a two-tile strip scrolling left in a seamless loop.
type Background struct {
	Sprite core.Sprite
	Speed  float64
	X1, X2 float64
}

func newBackground(sprite core.Sprite, speed float64) *Background {
	return &Background{Sprite: sprite, Speed: speed, X1: 0, X2: sprite.W}
}

// Update scrolls both tiles; a tile fully off the left edge jumps two widths right.
func (b *Background) Update(dt float64) {
	w := b.Sprite.W
	b.X1 -= b.Speed * dt
	b.X2 -= b.Speed * dt
	if w <= 0 {
		return
	}
	for b.X1 < -w {
		b.X1 += 2 * w
	}
	for b.X2 < -w {
		b.X2 += 2 * w
	}
}

// DrawItems appends both tiles to dst.
func (b *Background) DrawItems(dst []core.DrawItem) []core.DrawItem {
	for _, x := range [2]float64{b.X1, b.X2} {
		dst = append(dst, core.DrawItem{
			Kind:    core.DrawSprite,
			Sprite:  b.Sprite,
			Rect:    core.NewRect(x, 0, b.Sprite.W, b.Sprite.H),
			Opacity: 255,
		})
	}
	return dst
}

// StarLayer is one depth layer of the star field.
type StarLayer struct {
	Speed  float64
	Color  core.RGB
	Radius float64
	Stars  []core.Vec
}

func newStarLayer(cfg config.StarLayerConfig, world core.Rect, rng core.Rand) *StarLayer {
	l := &StarLayer{
		Speed:  cfg.Speed,
		Color:  core.RGB{R: uint8(cfg.Color[0]), G: uint8(cfg.Color[1]), B: uint8(cfg.Color[2])},
		Radius: cfg.Radius,
		Stars:  make([]core.Vec, cfg.Count),
	}
	for i := range l.Stars {
		l.Stars[i] = core.Vec{
			X: world.Left() + rng.Float64()*world.W,
			Y: extendedY(world, rng),
		}
	}
	return l
}

// extendedY picks a height in [-H, 2H] so arriving stars are already spread over the screen.
func extendedY(world core.Rect, rng core.Rand) float64 {
	return world.Top() - world.H + rng.Float64()*3*world.H
}

// Update scrolls the layer. Faster layers react more to horizontal shift;
// vertical shift applies to every layer equally.
func (l *StarLayer) Update(dt float64, shift core.Vec, world core.Rect, rng core.Rand) {
	dx := l.Speed*dt + shift.X*l.Speed/2
	for i := range l.Stars {
		s := &l.Stars[i]
		s.X -= dx
		s.Y += shift.Y
		if s.X < world.Left() {
			s.X = world.Right() + rng.Float64()*l.Radius
			s.Y = extendedY(world, rng)
		}
	}
}

// DrawItems appends one circle per star to dst.
func (l *StarLayer) DrawItems(dst []core.DrawItem) []core.DrawItem {
	d := 2 * l.Radius
	for _, s := range l.Stars {
		dst = append(dst, core.DrawItem{
			Kind:    core.DrawCircle,
			Rect:    core.RectFromCenter(s.X, s.Y, d, d),
			Opacity: 255,
			Color:   l.Color,
		})
	}
	return dst
}
