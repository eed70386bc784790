package core

import "strings"

// Sprite is an opaque image handle. The simulation never looks at pixels;
// it only needs a name to hand back to the presenter and the sprite's size.
type Sprite struct {
	Name string
	W, H float64
}

// Size returns the sprite's dimensions.
func (s Sprite) Size() (w, h float64) {
	return s.W, s.H
}

// Scaled returns the same image handle stretched to w×h.
func (s Sprite) Scaled(w, h float64) Sprite {
	return Sprite{Name: s.Name, W: w, H: h}
}

// RectAt returns a rect of the sprite's size centered on (cx, cy).
func (s Sprite) RectAt(cx, cy float64) Rect {
	return RectFromCenter(cx, cy, s.W, s.H)
}

// SizeBy selects which dimension a size hint refers to when loading a sprite.
// The other dimension follows the image's native aspect ratio.
type SizeBy int

const (
	SizeNative SizeBy = iota // Ignore the hint, keep native size
	SizeByWidth
	SizeByHeight
)

// String returns the config spelling of the mode.
func (s SizeBy) String() string {
	switch s {
	case SizeNative:
		return "native"
	case SizeByWidth:
		return "width"
	case SizeByHeight:
		return "height"
	default:
		return "unknown"
	}
}

// ParseSizeBy converts a config value into a SizeBy mode.
// An empty string means "width". Anything unrecognised is a configuration error.
func ParseSizeBy(field, s string) (SizeBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "width":
		return SizeByWidth, nil
	case "height":
		return SizeByHeight, nil
	case "native":
		return SizeNative, nil
	default:
		return SizeNative, ConfigErrorf(field, "unknown size mode %q (want width, height or native)", s)
	}
}

// FitSize scales a native nw×nh image so that the selected dimension equals size.
func FitSize(nw, nh, size float64, by SizeBy) (w, h float64, err error) {
	if nw <= 0 || nh <= 0 {
		return 0, 0, ConfigErrorf("sprite", "native size must be positive, got %vx%v", nw, nh)
	}
	switch by {
	case SizeNative:
		return nw, nh, nil
	case SizeByWidth:
		return size, size * nh / nw, nil
	case SizeByHeight:
		return size * nw / nh, size, nil
	default:
		return 0, 0, ConfigErrorf("sprite", "unknown size mode %d", int(by))
	}
}

// SpriteLoader resolves sprite names to sized handles.
type SpriteLoader interface {
	LoadSprite(name string, size float64, by SizeBy) (Sprite, error)
}
