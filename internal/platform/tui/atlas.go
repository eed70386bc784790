package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Glyph is how a sprite is drawn in the terminal.
type Glyph struct {
	W, H  float64 // Native size in image pixels, only the ratio matters
	Rune  rune
	Color core.Color
}

// defaultGlyphs covers every sprite the default config refers to.
var defaultGlyphs = map[string]Glyph{
	"ship":          {W: 200, H: 120, Rune: '▶', Color: core.ColorBrightCyan},
	"alien1":        {W: 160, H: 130, Rune: '◆', Color: core.ColorBrightGreen},
	"alien2":        {W: 180, H: 180, Rune: '■', Color: core.ColorMagenta},
	"alien3":        {W: 150, H: 110, Rune: '◀', Color: core.ColorBrightYellow},
	"boss":          {W: 300, H: 260, Rune: '█', Color: core.ColorBrightRed},
	"blue_bullet":   {W: 40, H: 12, Rune: '-', Color: core.ColorBrightBlue},
	"green_bullet":  {W: 30, H: 30, Rune: '•', Color: core.ColorGreen},
	"orange_bullet": {W: 30, H: 30, Rune: 'o', Color: core.ColorOrange},
	"explosion":     {W: 128, H: 128, Rune: '*', Color: core.ColorYellow},
	"background":    {W: 2560, H: 1440, Rune: ' ', Color: core.ColorDefault},
}

// SpriteAtlas resolves sprite names to terminal glyphs.
// It implements core.SpriteLoader.
type SpriteAtlas struct {
	glyphs map[string]Glyph
}

// NewSpriteAtlas creates an atlas with the built-in glyphs.
func NewSpriteAtlas() *SpriteAtlas {
	glyphs := make(map[string]Glyph, len(defaultGlyphs))
	for name, g := range defaultGlyphs {
		glyphs[name] = g
	}
	return &SpriteAtlas{glyphs: glyphs}
}

// Add registers or replaces a glyph.
func (a *SpriteAtlas) Add(name string, g Glyph) {
	a.glyphs[name] = g
}

// LoadSprite returns a handle sized per size and by, keeping the glyph's aspect ratio.
func (a *SpriteAtlas) LoadSprite(name string, size float64, by core.SizeBy) (core.Sprite, error) {
	g, ok := a.glyphs[name]
	if !ok {
		return core.Sprite{}, fmt.Errorf("tui: unknown sprite %q", name)
	}
	w, h, err := core.FitSize(g.W, g.H, size, by)
	if err != nil {
		return core.Sprite{}, err
	}
	return core.Sprite{Name: name, W: w, H: h}, nil
}

// Glyph returns the glyph for a sprite name.
func (a *SpriteAtlas) Glyph(name string) (Glyph, bool) {
	g, ok := a.glyphs[name]
	return g, ok
}
