package tui

import (
	"math"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Opacity below which a drawable is shown in the dimmed colour.
const dimOpacity = 160

// ScreenPresenter rasterizes draw lists onto a cell screen.
// World coordinates are scaled to the screen; rows above Top are left to the HUD.
type ScreenPresenter struct {
	screen *core.Screen
	atlas  *SpriteAtlas
	world  core.Rect
	Top    int // First row used by the playfield
}

// NewScreenPresenter creates a presenter drawing world onto screen.
func NewScreenPresenter(screen *core.Screen, atlas *SpriteAtlas, world core.Rect) *ScreenPresenter {
	return &ScreenPresenter{screen: screen, atlas: atlas, world: world}
}

// SetWorld changes the world rect being mapped to the screen.
func (p *ScreenPresenter) SetWorld(world core.Rect) {
	p.world = world
}

// Present clears the screen and draws items back to front.
func (p *ScreenPresenter) Present(items []core.DrawItem) error {
	p.screen.Clear()
	if p.world.Empty() {
		return nil
	}
	for _, it := range items {
		if it.Opacity <= 0 {
			continue
		}
		switch it.Kind {
		case core.DrawCircle:
			p.drawCircle(it)
		default:
			p.drawSprite(it)
		}
	}
	return nil
}

func (p *ScreenPresenter) drawSprite(it core.DrawItem) {
	g, ok := p.atlas.Glyph(it.Sprite.Name)
	if !ok {
		g = Glyph{Rune: '?', Color: core.ColorRed}
	}
	if g.Rune == ' ' {
		return
	}
	c := g.Color
	if it.Opacity < dimOpacity {
		c = core.ColorGray
	}
	x0, y0, x1, y1 := p.cells(it.Rect)
	p.screen.FillRect(x0, y0, x1-x0, y1-y0, g.Rune, c)
}

func (p *ScreenPresenter) drawCircle(it core.DrawItem) {
	x, y := p.cell(it.Rect.CenterX(), it.Rect.CenterY())
	if x < 0 || y < p.Top {
		return
	}
	r := '.'
	if it.Rect.W >= 4 {
		r = '+'
	}
	p.screen.SetColored(x, y, r, core.NearestColor(it.Color))
}

// scale returns cells per world unit on each axis.
func (p *ScreenPresenter) scale() (sx, sy float64) {
	rows := p.screen.Height() - p.Top
	return float64(p.screen.Width()) / p.world.W, float64(rows) / p.world.H
}

func (p *ScreenPresenter) cell(x, y float64) (int, int) {
	sx, sy := p.scale()
	return int(math.Floor((x - p.world.X) * sx)), p.Top + int(math.Floor((y-p.world.Y)*sy))
}

// cells maps a world rect to a half-open cell range covering at least one cell,
// clipped to the playfield.
func (p *ScreenPresenter) cells(r core.Rect) (x0, y0, x1, y1 int) {
	sx, sy := p.scale()
	x0 = int(math.Floor((r.X - p.world.X) * sx))
	y0 = int(math.Floor((r.Y - p.world.Y) * sy))
	x1 = max(x0+1, int(math.Ceil((r.Right()-p.world.X)*sx)))
	y1 = max(y0+1, int(math.Ceil((r.Bottom()-p.world.Y)*sy)))

	rows := p.screen.Height() - p.Top
	x0, x1 = max(x0, 0), min(x1, p.screen.Width())
	y0, y1 = max(y0, 0), min(y1, rows)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0 + p.Top, x1, y1 + p.Top
}
