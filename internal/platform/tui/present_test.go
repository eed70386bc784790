package tui

import (
	"testing"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

func TestSpriteAtlasLoad(t *testing.T) {
	atlas := NewSpriteAtlas()

	ship, err := atlas.LoadSprite("ship", 100, core.SizeByWidth)
	if err != nil {
		t.Fatalf("LoadSprite failed: %v", err)
	}
	if ship.W != 100 || ship.H != 60 {
		t.Errorf("ship = %vx%v, expected 100x60 (native 200x120)", ship.W, ship.H)
	}

	bg, err := atlas.LoadSprite("background", 720, core.SizeByHeight)
	if err != nil {
		t.Fatalf("LoadSprite failed: %v", err)
	}
	if bg.W != 1280 || bg.H != 720 {
		t.Errorf("background = %vx%v, expected 1280x720", bg.W, bg.H)
	}

	if _, err := atlas.LoadSprite("unicorn", 10, core.SizeByWidth); err == nil {
		t.Error("unknown sprite should fail to load")
	}
}

func TestSpriteAtlasCoversDefaultNames(t *testing.T) {
	atlas := NewSpriteAtlas()
	for _, name := range []string{"ship", "alien1", "alien2", "alien3", "boss", "blue_bullet", "green_bullet", "orange_bullet", "explosion", "background"} {
		if _, ok := atlas.Glyph(name); !ok {
			t.Errorf("no glyph for %q", name)
		}
	}
}

func newTestPresenter() (*ScreenPresenter, *core.Screen) {
	screen := core.NewScreen(128, 73)
	p := NewScreenPresenter(screen, NewSpriteAtlas(), core.NewRect(0, 0, 1280, 720))
	p.Top = 1
	return p, screen
}

func TestPresentScalesSprites(t *testing.T) {
	p, screen := newTestPresenter()

	err := p.Present([]core.DrawItem{{
		Kind:    core.DrawSprite,
		Sprite:  core.Sprite{Name: "alien2", W: 100, H: 50},
		Rect:    core.NewRect(100, 100, 100, 50),
		Opacity: 255,
	}})
	if err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	// 10 world units per cell; row 0 is the HUD.
	for y := 11; y < 16; y++ {
		for x := 10; x < 20; x++ {
			if c := screen.GetCell(x, y); c.Rune != '■' || c.Color != core.ColorMagenta {
				t.Fatalf("cell (%d, %d) = %q, expected alien glyph", x, y, c.Rune)
			}
		}
	}
	if screen.Get(20, 11) != ' ' || screen.Get(10, 16) != ' ' || screen.Get(10, 10) != ' ' {
		t.Error("sprite spilled outside its rect")
	}
}

func TestPresentSkipsInvisibleAndDimsFading(t *testing.T) {
	p, screen := newTestPresenter()

	p.Present([]core.DrawItem{
		{Sprite: core.Sprite{Name: "ship"}, Rect: core.NewRect(0, 0, 100, 100), Opacity: -20},
		{Sprite: core.Sprite{Name: "explosion"}, Rect: core.NewRect(500, 500, 50, 50), Opacity: 60},
	})

	if screen.Get(0, 1) != ' ' {
		t.Error("invisible item should not be drawn")
	}
	if c := screen.GetCell(50, 51); c.Rune != '*' || c.Color != core.ColorGray {
		t.Errorf("fading item = %q/%v, expected dimmed explosion", c.Rune, c.Color)
	}
}

func TestPresentClipsOffscreen(t *testing.T) {
	p, screen := newTestPresenter()

	p.Present([]core.DrawItem{
		{Sprite: core.Sprite{Name: "boss"}, Rect: core.NewRect(1250, 700, 200, 200), Opacity: 255},
		{Sprite: core.Sprite{Name: "boss"}, Rect: core.NewRect(-500, -500, 100, 100), Opacity: 255},
	})

	if screen.Get(127, 72) != '█' {
		t.Error("partially visible sprite should be drawn up to the edge")
	}
	if screen.Get(0, 0) != ' ' || screen.Get(0, 1) != ' ' {
		t.Error("offscreen sprite must not leak into the HUD or playfield")
	}
}

func TestPresentStars(t *testing.T) {
	p, screen := newTestPresenter()

	p.Present([]core.DrawItem{
		{Kind: core.DrawCircle, Rect: core.RectFromCenter(55, 55, 2, 2), Opacity: 255, Color: core.RGB{R: 255, G: 255, B: 255}},
		{Kind: core.DrawCircle, Rect: core.RectFromCenter(305, 205, 6, 6), Opacity: 255, Color: core.RGB{R: 40, G: 40, B: 200}},
	})

	if c := screen.GetCell(5, 6); c.Rune != '.' || c.Color != core.ColorBrightWhite {
		t.Errorf("small star = %q/%v", c.Rune, c.Color)
	}
	if c := screen.GetCell(30, 21); c.Rune != '+' || c.Color != core.ColorBlue {
		t.Errorf("large star = %q/%v", c.Rune, c.Color)
	}
}
