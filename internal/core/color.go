package core

// Color is a terminal foreground colour for a screen cell.
type Color uint8

// Palette entries. Renderers map them to ANSI 256-colour codes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Channel spread below which an RGB value counts as grey.
const greySpread = 48

// NearestColor picks the palette entry closest in hue to c.
// Greys map to bright white, white or gray by brightness.
func NearestColor(c RGB) Color {
	r, g, b := int(c.R), int(c.G), int(c.B)
	hi, lo := max(r, g, b), min(r, g, b)
	if hi-lo < greySpread {
		switch {
		case hi >= 200:
			return ColorBrightWhite
		case hi >= 120:
			return ColorWhite
		default:
			return ColorGray
		}
	}

	switch hi {
	case r:
		if g > 120 {
			return ColorYellow
		}
		if g > 60 {
			return ColorOrange
		}
		return ColorRed
	case g:
		if b > 120 {
			return ColorCyan
		}
		return ColorGreen
	default:
		if r > 120 {
			return ColorMagenta
		}
		if g > 120 {
			return ColorCyan
		}
		return ColorBlue
	}
}
