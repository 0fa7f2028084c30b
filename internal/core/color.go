package core

// Color is a palette entry used by the game when drawing.
// Frontends map each entry to whatever their surface supports: RGBA for the
// window, an ANSI 256-color code for the terminal.
type Color uint8

// Palette used by the dodger scenery.
const (
	ColorDefault  Color = iota
	ColorRayWhite       // Background
	ColorDarkBlue       // Road, text, player
	ColorBlue           // Racers
	ColorGray           // Ground gradient bottom
	ColorWhite
)

// RGBA returns the 8-bit RGBA components of the color.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorRayWhite:
		return 245, 245, 245, 255
	case ColorDarkBlue:
		return 0, 82, 172, 255
	case ColorBlue:
		return 0, 121, 241, 255
	case ColorGray:
		return 130, 130, 130, 255
	case ColorWhite:
		return 255, 255, 255, 255
	default:
		return 0, 0, 0, 255
	}
}

// ANSI returns the ANSI 256-color code closest to the color.
func (c Color) ANSI() string {
	switch c {
	case ColorRayWhite:
		return "255"
	case ColorDarkBlue:
		return "25"
	case ColorBlue:
		return "33"
	case ColorGray:
		return "245"
	case ColorWhite:
		return "15"
	default:
		return ""
	}
}

// Lerp blends two colors component-wise. t=0 yields a, t=1 yields b.
func Lerp(a, b Color, t float64) (r, g, bl, al uint8) {
	t = ClampF(t, 0, 1)
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return mix(ar, br), mix(ag, bg), mix(ab, bb), mix(aa, ba)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
