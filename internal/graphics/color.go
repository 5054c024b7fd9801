package graphics

import (
	"fmt"

	"github.com/tinyrange/gfx/internal/raylib"
)

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// The raylib palette.
var (
	ColorLightGray  = Color{200, 200, 200, 255}
	ColorGray       = Color{130, 130, 130, 255}
	ColorDarkGray   = Color{80, 80, 80, 255}
	ColorYellow     = Color{253, 249, 0, 255}
	ColorGold       = Color{255, 203, 0, 255}
	ColorOrange     = Color{255, 161, 0, 255}
	ColorPink       = Color{255, 109, 194, 255}
	ColorRed        = Color{230, 41, 55, 255}
	ColorMaroon     = Color{190, 33, 55, 255}
	ColorGreen      = Color{0, 228, 48, 255}
	ColorLime       = Color{0, 158, 47, 255}
	ColorDarkGreen  = Color{0, 117, 44, 255}
	ColorSkyBlue    = Color{102, 191, 255, 255}
	ColorBlue       = Color{0, 121, 241, 255}
	ColorDarkBlue   = Color{0, 82, 172, 255}
	ColorPurple     = Color{200, 122, 255, 255}
	ColorViolet     = Color{135, 60, 190, 255}
	ColorDarkPurple = Color{112, 31, 126, 255}
	ColorBeige      = Color{211, 176, 131, 255}
	ColorBrown      = Color{127, 106, 79, 255}
	ColorDarkBrown  = Color{76, 63, 47, 255}
	ColorWhite      = Color{255, 255, 255, 255}
	ColorBlack      = Color{0, 0, 0, 255}
	ColorBlank      = Color{0, 0, 0, 0}
	ColorMagenta    = Color{255, 0, 255, 255}
	ColorRayWhite   = Color{245, 245, 245, 255}
)

// NamedColor pairs a palette entry with its name.
type NamedColor struct {
	Name  string
	Color Color
}

// Palette returns the named colors in their conventional order.
func Palette() []NamedColor {
	return []NamedColor{
		{"LightGray", ColorLightGray},
		{"Gray", ColorGray},
		{"DarkGray", ColorDarkGray},
		{"Yellow", ColorYellow},
		{"Gold", ColorGold},
		{"Orange", ColorOrange},
		{"Pink", ColorPink},
		{"Red", ColorRed},
		{"Maroon", ColorMaroon},
		{"Green", ColorGreen},
		{"Lime", ColorLime},
		{"DarkGreen", ColorDarkGreen},
		{"SkyBlue", ColorSkyBlue},
		{"Blue", ColorBlue},
		{"DarkBlue", ColorDarkBlue},
		{"Purple", ColorPurple},
		{"Violet", ColorViolet},
		{"DarkPurple", ColorDarkPurple},
		{"Beige", ColorBeige},
		{"Brown", ColorBrown},
		{"DarkBrown", ColorDarkBrown},
		{"White", ColorWhite},
		{"Black", ColorBlack},
		{"Blank", ColorBlank},
		{"Magenta", ColorMagenta},
		{"RayWhite", ColorRayWhite},
	}
}

// Custom returns the color with the given channels, unchanged.
func Custom(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101 * uint32(c.A) / 0xff
	g = uint32(c.G) * 0x101 * uint32(c.A) / 0xff
	b = uint32(c.B) * 0x101 * uint32(c.A) / 0xff
	a = uint32(c.A) * 0x101
	return
}

// String returns the palette name of c, or Custom(r, g, b, a) for colors
// outside the palette.
func (c Color) String() string {
	for _, nc := range Palette() {
		if nc.Color == c {
			return nc.Name
		}
	}
	return fmt.Sprintf("Custom(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

func (c Color) native() raylib.Color {
	return raylib.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
