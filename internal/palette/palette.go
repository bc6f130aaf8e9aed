package palette

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single RGB triple. Alpha is handled by scaling, never stored.
type Color struct {
	R, G, B uint8
}

// Scale multiplies every component by f, truncating toward zero.
// f is clamped to [0,1].
func (c Color) Scale(f float64) Color {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// RGBA returns an opaque color usable by image and ebiten APIs.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is the fixed set of colors lights draw from. It is read-only once
// the show starts.
type Palette []Color

// Pastel is the reference palette.
var Pastel = Palette{
	{0x88, 0x35, 0x56},
	{0xD6, 0x97, 0xA5},
	{0xCC, 0xD1, 0xDB},
	{0x85, 0x8F, 0xB4},
	{0xF2, 0xD5, 0xE5},
	{0xE3, 0xA7, 0xC0},
	{0xBA, 0xC7, 0xE8},
}

// Pick draws one member uniformly at random.
func (p Palette) Pick(rng *rand.Rand) Color {
	return p[rng.Intn(len(p))]
}

func (p Palette) Contains(c Color) bool {
	for _, m := range p {
		if m == c {
			return true
		}
	}
	return false
}

// ParseHex parses a "#rrggbb" string.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// FromHex builds a palette from hex strings, keeping their order.
func FromHex(values []string) (Palette, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("palette must contain at least one color")
	}
	out := make(Palette, 0, len(values))
	for _, v := range values {
		c, err := ParseHex(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Hex renders the palette back to the string form the config file uses.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.String()
	}
	return out
}
