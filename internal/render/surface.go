package render

import (
	"math"

	"github.com/iburimskiy/midi-starshow/internal/palette"
)

// Fill passed as the stroke width fills the polygon instead of outlining it.
const Fill = 0

// Point is a 2D coordinate in viewport pixels.
type Point struct {
	X, Y float64
}

// Polar returns the point at distance r from p along angle a (radians).
func (p Point) Polar(a, r float64) Point {
	return Point{X: p.X + math.Cos(a)*r, Y: p.Y + math.Sin(a)*r}
}

// Surface is everything the show needs from a frame buffer.
type Surface interface {
	// Clear paints the whole frame with c.
	Clear(c palette.Color)
	// DrawPolygon outlines the closed polygon with the given stroke width,
	// or fills it when width is Fill.
	DrawPolygon(vertices []Point, c palette.Color, width float64)
	// Present hands the finished frame to the display.
	Present()
}
