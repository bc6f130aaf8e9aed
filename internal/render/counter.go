package render

import "github.com/iburimskiy/midi-starshow/internal/palette"

// Counter is a Surface that only tallies calls. Long headless runs use it
// instead of a Recorder so memory stays flat.
type Counter struct {
	Frames   int
	Polygons int
	Fills    int
}

func (c *Counter) Clear(palette.Color) {}

func (c *Counter) DrawPolygon(_ []Point, _ palette.Color, width float64) {
	c.Polygons++
	if width == Fill {
		c.Fills++
	}
}

func (c *Counter) Present() { c.Frames++ }
