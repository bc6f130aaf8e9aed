package main

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/midi-starshow/internal/palette"
	"github.com/iburimskiy/midi-starshow/internal/render"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source for DrawTriangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// screen adapts an ebiten frame to render.Surface. Buffers are reused
// across polygons.
type screen struct {
	dst *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

func newScreen(dst *ebiten.Image) *screen {
	return &screen{dst: dst}
}

func (s *screen) Clear(c palette.Color) {
	s.dst.Fill(c.RGBA())
}

func (s *screen) DrawPolygon(vertices []render.Point, c palette.Color, width float64) {
	if len(vertices) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(vertices[0].X), float32(vertices[0].Y))
	for _, v := range vertices[1:] {
		path.LineTo(float32(v.X), float32(v.Y))
	}
	path.Close()

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	if width == render.Fill {
		s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
		opts.FillRule = ebiten.FillRuleNonZero
	} else {
		s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
			Width:    float32(width),
			LineJoin: vector.LineJoinMiter,
		})
		opts.FillRule = ebiten.FillRuleFillAll
	}

	r, g, b := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = 1
	}
	s.dst.DrawTriangles(s.vs, s.is, white(), opts)
}

// Present is a no-op: ebiten shows the frame once Draw returns.
func (s *screen) Present() {}
