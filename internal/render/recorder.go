package render

import "github.com/iburimskiy/midi-starshow/internal/palette"

type Op int

const (
	OpClear Op = iota
	OpPolygon
	OpPresent
)

// Command is one recorded surface call.
type Command struct {
	Op       Op
	Vertices []Point
	Color    palette.Color
	Width    float64
}

// Recorder is an offscreen Surface that keeps the calls it receives. It backs
// headless runs and tests.
type Recorder struct {
	Commands []Command
	Frames   int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear(c palette.Color) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Color: c})
}

func (r *Recorder) DrawPolygon(vertices []Point, c palette.Color, width float64) {
	vs := make([]Point, len(vertices))
	copy(vs, vertices)
	r.Commands = append(r.Commands, Command{Op: OpPolygon, Vertices: vs, Color: c, Width: width})
}

func (r *Recorder) Present() {
	r.Commands = append(r.Commands, Command{Op: OpPresent})
	r.Frames++
}

// Polygons returns only the polygon commands, in draw order.
func (r *Recorder) Polygons() []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == OpPolygon {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops recorded commands but keeps the frame count.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}
