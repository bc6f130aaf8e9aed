package light

import (
	"math"
	"math/rand"

	"github.com/fogleman/ease"

	"github.com/iburimskiy/midi-starshow/internal/palette"
	"github.com/iburimskiy/midi-starshow/internal/render"
)

// MaxBrightness is the brightness a light jumps to when triggered.
const MaxBrightness = 255

// relaxEpsilon absorbs float drift so scale lands on exactly 1.0.
const relaxEpsilon = 1e-9

// Params tunes how a light reacts to triggers and how it decays.
type Params struct {
	SizeFloor   int
	SizeCeiling int
	SizeDivisor int
	DefaultSize int

	PulseBase    float64
	PulseDivisor float64

	DecayStep int
	RelaxStep float64

	Spikes     int
	InnerRatio float64
	GlowPasses int
	GlowFloor  float64
}

func DefaultParams() Params {
	return Params{
		SizeFloor:    5,
		SizeCeiling:  35,
		SizeDivisor:  3,
		DefaultSize:  8,
		PulseBase:    1.5,
		PulseDivisor: 200,
		DecayStep:    4,
		RelaxStep:    0.05,
		Spikes:       5,
		InnerRatio:   0.45,
		GlowPasses:   3,
		GlowFloor:    0.05,
	}
}

// BaseSize maps a note to a star size: lower notes give bigger stars,
// never below the floor.
func (p Params) BaseSize(note int) int {
	return max(p.SizeFloor, p.SizeCeiling-floorDiv(note, p.SizeDivisor))
}

// Pulse maps a velocity to the initial scale boost, never below 1.
func (p Params) Pulse(velocity int) float64 {
	return math.Max(1, p.PulseBase+float64(velocity)/p.PulseDivisor)
}

// Light is one star. It rests at brightness 0, flares on Trigger and fades
// back to rest over successive Update calls.
type Light struct {
	pos   render.Point
	angle float64

	baseSize int
	size     int

	brightness int
	scale      float64
	color      palette.Color

	colors palette.Palette
	rng    *rand.Rand
	params Params
}

// New places a light at pos with a random orientation that stays fixed for
// its lifetime.
func New(pos render.Point, colors palette.Palette, rng *rand.Rand, params Params) *Light {
	return &Light{
		pos:      pos,
		angle:    rng.Float64() * math.Pi,
		baseSize: params.DefaultSize,
		size:     params.DefaultSize,
		scale:    1,
		color:    colors.Pick(rng),
		colors:   colors,
		rng:      rng,
		params:   params,
	}
}

// Trigger restarts the light at full brightness. A trigger while the light
// is still fading simply wins.
func (l *Light) Trigger(note, velocity int) {
	l.color = l.colors.Pick(l.rng)
	l.brightness = MaxBrightness
	l.baseSize = l.params.BaseSize(note)
	l.size = l.baseSize
	l.scale = l.params.Pulse(velocity)
}

// Update advances the decay by one tick.
func (l *Light) Update() {
	if l.brightness > 0 {
		l.brightness = max(0, l.brightness-l.params.DecayStep)
	}

	l.scale -= l.params.RelaxStep
	if l.scale < 1+relaxEpsilon {
		l.scale = 1
	}
}

// Star returns the 2*Spikes vertices of the light's current outline,
// alternating outer and inner radius.
func (l *Light) Star() []render.Point {
	n := l.params.Spikes * 2
	outer := float64(l.size) * l.scale
	inner := outer * l.params.InnerRatio
	step := math.Pi / float64(l.params.Spikes)

	pts := make([]render.Point, 0, n)
	a := l.angle
	for i := 0; i < n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, l.pos.Polar(a, r))
		a += step
	}
	return pts
}

// Draw renders the light. Resting lights draw nothing.
func (l *Light) Draw(s render.Surface) {
	if l.brightness <= 0 {
		return
	}

	c := l.color.Scale(float64(l.brightness) / MaxBrightness)
	pts := l.Star()

	// glow: fainter, thinner outlines underneath the body
	glow := l.params.GlowPasses
	for i := 0; i < glow; i++ {
		fade := math.Max(1-ease.Linear(float64(i)/float64(glow)), l.params.GlowFloor)
		s.DrawPolygon(pts, c.Scale(fade), float64(max(1, glow-i)))
	}

	s.DrawPolygon(pts, c, render.Fill)
}

func (l *Light) Position() render.Point { return l.pos }
func (l *Light) Angle() float64         { return l.angle }
func (l *Light) BaseSize() int          { return l.baseSize }
func (l *Light) Size() int              { return l.size }
func (l *Light) Brightness() int        { return l.brightness }
func (l *Light) Scale() float64         { return l.scale }
func (l *Light) Color() palette.Color   { return l.color }

// Active reports whether the light is still visible.
func (l *Light) Active() bool { return l.brightness > 0 }

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
