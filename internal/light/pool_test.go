package light

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/midi-starshow/internal/palette"
	"github.com/iburimskiy/midi-starshow/internal/render"
)

func TestCircleSpawn(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	policy, err := PolicyFor(SpawnCircle, Layout{Width: 1280, Height: 720, Radius: 250, Slots: 25}, rng)
	require.NoError(t, err)

	pool := NewPool(25, policy, palette.Pastel, rng, DefaultParams())

	p0 := pool.At(0).Position()
	assert.InDelta(t, 890, p0.X, 1e-9)
	assert.InDelta(t, 360, p0.Y, 1e-9)

	a := 12 * 2 * math.Pi / 25
	p12 := pool.At(12).Position()
	assert.InDelta(t, 640+250*math.Cos(a), p12.X, 1e-9)
	assert.InDelta(t, 360+250*math.Sin(a), p12.Y, 1e-9)
}

func TestChaosSpawnStaysInsideMargin(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))
	spawn := Chaos(1280, 720, 50, rng)

	for i := 0; i < 2000; i++ {
		p := spawn(i)
		require.GreaterOrEqual(t, p.X, 50.0)
		require.LessOrEqual(t, p.X, 1230.0)
		require.GreaterOrEqual(t, p.Y, 50.0)
		require.LessOrEqual(t, p.Y, 670.0)
		require.Equal(t, math.Trunc(p.X), p.X)
	}
}

func TestParseSpawnMode(t *testing.T) {
	t.Parallel()

	m, err := ParseSpawnMode("circle")
	require.NoError(t, err)
	assert.Equal(t, SpawnCircle, m)

	_, err = ParseSpawnMode("spiral")
	require.Error(t, err)

	_, err = PolicyFor(SpawnMode("spiral"), Layout{}, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}

func TestTriggerRandomHitsEveryLight(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	pool := NewPool(25, Chaos(1280, 720, 50, rng), palette.Pastel, rng, DefaultParams())

	hits := map[int]int{}
	for i := 0; i < 5000; i++ {
		idx := pool.TriggerRandom(60, 100)
		require.True(t, idx >= 0 && idx < pool.Len())
		hits[idx]++
	}
	assert.Len(t, hits, 25)
	assert.Equal(t, 25, pool.Active())
}

func TestPoolUpdateAndDrawAll(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(4))
	pool := NewPool(5, Circle(render.Point{X: 100, Y: 100}, 50, 5), palette.Pastel, rng, DefaultParams())

	rec := render.NewRecorder()
	pool.DrawAll(rec)
	assert.Empty(t, rec.Commands)

	idx := pool.TriggerRandom(24, 100)
	assert.Equal(t, 1, pool.Active())

	pool.DrawAll(rec)
	assert.Len(t, rec.Polygons(), 4)

	pool.UpdateAll()
	assert.Equal(t, MaxBrightness-4, pool.At(idx).Brightness())

	for i := 0; i < 64; i++ {
		pool.UpdateAll()
	}
	assert.Equal(t, 0, pool.Active())
}
