package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentIntersect(t *testing.T) {
	t.Run("crossing segments", func(t *testing.T) {
		a := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 10}}
		b := Segment{A: Point{X: 0, Y: 10}, B: Point{X: 10, Y: 0}}

		p, ok := a.Intersect(b)
		require.True(t, ok)
		assert.InDelta(t, 5, p.X, 1e-9)
		assert.InDelta(t, 5, p.Y, 1e-9)
	})

	t.Run("parallel segments", func(t *testing.T) {
		a := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}}
		b := Segment{A: Point{X: 0, Y: 5}, B: Point{X: 10, Y: 5}}

		_, ok := a.Intersect(b)
		assert.False(t, ok)
	})

	t.Run("coincident segments", func(t *testing.T) {
		a := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}}
		b := Segment{A: Point{X: 5, Y: 0}, B: Point{X: 15, Y: 0}}

		_, ok := a.Intersect(b)
		assert.False(t, ok)
	})

	t.Run("lines cross outside the segments", func(t *testing.T) {
		a := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 4, Y: 0}}
		b := Segment{A: Point{X: 5, Y: -5}, B: Point{X: 5, Y: 5}}

		_, ok := a.Intersect(b)
		assert.False(t, ok)
	})

	t.Run("touching at an endpoint", func(t *testing.T) {
		a := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 5, Y: 0}}
		b := Segment{A: Point{X: 5, Y: -5}, B: Point{X: 5, Y: 5}}

		p, ok := a.Intersect(b)
		require.True(t, ok)
		assert.InDelta(t, 5, p.X, 1e-9)
		assert.InDelta(t, 0, p.Y, 1e-9)
	})
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	assert.True(t, r.Contains(Point{X: 25, Y: 40}))
	assert.True(t, r.Contains(Point{X: 10, Y: 20}), "corner is inside")
	assert.True(t, r.Contains(Point{X: 40, Y: 60}), "opposite corner is inside")
	assert.False(t, r.Contains(Point{X: 9.9, Y: 40}))
	assert.False(t, r.Contains(Point{X: 25, Y: 60.1}))

	assert.Equal(t, 140.0, r.Perimeter())
	assert.Equal(t, Point{X: 25, Y: 40}, r.Center())

	var total float64
	for _, e := range r.Edges() {
		total += e.Length()
	}
	assert.InDelta(t, r.Perimeter(), total, 1e-9)
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{725, 5},
		{-725, -5},
		{540, 180},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeDegrees(tt.in), 1e-9, "in=%v", tt.in)
	}
}

func TestNormalizeDegreesHugeInput(t *testing.T) {
	for _, in := range []float64{1e17, -1e17, 1e300, -1e300} {
		got := NormalizeDegrees(in)
		assert.GreaterOrEqual(t, got, -180.0, "in=%v", in)
		assert.LessOrEqual(t, got, 180.0, "in=%v", in)
	}
}

func TestBearingIsClockwiseOnScreen(t *testing.T) {
	o := Point{X: 0, Y: 0}
	assert.InDelta(t, 0, Bearing(o, Point{X: 10, Y: 0}), 1e-9)
	assert.InDelta(t, 90, Bearing(o, Point{X: 0, Y: 10}), 1e-9, "+y is down, so 90 degrees is south")
	assert.InDelta(t, -90, Bearing(o, Point{X: 0, Y: -10}), 1e-9)
	assert.InDelta(t, 180, math.Abs(Bearing(o, Point{X: -10, Y: 0})), 1e-9)
}

func TestSectorContains(t *testing.T) {
	s := Sector{Origin: Point{X: 100, Y: 100}, Rotation: 0, FOV: 90, Radius: 300}

	at := func(deg, r float64) Point { return Polar(s.Origin, r, deg) }

	assert.True(t, s.Contains(at(44, 100)))
	assert.True(t, s.Contains(at(-44, 100)))
	assert.False(t, s.Contains(at(46, 100)))
	assert.False(t, s.Contains(at(-46, 100)))
	assert.True(t, s.Contains(at(0, 299.9)))
	assert.False(t, s.Contains(at(0, 300.1)))
	assert.True(t, s.Contains(Point{X: 110, Y: 110}), "exact 45 degree diagonal is on the border")

	t.Run("sector straddling 180 degrees", func(t *testing.T) {
		back := Sector{Origin: Point{X: 0, Y: 0}, Rotation: 180, FOV: 60, Radius: 50}
		assert.True(t, back.Contains(Polar(back.Origin, 10, 170)))
		assert.True(t, back.Contains(Polar(back.Origin, 10, -170)))
		assert.False(t, back.Contains(Polar(back.Origin, 10, 0)))
	})

	assert.Equal(t, -45.0, s.StartAngle())
	assert.Equal(t, 45.0, s.EndAngle())
}
