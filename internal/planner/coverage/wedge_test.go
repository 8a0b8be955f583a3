package coverage

import (
	"math"
	"strings"
	"testing"

	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() models.Camera {
	return models.Camera{ID: "cam-1", X: 100, Y: 100, Rotation: 0, FOV: 90, Range: 50, Type: models.CameraBullet}
}

func TestWedgePathShape(t *testing.T) {
	scale := models.NewScale(10)
	path := WedgePath(testCamera(), 0, 30, scale)
	require.Len(t, path, 5)

	ops := make([]byte, 0, len(path))
	for _, cmd := range path {
		ops = append(ops, cmd.Op)
	}
	assert.Equal(t, "MALAZ", string(ops))

	r := 300.0
	d := r * math.Sqrt2 / 2

	move := path[0].Args
	assert.InDelta(t, 100+d, move[0], 1e-9)
	assert.InDelta(t, 100-d, move[1], 1e-9)

	outer := path[1].Args
	require.Len(t, outer, 7)
	assert.Equal(t, []float64{r, r, 0, 0, 1}, outer[:5])
	assert.InDelta(t, 100+d, outer[5], 1e-9)
	assert.InDelta(t, 100+d, outer[6], 1e-9)

	inner := path[3].Args
	require.Len(t, inner, 7)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, inner[:5], "inner arc runs counter-clockwise")

	dAttr := path.D()
	assert.True(t, strings.HasPrefix(dAttr, "M "))
	assert.Contains(t, dAttr, " A 300 300 0 0 1 ")
	assert.True(t, strings.HasSuffix(dAttr, " Z"))
}

func TestWedgeLargeArcFlag(t *testing.T) {
	scale := models.NewScale(10)
	cam := testCamera()

	tests := []struct {
		fov  float64
		want float64
	}{
		{90, 0},
		{179, 0},
		{180, 0},
		{181, 1},
		{270, 1},
	}

	for _, tt := range tests {
		cam.FOV = tt.fov
		path := WedgePath(cam, 30, 60, scale)
		require.False(t, path.Empty(), "fov=%v", tt.fov)
		assert.Equal(t, tt.want, path[1].Args[3], "outer arc, fov=%v", tt.fov)
		assert.Equal(t, tt.want, path[3].Args[3], "inner arc, fov=%v", tt.fov)
		assert.Equal(t, 1.0, path[1].Args[4])
		assert.Equal(t, 0.0, path[3].Args[4])
	}
}

func TestWedgeClipping(t *testing.T) {
	scale := models.NewScale(10)
	cam := testCamera()
	cam.Range = 25

	t.Run("outer radius is clamped to the camera range", func(t *testing.T) {
		w, ok := ComputeWedge(cam, 0, 30, scale)
		require.True(t, ok)
		assert.Equal(t, 250.0, w.OuterRadius)
		assert.Equal(t, 0.0, w.InnerRadius)
	})

	t.Run("band beyond the camera range is empty", func(t *testing.T) {
		assert.Nil(t, WedgePath(cam, 30, 60, scale))
	})

	t.Run("band starting exactly at the range is empty", func(t *testing.T) {
		assert.Nil(t, WedgePath(cam, 25, 60, scale))
	})

	t.Run("inverted band is empty", func(t *testing.T) {
		assert.Nil(t, WedgePath(cam, 20, 10, scale))
	})

	t.Run("scale changes the radii", func(t *testing.T) {
		w, ok := ComputeWedge(cam, 10, 20, models.NewScale(4))
		require.True(t, ok)
		assert.Equal(t, 40.0, w.InnerRadius)
		assert.Equal(t, 80.0, w.OuterRadius)
	})
}

func TestAdjacentBandsDoNotOverlap(t *testing.T) {
	scale := models.NewScale(10)
	cam := testCamera()
	cam.Range = 60

	near, ok := ComputeWedge(cam, 0, 30, scale)
	require.True(t, ok)
	mid, ok := ComputeWedge(cam, 30, 60, scale)
	require.True(t, ok)
	sector := cam.Sector(scale)

	for x := -500.0; x <= 700; x += 7 {
		for y := -500.0; y <= 700; y += 7 {
			p := geometry.Point{X: x, Y: y}
			inNear, inMid := near.Contains(p), mid.Contains(p)
			assert.False(t, inNear && inMid, "point %v in both bands", p)
			assert.Equal(t, sector.Contains(p), inNear || inMid, "point %v", p)
		}
	}

	onBorder := geometry.Polar(cam.Position(), 300, 10)
	assert.NotEqual(t, near.Contains(onBorder), mid.Contains(onBorder))
}

func TestWedgePolygon(t *testing.T) {
	scale := models.NewScale(10)
	cam := testCamera()
	cam.Range = 60

	near, _ := ComputeWedge(cam, 0, 30, scale)
	mid, _ := ComputeWedge(cam, 30, 60, scale)

	nearPoly := near.Polygon(256)
	midPoly := mid.Polygon(256)
	require.Len(t, midPoly, 1)
	assert.Equal(t, midPoly[0][0], midPoly[0][len(midPoly[0])-1], "ring is closed")

	midPoint := geometry.Polar(cam.Position(), 450, 0)
	nearPoint := geometry.Polar(cam.Position(), 150, 20)

	assert.True(t, planar.PolygonContains(midPoly, orb.Point{midPoint.X, midPoint.Y}))
	assert.False(t, planar.PolygonContains(nearPoly, orb.Point{midPoint.X, midPoint.Y}))
	assert.True(t, planar.PolygonContains(nearPoly, orb.Point{nearPoint.X, nearPoint.Y}))
	assert.False(t, planar.PolygonContains(midPoly, orb.Point{nearPoint.X, nearPoint.Y}))

	wantNear := math.Pi * 300 * 300 / 4
	wantMid := math.Pi * (600*600 - 300*300) / 4
	assert.InEpsilon(t, wantNear, math.Abs(planar.Area(nearPoly)), 1e-3)
	assert.InEpsilon(t, wantMid, math.Abs(planar.Area(midPoly)), 1e-3)
}
