package coverage

import (
	"math"
	"testing"

	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsSpot(spots []models.BlindSpot, x, y float64) bool {
	for _, s := range spots {
		if s.X == x && s.Y == y {
			return true
		}
	}
	return false
}

func TestBlindSpotsNoCameras(t *testing.T) {
	spots := BlindSpots(nil, 200, 200, models.DefaultScale(), 20)
	require.Len(t, spots, 100)
	assert.Equal(t, models.BlindSpot{X: 10, Y: 10, Area: 400}, spots[0])
	assert.Equal(t, models.BlindSpot{X: 190, Y: 10, Area: 400}, spots[9])
	assert.Equal(t, models.BlindSpot{X: 190, Y: 190, Area: 400}, spots[99])
}

func TestBlindSpotsFieldOfViewClipping(t *testing.T) {
	scale := models.NewScale(10)
	cell := geometry.Point{X: 110, Y: 110}

	cameraAt := func(bearing float64) models.Camera {
		pos := geometry.Polar(cell, -50, bearing)
		return models.Camera{ID: "cam", X: pos.X, Y: pos.Y, Rotation: 0, FOV: 90, Range: 30}
	}

	inside := BlindSpots([]models.Camera{cameraAt(44)}, 200, 200, scale, 20)
	assert.False(t, containsSpot(inside, cell.X, cell.Y), "bearing 44 is inside a 90 degree view")

	outside := BlindSpots([]models.Camera{cameraAt(46)}, 200, 200, scale, 20)
	assert.True(t, containsSpot(outside, cell.X, cell.Y), "bearing 46 is outside a 90 degree view")
}

func TestBlindSpotsRangeClipping(t *testing.T) {
	scale := models.NewScale(10)
	cam := models.Camera{ID: "cam", X: 110 - 300.5, Y: 10, Rotation: 0, FOV: 90, Range: 30}

	spots := BlindSpots([]models.Camera{cam}, 200, 200, scale, 20)
	assert.True(t, containsSpot(spots, 110, 10), "cell half a pixel beyond range")
	assert.False(t, containsSpot(spots, 90, 10), "cell inside range")
}

func TestBlindSpotsRowMajorOrder(t *testing.T) {
	cam := models.Camera{ID: "cam", X: 100, Y: 100, Rotation: 0, FOV: 90, Range: 30}
	spots := BlindSpots([]models.Camera{cam}, 200, 200, models.NewScale(10), 20)
	require.Len(t, spots, 70)

	for i := 1; i < len(spots); i++ {
		prev, cur := spots[i-1], spots[i]
		ordered := prev.Y < cur.Y || (prev.Y == cur.Y && prev.X < cur.X)
		assert.True(t, ordered, "spot %d %v after %v", i, cur, prev)
	}
}

func TestBlindSpotsMatchStats(t *testing.T) {
	cameras := []models.Camera{
		{ID: "a", X: 30, Y: 40, Rotation: 20, FOV: 100, Range: 25},
		{ID: "b", X: 300, Y: 220, Rotation: 200, FOV: 60, Range: 40},
		{ID: "c", X: 150, Y: 150, Rotation: -90, FOV: 170, Range: 8},
	}
	scale := models.NewScale(8)

	spots := BlindSpots(cameras, 333, 257, scale, 15)
	stats := Stats(cameras, 333, 257, scale, 15)
	assert.Equal(t, stats.BlindSpotCount, len(spots))

	again := BlindSpots(cameras, 333, 257, scale, 15)
	if diff := cmp.Diff(spots, again); diff != "" {
		t.Fatalf("blind spots differ between runs (-first +second):\n%s", diff)
	}
}

func TestGridDefaults(t *testing.T) {
	g := NewGrid(210, 190, 0)
	assert.Equal(t, DefaultGridSize, g.CellSize)
	assert.Equal(t, 11, g.Cols)
	assert.Equal(t, 10, g.Rows)
	assert.Equal(t, geometry.Point{X: 210, Y: 10}, g.Center(10))
	assert.Equal(t, geometry.Point{X: 10, Y: 30}, g.Center(11))

	assert.Zero(t, NewGrid(0, 100, 20).Cells())
}

func TestCheckGrid(t *testing.T) {
	assert.NoError(t, CheckGrid(200, 200, 20, DefaultMaxCells))
	assert.NoError(t, CheckGrid(0, 0, 20, DefaultMaxCells))
	assert.NoError(t, CheckGrid(1000, 1000, 1, DefaultMaxCells))

	tests := []struct {
		name          string
		width, height float64
		cellSize      int
	}{
		{"astronomical canvas", 1e30, 1e30, 20},
		{"too many fine cells", 200000, 200000, 1},
		{"one cell over limit", 1001, 1000, 1},
		{"nan width", math.NaN(), 100, 20},
		{"infinite height", 100, math.Inf(1), 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckGrid(tt.width, tt.height, tt.cellSize, DefaultMaxCells)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrGridTooLarge)
		})
	}

	assert.ErrorIs(t, CheckGrid(200, 200, 20, 99), ErrGridTooLarge)
	assert.NoError(t, CheckGrid(200, 200, 20, 100))
}
