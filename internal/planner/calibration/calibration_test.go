package calibration

import (
	"math"
	"testing"

	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrateScale(t *testing.T) {
	ppm := CalibrateScale(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 0}, 5)
	assert.Equal(t, 20.0, ppm)

	ppm = CalibrateScale(geometry.Point{X: 10, Y: 10}, geometry.Point{X: 40, Y: 50}, 2.5)
	assert.InDelta(t, 20.0, ppm, 1e-12)
}

func TestCalibrateFloorPlan(t *testing.T) {
	plan := models.FloorPlan{Width: 2000, Height: 1000}

	got, err := Calibrate(plan, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 0}, 5)
	require.NoError(t, err)

	assert.True(t, got.IsCalibrated)
	assert.Equal(t, 20.0, got.PixelsPerMeter)
	assert.Equal(t, 100.0, got.RealWorldWidth)
	assert.Equal(t, 50.0, got.RealWorldHeight)
	assert.Equal(t, 20.0, got.Scale(models.DefaultScale()).PixelsPerMeter)

	assert.False(t, plan.IsCalibrated, "input plan must not change")
}

func TestCalibrateRejectsInvalidInput(t *testing.T) {
	p1 := geometry.Point{X: 0, Y: 0}
	p2 := geometry.Point{X: 100, Y: 0}
	plan := models.FloorPlan{Width: 500, Height: 500}

	tests := []struct {
		name     string
		p2       geometry.Point
		distance float64
		want     error
	}{
		{"zero distance", p2, 0, ErrInvalidDistance},
		{"negative distance", p2, -3, ErrInvalidDistance},
		{"nan distance", p2, math.NaN(), ErrInvalidDistance},
		{"infinite distance", p2, math.Inf(1), ErrInvalidDistance},
		{"same points", p1, 5, ErrSamePoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calibrate(plan, p1, tt.p2, tt.distance)
			require.ErrorIs(t, err, tt.want)
			assert.False(t, got.IsCalibrated)
			assert.Zero(t, got.PixelsPerMeter)
		})
	}
}

func TestUncalibratedPlanUsesFallback(t *testing.T) {
	var plan *models.FloorPlan
	assert.Equal(t, models.DefaultPixelsPerMeter, plan.Scale(models.DefaultScale()).PixelsPerMeter)

	plan = &models.FloorPlan{Width: 100, Height: 100, PixelsPerMeter: 25}
	assert.Equal(t, 12.0, plan.Scale(models.NewScale(12)).PixelsPerMeter)
}
