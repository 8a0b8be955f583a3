package calibration

import (
	"errors"
	"fmt"
	"math"

	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"
)

// ============================================================
// Scale Calibration
// ============================================================

var (
	ErrInvalidDistance = errors.New("real-world distance must be a positive number")
	ErrSamePoints      = errors.New("calibration points must not coincide")
)

// CalibrateScale переводит измеренное расстояние в пикселях и известное
// реальное расстояние (метры) в пиксели на метр. Входные данные проверяет
// вызывающий код.
func CalibrateScale(p1, p2 geometry.Point, realDistance float64) float64 {
	return geometry.Distance(p1, p2) / realDistance
}

// Validate отклоняет данные, при которых CalibrateScale дал бы Inf, NaN
// или нулевой масштаб
func Validate(p1, p2 geometry.Point, realDistance float64) error {
	if realDistance <= 0 || math.IsNaN(realDistance) || math.IsInf(realDistance, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDistance, realDistance)
	}
	if geometry.Distance(p1, p2) == 0 {
		return ErrSamePoints
	}
	return nil
}

// Calibrate возвращает откалиброванную копию plan. Реальный размер плана
// вычисляется из размера в пикселях при новом масштабе.
func Calibrate(plan models.FloorPlan, p1, p2 geometry.Point, realDistance float64) (models.FloorPlan, error) {
	if err := Validate(p1, p2, realDistance); err != nil {
		return plan, err
	}

	ppm := CalibrateScale(p1, p2, realDistance)
	scale := models.NewScale(ppm)

	plan.PixelsPerMeter = ppm
	plan.RealWorldWidth = scale.ToMeters(plan.Width)
	plan.RealWorldHeight = scale.ToMeters(plan.Height)
	plan.IsCalibrated = true
	return plan, nil
}
