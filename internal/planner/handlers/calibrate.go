package handlers

import (
	"errors"

	"coverage-planner/internal/planner/calibration"
	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Calibration Handler
// ============================================================

type calibrateRequest struct {
	P1           geometry.Point    `json:"p1"`
	P2           geometry.Point    `json:"p2"`
	RealDistance float64           `json:"realDistance"`
	FloorPlan    *models.FloorPlan `json:"floorPlan,omitempty"`
}

// Calibrate вычисляет пиксели на метр по двум точкам и реальному
// расстоянию между ними и калибрует план, если он передан
func (h *Handler) Calibrate(c fiber.Ctx) error {
	var req calibrateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	var plan models.FloorPlan
	if req.FloorPlan != nil {
		plan = *req.FloorPlan
	}

	calibrated, err := calibration.Calibrate(plan, req.P1, req.P2, req.RealDistance)
	if err != nil {
		if errors.Is(err, calibration.ErrInvalidDistance) || errors.Is(err, calibration.ErrSamePoints) {
			return fiber.NewError(400, err.Error())
		}
		return err
	}

	resp := fiber.Map{"pixelsPerMeter": calibrated.PixelsPerMeter}
	if req.FloorPlan != nil {
		resp["floorPlan"] = calibrated
	}
	return c.JSON(resp)
}
