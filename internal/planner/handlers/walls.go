package handlers

import (
	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"
	"coverage-planner/internal/planner/walls"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Wall Handlers
// ============================================================

type raycastRequest struct {
	Origin         geometry.Point `json:"origin"`
	Bearing        float64        `json:"bearing"`
	MaxRange       float64        `json:"maxRange"`
	Walls          []models.Wall  `json:"walls"`
	Camera         *models.Camera `json:"camera"`
	PixelsPerMeter float64        `json:"pixelsPerMeter"`
}

type wallsRequest struct {
	Walls          []models.Wall `json:"walls"`
	PixelsPerMeter float64       `json:"pixelsPerMeter"`
}

// Raycast возвращает ближайшее пересечение со стеной или {"hit": null}.
// maxRange задается в пикселях. Если передана camera, луч выходит из камеры
// на ее дальность, а в ответ добавляется visibleRange.
func (h *Handler) Raycast(c fiber.Ctx) error {
	var req raycastRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if req.Camera != nil {
		return h.cameraRaycast(c, &req)
	}
	if req.MaxRange <= 0 {
		return fiber.NewError(400, "maxRange must be positive")
	}

	hit, ok := walls.CastRay(req.Origin, req.Bearing, req.MaxRange, req.Walls)
	if !ok {
		return c.JSON(fiber.Map{"hit": nil})
	}
	return c.JSON(fiber.Map{"hit": hit})
}

func (h *Handler) cameraRaycast(c fiber.Ctx, req *raycastRequest) error {
	if err := h.checkScene(map[string]interface{}{"cameras": []models.Camera{*req.Camera}}); err != nil {
		return err
	}

	scale := models.NewScale(req.PixelsPerMeter)
	resp := fiber.Map{
		"hit":          nil,
		"visibleRange": walls.VisibleRange(*req.Camera, req.Bearing, req.Walls, scale),
	}
	if hit, ok := walls.CastSensorRay(*req.Camera, req.Bearing, req.Walls, scale); ok {
		resp["hit"] = hit
	}
	return c.JSON(resp)
}

func (h *Handler) WallLengths(c fiber.Ctx) error {
	var req wallsRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	lengths := walls.Lengths(req.Walls, models.NewScale(req.PixelsPerMeter))
	total := 0.0
	for _, l := range lengths {
		total += l.Meters
	}
	return c.JSON(fiber.Map{
		"lengths":     lengths,
		"totalMeters": total,
	})
}
