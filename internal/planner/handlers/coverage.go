package handlers

import (
	"fmt"

	"coverage-planner/internal/planner/coverage"
	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Coverage Handlers
// ============================================================

type wedgeRequest struct {
	Camera         models.Camera   `json:"camera"`
	RangeStart     float64         `json:"rangeStart"`
	RangeEnd       float64         `json:"rangeEnd"`
	PixelsPerMeter float64         `json:"pixelsPerMeter"`
	Steps          int             `json:"steps"`
	Point          *geometry.Point `json:"point"`
}

// maxPolygonSteps ограничивает детализацию дуги в ответе /coverage/wedge
const maxPolygonSteps = 360

type camerasRequest struct {
	Cameras        []models.Camera `json:"cameras"`
	PixelsPerMeter float64         `json:"pixelsPerMeter"`
}

type gridRequest struct {
	Cameras        []models.Camera `json:"cameras"`
	Width          float64         `json:"width"`
	Height         float64         `json:"height"`
	PixelsPerMeter float64         `json:"pixelsPerMeter"`
	GridSize       int             `json:"gridSize"`
}

// Wedge возвращает путь сектора камеры в одной полосе дальности.
// Пустой путь означает, что рисовать нечего. При steps > 0 дополнительно
// возвращается полигон с steps сегментами на каждую дугу, при заданном
// point - признак contains.
func (h *Handler) Wedge(c fiber.Ctx) error {
	var req wedgeRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := h.checkScene(map[string]interface{}{"cameras": []models.Camera{req.Camera}}); err != nil {
		return err
	}
	if req.RangeStart < 0 {
		return fiber.NewError(400, "rangeStart must not be negative")
	}
	if req.Steps < 0 || req.Steps > maxPolygonSteps {
		return fiber.NewError(400, fmt.Sprintf("steps must be between 0 and %d", maxPolygonSteps))
	}

	// Обратная полоса (rangeEnd < rangeStart) не ошибка, а пустой сектор
	w, ok := coverage.ComputeWedge(req.Camera, req.RangeStart, req.RangeEnd, models.NewScale(req.PixelsPerMeter))
	if !ok {
		resp := fiber.Map{
			"cameraId": req.Camera.ID,
			"path":     "",
			"empty":    true,
		}
		if req.Point != nil {
			resp["contains"] = false
		}
		return c.JSON(resp)
	}

	resp := fiber.Map{
		"cameraId": req.Camera.ID,
		"path":     w.Path().D(),
		"empty":    false,
	}
	if req.Steps > 0 {
		resp["polygon"] = w.Polygon(req.Steps)
	}
	if req.Point != nil {
		resp["contains"] = w.Contains(*req.Point)
	}
	return c.JSON(resp)
}

func (h *Handler) Zones(c fiber.Ctx) error {
	var req camerasRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := h.checkScene(map[string]interface{}{"cameras": req.Cameras}); err != nil {
		return err
	}

	zones := coverage.Zones(req.Cameras, models.NewScale(req.PixelsPerMeter))
	return c.JSON(fiber.Map{"zones": zones})
}

func (h *Handler) BlindSpots(c fiber.Ctx) error {
	req, err := h.decodeGrid(c)
	if err != nil {
		return err
	}

	spots := coverage.BlindSpots(req.Cameras, req.Width, req.Height, models.NewScale(req.PixelsPerMeter), req.GridSize)
	return c.JSON(fiber.Map{
		"blindSpots": spots,
		"count":      len(spots),
	})
}

func (h *Handler) Stats(c fiber.Ctx) error {
	req, err := h.decodeGrid(c)
	if err != nil {
		return err
	}

	stats := coverage.Stats(req.Cameras, req.Width, req.Height, models.NewScale(req.PixelsPerMeter), req.GridSize)
	return c.JSON(stats)
}

func (h *Handler) decodeGrid(c fiber.Ctx) (*gridRequest, error) {
	var req gridRequest
	if err := decodeBody(c, &req); err != nil {
		return nil, err
	}
	if err := h.checkScene(map[string]interface{}{"cameras": req.Cameras}); err != nil {
		return nil, err
	}
	if req.Width < 0 || req.Height < 0 {
		return nil, fiber.NewError(400, "width and height must not be negative")
	}
	if err := h.analyzer.CheckGrid(req.Width, req.Height, req.GridSize); err != nil {
		return nil, fiber.NewError(400, err.Error())
	}
	return &req, nil
}
