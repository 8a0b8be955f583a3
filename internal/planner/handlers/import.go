package handlers

import (
	"log"
	"strconv"

	"coverage-planner/internal/planner/parser"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// SVG Import Handler
// ============================================================

// ImportSVG читает стены и размер холста из загруженного чертежа плана.
// Поле формы "snap" сводит близкие концы стен, "tolerance" задает
// расстояние привязки в пикселях.
func (h *Handler) ImportSVG(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		log.Printf("[IMPORT] FormFile error: %v", err)
		return fiber.NewError(400, "file required in multipart/form-data")
	}

	log.Printf("[IMPORT] File received: %s, size: %d", file.Filename, file.Size)

	f, err := file.Open()
	if err != nil {
		return fiber.NewError(500, "failed to open file")
	}
	defer f.Close()

	layout, err := parser.ParseFloorPlan(f)
	if err != nil {
		log.Printf("[IMPORT] Parse error: %v", err)
		return fiber.NewError(400, err.Error())
	}

	if snap, _ := strconv.ParseBool(c.FormValue("snap")); snap {
		tolerance := parser.DefaultMergeTolerance
		if v, err := strconv.ParseFloat(c.FormValue("tolerance"), 64); err == nil && v > 0 {
			tolerance = v
		}
		layout.Walls = parser.SnapWalls(layout.Walls, tolerance)
	}

	log.Printf("[IMPORT] Imported %d walls, canvas %gx%g", len(layout.Walls), layout.Canvas.Width, layout.Canvas.Height)
	return c.JSON(layout)
}
