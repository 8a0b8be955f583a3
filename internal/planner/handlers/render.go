package handlers

import (
	"log"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Render Handler
// ============================================================

// RenderSVG анализирует присланный проект и возвращает его как SVG-оверлей
func (h *Handler) RenderSVG(c fiber.Ctx) error {
	project, err := h.decodeProject(c.Body())
	if err != nil {
		return err
	}

	result, err := h.analyze(project)
	if err != nil {
		return err
	}

	svg, err := h.renderer.Render(project, result)
	if err != nil {
		log.Printf("[RENDER] Render error: %v", err)
		return err
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}
