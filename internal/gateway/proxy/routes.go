package proxy

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Planner Routes
// ============================================================

type route struct {
	method string
	path   string
}

var plannerRoutes = []route{
	{fiber.MethodPost, "/calibrate"},
	{fiber.MethodPost, "/coverage/wedge"},
	{fiber.MethodPost, "/coverage/zones"},
	{fiber.MethodPost, "/coverage/blind-spots"},
	{fiber.MethodPost, "/coverage/stats"},
	{fiber.MethodPost, "/walls/raycast"},
	{fiber.MethodPost, "/walls/length"},
	{fiber.MethodPost, "/analyze"},
	{fiber.MethodPost, "/import/svg"},
	{fiber.MethodPost, "/reports"},
	{fiber.MethodGet, "/reports"},
	{fiber.MethodPost, "/render/svg"},
	{fiber.MethodPost, "/debug/heatmap"},
}

// MountPlanner публикует все эндпоинты планировщика на router
func MountPlanner(router fiber.Router, plannerURL string) {
	for _, r := range plannerRoutes {
		router.Add([]string{r.method}, r.path, ProxyTo(plannerURL+r.path))
	}

	router.Get("/reports/:id", func(c fiber.Ctx) error {
		return Forward(c, fmt.Sprintf("%s/reports/%s", plannerURL, url.PathEscape(c.Params("id"))))
	})
}
