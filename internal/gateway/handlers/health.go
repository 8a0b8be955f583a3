package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe готов, когда планировщик отвечает на свою проверку готовности
func ReadinessProbe(plannerURL string) fiber.Handler {
	client := &http.Client{Timeout: 3 * time.Second}

	return func(c fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, plannerURL+"/health/ready", nil)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"status": "not ready", "error": err.Error()})
		}

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("[GATEWAY] planner unreachable: %v", err)
			return c.Status(503).JSON(fiber.Map{"status": "not ready", "planner": "unreachable"})
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return c.Status(503).JSON(fiber.Map{"status": "not ready", "planner": resp.Status})
		}
		return c.JSON(fiber.Map{"status": "ready", "planner": "ok"})
	}
}

func StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}
