package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"coverage-planner/internal/planner/analysis"
	"coverage-planner/internal/planner/models"
	"coverage-planner/internal/planner/render"
	"coverage-planner/internal/planner/schema"

	"github.com/gofiber/fiber/v3"
)

// ReportStore сохраняет результаты анализа
type ReportStore interface {
	Save(ctx context.Context, name string, analysis *models.Analysis) (*models.Report, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	List(ctx context.Context) ([]models.ReportSummary, error)
	Ping(ctx context.Context) error
}

// ============================================================
// Planner Handler
// ============================================================

type Handler struct {
	analyzer  *analysis.Analyzer
	validator *schema.Validator
	reports   ReportStore
	renderer  *render.Renderer
}

func New(analyzer *analysis.Analyzer, validator *schema.Validator, reports ReportStore) *Handler {
	return &Handler{
		analyzer:  analyzer,
		validator: validator,
		reports:   reports,
		renderer:  render.NewRenderer(),
	}
}

// Register регистрирует все маршруты планировщика на router
func (h *Handler) Register(router fiber.Router) {
	router.Post("/calibrate", h.Calibrate)

	router.Post("/coverage/wedge", h.Wedge)
	router.Post("/coverage/zones", h.Zones)
	router.Post("/coverage/blind-spots", h.BlindSpots)
	router.Post("/coverage/stats", h.Stats)

	router.Post("/walls/raycast", h.Raycast)
	router.Post("/walls/length", h.WallLengths)

	router.Post("/analyze", h.Analyze)
	router.Post("/import/svg", h.ImportSVG)

	router.Post("/reports", h.CreateReport)
	router.Get("/reports", h.ListReports)
	router.Get("/reports/:id", h.GetReport)

	router.Post("/render/svg", h.RenderSVG)
	router.Post("/debug/heatmap", h.DebugHeatmap)
}

// Ready проверяет доступность хранилища отчетов
func (h *Handler) Ready(c fiber.Ctx) error {
	if err := h.reports.Ping(c.Context()); err != nil {
		log.Printf("[PLANNER] readiness: %v", err)
		return c.Status(503).JSON(fiber.Map{"status": "not ready", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

// ============================================================
// Errors & helpers
// ============================================================

// ErrorHandler отдает любую ошибку обработчика как {"error": ...}.
// Нарушения схемы дополнительно содержат details.
func ErrorHandler(c fiber.Ctx, err error) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return c.Status(400).JSON(fiber.Map{
			"error":   "validation failed",
			"details": verr.Details,
		})
	}

	code := 500
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= 500 {
		log.Printf("[PLANNER] %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func decodeBody(c fiber.Ctx, dst interface{}) error {
	if len(c.Body()) == 0 {
		return fiber.NewError(400, "body required")
	}
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		log.Printf("[PLANNER] Decode error on %s: %v", c.Path(), err)
		return fiber.NewError(400, "invalid JSON payload")
	}
	return nil
}

// asBadRequest сохраняет нарушения схемы как есть, а любую другую ошибку
// валидации (например, битый JSON) превращает в 400
func asBadRequest(err error) error {
	if err == nil {
		return nil
	}
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return err
	}
	return fiber.NewError(400, err.Error())
}

// checkScene проверяет датчики и стены, пришедшие вне полного документа
// проекта
func (h *Handler) checkScene(scene map[string]interface{}) error {
	return asBadRequest(h.validator.Validate(scene))
}
