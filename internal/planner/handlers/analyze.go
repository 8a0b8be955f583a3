package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"coverage-planner/internal/planner/analysis"
	"coverage-planner/internal/planner/coverage"
	"coverage-planner/internal/planner/models"
	"coverage-planner/internal/planner/repository"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Analysis & Report Handlers
// ============================================================

type reportRequest struct {
	Name    string          `json:"name"`
	Project json.RawMessage `json:"project"`
}

// Analyze валидирует документ проекта и возвращает все производные данные
func (h *Handler) Analyze(c fiber.Ctx) error {
	project, err := h.decodeProject(c.Body())
	if err != nil {
		return err
	}

	result, err := h.analyze(project)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *Handler) CreateReport(c fiber.Ctx) error {
	var req reportRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	project, err := h.decodeProject(req.Project)
	if err != nil {
		return err
	}

	result, err := h.analyze(project)
	if err != nil {
		return err
	}

	name := req.Name
	if name == "" {
		name = project.Name
	}
	if name == "" {
		name = "untitled"
	}

	report, err := h.reports.Save(c.Context(), name, result)
	if err != nil {
		return err
	}

	log.Printf("[REPORTS] Saved report %s (%s), coverage %.1f%%", report.ID, report.Name, result.Stats.TotalCoverage)
	return c.Status(201).JSON(report)
}

func (h *Handler) ListReports(c fiber.Ctx) error {
	reports, err := h.reports.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reports": reports})
}

func (h *Handler) GetReport(c fiber.Ctx) error {
	report, err := h.reports.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(404, err.Error())
		}
		return err
	}
	return c.JSON(report)
}

func (h *Handler) decodeProject(data []byte) (*models.ProjectData, error) {
	if len(data) == 0 {
		return nil, fiber.NewError(400, "project required")
	}
	if err := h.validator.ValidateBytes(data); err != nil {
		return nil, asBadRequest(err)
	}

	var project models.ProjectData
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fiber.NewError(400, "invalid project: "+err.Error())
	}
	return &project, nil
}

func (h *Handler) analyze(project *models.ProjectData) (*models.Analysis, error) {
	result, err := h.analyzer.Analyze(project)
	if err != nil {
		if errors.Is(err, analysis.ErrNoCanvas) || errors.Is(err, analysis.ErrNoProject) ||
			errors.Is(err, coverage.ErrGridTooLarge) {
			return nil, fiber.NewError(400, err.Error())
		}
		return nil, err
	}
	return result, nil
}
