package handlers

import (
	"bytes"
	"fmt"
	"strconv"

	"coverage-planner/internal/planner/coverage"
	"coverage-planner/internal/planner/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Debug Heatmap
// ============================================================

var depthPalette = []string{"#1a1a2e", "#16537e", "#22c55e", "#eab308", "#ef4444"}

// DebugHeatmap отдает HTML-график: сколько камер видит каждую ячейку сетки
// присланного проекта
func (h *Handler) DebugHeatmap(c fiber.Ctx) error {
	project, err := h.decodeProject(c.Body())
	if err != nil {
		return err
	}

	width, height := project.CanvasSize()
	if width <= 0 || height <= 0 {
		return fiber.NewError(400, "canvas size is unknown")
	}
	gridSize := h.analyzer.GridSize(project)
	if err := h.analyzer.CheckGrid(width, height, gridSize); err != nil {
		return fiber.NewError(400, err.Error())
	}

	hm := coverage.Heatmap(project.Cameras, width, height, h.analyzer.Scale(project), gridSize)

	title := project.Name
	if title == "" {
		title = "Coverage depth"
	}
	page, err := renderHeatmap(hm, title)
	if err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.Send(page)
}

func renderHeatmap(hm models.Heatmap, title string) ([]byte, error) {
	xs := make([]string, hm.Cols)
	for col := range xs {
		xs[col] = strconv.Itoa(col * hm.GridSize)
	}
	// категории идут снизу вверх; переворачиваем строки под экранные координаты
	ys := make([]string, hm.Rows)
	for row := range ys {
		ys[hm.Rows-1-row] = strconv.Itoa(row * hm.GridSize)
	}

	data := make([]opts.HeatMapData, 0, hm.Rows*hm.Cols)
	for row, cells := range hm.Depth {
		for col, depth := range cells {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{col, hm.Rows - 1 - row, depth}})
		}
	}

	maxDepth := hm.MaxDepth
	if maxDepth < 1 {
		maxDepth = 1
	}

	chart := charts.NewHeatMap()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Coverage Heatmap", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("grid=%dpx cells=%dx%d maxDepth=%d", hm.GridSize, hm.Cols, hm.Rows, hm.MaxDepth)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs, Name: "x (px)"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys, Name: "y (px)"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxDepth),
			InRange:    &opts.VisualMapInRange{Color: depthPalette},
		}),
	)
	chart.SetXAxis(xs).AddSeries("depth", data)

	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
