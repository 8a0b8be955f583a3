package render

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"
)

// ============================================================
// Renderer
// ============================================================

// Ключи слоев в ProjectData.Layers
const (
	LayerCoverage = "coverage"
	LayerWalls    = "walls"
	LayerCameras  = "cameras"
	LayerPirs     = "pirs"
)

const (
	sensorRadius   = 6.0
	blindSpotColor = "rgba(15, 23, 42, 0.35)"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render рисует сцену и ее анализ одним SVG-документом. Скрытые слои
// пропускаются, прозрачность слоя применяется к его группе.
func (r *Renderer) Render(project *models.ProjectData, result *models.Analysis) (string, error) {
	if project == nil || result == nil {
		return "", fmt.Errorf("project and analysis are required")
	}

	width, height := result.Canvas.Width, result.Canvas.Height

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatFloat(width), formatFloat(height), formatFloat(width), formatFloat(height)))
	builder.WriteString("\n")

	r.group(&builder, project, LayerCoverage, append(r.renderZones(result.Zones), r.renderBlindSpots(result.BlindSpots)...))
	r.group(&builder, project, LayerWalls, r.renderWalls(project.Walls))
	r.group(&builder, project, LayerCameras, r.renderCameras(project.Cameras))
	r.group(&builder, project, LayerPirs, r.renderPirs(project.Pirs))

	builder.WriteString(`</svg>`)
	return builder.String(), nil
}

func (r *Renderer) group(b *strings.Builder, project *models.ProjectData, layer string, elements []string) {
	settings, ok := project.Layers[layer]
	if ok && !settings.Visible {
		return
	}
	if len(elements) == 0 {
		return
	}

	b.WriteString(fmt.Sprintf(`  <g id="%s"`, layer))
	if ok && settings.Opacity != nil && *settings.Opacity < 1 {
		b.WriteString(fmt.Sprintf(` opacity="%s"`, formatFloat(math.Max(*settings.Opacity, 0))))
	}
	b.WriteString(">\n")

	for _, elem := range elements {
		b.WriteString("    ")
		b.WriteString(elem)
		b.WriteString("\n")
	}
	b.WriteString("  </g>\n")
}

// ============================================================
// Element renderers
// ============================================================

func (r *Renderer) renderZones(zones []models.CoverageZone) []string {
	out := make([]string, 0, len(zones))
	for _, z := range zones {
		out = append(out, fmt.Sprintf(`<path data-camera="%s" d="%s" fill="%s" stroke="none" />`,
			html.EscapeString(z.CameraID), z.Path, z.Color))
	}
	return out
}

func (r *Renderer) renderBlindSpots(spots []models.BlindSpot) []string {
	out := make([]string, 0, len(spots))
	for _, s := range spots {
		side := math.Sqrt(s.Area)
		out = append(out, fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			formatFloat(s.X-side/2), formatFloat(s.Y-side/2), formatFloat(side), formatFloat(side), blindSpotColor))
	}
	return out
}

func (r *Renderer) renderWalls(walls []models.Wall) []string {
	out := make([]string, 0, len(walls))
	for _, w := range walls {
		id := html.EscapeString(w.ID)

		switch shape := w.Shape.(type) {
		case models.WallSegment:
			thickness := w.Thickness
			if thickness <= 0 {
				thickness = 10
			}
			out = append(out, fmt.Sprintf(`<line id="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="#111" stroke-width="%s" stroke-linecap="square" />`,
				id, formatFloat(shape.A.X), formatFloat(shape.A.Y), formatFloat(shape.B.X), formatFloat(shape.B.Y), formatFloat(thickness)))

		case models.Pillar:
			fill := "#444"
			if w.Type == models.WallTypeObstacle {
				fill = "#8b5a2b"
			}
			out = append(out, fmt.Sprintf(`<rect id="%s" x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
				id, formatFloat(shape.X), formatFloat(shape.Y), formatFloat(shape.Width), formatFloat(shape.Height), fill))
		}
	}
	return out
}

func (r *Renderer) renderCameras(cameras []models.Camera) []string {
	out := make([]string, 0, len(cameras)*2)
	for _, cam := range cameras {
		tip := geometry.Polar(cam.Position(), sensorRadius*2.5, cam.Rotation)
		out = append(out,
			fmt.Sprintf(`<circle id="%s" class="camera-%s" cx="%s" cy="%s" r="%s" fill="#2563eb" />`,
				html.EscapeString(cam.ID), cameraClass(cam.Type), formatFloat(cam.X), formatFloat(cam.Y), formatFloat(sensorRadius)),
			fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#2563eb" stroke-width="2" />`,
				formatFloat(cam.X), formatFloat(cam.Y), formatFloat(tip.X), formatFloat(tip.Y)),
		)
	}
	return out
}

func (r *Renderer) renderPirs(pirs []models.PirSensor) []string {
	out := make([]string, 0, len(pirs))
	for _, p := range pirs {
		out = append(out, fmt.Sprintf(`<circle id="%s" cx="%s" cy="%s" r="%s" fill="none" stroke="#9333ea" stroke-width="2" />`,
			html.EscapeString(p.ID), formatFloat(p.X), formatFloat(p.Y), formatFloat(sensorRadius)))
	}
	return out
}

// ============================================================
// Helpers
// ============================================================

func cameraClass(t models.CameraType) string {
	if t == "" {
		return string(models.CameraBullet)
	}
	return string(t)
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
