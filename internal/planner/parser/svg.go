package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"
)

// ============================================================
// XML Structures
// ============================================================

type SVG struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Group
}

type Group struct {
	Rects  []Rect  `xml:"rect"`
	Lines  []Line  `xml:"line"`
	Paths  []Path  `xml:"path"`
	Groups []Group `xml:"g"`
}

type Rect struct {
	ID     string  `xml:"id,attr"`
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
}

type Line struct {
	ID          string  `xml:"id,attr"`
	X1          float64 `xml:"x1,attr"`
	Y1          float64 `xml:"y1,attr"`
	X2          float64 `xml:"x2,attr"`
	Y2          float64 `xml:"y2,attr"`
	StrokeWidth string  `xml:"stroke-width,attr"`
}

type Path struct {
	ID string `xml:"id,attr"`
	D  string `xml:"d,attr"`
}

// Layout - то, что чертеж плана добавляет в проект
type Layout struct {
	Canvas models.Canvas `json:"canvas"`
	Walls  []models.Wall `json:"walls"`
}

const defaultLineThickness = 10.0

// ============================================================
// Parser
// ============================================================

// ParseFloorPlan читает стены, колонны и препятствия из SVG-чертежа.
// Элементы распознаются по префиксу id, остальные игнорируются.
func ParseFloorPlan(r io.Reader) (*Layout, error) {
	var svg SVG
	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("decode svg: %w", err)
	}

	layout := &Layout{Walls: []models.Wall{}}
	layout.Canvas.Width, layout.Canvas.Height = canvasSize(svg)

	if err := collect(svg.Group, layout); err != nil {
		return nil, err
	}
	return layout, nil
}

func collect(g Group, layout *Layout) error {
	for _, rect := range g.Rects {
		wallType := classifyElementByID(rect.ID)
		if wallType == "" {
			continue
		}
		layout.Walls = append(layout.Walls, rectWall(rect.ID, wallType, geometry.Rect{
			X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height,
		}))
	}

	for _, line := range g.Lines {
		if classifyElementByID(line.ID) != models.WallTypeWall {
			continue
		}
		thickness := defaultLineThickness
		if w, err := parseLength(line.StrokeWidth); err == nil && w > 0 {
			thickness = w
		}
		layout.Walls = append(layout.Walls, models.NewSegmentWall(line.ID,
			geometry.Point{X: line.X1, Y: line.Y1},
			geometry.Point{X: line.X2, Y: line.Y2},
			thickness))
	}

	for _, path := range g.Paths {
		wallType := classifyElementByID(path.ID)
		if wallType == "" {
			continue
		}
		points, err := ParsePath(path.D)
		if err != nil {
			return fmt.Errorf("path %s: %w", path.ID, err)
		}
		layout.Walls = append(layout.Walls, pathWalls(path.ID, wallType, points)...)
	}

	for _, child := range g.Groups {
		if err := collect(child, layout); err != nil {
			return err
		}
	}
	return nil
}

func classifyElementByID(id string) models.WallType {
	switch {
	case strings.HasPrefix(id, "Wall_"):
		return models.WallTypeWall
	case strings.HasPrefix(id, "Pillar_"), strings.HasPrefix(id, "Column_"):
		return models.WallTypePillar
	case strings.HasPrefix(id, "Obstacle_"):
		return models.WallTypeObstacle
	}
	return ""
}

// rectWall преобразует прямоугольник стены в осевую линию по длинной
// стороне, короткая сторона становится толщиной. Колонны и препятствия
// остаются прямоугольниками.
func rectWall(id string, wallType models.WallType, rect geometry.Rect) models.Wall {
	if wallType != models.WallTypeWall {
		return models.NewRectWall(id, wallType, rect)
	}

	var p1, p2 geometry.Point
	if rect.Width > rect.Height {
		p1 = geometry.Point{X: rect.X, Y: rect.Y + rect.Height/2}
		p2 = geometry.Point{X: rect.X + rect.Width, Y: rect.Y + rect.Height/2}
	} else {
		p1 = geometry.Point{X: rect.X + rect.Width/2, Y: rect.Y}
		p2 = geometry.Point{X: rect.X + rect.Width/2, Y: rect.Y + rect.Height}
	}
	return models.NewSegmentWall(id, p1, p2, math.Min(rect.Width, rect.Height))
}

// pathWalls разбивает ломаную стены на отдельные сегменты; колонны,
// нарисованные path, становятся своим bounding box
func pathWalls(id string, wallType models.WallType, points []geometry.Point) []models.Wall {
	if wallType != models.WallTypeWall {
		return []models.Wall{models.NewRectWall(id, wallType, bounds(points))}
	}

	var walls []models.Wall
	for i := 0; i+1 < len(points); i++ {
		if points[i] == points[i+1] {
			continue
		}
		walls = append(walls, models.NewSegmentWall("", points[i], points[i+1], defaultLineThickness))
	}

	if len(walls) == 1 {
		walls[0].ID = id
		return walls
	}
	for i := range walls {
		walls[i].ID = fmt.Sprintf("%s_%d", id, i+1)
	}
	return walls
}

func bounds(points []geometry.Point) geometry.Rect {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return geometry.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func canvasSize(svg SVG) (float64, float64) {
	w, errW := parseLength(svg.Width)
	h, errH := parseLength(svg.Height)
	if errW == nil && errH == nil && w > 0 && h > 0 {
		return w, h
	}

	parts := strings.Fields(strings.ReplaceAll(svg.ViewBox, ",", " "))
	if len(parts) == 4 {
		vw, errW := strconv.ParseFloat(parts[2], 64)
		vh, errH := strconv.ParseFloat(parts[3], 64)
		if errW == nil && errH == nil {
			return vw, vh
		}
	}
	return 0, 0
}

func parseLength(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	return strconv.ParseFloat(s, 64)
}
