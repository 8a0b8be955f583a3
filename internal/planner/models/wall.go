package models

import (
	"encoding/json"
	"fmt"

	"coverage-planner/internal/planner/geometry"
)

// ============================================================
// Walls & obstacles
// ============================================================

type WallType string

const (
	WallTypeWall     WallType = "wall"
	WallTypePillar   WallType = "pillar"
	WallTypeObstacle WallType = "obstacle"
)

// Shape - геометрия стены: WallSegment или Pillar
type Shape interface {
	// Points возвращает форму для JSON: x1,y1,x2,y2 для отрезков и
	// x,y,width,height для прямоугольников
	Points() [4]float64
	shape()
}

type WallSegment struct {
	geometry.Segment
}

func (WallSegment) shape() {}

func (s WallSegment) Points() [4]float64 {
	return [4]float64{s.A.X, s.A.Y, s.B.X, s.B.Y}
}

// Pillar - прямоугольное основание колонны или препятствия
type Pillar struct {
	geometry.Rect
}

func (Pillar) shape() {}

func (p Pillar) Points() [4]float64 {
	return [4]float64{p.X, p.Y, p.Width, p.Height}
}

// Wall перекрывает линию видимости. Thickness в пикселях, Height в метрах.
type Wall struct {
	ID        string
	Type      WallType
	Shape     Shape
	Thickness float64
	Height    float64
}

func NewSegmentWall(id string, a, b geometry.Point, thickness float64) Wall {
	return Wall{
		ID:        id,
		Type:      WallTypeWall,
		Shape:     WallSegment{geometry.Segment{A: a, B: b}},
		Thickness: thickness,
	}
}

func NewRectWall(id string, wallType WallType, rect geometry.Rect) Wall {
	return Wall{
		ID:    id,
		Type:  wallType,
		Shape: Pillar{rect},
	}
}

type wireWall struct {
	ID        string    `json:"id"`
	Type      WallType  `json:"type"`
	Points    []float64 `json:"points"`
	Thickness float64   `json:"thickness"`
	Height    float64   `json:"height"`
}

func (w Wall) MarshalJSON() ([]byte, error) {
	var points []float64
	if w.Shape != nil {
		pts := w.Shape.Points()
		points = pts[:]
	}
	return json.Marshal(wireWall{
		ID:        w.ID,
		Type:      w.Type,
		Points:    points,
		Thickness: w.Thickness,
		Height:    w.Height,
	})
}

func (w *Wall) UnmarshalJSON(data []byte) error {
	var raw wireWall
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Points) != 4 {
		return fmt.Errorf("wall %q: expected 4 points, got %d", raw.ID, len(raw.Points))
	}

	p := raw.Points
	var shape Shape
	switch raw.Type {
	case WallTypeWall:
		shape = WallSegment{geometry.Segment{
			A: geometry.Point{X: p[0], Y: p[1]},
			B: geometry.Point{X: p[2], Y: p[3]},
		}}
	case WallTypePillar, WallTypeObstacle:
		shape = Pillar{geometry.Rect{X: p[0], Y: p[1], Width: p[2], Height: p[3]}}
	default:
		return fmt.Errorf("wall %q: unknown type %q", raw.ID, raw.Type)
	}

	*w = Wall{
		ID:        raw.ID,
		Type:      raw.Type,
		Shape:     shape,
		Thickness: raw.Thickness,
		Height:    raw.Height,
	}
	return nil
}
