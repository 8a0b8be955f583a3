package geometry

import "math"

// ============================================================
// Points
// ============================================================

// Point - позиция на холсте в пикселях. Y растет вниз.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Distance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Polar возвращает точку на радиусе r и угле deg (градусы) вокруг origin
func Polar(origin Point, r, deg float64) Point {
	rad := ToRadians(deg)
	return Point{
		X: origin.X + r*math.Cos(rad),
		Y: origin.Y + r*math.Sin(rad),
	}
}
