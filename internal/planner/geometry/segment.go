package geometry

// ============================================================
// Segments
// ============================================================

// Segment - прямой отрезок стены между A и B
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// Intersect возвращает точку пересечения двух отрезков. Параллельные и
// совпадающие отрезки не пересекаются.
func (s Segment) Intersect(o Segment) (Point, bool) {
	x1, y1 := s.A.X, s.A.Y
	x2, y2 := s.B.X, s.B.Y
	x3, y3 := o.A.X, o.A.Y
	x4, y4 := o.B.X, o.B.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return Point{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}, true
}
