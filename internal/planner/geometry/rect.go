package geometry

// ============================================================
// Rectangles
// ============================================================

// Rect - прямоугольник по осям с привязкой к левому верхнему углу
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains проверяет, лежит ли p внутри r, включая границы
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Edges возвращает четыре стороны по часовой стрелке, начиная с верхней
func (r Rect) Edges() [4]Segment {
	tl := Point{X: r.X, Y: r.Y}
	tr := Point{X: r.X + r.Width, Y: r.Y}
	br := Point{X: r.X + r.Width, Y: r.Y + r.Height}
	bl := Point{X: r.X, Y: r.Y + r.Height}

	return [4]Segment{
		{A: tl, B: tr},
		{A: tr, B: br},
		{A: br, B: bl},
		{A: bl, B: tl},
	}
}

func (r Rect) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
