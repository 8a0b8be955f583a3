package walls

import (
	"math"

	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"
)

// ============================================================
// Ray casting
// ============================================================

// Hit - первая точка пересечения луча со стеной; Distance в пикселях
type Hit struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Distance float64 `json:"distance"`
	WallID   string  `json:"wallId"`
}

// CastRay пускает луч из origin по направлению bearing (градусы) на maxRange
// пикселей и возвращает ближайшую пересеченную стену или грань колонны
func CastRay(origin geometry.Point, bearing, maxRange float64, walls []models.Wall) (Hit, bool) {
	ray := geometry.Segment{A: origin, B: geometry.Polar(origin, maxRange, bearing)}

	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, wall := range walls {
		for _, edge := range Edges(wall) {
			p, ok := ray.Intersect(edge)
			if !ok {
				continue
			}
			d := geometry.Distance(origin, p)
			if d < best.Distance {
				best = Hit{X: p.X, Y: p.Y, Distance: d, WallID: wall.ID}
				found = true
			}
		}
	}

	return best, found
}

// CastSensorRay пускает луч из камеры на ее дальность
func CastSensorRay(cam models.Camera, bearing float64, walls []models.Wall, scale models.Scale) (Hit, bool) {
	return CastRay(cam.Position(), bearing, scale.ToPixels(cam.Range), walls)
}

// VisibleRange - на сколько пикселей камера видит по направлению bearing,
// пока луч не упрется в стену
func VisibleRange(cam models.Camera, bearing float64, walls []models.Wall, scale models.Scale) float64 {
	if hit, ok := CastSensorRay(cam, bearing, walls, scale); ok {
		return hit.Distance
	}
	return scale.ToPixels(cam.Range)
}

// ============================================================
// Wall geometry
// ============================================================

// Edges возвращает отрезки, в которые может попасть луч: саму стену или
// четыре стороны колонны
func Edges(wall models.Wall) []geometry.Segment {
	switch shape := wall.Shape.(type) {
	case models.WallSegment:
		return []geometry.Segment{shape.Segment}
	case models.Pillar:
		edges := shape.Edges()
		return edges[:]
	}
	return nil
}

// Length - длина стены или периметр колонны в метрах
func Length(wall models.Wall, scale models.Scale) float64 {
	switch shape := wall.Shape.(type) {
	case models.WallSegment:
		return scale.ToMeters(shape.Length())
	case models.Pillar:
		return scale.ToMeters(shape.Perimeter())
	}
	return 0
}

// Lengths измеряет все стены по порядку
func Lengths(walls []models.Wall, scale models.Scale) []models.WallLength {
	out := make([]models.WallLength, 0, len(walls))
	for _, w := range walls {
		out = append(out, models.WallLength{WallID: w.ID, Type: w.Type, Meters: Length(w, scale)})
	}
	return out
}

// ContainsPoint проверяет, лежит ли p внутри колонны или препятствия.
// У обычной стены нет площади.
func ContainsPoint(wall models.Wall, p geometry.Point) bool {
	pillar, ok := wall.Shape.(models.Pillar)
	return ok && pillar.Contains(p)
}

// Enclosing возвращает первую колонну или препятствие, внутри которого лежит p
func Enclosing(walls []models.Wall, p geometry.Point) (models.Wall, bool) {
	for _, w := range walls {
		if ContainsPoint(w, p) {
			return w, true
		}
	}
	return models.Wall{}, false
}
