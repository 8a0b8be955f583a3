package geometry

import "math"

// ============================================================
// Angles
// ============================================================

func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDegrees приводит угол к диапазону [-180, 180] за постоянное время
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

// Bearing возвращает направление от одной точки к другой в экранных
// координатах, в градусах: 0 - вдоль +x, углы растут по часовой стрелке.
func Bearing(from, to Point) float64 {
	return ToDegrees(math.Atan2(to.Y-from.Y, to.X-from.X))
}

// ============================================================
// Sectors
// ============================================================

// Sector - угловая зона обнаружения направленного датчика.
// Rotation и FOV в градусах, Radius в пикселях.
type Sector struct {
	Origin   Point
	Rotation float64
	FOV      float64
	Radius   float64
}

// Contains - единая проверка попадания для всех расчетов покрытия:
// p внутри, если он не дальше Radius и его направление отклоняется от
// Rotation не больше чем на FOV/2.
func (s Sector) Contains(p Point) bool {
	if Distance(s.Origin, p) > s.Radius {
		return false
	}
	diff := NormalizeDegrees(Bearing(s.Origin, p) - s.Rotation)
	return math.Abs(diff) <= s.FOV/2
}

// StartAngle и EndAngle ограничивают сектор по часовой стрелке, в градусах
func (s Sector) StartAngle() float64 {
	return s.Rotation - s.FOV/2
}

func (s Sector) EndAngle() float64 {
	return s.Rotation + s.FOV/2
}
