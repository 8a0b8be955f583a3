package models

import "coverage-planner/internal/planner/geometry"

// ============================================================
// Sensors
// ============================================================

type CameraType string

const (
	CameraBullet CameraType = "bullet"
	CameraDome   CameraType = "dome"
	CameraPTZ    CameraType = "ptz"
)

// Camera - направленная камера на холсте. Rotation и FOV в градусах,
// Range в метрах. Type влияет только на отрисовку.
type Camera struct {
	ID       string     `json:"id"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Rotation float64    `json:"rotation"`
	FOV      float64    `json:"fov"`
	Range    float64    `json:"range"`
	Type     CameraType `json:"type"`
}

func (c Camera) Position() geometry.Point {
	return geometry.Point{X: c.X, Y: c.Y}
}

// Sector возвращает видимый сектор камеры с дальностью в пикселях
func (c Camera) Sector(scale Scale) geometry.Sector {
	return geometry.Sector{
		Origin:   c.Position(),
		Rotation: c.Rotation,
		FOV:      c.FOV,
		Radius:   scale.ToPixels(c.Range),
	}
}

// PirSensor - пассивный инфракрасный датчик движения: та же геометрия,
// что у камеры, но без типа
type PirSensor struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	FOV      float64 `json:"fov"`
	Range    float64 `json:"range"`
}

func (p PirSensor) Position() geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

func (p PirSensor) Sector(scale Scale) geometry.Sector {
	return geometry.Sector{
		Origin:   p.Position(),
		Rotation: p.Rotation,
		FOV:      p.FOV,
		Radius:   scale.ToPixels(p.Range),
	}
}

// CameraSectors преобразует камеры в секторы в порядке слайса
func CameraSectors(cameras []Camera, scale Scale) []geometry.Sector {
	sectors := make([]geometry.Sector, 0, len(cameras))
	for _, c := range cameras {
		sectors = append(sectors, c.Sector(scale))
	}
	return sectors
}

func PirSectors(pirs []PirSensor, scale Scale) []geometry.Sector {
	sectors := make([]geometry.Sector, 0, len(pirs))
	for _, p := range pirs {
		sectors = append(sectors, p.Sector(scale))
	}
	return sectors
}
