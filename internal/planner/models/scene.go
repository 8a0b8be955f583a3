package models

// ============================================================
// Floor plan
// ============================================================

// FloorPlan - загруженная подложка плана и состояние ее калибровки
type FloorPlan struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	PixelsPerMeter  float64 `json:"pixelsPerMeter,omitempty"`
	RealWorldWidth  float64 `json:"realWorldWidth,omitempty"`
	RealWorldHeight float64 `json:"realWorldHeight,omitempty"`
	IsCalibrated    bool    `json:"isCalibrated"`
}

// Scale возвращает откалиброванный масштаб или fallback для некалиброванного плана
func (f *FloorPlan) Scale(fallback Scale) Scale {
	if f == nil || !f.IsCalibrated || f.PixelsPerMeter <= 0 {
		return fallback
	}
	return NewScale(f.PixelsPerMeter)
}

// ============================================================
// Project
// ============================================================

type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayerSettings - отображение слоя. Opacity == nil означает непрозрачный слой,
// явный 0 - полностью прозрачный.
type LayerSettings struct {
	Visible bool     `json:"visible"`
	Locked  bool     `json:"locked"`
	Opacity *float64 `json:"opacity,omitempty"`
}

type CoverageSettings struct {
	ShowCoverage   bool `json:"showCoverage"`
	ShowBlindSpots bool `json:"showBlindSpots"`
	ShowHeatmap    bool `json:"showHeatmap"`
	GridSize       int  `json:"gridSize,omitempty"`
}

// ProjectData - сцена, которую читает движок. Layers индексируются по
// категории (floorPlan, cameras, pirs, walls, coverage).
type ProjectData struct {
	Name      string                   `json:"name,omitempty"`
	Canvas    Canvas                   `json:"canvas"`
	FloorPlan *FloorPlan               `json:"floorPlan,omitempty"`
	Cameras   []Camera                 `json:"cameras"`
	Pirs      []PirSensor              `json:"pirs"`
	Walls     []Wall                   `json:"walls"`
	Layers    map[string]LayerSettings `json:"layers,omitempty"`
	Settings  CoverageSettings         `json:"settings"`
}

// CanvasSize возвращает явно заданный холст, а если его нет - размер плана
func (p *ProjectData) CanvasSize() (float64, float64) {
	if p.Canvas.Width > 0 && p.Canvas.Height > 0 {
		return p.Canvas.Width, p.Canvas.Height
	}
	if p.FloorPlan != nil {
		return p.FloorPlan.X + p.FloorPlan.Width, p.FloorPlan.Y + p.FloorPlan.Height
	}
	return 0, 0
}
