package models

// ============================================================
// Derived coverage data
// ============================================================

type RangeBand struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// CoverageZone - сектор одной камеры в одной полосе дальности
type CoverageZone struct {
	CameraID string    `json:"cameraId"`
	Color    string    `json:"color"`
	Path     string    `json:"path"`
	Range    RangeBand `json:"range"`
}

// BlindSpot - центр непокрытой ячейки сетки; Area в квадратных пикселях
type BlindSpot struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Area float64 `json:"area"`
}

type CoverageStats struct {
	TotalCoverage     float64 `json:"totalCoverage"`
	RedundantCoverage float64 `json:"redundantCoverage"`
	BlindSpotCount    int     `json:"blindSpotCount"`
	AverageOverlap    float64 `json:"averageOverlap"`
	TotalCells        int     `json:"totalCells"`
	CoveredCells      int     `json:"coveredCells"`
}

// Heatmap - сколько датчиков видит каждую ячейку сетки, построчно
type Heatmap struct {
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	GridSize int     `json:"gridSize"`
	MaxDepth int     `json:"maxDepth"`
	Depth    [][]int `json:"depth"`
}

type WallLength struct {
	WallID string   `json:"wallId"`
	Type   WallType `json:"type"`
	Meters float64  `json:"meters"`
}

// ObstructedSensor - датчик, установленный внутри колонны или препятствия
type ObstructedSensor struct {
	SensorID string `json:"sensorId"`
	Kind     string `json:"kind"`
	WallID   string `json:"wallId"`
}

// Analysis - все, что движок вычисляет по одному ProjectData
type Analysis struct {
	PixelsPerMeter float64        `json:"pixelsPerMeter"`
	GridSize       int            `json:"gridSize"`
	Canvas         Canvas         `json:"canvas"`
	Zones          []CoverageZone `json:"zones"`
	BlindSpots     []BlindSpot    `json:"blindSpots"`
	Heatmap        *Heatmap       `json:"heatmap,omitempty"`
	Stats          CoverageStats  `json:"stats"`
	PirStats       CoverageStats  `json:"pirStats"`
	WallLengths    []WallLength   `json:"wallLengths"`

	ObstructedSensors []ObstructedSensor `json:"obstructedSensors"`
}

// Report - сохраненный анализ
type Report struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedAt string   `json:"createdAt"`
	Analysis  Analysis `json:"analysis"`
}

// ReportSummary - краткая форма Report для списка
type ReportSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CreatedAt     string  `json:"createdAt"`
	TotalCoverage float64 `json:"totalCoverage"`
	BlindSpots    int     `json:"blindSpotCount"`
}
