package analysis

import (
	"errors"
	"fmt"

	"coverage-planner/internal/planner/coverage"
	"coverage-planner/internal/planner/models"
	"coverage-planner/internal/planner/walls"
)

var (
	ErrNoProject = errors.New("project is required")
	ErrNoCanvas  = errors.New("canvas size is unknown: set canvas or floor plan dimensions")
)

// Options - параметры анализатора; нулевые значения заменяются значениями по умолчанию
type Options struct {
	GridSize     int
	MaxCells     int
	DefaultScale models.Scale
}

// Analyzer считает все результаты покрытия для проекта за один проход
type Analyzer struct {
	gridSize     int
	maxCells     int
	defaultScale models.Scale
}

func New(opts Options) *Analyzer {
	a := &Analyzer{
		gridSize:     opts.GridSize,
		maxCells:     opts.MaxCells,
		defaultScale: opts.DefaultScale,
	}
	if a.gridSize <= 0 {
		a.gridSize = coverage.DefaultGridSize
	}
	if a.maxCells <= 0 {
		a.maxCells = coverage.DefaultMaxCells
	}
	if a.defaultScale.PixelsPerMeter <= 0 {
		a.defaultScale = models.DefaultScale()
	}
	return a
}

// Scale возвращает калибровку плана, если она задана
func (a *Analyzer) Scale(project *models.ProjectData) models.Scale {
	return project.FloorPlan.Scale(a.defaultScale)
}

func (a *Analyzer) GridSize(project *models.ProjectData) int {
	if project.Settings.GridSize > 0 {
		return project.Settings.GridSize
	}
	return a.gridSize
}

// CheckGrid отклоняет холсты, сетка которых превышает лимит ячеек.
// gridSize <= 0 означает coverage.DefaultGridSize, как и в coverage.NewGrid.
func (a *Analyzer) CheckGrid(width, height float64, gridSize int) error {
	return coverage.CheckGrid(width, height, gridSize, a.maxCells)
}

// Analyze не изменяет project. Зоны, слепые зоны и тепловая карта
// считаются только при включенной настройке; статистика, длины стен и
// перекрытые датчики возвращаются всегда.
func (a *Analyzer) Analyze(project *models.ProjectData) (*models.Analysis, error) {
	if project == nil {
		return nil, ErrNoProject
	}

	width, height := project.CanvasSize()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("analyze %q: %w", project.Name, ErrNoCanvas)
	}

	scale := a.Scale(project)
	gridSize := a.GridSize(project)
	if err := a.CheckGrid(width, height, gridSize); err != nil {
		return nil, fmt.Errorf("analyze %q: %w", project.Name, err)
	}
	grid := coverage.NewGrid(width, height, gridSize)
	cameraSectors := models.CameraSectors(project.Cameras, scale)

	result := &models.Analysis{
		PixelsPerMeter: scale.PixelsPerMeter,
		GridSize:       gridSize,
		Canvas:         models.Canvas{Width: width, Height: height},
		Zones:          []models.CoverageZone{},
		BlindSpots:     []models.BlindSpot{},
		Stats:          coverage.SectorStats(cameraSectors, grid),
		PirStats:       coverage.SectorStats(models.PirSectors(project.Pirs, scale), grid),
		WallLengths:    walls.Lengths(project.Walls, scale),

		ObstructedSensors: obstructed(project),
	}

	settings := project.Settings
	if settings.ShowCoverage {
		result.Zones = coverage.Zones(project.Cameras, scale)
	}
	if settings.ShowBlindSpots {
		result.BlindSpots = coverage.SectorBlindSpots(cameraSectors, grid)
	}
	if settings.ShowHeatmap {
		hm := coverage.Heatmap(project.Cameras, width, height, scale, gridSize)
		result.Heatmap = &hm
	}

	return result, nil
}

// obstructed находит камеры и PIR-датчики, стоящие внутри колонн
func obstructed(project *models.ProjectData) []models.ObstructedSensor {
	out := []models.ObstructedSensor{}
	for _, c := range project.Cameras {
		if w, ok := walls.Enclosing(project.Walls, c.Position()); ok {
			out = append(out, models.ObstructedSensor{SensorID: c.ID, Kind: "camera", WallID: w.ID})
		}
	}
	for _, p := range project.Pirs {
		if w, ok := walls.Enclosing(project.Walls, p.Position()); ok {
			out = append(out, models.ObstructedSensor{SensorID: p.ID, Kind: "pir", WallID: w.ID})
		}
	}
	return out
}
