package coverage

import (
	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"
)

// ============================================================
// Blind-Spot Detector
// ============================================================

// BlindSpots возвращает центры всех ячеек, которые не видит ни одна камера,
// построчно. gridSize <= 0 означает DefaultGridSize.
func BlindSpots(cameras []models.Camera, width, height float64, scale models.Scale, gridSize int) []models.BlindSpot {
	return SectorBlindSpots(models.CameraSectors(cameras, scale), NewGrid(width, height, gridSize))
}

// SectorBlindSpots проходит сетку по каждому сектору; ячейка, которую уже
// видит какой-либо сектор, дальше не проверяется
func SectorBlindSpots(sectors []geometry.Sector, grid Grid) []models.BlindSpot {
	covered := make([]bool, grid.Cells())

	for _, s := range sectors {
		for idx := range covered {
			if covered[idx] {
				continue
			}
			if s.Contains(grid.Center(idx)) {
				covered[idx] = true
			}
		}
	}

	spots := []models.BlindSpot{}
	area := grid.CellArea()
	for idx, seen := range covered {
		if seen {
			continue
		}
		c := grid.Center(idx)
		spots = append(spots, models.BlindSpot{X: c.X, Y: c.Y, Area: area})
	}
	return spots
}
