package coverage

import (
	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// ============================================================
// Coverage Statistics
// ============================================================

// Stats считает для каждой ячейки, сколько камер ее видят, и сводит итог.
// Проценты и среднее перекрытие округляются до одного знака.
func Stats(cameras []models.Camera, width, height float64, scale models.Scale, gridSize int) models.CoverageStats {
	return SectorStats(models.CameraSectors(cameras, scale), NewGrid(width, height, gridSize))
}

func SectorStats(sectors []geometry.Sector, grid Grid) models.CoverageStats {
	return summarize(depthGrid(sectors, grid))
}

// Heatmap возвращает сетку глубины, по которой считается статистика
func Heatmap(cameras []models.Camera, width, height float64, scale models.Scale, gridSize int) models.Heatmap {
	grid := NewGrid(width, height, gridSize)
	depth := depthGrid(models.CameraSectors(cameras, scale), grid)

	hm := models.Heatmap{
		Rows:     grid.Rows,
		Cols:     grid.Cols,
		GridSize: grid.CellSize,
		Depth:    make([][]int, grid.Rows),
	}
	for row := 0; row < grid.Rows; row++ {
		hm.Depth[row] = depth[row*grid.Cols : (row+1)*grid.Cols]
		for _, d := range hm.Depth[row] {
			if d > hm.MaxDepth {
				hm.MaxDepth = d
			}
		}
	}
	return hm
}

// depthGrid без раннего выхода: каждый сектор проходит каждую ячейку
func depthGrid(sectors []geometry.Sector, grid Grid) []int {
	depth := make([]int, grid.Cells())
	for _, s := range sectors {
		for idx := range depth {
			if s.Contains(grid.Center(idx)) {
				depth[idx]++
			}
		}
	}
	return depth
}

func summarize(depth []int) models.CoverageStats {
	total := len(depth)
	if total == 0 {
		return models.CoverageStats{}
	}

	covered := 0
	var overlaps []float64
	for _, d := range depth {
		if d > 0 {
			covered++
		}
		if d > 1 {
			overlaps = append(overlaps, float64(d))
		}
	}

	averageOverlap := 0.0
	if len(overlaps) > 0 {
		averageOverlap = scalar.Round(stat.Mean(overlaps, nil), 1)
	}

	return models.CoverageStats{
		TotalCoverage:     percent(covered, total),
		RedundantCoverage: percent(len(overlaps), total),
		BlindSpotCount:    total - covered,
		AverageOverlap:    averageOverlap,
		TotalCells:        total,
		CoveredCells:      covered,
	}
}

func percent(part, total int) float64 {
	return scalar.Round(float64(part)/float64(total)*100, 1)
}
