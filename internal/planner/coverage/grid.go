package coverage

import (
	"errors"
	"fmt"
	"math"

	"coverage-planner/internal/planner/geometry"
)

// ============================================================
// Sampling grid
// ============================================================

// DefaultGridSize - сторона ячейки сетки в пикселях
const DefaultGridSize = 20

// DefaultMaxCells ограничивает число ячеек одной сетки
const DefaultMaxCells = 1_000_000

var ErrGridTooLarge = errors.New("sampling grid too large")

// Grid - регулярная сетка по холсту; каждая ячейка представлена своим
// центром. Крупные ячейки быстрее, но грубее.
type Grid struct {
	Rows     int
	Cols     int
	CellSize int
}

// NewGrid строит сетку по размерам холста. Размеры должны быть
// предварительно проверены через CheckGrid.
func NewGrid(width, height float64, cellSize int) Grid {
	if cellSize <= 0 {
		cellSize = DefaultGridSize
	}
	if width <= 0 || height <= 0 {
		return Grid{CellSize: cellSize}
	}
	return Grid{
		Rows:     int(math.Ceil(height / float64(cellSize))),
		Cols:     int(math.Ceil(width / float64(cellSize))),
		CellSize: cellSize,
	}
}

// CheckGrid проверяет, что сетка для холста width x height конечна и
// содержит не больше maxCells ячеек. Подсчет ведется во float64, чтобы
// огромные размеры не переполняли int.
func CheckGrid(width, height float64, cellSize, maxCells int) error {
	if cellSize <= 0 {
		cellSize = DefaultGridSize
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	if math.IsNaN(width) || math.IsNaN(height) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: canvas size must be finite", ErrGridTooLarge)
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	rows := math.Ceil(height / float64(cellSize))
	cols := math.Ceil(width / float64(cellSize))
	if rows*cols > float64(maxCells) {
		return fmt.Errorf("%w: %.0f cells exceeds limit of %d", ErrGridTooLarge, rows*cols, maxCells)
	}
	return nil
}

func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

func (g Grid) CellArea() float64 {
	return float64(g.CellSize * g.CellSize)
}

// Center возвращает центр ячейки idx (построчная нумерация)
func (g Grid) Center(idx int) geometry.Point {
	row, col := idx/g.Cols, idx%g.Cols
	half := float64(g.CellSize) / 2
	return geometry.Point{
		X: float64(col*g.CellSize) + half,
		Y: float64(row*g.CellSize) + half,
	}
}
