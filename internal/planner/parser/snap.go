package parser

import (
	"math"

	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"
)

// ============================================================
// Wall snapping
// ============================================================

const (
	DefaultMergeTolerance = 8.0 // концы ближе этого сливаются в один угол
	axisSnapTolerance     = 4.0 // стены с отклонением меньше этого выпрямляются
)

// SnapWalls выпрямляет почти горизонтальные/вертикальные стены и сводит
// концы, лежащие ближе tolerance друг к другу, чтобы лучи не проходили
// через щели в углах. Колонны и препятствия не меняются.
func SnapWalls(walls []models.Wall, tolerance float64) []models.Wall {
	out := make([]models.Wall, len(walls))
	copy(out, walls)

	type endpoint struct {
		wall int
		end  int // 0 - A, 1 - B
	}
	var ends []endpoint
	var points []geometry.Point

	for i, w := range out {
		seg, ok := w.Shape.(models.WallSegment)
		if !ok {
			continue
		}
		seg.Segment = snapAxis(seg.Segment)
		out[i].Shape = seg

		ends = append(ends, endpoint{i, 0}, endpoint{i, 1})
		points = append(points, seg.A, seg.B)
	}

	rep := make([]int, len(points))
	for i := range rep {
		rep[i] = -1
	}

	for i := range points {
		if rep[i] >= 0 {
			continue
		}
		rep[i] = i
		cluster := []int{i}
		for j := i + 1; j < len(points); j++ {
			if rep[j] < 0 && geometry.Distance(points[i], points[j]) <= tolerance {
				rep[j] = i
				cluster = append(cluster, j)
			}
		}
		if len(cluster) == 1 {
			continue
		}

		var sumX, sumY float64
		for _, idx := range cluster {
			sumX += points[idx].X
			sumY += points[idx].Y
		}
		merged := geometry.Point{X: sumX / float64(len(cluster)), Y: sumY / float64(len(cluster))}
		for _, idx := range cluster {
			points[idx] = merged
		}
	}

	for idx, e := range ends {
		seg := out[e.wall].Shape.(models.WallSegment)
		if e.end == 0 {
			seg.A = points[idx]
		} else {
			seg.B = points[idx]
		}
		out[e.wall].Shape = seg
	}

	return out
}

func snapAxis(s geometry.Segment) geometry.Segment {
	switch {
	case math.Abs(s.A.Y-s.B.Y) <= axisSnapTolerance && math.Abs(s.A.X-s.B.X) > axisSnapTolerance:
		y := (s.A.Y + s.B.Y) / 2
		s.A.Y, s.B.Y = y, y
	case math.Abs(s.A.X-s.B.X) <= axisSnapTolerance && math.Abs(s.A.Y-s.B.Y) > axisSnapTolerance:
		x := (s.A.X + s.B.X) / 2
		s.A.X, s.B.X = x, x
	}
	return s
}
