package coverage

import (
	"math"
	"strconv"
	"strings"

	"coverage-planner/internal/planner/geometry"
	"coverage-planner/internal/planner/models"

	"github.com/paulmach/orb"
)

// ============================================================
// Path commands
// ============================================================

// Command - одна команда SVG path с числовыми аргументами
type Command struct {
	Op   byte
	Args []float64
}

// Path - замкнутая последовательность команд. nil означает, что рисовать нечего.
type Path []Command

func (p Path) Empty() bool {
	return len(p) == 0
}

// D сериализует путь в атрибут "d"
func (p Path) D() string {
	var b strings.Builder
	for i, cmd := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(cmd.Op)
		for _, arg := range cmd.Args {
			b.WriteByte(' ')
			b.WriteString(formatFloat(arg))
		}
	}
	return b.String()
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// ============================================================
// Wedge
// ============================================================

// Wedge - кольцевой сектор: часть обзора камеры между двумя радиусами.
// Углы в градусах, радиусы в пикселях.
type Wedge struct {
	Center      geometry.Point
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64
}

// ComputeWedge обрезает полосу [rangeStart, rangeEnd] (метры) по дальности
// камеры. Возвращает false, если рисовать нечего.
func ComputeWedge(cam models.Camera, rangeStart, rangeEnd float64, scale models.Scale) (Wedge, bool) {
	end := math.Min(rangeEnd, cam.Range)

	inner := scale.ToPixels(rangeStart)
	outer := scale.ToPixels(end)
	full := scale.ToPixels(cam.Range)

	if outer <= inner || inner >= full {
		return Wedge{}, false
	}

	return Wedge{
		Center:      cam.Position(),
		InnerRadius: inner,
		OuterRadius: outer,
		StartAngle:  cam.Rotation - cam.FOV/2,
		EndAngle:    cam.Rotation + cam.FOV/2,
	}, true
}

// WedgePath - ComputeWedge в виде команд отрисовки; nil для пустого сектора
func WedgePath(cam models.Camera, rangeStart, rangeEnd float64, scale models.Scale) Path {
	w, ok := ComputeWedge(cam, rangeStart, rangeEnd, scale)
	if !ok {
		return nil
	}
	return w.Path()
}

// Path рисует внешнюю дугу по часовой стрелке, радиальную грань внутрь,
// внутреннюю дугу обратно и замыкается по второй радиальной грани
func (w Wedge) Path() Path {
	outerStart := geometry.Polar(w.Center, w.OuterRadius, w.StartAngle)
	outerEnd := geometry.Polar(w.Center, w.OuterRadius, w.EndAngle)
	innerStart := geometry.Polar(w.Center, w.InnerRadius, w.StartAngle)
	innerEnd := geometry.Polar(w.Center, w.InnerRadius, w.EndAngle)

	largeArc := 0.0
	if w.EndAngle-w.StartAngle > 180 {
		largeArc = 1
	}

	return Path{
		{Op: 'M', Args: []float64{outerStart.X, outerStart.Y}},
		{Op: 'A', Args: []float64{w.OuterRadius, w.OuterRadius, 0, largeArc, 1, outerEnd.X, outerEnd.Y}},
		{Op: 'L', Args: []float64{innerEnd.X, innerEnd.Y}},
		{Op: 'A', Args: []float64{w.InnerRadius, w.InnerRadius, 0, largeArc, 0, innerStart.X, innerStart.Y}},
		{Op: 'Z'},
	}
}

// Contains проверяет, лежит ли p внутри сектора. Внутренняя граница
// принадлежит соседней полосе ближе к камере, поэтому полосы не пересекаются.
func (w Wedge) Contains(p geometry.Point) bool {
	d := geometry.Distance(w.Center, p)
	if w.InnerRadius > 0 && d <= w.InnerRadius {
		return false
	}
	s := geometry.Sector{
		Origin:   w.Center,
		Rotation: (w.StartAngle + w.EndAngle) / 2,
		FOV:      w.EndAngle - w.StartAngle,
		Radius:   w.OuterRadius,
	}
	return s.Contains(p)
}

// Polygon аппроксимирует сектор замкнутым кольцом из steps отрезков на дугу
func (w Wedge) Polygon(steps int) orb.Polygon {
	if steps < 1 {
		steps = 1
	}

	span := w.EndAngle - w.StartAngle
	ring := make(orb.Ring, 0, 2*steps+3)

	for i := 0; i <= steps; i++ {
		p := geometry.Polar(w.Center, w.OuterRadius, w.StartAngle+span*float64(i)/float64(steps))
		ring = append(ring, orb.Point{p.X, p.Y})
	}

	if w.InnerRadius > 0 {
		for i := steps; i >= 0; i-- {
			p := geometry.Polar(w.Center, w.InnerRadius, w.StartAngle+span*float64(i)/float64(steps))
			ring = append(ring, orb.Point{p.X, p.Y})
		}
	} else {
		ring = append(ring, orb.Point{w.Center.X, w.Center.Y})
	}

	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}
