package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"coverage-planner/internal/planner/geometry"
)

// ============================================================
// Path Parser
// ============================================================

var commandRe = regexp.MustCompile(`([MmLlHhVvZz])([^MmLlHhVvZz]*)`)

// ParsePath парсит SVG path из команд M, L, H, V, Z в список точек.
// Повторные пары координат после M или L - неявные line-to, как в SVG.
func ParsePath(d string) ([]geometry.Point, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, fmt.Errorf("empty path")
	}

	var points []geometry.Point
	var cur, start geometry.Point

	for _, match := range commandRe.FindAllStringSubmatch(d, -1) {
		cmd := match[1][0]
		coords := parseCoords(match[2])
		relative := cmd >= 'a'

		switch cmd {
		case 'M', 'm', 'L', 'l':
			if len(coords) < 2 {
				return nil, fmt.Errorf("command %c: expected coordinate pairs, got %d values", cmd, len(coords))
			}
			for i := 0; i+1 < len(coords); i += 2 {
				if relative {
					cur = geometry.Point{X: cur.X + coords[i], Y: cur.Y + coords[i+1]}
				} else {
					cur = geometry.Point{X: coords[i], Y: coords[i+1]}
				}
				if i == 0 && (cmd == 'M' || cmd == 'm') {
					start = cur
				}
				points = append(points, cur)
			}

		case 'H', 'h':
			for _, v := range coords {
				if relative {
					cur.X += v
				} else {
					cur.X = v
				}
				points = append(points, cur)
			}

		case 'V', 'v':
			for _, v := range coords {
				if relative {
					cur.Y += v
				} else {
					cur.Y = v
				}
				points = append(points, cur)
			}

		case 'Z', 'z':
			if len(points) > 0 {
				cur = start
				points = append(points, start)
			}
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("path has no drawable commands")
	}
	return points, nil
}

func parseCoords(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	s = strings.ReplaceAll(s, ",", " ")

	var coords []float64
	for _, part := range strings.Fields(s) {
		if val, err := strconv.ParseFloat(part, 64); err == nil {
			coords = append(coords, val)
		}
	}
	return coords
}
