package coverage

import "coverage-planner/internal/planner/models"

// ============================================================
// Coverage Zones
// ============================================================

// Band - полоса дальности (метры), рисуемая одним цветом
type Band struct {
	Name  string
	Start float64
	End   float64
	Color string
}

// DefaultBands - полосы качества обнаружения: ближняя, средняя, дальняя
func DefaultBands() []Band {
	return []Band{
		{Name: "near", Start: 0, End: 30, Color: "rgba(34, 197, 94, 0.30)"},
		{Name: "mid", Start: 30, End: 60, Color: "rgba(234, 179, 8, 0.25)"},
		{Name: "far", Start: 60, End: 120, Color: "rgba(239, 68, 68, 0.20)"},
	}
}

// Zones строит по зоне на каждую камеру и каждую полосу, до которой она
// достает; порядок - по камерам, затем по полосам
func Zones(cameras []models.Camera, scale models.Scale) []models.CoverageZone {
	return ZonesForBands(cameras, DefaultBands(), scale)
}

func ZonesForBands(cameras []models.Camera, bands []Band, scale models.Scale) []models.CoverageZone {
	zones := []models.CoverageZone{}

	for _, cam := range cameras {
		for _, band := range bands {
			if cam.Range <= band.Start {
				continue
			}

			path := WedgePath(cam, band.Start, band.End, scale)
			if path.Empty() {
				continue
			}

			zones = append(zones, models.CoverageZone{
				CameraID: cam.ID,
				Color:    band.Color,
				Path:     path.D(),
				Range:    models.RangeBand{Start: band.Start, End: band.End},
			})
		}
	}

	return zones
}
