package models

import "math"

// DefaultPixelsPerMeter используется, пока план не откалиброван
const DefaultPixelsPerMeter = 10.0

// Scale переводит пиксели холста в метры и обратно
type Scale struct {
	PixelsPerMeter float64 `json:"pixelsPerMeter"`
}

func DefaultScale() Scale {
	return Scale{PixelsPerMeter: DefaultPixelsPerMeter}
}

// NewScale возвращает масштаб по умолчанию для неположительных и бесконечных значений
func NewScale(pixelsPerMeter float64) Scale {
	if pixelsPerMeter <= 0 || math.IsNaN(pixelsPerMeter) || math.IsInf(pixelsPerMeter, 0) {
		return DefaultScale()
	}
	return Scale{PixelsPerMeter: pixelsPerMeter}
}

func (s Scale) ToPixels(meters float64) float64 {
	return meters * s.PixelsPerMeter
}

func (s Scale) ToMeters(pixels float64) float64 {
	return pixels / s.PixelsPerMeter
}
