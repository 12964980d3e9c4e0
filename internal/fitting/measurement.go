// internal/fitting/measurement.go
package fitting

import (
	"math"
	"strconv"
	"strings"
)

// Measurement is a normalized foot measurement in centimeters.
type Measurement struct {
	LengthCm float64 `json:"lengthCm"`
	WidthCm  float64 `json:"widthCm"`
}

// NormalizedValue is the outcome of normalizing one raw input. Defaulted
// distinguishes a clean parse from the silent fallback, which the widget
// otherwise hides from the user.
type NormalizedValue struct {
	Value     float64 `json:"value"`
	Defaulted bool    `json:"defaulted"`
}

// NormalizedMeasurement pairs a measurement with the per-dimension
// fallback flags.
type NormalizedMeasurement struct {
	Measurement
	LengthDefaulted bool `json:"lengthDefaulted"`
	WidthDefaulted  bool `json:"widthDefaulted"`
}

// NormalizeNumber parses raw as a decimal number rounded to two places.
// Unparseable or non-finite input substitutes the fallback instead of
// failing; the widget must stay responsive on any keystroke.
func NormalizeNumber(raw string, fallback float64) NormalizedValue {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return NormalizedValue{Value: round2(fallback), Defaulted: true}
	}
	return NormalizedValue{Value: round2(parsed)}
}

// NormalizeMeasurement builds a measurement from the two raw inputs,
// substituting the configured defaults independently per dimension.
func (c *Config) NormalizeMeasurement(lengthRaw, widthRaw string) NormalizedMeasurement {
	length := NormalizeNumber(lengthRaw, c.DefaultLengthCm)
	width := NormalizeNumber(widthRaw, c.DefaultWidthCm)
	return NormalizedMeasurement{
		Measurement: Measurement{
			LengthCm: length.Value,
			WidthCm:  width.Value,
		},
		LengthDefaulted: length.Defaulted,
		WidthDefaulted:  width.Defaulted,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
