// internal/fitting/converter.go
package fitting

import (
	"math"

	"zuliam-concierge/internal/catalog"
)

// MatchType tags how a conversion result was found so callers can present
// "exact size match" and "closest available size" differently.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchNearest MatchType = "nearest"
	MatchInvalid MatchType = "invalid"
)

// Conversion is the outcome of resolving a size against the chart. Row is
// nil only for MatchInvalid.
type Conversion struct {
	MatchType MatchType             `json:"matchType"`
	Row       *catalog.SizeChartRow `json:"row,omitempty"`
}

// Convert resolves a textual size on the given scale to its exact row or,
// failing that, the row minimizing the absolute difference on that scale.
// Unparseable input yields MatchInvalid, which is distinct from "no exact
// row": the former has nothing to search for, the latter still produces a
// nearest row. Ties resolve to the first row in table order.
func Convert(scale catalog.Scale, rawSize string, chart []catalog.SizeChartRow) Conversion {
	parsed := NormalizeNumber(rawSize, math.NaN())
	if parsed.Defaulted || len(chart) == 0 {
		return Conversion{MatchType: MatchInvalid}
	}
	value := parsed.Value

	for i := range chart {
		if chart[i].Value(scale) == value {
			row := chart[i]
			return Conversion{MatchType: MatchExact, Row: &row}
		}
	}

	best := 0
	bestDist := math.Abs(chart[0].Value(scale) - value)
	for i := 1; i < len(chart); i++ {
		d := math.Abs(chart[i].Value(scale) - value)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	row := chart[best]
	return Conversion{MatchType: MatchNearest, Row: &row}
}
