// internal/fitting/scorer.go
package fitting

import (
	"math"
	"sort"

	"zuliam-concierge/internal/catalog"
	"zuliam-concierge/internal/common/logger"
)

// FitClass is the discrete outcome of comparing a measurement to a
// variant's ranges.
type FitClass string

const (
	FitIdeal      FitClass = "ideal"
	FitClose      FitClass = "close"
	FitOutOfRange FitClass = "out-of-range"
)

const (
	closeFitNote   = "Consider a half size adjustment or different width option."
	outOfRangeNote = "Outside of recommended foot measurements."
)

// Assessment is the derived, ephemeral fit verdict for one variant.
type Assessment struct {
	Variant       catalog.ShoeVariant `json:"variant"`
	Fit           FitClass            `json:"fit"`
	DistanceScore float64             `json:"distanceScore"`
	Notes         string              `json:"notes"`
}

// InRange reports whether the assessment landed in the ideal or close
// tier.
func (a Assessment) InRange() bool {
	return a.Fit != FitOutOfRange
}

// Scorer classifies and ranks catalog variants against a measurement.
type Scorer struct {
	config *Config
	logger logger.Logger
}

func NewScorer(config *Config, log logger.Logger) *Scorer {
	return &Scorer{
		config: config,
		logger: log.WithFields(map[string]interface{}{"component": "fit-scorer"}),
	}
}

// Assess scores every variant against the measurement and returns the
// full ranked list. Every variant always receives a classification; the
// function is pure and never fails.
//
// The ordering is two-tiered: ideal/close entries always precede
// out-of-range entries, then ascending distance within each tier, with
// catalog order breaking ties. An out-of-range variant must never rank
// above an in-range one even when its raw distance is smaller.
func (s *Scorer) Assess(m Measurement, variants []catalog.ShoeVariant) []Assessment {
	results := make([]Assessment, 0, len(variants))

	for _, variant := range variants {
		lengthCenter := variant.FootLengthCm.Center()
		widthCenter := variant.FootWidthCm.Center()

		lengthDistance := math.Abs(lengthCenter - m.LengthCm)
		widthDistance := math.Abs(widthCenter - m.WidthCm)

		lengthFits := variant.FootLengthCm.Contains(m.LengthCm)
		widthFits := variant.FootWidthCm.Contains(m.WidthCm)

		var fit FitClass
		switch {
		case lengthFits && widthFits:
			fit = FitIdeal
		case lengthDistance <= s.config.CloseLengthTolCm && widthDistance <= s.config.CloseWidthTolCm:
			fit = FitClose
		default:
			fit = FitOutOfRange
		}

		notes := variant.Notes
		switch fit {
		case FitClose:
			notes = appendNote(notes, closeFitNote)
		case FitOutOfRange:
			notes = appendNote(notes, outOfRangeNote)
		}

		score := lengthDistance*s.config.LengthWeight + widthDistance*s.config.WidthWeight

		results = append(results, Assessment{
			Variant:       variant,
			Fit:           fit,
			DistanceScore: score,
			Notes:         notes,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		ti, tj := tier(results[i].Fit), tier(results[j].Fit)
		if ti != tj {
			return ti < tj
		}
		return results[i].DistanceScore < results[j].DistanceScore
	})

	s.logger.Debug("fit assessment computed", map[string]interface{}{
		"lengthCm": m.LengthCm,
		"widthCm":  m.WidthCm,
		"variants": len(results),
	})

	return results
}

// Recommended filters the ranked list down to the in-range entries,
// capped at limit (0 means no cap).
func Recommended(assessments []Assessment, limit int) []Assessment {
	out := make([]Assessment, 0, len(assessments))
	for _, a := range assessments {
		if !a.InRange() {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func tier(fit FitClass) int {
	if fit == FitOutOfRange {
		return 1
	}
	return 0
}

func appendNote(base, extra string) string {
	if base == "" {
		return extra
	}
	return base + " " + extra
}
