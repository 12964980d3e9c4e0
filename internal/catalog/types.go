// internal/catalog/types.go
package catalog

import (
	"encoding/json"
	"fmt"
)

// Range is an inclusive [min,max] measurement interval. It marshals as a
// two-element JSON array to match the catalog document format.
type Range struct {
	Min float64
	Max float64
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{r.Min, r.Max})
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("range must be a [min,max] pair: %w", err)
	}
	r.Min = pair[0]
	r.Max = pair[1]
	return nil
}

// Contains reports whether v falls inside the inclusive interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Center returns the midpoint of the interval.
func (r Range) Center() float64 {
	return (r.Min + r.Max) / 2
}

// FitProfile describes the last shape of a variant.
type FitProfile string

const (
	ProfileNarrow   FitProfile = "narrow"
	ProfileStandard FitProfile = "standard"
	ProfileWide     FitProfile = "wide"
)

// ShoeVariant is one sizing entry of the fitting catalog.
type ShoeVariant struct {
	ID              string     `json:"id"`
	Brand           string     `json:"brand"`
	Model           string     `json:"model"`
	SubType         string     `json:"subType,omitempty"`
	SizeLabel       string     `json:"sizeLabel"`
	FootLengthCm    Range      `json:"footLengthCm"`
	FootWidthCm     Range      `json:"footWidthCm"`
	FootThicknessMm *Range     `json:"footThicknessMm,omitempty"`
	Profile         FitProfile `json:"profile"`
	Notes           string     `json:"notes,omitempty"`
	ComingSoon      bool       `json:"comingSoon,omitempty"`
}

// DisplayName renders the variant the way the storefront lists it.
func (v ShoeVariant) DisplayName() string {
	if v.SubType != "" {
		return fmt.Sprintf("%s %s — %s", v.Brand, v.Model, v.SubType)
	}
	return fmt.Sprintf("%s %s", v.Brand, v.Model)
}

// Scale identifies one column of the unisex size chart.
type Scale string

const (
	ScaleUS Scale = "us"
	ScaleUK Scale = "uk"
	ScaleEU Scale = "eu"
)

// ParseScale validates a textual scale name.
func ParseScale(s string) (Scale, bool) {
	switch Scale(s) {
	case ScaleUS, ScaleUK, ScaleEU:
		return Scale(s), true
	}
	return "", false
}

// SizeChartRow is one row of the unisex conversion table, anchored on the
// mondopoint length.
type SizeChartRow struct {
	MondoCm float64 `json:"mondoCm"`
	US      float64 `json:"us"`
	UK      float64 `json:"uk"`
	EU      float64 `json:"eu"`
}

// Value returns the row's size on the requested scale.
func (r SizeChartRow) Value(scale Scale) float64 {
	switch scale {
	case ScaleUK:
		return r.UK
	case ScaleEU:
		return r.EU
	default:
		return r.US
	}
}

// GuidedSize is a purchasable size option inside the guided catalog tree.
type GuidedSize struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
	Stock string  `json:"stock"`
}

// GuidedProduct is a product leaf. A product with no sizes is a terminal
// "not yet available" branch; the conversation engine must not offer a
// size step for it.
type GuidedProduct struct {
	Name  string       `json:"name"`
	Sizes []GuidedSize `json:"sizes"`
}

// Available reports whether the product has any purchasable sizes.
func (p GuidedProduct) Available() bool {
	return len(p.Sizes) > 0
}

type GuidedCategory struct {
	Name     string          `json:"name"`
	Products []GuidedProduct `json:"products"`
}

type GuidedBrand struct {
	Name       string           `json:"name"`
	Categories []GuidedCategory `json:"categories"`
}

// OrderSnapshot is a frozen fulfilment record keyed by order code.
type OrderSnapshot struct {
	Code           string   `json:"code"`
	Customer       string   `json:"customer"`
	Status         string   `json:"status"`
	Items          []string `json:"items"`
	ETA            string   `json:"eta"`
	TrackingNumber string   `json:"trackingNumber"`
}

// FAQEntry is one canned question/answer pair.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
