// internal/catalog/store.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// OrderCodePattern is the canonical shape of a Zuliäm order code after
// trimming and uppercasing.
var OrderCodePattern = regexp.MustCompile(`^ZA-\d{6}$`)

// Store holds the read-only product, sizing, order and FAQ tables. It is
// built once at startup and never mutated afterwards, so it is safe to
// share across goroutines.
type Store struct {
	variants  []ShoeVariant
	sizeChart []SizeChartRow
	guided    []GuidedBrand
	orders    map[string]OrderSnapshot
	faqs      []FAQEntry
}

// document is the on-disk catalog override format.
type document struct {
	Variants  []ShoeVariant   `json:"variants"`
	SizeChart []SizeChartRow  `json:"sizeChart"`
	Guided    []GuidedBrand   `json:"guided"`
	Orders    []OrderSnapshot `json:"orders"`
	FAQs      []FAQEntry      `json:"faqs"`
}

// Default returns the compiled-in catalog.
func Default() *Store {
	s, err := build(document{
		Variants:  defaultVariants(),
		SizeChart: defaultSizeChart(),
		Guided:    defaultGuidedTree(),
		Orders:    defaultOrders(),
		FAQs:      defaultFAQs(),
	})
	if err != nil {
		// The compiled-in tables satisfy the invariants; a failure here is
		// a programming error.
		panic(fmt.Sprintf("default catalog invalid: %v", err))
	}
	return s
}

// LoadFile reads, schema-validates and invariant-checks a catalog override
// document.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog document: %w", err)
	}

	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog document: %w", err)
	}

	return build(doc)
}

func build(doc document) (*Store, error) {
	s := &Store{
		variants:  doc.Variants,
		sizeChart: doc.SizeChart,
		guided:    doc.Guided,
		orders:    make(map[string]OrderSnapshot, len(doc.Orders)),
		faqs:      doc.FAQs,
	}

	for _, o := range doc.Orders {
		code := strings.ToUpper(strings.TrimSpace(o.Code))
		if _, dup := s.orders[code]; dup {
			return nil, fmt.Errorf("duplicate order code %q", code)
		}
		o.Code = code
		s.orders[code] = o
	}

	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// check enforces the structural invariants the widgets rely on.
func (s *Store) check() error {
	seen := make(map[string]bool, len(s.variants))
	for _, v := range s.variants {
		if v.ID == "" {
			return fmt.Errorf("variant with empty id")
		}
		if seen[v.ID] {
			return fmt.Errorf("duplicate variant id %q", v.ID)
		}
		seen[v.ID] = true

		if v.FootLengthCm.Min > v.FootLengthCm.Max {
			return fmt.Errorf("variant %s: length range min > max", v.ID)
		}
		if v.FootWidthCm.Min > v.FootWidthCm.Max {
			return fmt.Errorf("variant %s: width range min > max", v.ID)
		}
		if v.FootThicknessMm != nil && v.FootThicknessMm.Min > v.FootThicknessMm.Max {
			return fmt.Errorf("variant %s: thickness range min > max", v.ID)
		}
	}

	for i := 1; i < len(s.sizeChart); i++ {
		if s.sizeChart[i].MondoCm <= s.sizeChart[i-1].MondoCm {
			return fmt.Errorf("size chart not ascending at row %d (mondo %.1f)", i, s.sizeChart[i].MondoCm)
		}
	}

	for code := range s.orders {
		if !OrderCodePattern.MatchString(code) {
			return fmt.Errorf("order code %q does not match ZA-######", code)
		}
	}

	for _, b := range s.guided {
		for _, c := range b.Categories {
			for _, p := range c.Products {
				labels := make(map[string]bool, len(p.Sizes))
				for _, size := range p.Sizes {
					if labels[size.Label] {
						return fmt.Errorf("guided product %s/%s/%s: duplicate size %q", b.Name, c.Name, p.Name, size.Label)
					}
					labels[size.Label] = true
				}
			}
		}
	}

	return nil
}

// Variants returns the fitting catalog in its canonical order.
func (s *Store) Variants() []ShoeVariant {
	return s.variants
}

// SizeChart returns the unisex conversion table ordered by mondopoint.
func (s *Store) SizeChart() []SizeChartRow {
	return s.sizeChart
}

// FAQs returns the canned question list.
func (s *Store) FAQs() []FAQEntry {
	return s.faqs
}

// FAQAnswer resolves a canned answer by its exact question text.
func (s *Store) FAQAnswer(question string) (string, bool) {
	for _, f := range s.faqs {
		if f.Question == question {
			return f.Answer, true
		}
	}
	return "", false
}

// Brands lists the guided tree's brand names in display order.
func (s *Store) Brands() []string {
	names := make([]string, 0, len(s.guided))
	for _, b := range s.guided {
		names = append(names, b.Name)
	}
	return names
}

// Brand resolves one guided brand by name.
func (s *Store) Brand(name string) (GuidedBrand, bool) {
	for _, b := range s.guided {
		if b.Name == name {
			return b, true
		}
	}
	return GuidedBrand{}, false
}

// Category resolves one guided category under a brand.
func (s *Store) Category(brand, name string) (GuidedCategory, bool) {
	b, ok := s.Brand(brand)
	if !ok {
		return GuidedCategory{}, false
	}
	for _, c := range b.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return GuidedCategory{}, false
}

// Product resolves one guided product under a brand and category.
func (s *Store) Product(brand, category, name string) (GuidedProduct, bool) {
	c, ok := s.Category(brand, category)
	if !ok {
		return GuidedProduct{}, false
	}
	for _, p := range c.Products {
		if p.Name == name {
			return p, true
		}
	}
	return GuidedProduct{}, false
}

// Size resolves a purchasable size leaf. A missing entry is a normal
// outcome (the engine offers a stock alert), not an error.
func (s *Store) Size(brand, category, product, label string) (GuidedSize, bool) {
	p, ok := s.Product(brand, category, product)
	if !ok {
		return GuidedSize{}, false
	}
	for _, size := range p.Sizes {
		if size.Label == label {
			return size, true
		}
	}
	return GuidedSize{}, false
}

// Order looks up a snapshot by raw user input, normalizing the code the
// way the order widget does (trim, uppercase).
func (s *Store) Order(raw string) (OrderSnapshot, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	snap, ok := s.orders[code]
	return snap, ok
}

// OrderCount reports the number of order snapshots loaded.
func (s *Store) OrderCount() int {
	return len(s.orders)
}
