// internal/catalog/data.go
package catalog

// Compiled-in Zuliäm catalog. Signature ships in two subtypes, Sign
// (snug/athletic) and Mature (roomier/comfort); Peak is listed but still
// marked coming soon.

func defaultVariants() []ShoeVariant {
	return []ShoeVariant{
		{
			ID:              "zuliam-signature-sign-us9",
			Brand:           "Zuliam",
			Model:           "Signature",
			SubType:         "Sign",
			SizeLabel:       "US 9 / UK 8 / EU 42.5",
			FootLengthCm:    Range{Min: 26.5, Max: 27.1},
			FootWidthCm:     Range{Min: 9.8, Max: 10.3},
			FootThicknessMm: &Range{Min: 44, Max: 55},
			Profile:         ProfileNarrow,
			Notes:           "Snug athletic wrap. Consider half-size up if you prefer extra toe room.",
		},
		{
			ID:              "zuliam-signature-mature-us9",
			Brand:           "Zuliam",
			Model:           "Signature",
			SubType:         "Mature",
			SizeLabel:       "US 9 / UK 8 / EU 42.5",
			FootLengthCm:    Range{Min: 26.4, Max: 27.2},
			FootWidthCm:     Range{Min: 10.1, Max: 10.8},
			FootThicknessMm: &Range{Min: 46, Max: 60},
			Profile:         ProfileStandard,
			Notes:           "Roomier forefoot and extra depth for comfort or orthotics.",
		},
		{
			ID:              "zuliam-peak-us9",
			Brand:           "Zuliam",
			Model:           "Peak",
			SizeLabel:       "US 9 / UK 8 / EU 42.5",
			FootLengthCm:    Range{Min: 26.6, Max: 27.3},
			FootWidthCm:     Range{Min: 10.0, Max: 10.6},
			FootThicknessMm: &Range{Min: 45, Max: 58},
			Profile:         ProfileStandard,
			Notes:           "Lightweight daily trainer. Launching soon.",
			ComingSoon:      true,
		},
	}
}

func defaultSizeChart() []SizeChartRow {
	return []SizeChartRow{
		{MondoCm: 22.8, US: 5, UK: 4, EU: 37},
		{MondoCm: 23.5, US: 6, UK: 5, EU: 38.5},
		{MondoCm: 24.1, US: 7, UK: 6, EU: 39.5},
		{MondoCm: 24.8, US: 7.5, UK: 6.5, EU: 40.5},
		{MondoCm: 25.4, US: 8, UK: 7, EU: 41},
		{MondoCm: 25.7, US: 8.5, UK: 7.5, EU: 41.5},
		{MondoCm: 26.0, US: 9, UK: 8, EU: 42},
		{MondoCm: 26.7, US: 9.5, UK: 8.5, EU: 43},
		{MondoCm: 27.0, US: 10, UK: 9, EU: 44},
		{MondoCm: 27.3, US: 10.5, UK: 9.5, EU: 44.5},
		{MondoCm: 27.9, US: 11, UK: 10, EU: 45.5},
		{MondoCm: 28.3, US: 11.5, UK: 10.5, EU: 46},
		{MondoCm: 28.6, US: 12, UK: 11, EU: 46.5},
	}
}

func defaultGuidedTree() []GuidedBrand {
	return []GuidedBrand{
		{
			Name: "Zuliäm",
			Categories: []GuidedCategory{
				{
					Name: "Signature",
					Products: []GuidedProduct{
						{
							Name: "Sign",
							Sizes: []GuidedSize{
								{Label: "Size 7", Price: 699.00, Stock: "In stock (14 available)"},
								{Label: "Size 8", Price: 699.00, Stock: "Moderate (9 available)"},
								{Label: "Size 9", Price: 699.00, Stock: "Low (4 available)"},
							},
						},
						{
							Name: "Mature",
							Sizes: []GuidedSize{
								{Label: "Size 8", Price: 739.00, Stock: "In stock (12 available)"},
								{Label: "Size 9", Price: 739.00, Stock: "Moderate (7 available)"},
								{Label: "Size 10", Price: 739.00, Stock: "Low (3 available)"},
							},
						},
					},
				},
				{
					Name: "Peak",
					Products: []GuidedProduct{
						{Name: "Coming Soon", Sizes: []GuidedSize{}},
					},
				},
			},
		},
	}
}

func defaultOrders() []OrderSnapshot {
	return []OrderSnapshot{
		{
			Code:           "ZA-100245",
			Customer:       "Leah Summers",
			Status:         "Packed and ready for courier pickup by J&T Express Malaysia. Tracking link will be active within ~2 hours.",
			Items:          []string{"Zuliäm Sign - Size 9", "Grip socks - Size M"},
			ETA:            "18 June 2025",
			TrackingNumber: "880123456789",
		},
		{
			Code:           "ZA-458210",
			Customer:       "Mikael Rowan",
			Status:         "In quality check. Warehouse team is verifying packaging before dispatch via J&T Express Malaysia.",
			Items:          []string{"Zuliäm Mature - Size 8"},
			ETA:            "21 June 2025",
			TrackingNumber: "880987654321",
		},
		{
			Code:           "ZA-778540",
			Customer:       "Analise Turner",
			Status:         "Delivered and signed for. Courier: J&T Express Malaysia.",
			Items:          []string{"Zuliäm Sign - Size 7"},
			ETA:            "Delivered",
			TrackingNumber: "880112233445",
		},
	}
}

func defaultFAQs() []FAQEntry {
	return []FAQEntry{
		{
			Question: "What are your store hours?",
			Answer:   "We operate Monday–Friday, 10:00am–6:00pm (MYT). Saturday & Sunday are holidays. Our office is at Tower 3, Kuala Lumpur.",
		},
		{
			Question: "Do you have a price list?",
			Answer:   "Yes! Zuliäm Sign starts at RM699, and Zuliäm Mature at RM739. Prices may vary with size availability.",
		},
		{
			Question: "How do returns work?",
			Answer:   "Returns are accepted within 30 days in unworn condition with the original receipt. Refunds are processed back to the original payment method in about 3–5 business days.",
		},
		{
			Question: "What are the shipping fees?",
			Answer:   "Standard shipping is RM9.50, express is RM24.00. Orders over RM200 ship free within Peninsular Malaysia. Our official courier is J&T Express Malaysia.",
		},
		{
			Question: "Where is your office?",
			Answer:   "We’re based at Tower 3, Kuala Lumpur, Malaysia.",
		},
	}
}
