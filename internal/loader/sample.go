package loader

import (
	"time"

	"github.com/wattshop/backend/internal/domain"
)

// sampleCatalog generates a small deterministic record set so the service
// stays servable when every real source fails. The records cover both raw
// layout families, which keeps the normalizer paths exercised even on
// sample data.
func sampleCatalog() ([]domain.RawProductRecord, domain.CatalogMetadata) {
	wattage600 := 600
	wattage1200 := 1200
	dimensions := "60 x 40 x 9 cm"
	coverage := "10 sqm"

	records := []domain.RawProductRecord{
		{
			ID:       "sample-eco-panel-600",
			Name:     "EcoSlim Panel Heater 600W",
			Path:     "/heaters/ecoslim-panel-600",
			Category: "Panel Heaters",
			Components: &domain.RawComponents{
				Description: &domain.RawContentBlock{
					Content: "<p>Slimline wall mounted panel heater with digital thermostat.</p>",
				},
				Specifications: &domain.RawChunkBlock{
					Chunks: []domain.RawSpecFields{{
						Wattage:    &wattage600,
						Dimensions: &dimensions,
						Coverage:   &coverage,
					}},
				},
				ProductImages: &domain.RawImageBlock{
					Images: []domain.RawImage{{URL: "/images/ecoslim-panel-600.jpg", AltText: "EcoSlim panel heater"}},
				},
			},
			Variants: []domain.RawVariant{
				{ID: "sample-eco-panel-600-white", Name: "White", SKU: "ECO-600-W", Price: 149.99, IsDefault: true},
				{ID: "sample-eco-panel-600-black", Name: "Black", SKU: "ECO-600-B", Price: 159.99},
			},
		},
		{
			ID:       "sample-aurora-convector-1200",
			Name:     "Aurora Convector 1200W",
			Path:     "/heaters/aurora-convector-1200",
			Category: "Convector Heaters",
			Information: &domain.RawInformation{
				Description: "Freestanding convector heater with turbo fan and 24 hour timer.",
				Warranty:    "3 year manufacturer warranty",
			},
			Specifications: &domain.RawSpecifications{
				Basic: &domain.RawSpecFields{Wattage: &wattage1200},
			},
			Media: &domain.RawMedia{
				Images: []domain.RawImage{{URL: "/images/aurora-convector-1200.jpg", Alt: "Aurora convector heater"}},
			},
			Variants: []domain.RawVariant{
				{ID: "sample-aurora-convector-1200-std", Name: "Standard", SKU: "AUR-1200", Price: 89.99},
			},
		},
		{
			ID:       "sample-helios-infrared-350",
			Name:     "Helios Infrared Panel 350W",
			Path:     "/heaters/helios-infrared-350",
			Category: "Infrared Heaters",
			Variants: []domain.RawVariant{
				{ID: "sample-helios-infrared-350-std", Name: "Standard", SKU: "HEL-350", Price: 199.99},
			},
		},
	}

	meta := domain.CatalogMetadata{
		ScrapedAt:     time.Now().UTC().Format(time.RFC3339),
		TotalProducts: len(records),
		Source:        "sample_data",
		Categories:    []string{"Convector Heaters", "Infrared Heaters", "Panel Heaters"},
	}
	return records, meta
}
