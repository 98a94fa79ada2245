package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wattshop/backend/internal/domain"
)

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }
func floatPtr(v float64) *float64 { return &v }

func baseVariant() domain.RawVariant {
	return domain.RawVariant{
		ID:    "var-1",
		Name:  "600W",
		SKU:   "HTR-600",
		Price: 199.99,
	}
}

func TestNormalize_NoSpecificationsBlock(t *testing.T) {
	raw := domain.RawProductRecord{
		ID:       "p1",
		Name:     "Eco Panel 600",
		Variants: []domain.RawVariant{baseVariant()},
	}

	got, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, 0, got.Specifications.Wattage)
	assert.Equal(t, DefaultMounting, got.Specifications.Mounting)
	assert.Equal(t, DefaultDimensions, got.Specifications.Dimensions)
	assert.Equal(t, DefaultEfficiency, got.Specifications.Efficiency)
	assert.Equal(t, 0.0, got.Specifications.Weight)
	assert.Empty(t, got.Specifications.Coverage)
}

func TestNormalize_ChunkWinsOverBasic(t *testing.T) {
	raw := domain.RawProductRecord{
		ID:   "p2",
		Name: "Eco Panel 600",
		Components: &domain.RawComponents{
			Specifications: &domain.RawChunkBlock{
				Chunks: []domain.RawSpecFields{{Wattage: intPtr(600)}},
			},
		},
		Specifications: &domain.RawSpecifications{
			Basic: &domain.RawSpecFields{Wattage: intPtr(900)},
		},
		Variants: []domain.RawVariant{baseVariant()},
	}

	got, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, 600, got.Specifications.Wattage)
}

func TestNormalize_FlatSpecificationsUsedWhenNoChunks(t *testing.T) {
	raw := domain.RawProductRecord{
		ID:   "p3",
		Name: "Slimline 900",
		Specifications: &domain.RawSpecifications{
			Basic: &domain.RawSpecFields{
				Wattage:    intPtr(900),
				Dimensions: strPtr("90 x 45 x 8 cm"),
				Weight:     floatPtr(6.2),
				Mounting:   strPtr("Floor standing"),
			},
			Coverage:   strPtr("14 sqm"),
			Efficiency: strPtr("Lot 20 compliant"),
		},
		Variants: []domain.RawVariant{baseVariant()},
	}

	got, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, 900, got.Specifications.Wattage)
	assert.Equal(t, "90 x 45 x 8 cm", got.Specifications.Dimensions)
	assert.Equal(t, 6.2, got.Specifications.Weight)
	assert.Equal(t, "Floor standing", got.Specifications.Mounting)
	assert.Equal(t, "14 sqm", got.Specifications.Coverage)
	assert.Equal(t, "Lot 20 compliant", got.Specifications.Efficiency)
}

func TestNormalize_DescriptionFallbackChain(t *testing.T) {
	tests := []struct {
		name      string
		raw       domain.RawProductRecord
		wantHTML  string
		wantPlain string
	}{
		{
			name: "component content wins",
			raw: domain.RawProductRecord{
				ID: "p4", Name: "A",
				Components: &domain.RawComponents{
					Description: &domain.RawContentBlock{Content: "<p>Slim <b>panel</b> heater.</p>"},
				},
				Information: &domain.RawInformation{Description: "ignored"},
				Variants:    []domain.RawVariant{baseVariant()},
			},
			wantHTML:  "<p>Slim <b>panel</b> heater.</p>",
			wantPlain: "Slim panel heater.",
		},
		{
			name: "flat description gets wrapped",
			raw: domain.RawProductRecord{
				ID: "p5", Name: "B",
				Information: &domain.RawInformation{Description: "Compact convector."},
				Variants:    []domain.RawVariant{baseVariant()},
			},
			wantHTML:  "<p>Compact convector.</p>",
			wantPlain: "Compact convector.",
		},
		{
			name: "default paragraph when both absent",
			raw: domain.RawProductRecord{
				ID: "p6", Name: "C",
				Variants: []domain.RawVariant{baseVariant()},
			},
			wantHTML:  DefaultDescription,
			wantPlain: "Premium electric heating product.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTML, got.Description.HTML)
			assert.Equal(t, tt.wantPlain, got.Description.PlainText)
		})
	}
}

func TestNormalize_FeaturesDefaultBullet(t *testing.T) {
	raw := domain.RawProductRecord{
		ID: "p7", Name: "D",
		Variants: []domain.RawVariant{baseVariant()},
	}

	got, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "<ul><li>Energy efficient heating</li></ul>", got.Features.HTML)
	assert.Equal(t, "Energy efficient heating", got.Features.PlainText)
}

func TestNormalize_ImageAltTextChain(t *testing.T) {
	raw := domain.RawProductRecord{
		ID: "p8", Name: "E",
		Components: &domain.RawComponents{
			ProductImages: &domain.RawImageBlock{
				Images: []domain.RawImage{
					{URL: "a.jpg", AltText: "Front view"},
					{URL: "b.jpg", Alt: "Side view"},
					{URL: "c.jpg"},
				},
			},
		},
		Variants: []domain.RawVariant{baseVariant()},
	}

	got, err := Normalize(raw)
	require.NoError(t, err)

	require.Len(t, got.Images, 3)
	assert.Equal(t, "Front view", got.Images[0].AltText)
	assert.Equal(t, "Side view", got.Images[1].AltText)
	assert.Equal(t, DefaultAltText, got.Images[2].AltText)
}

func TestNormalize_MediaImagesWhenNoComponentImages(t *testing.T) {
	raw := domain.RawProductRecord{
		ID: "p9", Name: "F",
		Media: &domain.RawMedia{
			Images: []domain.RawImage{{URL: "m.jpg", Alt: "Main"}},
		},
		Variants: []domain.RawVariant{baseVariant()},
	}

	got, err := Normalize(raw)
	require.NoError(t, err)

	require.Len(t, got.Images, 1)
	assert.Equal(t, "m.jpg", got.Images[0].URL)
	assert.Equal(t, "Main", got.Images[0].AltText)
}

func TestNormalize_WarrantyChain(t *testing.T) {
	tests := []struct {
		name string
		raw  domain.RawProductRecord
		want string
	}{
		{
			name: "component warranty wins",
			raw: domain.RawProductRecord{
				ID: "w1", Name: "G",
				Components:  &domain.RawComponents{Warranty: &domain.RawTextBlock{Text: "5 year warranty"}},
				Information: &domain.RawInformation{Warranty: "3 year warranty"},
				Variants:    []domain.RawVariant{baseVariant()},
			},
			want: "5 year warranty",
		},
		{
			name: "information warranty second",
			raw: domain.RawProductRecord{
				ID: "w2", Name: "H",
				Information: &domain.RawInformation{Warranty: "3 year warranty"},
				Variants:    []domain.RawVariant{baseVariant()},
			},
			want: "3 year warranty",
		},
		{
			name: "literal default last",
			raw: domain.RawProductRecord{
				ID: "w3", Name: "I",
				Variants: []domain.RawVariant{baseVariant()},
			},
			want: DefaultWarranty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Warranty)
		})
	}
}

func TestNormalize_DefaultVariantPricing(t *testing.T) {
	t.Run("flagged variant drives price", func(t *testing.T) {
		raw := domain.RawProductRecord{
			ID: "v1", Name: "J",
			Variants: []domain.RawVariant{
				{ID: "a", Price: 149.99},
				{ID: "b", Price: 299.99, IsDefault: true},
			},
		}

		got, err := Normalize(raw)
		require.NoError(t, err)

		assert.Equal(t, 299.99, got.Price)
		assert.Equal(t, DefaultCurrency, got.Currency)
	})

	t.Run("first variant is default when none flagged", func(t *testing.T) {
		raw := domain.RawProductRecord{
			ID: "v2", Name: "K",
			Variants: []domain.RawVariant{
				{ID: "a", Price: 449.99},
				{ID: "b", Price: 549.99},
			},
		}

		got, err := Normalize(raw)
		require.NoError(t, err)

		assert.Equal(t, 449.99, got.Price)
		assert.True(t, got.Variants[0].IsDefault)
		assert.False(t, got.Variants[1].IsDefault)
	})
}

func TestNormalize_VariantCurrencyChain(t *testing.T) {
	raw := domain.RawProductRecord{
		ID: "v3", Name: "L",
		Variants: []domain.RawVariant{
			{ID: "a", Price: 100, PriceVariants: []domain.RawPriceVariant{{Price: 120, Currency: "EUR"}}, Currency: "USD"},
			{ID: "b", Price: 100, Currency: "USD"},
			{ID: "c", Price: 100},
		},
	}

	got, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "EUR", got.Variants[0].Currency)
	assert.Equal(t, "USD", got.Variants[1].Currency)
	assert.Equal(t, DefaultCurrency, got.Variants[2].Currency)
}

func TestNormalize_VariantStockDefault(t *testing.T) {
	raw := domain.RawProductRecord{
		ID: "v4", Name: "M",
		Variants: []domain.RawVariant{
			{ID: "a", Price: 100, Stock: intPtr(3)},
			{ID: "b", Price: 100},
		},
	}

	got, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, 3, got.Variants[0].Stock)
	assert.Equal(t, DefaultStock, got.Variants[1].Stock)
}

func TestNormalize_ZeroVariantsRejected(t *testing.T) {
	raw := domain.RawProductRecord{ID: "v5", Name: "N"}

	_, err := Normalize(raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoVariants)
}

func TestNormalize_CategoryDefault(t *testing.T) {
	raw := domain.RawProductRecord{
		ID: "c1", Name: "O",
		Variants: []domain.RawVariant{baseVariant()},
	}

	got, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, DefaultCategory, got.Category)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := domain.RawProductRecord{
		ID:       "i1",
		Name:     "Eco Panel 600",
		Category: "Panel Heaters",
		Components: &domain.RawComponents{
			Description:    &domain.RawContentBlock{Content: "<p>Slim panel heater.</p>"},
			Specifications: &domain.RawChunkBlock{Chunks: []domain.RawSpecFields{{Wattage: intPtr(600)}}},
			ProductImages:  &domain.RawImageBlock{Images: []domain.RawImage{{URL: "a.jpg"}}},
		},
		Variants: []domain.RawVariant{
			{ID: "a", Price: 299.99, IsDefault: true},
			{ID: "b", Price: 349.99},
		},
	}

	first, err := Normalize(raw)
	require.NoError(t, err)
	second, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"paragraph", "<p>Hello</p>", "Hello"},
		{"nested tags", "<div><p>A <b>bold</b> claim</p></div>", "A bold claim"},
		{"no tags", "plain text", "plain text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.html))
		})
	}
}

func TestRecordShapeClassification(t *testing.T) {
	component := domain.RawProductRecord{Components: &domain.RawComponents{}}
	flat := domain.RawProductRecord{Information: &domain.RawInformation{}}
	bare := domain.RawProductRecord{}

	assert.Equal(t, domain.ComponentShaped, component.Shape())
	assert.Equal(t, domain.FlatShaped, flat.Shape())
	assert.Equal(t, domain.Unshaped, bare.Shape())
}
