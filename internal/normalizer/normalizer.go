package normalizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wattshop/backend/internal/domain"
)

// Defaults applied when a fallback chain bottoms out. No canonical field is
// ever left absent: every optional raw field terminates in one of these.
const (
	DefaultCurrency    = "GBP"
	DefaultMounting    = "Wall mounted"
	DefaultDimensions  = "Unknown"
	DefaultEfficiency  = "Standard"
	DefaultWarranty    = "2 year manufacturer warranty"
	DefaultCategory    = "Uncategorized"
	DefaultAltText     = "Product image"
	DefaultStock       = 10
	DefaultDescription = "<p>Premium electric heating product.</p>"
	DefaultFeature     = "Energy efficient heating"
)

// Package-level compiled regex patterns for performance
var (
	htmlTagRegex        = regexp.MustCompile(`<[^>]*>`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// StripTags derives a plain-text rendering from an HTML fragment.
func StripTags(html string) string {
	text := htmlTagRegex.ReplaceAllString(html, " ")
	text = multipleSpacesRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// firstOf tries accessors in priority order and returns the first value one
// of them reports as defined. It keeps each field's precedence an explicit,
// auditable list rather than a chain of nil checks.
func firstOf[T any](accessors ...func() (T, bool)) (T, bool) {
	for _, access := range accessors {
		if v, ok := access(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Normalize converts one raw record into the canonical product model. It is
// pure: same record in, field-for-field identical product out. Unrecoverable
// gaps resolve to defaults rather than failing; the single rejection case is
// a record with zero variants, which returns ErrNoVariants instead of
// fabricating a variant and a price.
func Normalize(raw domain.RawProductRecord) (domain.CanonicalProduct, error) {
	if len(raw.Variants) == 0 {
		return domain.CanonicalProduct{}, fmt.Errorf("normalize %q: %w", raw.ID, domain.ErrNoVariants)
	}

	variants := normalizeVariants(raw.Variants)
	def := defaultVariant(variants)

	category := raw.Category
	if category == "" {
		category = DefaultCategory
	}

	return domain.CanonicalProduct{
		ID:             raw.ID,
		Name:           raw.Name,
		Path:           raw.Path,
		Category:       category,
		Description:    resolveDescription(raw),
		Specifications: resolveSpecifications(raw),
		Features:       resolveFeatures(raw),
		Images:         resolveImages(raw),
		Variants:       variants,
		Price:          def.Price,
		Currency:       def.Currency,
		SourceURL:      raw.URL,
		ExtractedAt:    raw.ExtractedAt,
		Warranty:       resolveWarranty(raw),
	}, nil
}

// specFields resolves the specification source block:
// components.specifications.chunks[0] -> specifications.basic -> empty.
func specFields(raw domain.RawProductRecord) domain.RawSpecFields {
	fields, ok := firstOf(
		func() (domain.RawSpecFields, bool) {
			if raw.Components != nil && raw.Components.Specifications != nil &&
				len(raw.Components.Specifications.Chunks) > 0 {
				return raw.Components.Specifications.Chunks[0], true
			}
			return domain.RawSpecFields{}, false
		},
		func() (domain.RawSpecFields, bool) {
			if raw.Specifications != nil && raw.Specifications.Basic != nil {
				return *raw.Specifications.Basic, true
			}
			return domain.RawSpecFields{}, false
		},
	)
	if !ok {
		return domain.RawSpecFields{}
	}
	return fields
}

func resolveSpecifications(raw domain.RawProductRecord) domain.Specifications {
	fields := specFields(raw)

	specs := domain.Specifications{
		Wattage:    0,
		Dimensions: DefaultDimensions,
		Weight:     0,
		Mounting:   DefaultMounting,
	}
	if fields.Wattage != nil {
		specs.Wattage = *fields.Wattage
	}
	if fields.Dimensions != nil {
		specs.Dimensions = *fields.Dimensions
	}
	if fields.Weight != nil {
		specs.Weight = *fields.Weight
	}
	if fields.Mounting != nil {
		specs.Mounting = *fields.Mounting
	}

	// Coverage and efficiency additionally fall back to the top-level
	// specifications block before defaulting.
	specs.Coverage, _ = firstOf(
		optional(fields.Coverage),
		func() (string, bool) {
			if raw.Specifications != nil {
				return deref(raw.Specifications.Coverage)
			}
			return "", false
		},
	)
	if efficiency, ok := firstOf(
		optional(fields.Efficiency),
		func() (string, bool) {
			if raw.Specifications != nil {
				return deref(raw.Specifications.Efficiency)
			}
			return "", false
		},
	); ok {
		specs.Efficiency = efficiency
	} else {
		specs.Efficiency = DefaultEfficiency
	}

	return specs
}

// resolveDescription: components.description.content -> information.description
// wrapped as HTML -> literal default paragraph. Plain text is always derived
// by tag-stripping when the source carries only HTML.
func resolveDescription(raw domain.RawProductRecord) domain.RichText {
	html, _ := firstOf(
		func() (string, bool) {
			if raw.Components != nil && raw.Components.Description != nil {
				return nonEmpty(raw.Components.Description.Content)
			}
			return "", false
		},
		func() (string, bool) {
			if raw.Information != nil && raw.Information.Description != "" {
				return "<p>" + raw.Information.Description + "</p>", true
			}
			return "", false
		},
		func() (string, bool) { return DefaultDescription, true },
	)
	return domain.RichText{HTML: html, PlainText: StripTags(html)}
}

// resolveFeatures follows the same two-tier pattern as the description, with
// a default feature bullet at the end of the chain.
func resolveFeatures(raw domain.RawProductRecord) domain.RichText {
	html, _ := firstOf(
		func() (string, bool) {
			if raw.Components != nil && raw.Components.Features != nil {
				return nonEmpty(raw.Components.Features.Content)
			}
			return "", false
		},
		func() (string, bool) {
			if raw.Information != nil && raw.Information.Features != "" {
				return "<ul><li>" + raw.Information.Features + "</li></ul>", true
			}
			return "", false
		},
		func() (string, bool) { return "<ul><li>" + DefaultFeature + "</li></ul>", true },
	)
	return domain.RichText{HTML: html, PlainText: StripTags(html)}
}

// resolveImages: components.productImages.images -> media.images -> none.
func resolveImages(raw domain.RawProductRecord) []domain.ProductImage {
	rawImages, _ := firstOf(
		func() ([]domain.RawImage, bool) {
			if raw.Components != nil && raw.Components.ProductImages != nil &&
				len(raw.Components.ProductImages.Images) > 0 {
				return raw.Components.ProductImages.Images, true
			}
			return nil, false
		},
		func() ([]domain.RawImage, bool) {
			if raw.Media != nil && len(raw.Media.Images) > 0 {
				return raw.Media.Images, true
			}
			return nil, false
		},
	)

	images := make([]domain.ProductImage, 0, len(rawImages))
	for _, img := range rawImages {
		alt, _ := firstOf(
			func() (string, bool) { return nonEmpty(img.AltText) },
			func() (string, bool) { return nonEmpty(img.Alt) },
			func() (string, bool) { return DefaultAltText, true },
		)
		images = append(images, domain.ProductImage{URL: img.URL, AltText: alt})
	}
	return images
}

// resolveWarranty: components.warranty.text -> information.warranty -> default.
func resolveWarranty(raw domain.RawProductRecord) string {
	warranty, _ := firstOf(
		func() (string, bool) {
			if raw.Components != nil && raw.Components.Warranty != nil {
				return nonEmpty(raw.Components.Warranty.Text)
			}
			return "", false
		},
		func() (string, bool) {
			if raw.Information != nil {
				return nonEmpty(raw.Information.Warranty)
			}
			return "", false
		},
		func() (string, bool) { return DefaultWarranty, true },
	)
	return warranty
}

// normalizeVariants carries variants over in source order and guarantees
// exactly one is flagged as default: the first explicitly flagged variant,
// or the one at position 0 when none carries the flag.
func normalizeVariants(rawVariants []domain.RawVariant) []domain.ProductVariant {
	variants := make([]domain.ProductVariant, 0, len(rawVariants))
	for _, rv := range rawVariants {
		variants = append(variants, normalizeVariant(rv))
	}

	defaultIdx := 0
	for i, v := range variants {
		if v.IsDefault {
			defaultIdx = i
			break
		}
	}
	variants[defaultIdx].IsDefault = true
	return variants
}

func normalizeVariant(rv domain.RawVariant) domain.ProductVariant {
	currency, _ := firstOf(
		func() (string, bool) {
			if len(rv.PriceVariants) > 0 {
				return nonEmpty(rv.PriceVariants[0].Currency)
			}
			return "", false
		},
		func() (string, bool) { return nonEmpty(rv.Currency) },
		func() (string, bool) { return DefaultCurrency, true },
	)

	stock := DefaultStock
	if rv.Stock != nil {
		stock = *rv.Stock
	}

	return domain.ProductVariant{
		ID:        rv.ID,
		Name:      rv.Name,
		SKU:       rv.SKU,
		Price:     rv.Price,
		Currency:  currency,
		Stock:     stock,
		IsDefault: rv.IsDefault,
	}
}

func defaultVariant(variants []domain.ProductVariant) domain.ProductVariant {
	for _, v := range variants {
		if v.IsDefault {
			return v
		}
	}
	return variants[0]
}

// optional lifts a pointer field into an accessor for firstOf.
func optional(s *string) func() (string, bool) {
	return func() (string, bool) { return deref(s) }
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}
