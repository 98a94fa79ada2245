package domain

// RichText carries a block of product copy in both rendered and plain form.
// PlainText is derived from HTML when the source provides no plain version.
type RichText struct {
	HTML      string `json:"html"`
	PlainText string `json:"plainText"`
}

// Specifications holds the technical attributes of a heating product.
// Every field is always populated; absent raw values resolve to defaults.
type Specifications struct {
	Wattage    int     `json:"wattage"`
	Dimensions string  `json:"dimensions"`
	Weight     float64 `json:"weight"`
	Coverage   string  `json:"coverage"`
	Mounting   string  `json:"mounting"`
	Efficiency string  `json:"efficiency"`
}

// ProductImage is a single catalog image with its alt text.
type ProductImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

// ProductVariant is one purchasable variation of a product.
type ProductVariant struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Stock     int     `json:"stock"`
	IsDefault bool    `json:"isDefault"`
}

// CanonicalProduct is the reconciled, query-ready product entity. Price and
// Currency always mirror the default variant: the one flagged IsDefault, or
// the first variant in source order when none is flagged.
type CanonicalProduct struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Path           string           `json:"path"`
	Category       string           `json:"category"`
	Description    RichText         `json:"description"`
	Specifications Specifications   `json:"specifications"`
	Features       RichText         `json:"features"`
	Images         []ProductImage   `json:"images"`
	Variants       []ProductVariant `json:"variants"`
	Price          float64          `json:"price"`
	Currency       string           `json:"currency"`
	SourceURL      string           `json:"sourceUrl,omitempty"`
	ExtractedAt    string           `json:"extractedAt,omitempty"`
	Warranty       string           `json:"warranty"`
}

// DefaultVariant returns the variant whose price and currency the product
// carries. Callers must not invoke it on a product with zero variants; the
// normalizer rejects such records before they reach the catalog.
func (p *CanonicalProduct) DefaultVariant() ProductVariant {
	for _, v := range p.Variants {
		if v.IsDefault {
			return v
		}
	}
	return p.Variants[0]
}

// CatalogMetadata describes the loaded data set, distinct from the products.
type CatalogMetadata struct {
	ScrapedAt     string   `json:"scrapedAt"`
	TotalProducts int      `json:"totalProducts"`
	Source        string   `json:"source"`
	Categories    []string `json:"categories,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// ProductFilter narrows a product listing. All fields are optional and
// combine with AND; a nil bound means the corresponding check is skipped.
type ProductFilter struct {
	Category   string
	MinPrice   *float64
	MaxPrice   *float64
	MinWattage *int
	MaxWattage *int
}
