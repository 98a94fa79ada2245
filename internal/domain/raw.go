package domain

// RecordShape classifies a raw record by which layout family its fields use.
type RecordShape int

const (
	// Unshaped records carry neither family; normalization yields defaults.
	Unshaped RecordShape = iota
	// ComponentShaped records nest content under components.<field>.
	ComponentShaped
	// FlatShaped records keep content under information.* / specifications.basic.
	FlatShaped
)

// String returns the shape name for logging.
func (s RecordShape) String() string {
	switch s {
	case ComponentShaped:
		return "component"
	case FlatShaped:
		return "flat"
	default:
		return "unshaped"
	}
}

// RawProductRecord is a product entry as scraped, before reconciliation.
// Two layout families exist and a single record may mix fields from both
// or omit blocks entirely, so every nested block is optional. Raw records
// are discarded after normalization.
type RawProductRecord struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Path           string             `json:"path"`
	Category       string             `json:"category"`
	URL            string             `json:"url,omitempty"`
	ExtractedAt    string             `json:"extractedAt,omitempty"`
	Components     *RawComponents     `json:"components,omitempty"`
	Information    *RawInformation    `json:"information,omitempty"`
	Specifications *RawSpecifications `json:"specifications,omitempty"`
	Media          *RawMedia          `json:"media,omitempty"`
	Variants       []RawVariant       `json:"variants"`
}

// Shape classifies the record. Component blocks win over flat blocks when a
// record mixes both, matching the per-field precedence the normalizer applies.
func (r *RawProductRecord) Shape() RecordShape {
	if r.Components != nil {
		return ComponentShaped
	}
	if r.Information != nil || r.Specifications != nil || r.Media != nil {
		return FlatShaped
	}
	return Unshaped
}

// RawComponents is the "component" family layout: each logical field lives
// under its own keyed block.
type RawComponents struct {
	Description    *RawContentBlock `json:"description,omitempty"`
	Features       *RawContentBlock `json:"features,omitempty"`
	Specifications *RawChunkBlock   `json:"specifications,omitempty"`
	ProductImages  *RawImageBlock   `json:"productImages,omitempty"`
	Warranty       *RawTextBlock    `json:"warranty,omitempty"`
}

// RawContentBlock holds a single HTML content payload.
type RawContentBlock struct {
	Content string `json:"content"`
}

// RawChunkBlock holds specification chunks; only the first chunk is consulted.
type RawChunkBlock struct {
	Chunks []RawSpecFields `json:"chunks"`
}

// RawImageBlock holds the component-family image list.
type RawImageBlock struct {
	Images []RawImage `json:"images"`
}

// RawTextBlock holds a single plain-text payload.
type RawTextBlock struct {
	Text string `json:"text"`
}

// RawInformation is the "flat" family text block.
type RawInformation struct {
	Description string `json:"description,omitempty"`
	Features    string `json:"features,omitempty"`
	Warranty    string `json:"warranty,omitempty"`
}

// RawSpecifications is the "flat" family specification block.
type RawSpecifications struct {
	Basic      *RawSpecFields `json:"basic,omitempty"`
	Coverage   *string        `json:"coverage,omitempty"`
	Efficiency *string        `json:"efficiency,omitempty"`
}

// RawSpecFields is the shared field set of a spec chunk and the flat basic
// block. Pointers distinguish absent values from zero values so fallback
// chains can tell the difference.
type RawSpecFields struct {
	Wattage    *int     `json:"wattage,omitempty"`
	Dimensions *string  `json:"dimensions,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Coverage   *string  `json:"coverage,omitempty"`
	Mounting   *string  `json:"mounting,omitempty"`
	Efficiency *string  `json:"efficiency,omitempty"`
}

// RawMedia is the flat-family image container.
type RawMedia struct {
	Images []RawImage `json:"images"`
}

// RawImage is a scraped image reference. Alt text appears under either key
// depending on the scraper run.
type RawImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Alt     string `json:"alt,omitempty"`
}

// RawVariant is a purchasable variation as scraped.
type RawVariant struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Price         float64           `json:"price"`
	Currency      string            `json:"currency,omitempty"`
	Stock         *int              `json:"stock,omitempty"`
	IsDefault     bool              `json:"isDefault"`
	PriceVariants []RawPriceVariant `json:"priceVariants,omitempty"`
}

// RawPriceVariant carries per-market pricing; only the currency of the first
// entry is consulted during normalization.
type RawPriceVariant struct {
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}
