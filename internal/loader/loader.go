package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/wattshop/backend/internal/domain"
)

// envelope is the enhanced artifact layout produced by newer scraper runs.
// Legacy runs wrote a bare JSON array of records instead.
type envelope struct {
	Products []domain.RawProductRecord `json:"products"`
	Metadata *domain.CatalogMetadata   `json:"metadata"`
}

// Loader obtains the raw record set from the first usable candidate source:
// primary artifact, then fallback artifact, then a generated sample catalog.
type Loader struct {
	primaryPath  string
	fallbackPath string
}

// New creates a loader over the two candidate artifact paths.
func New(primaryPath, fallbackPath string) *Loader {
	return &Loader{
		primaryPath:  primaryPath,
		fallbackPath: fallbackPath,
	}
}

// Load returns a non-empty raw record set and its metadata. It never fails:
// source problems are absorbed into the cascade and the sample catalog is
// the terminal fallback, so the process always has something to serve.
// A parse failure on an earlier candidate is surfaced through metadata.Error
// as an informational tag only.
func (l *Loader) Load() ([]domain.RawProductRecord, domain.CatalogMetadata) {
	var parseFailure string

	for _, path := range []string{l.primaryPath, l.fallbackPath} {
		if path == "" {
			continue
		}
		records, meta, err := probeFile(path)
		if err != nil {
			log.Printf("[loader] skipping %s: %v", path, err)
			if parseFailure == "" && !isMissing(err) {
				parseFailure = err.Error()
			}
			continue
		}
		log.Printf("[loader] loaded %d records from %s (source: %s)", len(records), path, meta.Source)
		if parseFailure != "" {
			meta.Error = parseFailure
		}
		return records, meta
	}

	records, meta := sampleCatalog()
	meta.Error = parseFailure
	log.Printf("[loader] no usable artifact, generated %d sample records", len(records))
	return records, meta
}

// probeFile reads and parses one candidate artifact. The error reports why
// the candidate was unusable: ErrSourceMissing, ErrMalformedSource,
// ErrEmptyCatalog, or a JSON parse failure.
func probeFile(path string) ([]domain.RawProductRecord, domain.CatalogMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.CatalogMetadata{}, fmt.Errorf("%w: %s", domain.ErrSourceMissing, path)
	}
	return parseSource(data, path)
}

// parseSource handles both artifact layouts: the {products, metadata}
// envelope and the legacy flat array, which gets synthesized metadata.
func parseSource(data []byte, origin string) ([]domain.RawProductRecord, domain.CatalogMetadata, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, domain.CatalogMetadata{}, fmt.Errorf("%w: %s is empty", domain.ErrMalformedSource, origin)
	}

	switch trimmed[0] {
	case '[':
		var records []domain.RawProductRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, domain.CatalogMetadata{}, fmt.Errorf("parse %s: %w", origin, err)
		}
		if len(records) == 0 {
			return nil, domain.CatalogMetadata{}, fmt.Errorf("%w: %s", domain.ErrEmptyCatalog, origin)
		}
		return records, legacyMetadata(len(records)), nil

	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, domain.CatalogMetadata{}, fmt.Errorf("parse %s: %w", origin, err)
		}
		if env.Products == nil {
			return nil, domain.CatalogMetadata{}, fmt.Errorf("%w: %s has no products field", domain.ErrMalformedSource, origin)
		}
		if len(env.Products) == 0 {
			return nil, domain.CatalogMetadata{}, fmt.Errorf("%w: %s", domain.ErrEmptyCatalog, origin)
		}
		meta := legacyMetadata(len(env.Products))
		if env.Metadata != nil {
			meta = *env.Metadata
			if meta.TotalProducts == 0 {
				meta.TotalProducts = len(env.Products)
			}
		}
		return env.Products, meta, nil

	default:
		return nil, domain.CatalogMetadata{}, fmt.Errorf("%w: %s is neither array nor object", domain.ErrMalformedSource, origin)
	}
}

func legacyMetadata(total int) domain.CatalogMetadata {
	return domain.CatalogMetadata{
		ScrapedAt:     time.Now().UTC().Format(time.RFC3339),
		TotalProducts: total,
		Source:        "legacy_data",
	}
}

func isMissing(err error) bool {
	return errors.Is(err, domain.ErrSourceMissing)
}
