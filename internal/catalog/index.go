package catalog

import (
	"log"
	"sync"

	"github.com/wattshop/backend/internal/domain"
	"github.com/wattshop/backend/internal/normalizer"
)

// snapshot is one fully built, immutable view of the catalog. Readers always
// see a whole snapshot; Reload swaps the pointer, never edits in place.
type snapshot struct {
	products []domain.CanonicalProduct
	byID     map[string]*domain.CanonicalProduct
	meta     domain.CatalogMetadata
}

// Index owns the canonical product set. It holds products in ingestion order
// plus an id lookup, and is read-only between reloads.
type Index struct {
	mu   sync.RWMutex
	snap *snapshot
}

// Build normalizes the loader output into a fresh index. Records the
// normalizer rejects (zero variants) are skipped, not fabricated into
// placeholder products.
func Build(records []domain.RawProductRecord, meta domain.CatalogMetadata) *Index {
	idx := &Index{}
	idx.snap = buildSnapshot(records, meta)
	return idx
}

// Reload replaces the entire snapshot atomically: in-flight reads observe
// either the fully-old or fully-new catalog, never a partial rebuild.
func (i *Index) Reload(records []domain.RawProductRecord, meta domain.CatalogMetadata) {
	snap := buildSnapshot(records, meta)

	i.mu.Lock()
	i.snap = snap
	i.mu.Unlock()
}

func buildSnapshot(records []domain.RawProductRecord, meta domain.CatalogMetadata) *snapshot {
	products := make([]domain.CanonicalProduct, 0, len(records))
	for _, raw := range records {
		product, err := normalizer.Normalize(raw)
		if err != nil {
			log.Printf("[catalog] skipping record %q (shape %s): %v", raw.ID, raw.Shape(), err)
			continue
		}
		products = append(products, product)
	}

	byID := make(map[string]*domain.CanonicalProduct, len(products))
	for idx := range products {
		byID[products[idx].ID] = &products[idx]
	}

	meta.TotalProducts = len(products)
	return &snapshot{products: products, byID: byID, meta: meta}
}

// Products returns the canonical set in ingestion order. Callers must treat
// the slice as read-only.
func (i *Index) Products() []domain.CanonicalProduct {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.snap.products
}

// ByID returns the product for an exact id match, or nil when absent.
func (i *Index) ByID(id string) *domain.CanonicalProduct {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.snap.byID[id]
}

// Metadata returns the loader metadata captured at build time.
func (i *Index) Metadata() domain.CatalogMetadata {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.snap.meta
}

// Len returns the number of canonical products currently held.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.snap.products)
}
