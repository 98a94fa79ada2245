package usecase

import (
	"sort"
	"strings"

	"github.com/wattshop/backend/internal/catalog"
	"github.com/wattshop/backend/internal/domain"
)

// DefaultListLimit caps product listings when the caller supplies no limit.
const DefaultListLimit = 20

// QueryEngine answers read-only queries against the catalog index. Filter
// values are data, not program errors: nonsensical parameters (min > max,
// unknown ids) yield empty results, never failures.
type QueryEngine struct {
	index *catalog.Index
}

// NewQueryEngine creates a query engine over the given index.
func NewQueryEngine(index *catalog.Index) *QueryEngine {
	return &QueryEngine{index: index}
}

// List returns products in ingestion order, narrowed by the filter's
// AND-combined predicates and truncated to limit from the front.
func (e *QueryEngine) List(limit int, filter *domain.ProductFilter) []domain.CanonicalProduct {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	results := e.collect(func(p *domain.CanonicalProduct) bool {
		return matchesFilter(p, filter)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// GetByID returns the product with the exact id, or nil when absent.
func (e *QueryEngine) GetByID(id string) *domain.CanonicalProduct {
	return e.index.ByID(id)
}

// Categories returns the distinct category names, case-sensitive, in
// ascending lexical order.
func (e *QueryEngine) Categories() []string {
	seen := make(map[string]struct{})
	for _, p := range e.index.Products() {
		seen[p.Category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// ByCategory returns products whose category equals the argument,
// case-insensitively.
func (e *QueryEngine) ByCategory(category string) []domain.CanonicalProduct {
	return e.collect(func(p *domain.CanonicalProduct) bool {
		return strings.EqualFold(p.Category, category)
	})
}

// Search returns products where the query is a case-insensitive substring of
// the name, the plain-text description, or the category. Boolean matching
// only; there is no relevance ranking.
func (e *QueryEngine) Search(query string) []domain.CanonicalProduct {
	q := strings.ToLower(query)
	return e.collect(func(p *domain.CanonicalProduct) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description.PlainText), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	})
}

// ByPriceRange returns products priced within [min, max], bounds inclusive.
func (e *QueryEngine) ByPriceRange(min, max float64) []domain.CanonicalProduct {
	return e.collect(func(p *domain.CanonicalProduct) bool {
		return p.Price >= min && p.Price <= max
	})
}

// ByWattageRange returns products whose wattage lies within [min, max],
// bounds inclusive.
func (e *QueryEngine) ByWattageRange(min, max int) []domain.CanonicalProduct {
	return e.collect(func(p *domain.CanonicalProduct) bool {
		return p.Specifications.Wattage >= min && p.Specifications.Wattage <= max
	})
}

// Metadata returns the loader metadata enriched with the live category set.
func (e *QueryEngine) Metadata() domain.CatalogMetadata {
	meta := e.index.Metadata()
	meta.TotalProducts = e.index.Len()
	meta.Categories = e.Categories()
	return meta
}

// collect walks the catalog in ingestion order, keeping products the
// predicate accepts. It always returns a non-nil slice so empty result sets
// serialize as [] rather than null.
func (e *QueryEngine) collect(keep func(*domain.CanonicalProduct) bool) []domain.CanonicalProduct {
	products := e.index.Products()
	results := make([]domain.CanonicalProduct, 0)
	for idx := range products {
		if keep(&products[idx]) {
			results = append(results, products[idx])
		}
	}
	return results
}

// matchesFilter applies the optional filter fields as a logical AND. A nil
// filter matches everything; a nil bound skips that check.
func matchesFilter(p *domain.CanonicalProduct, f *domain.ProductFilter) bool {
	if f == nil {
		return true
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinWattage != nil && p.Specifications.Wattage < *f.MinWattage {
		return false
	}
	if f.MaxWattage != nil && p.Specifications.Wattage > *f.MaxWattage {
		return false
	}
	return true
}
