// Package catalog is the in-memory query engine behind every product listing:
// category pages, free-text search and the admin table all go through Query
// with a FilterSpec instead of carrying their own filtering code. The engine
// is stateless and read-only; each call works on the snapshot it is handed
// and never retains it.
package catalog

import (
	"sort"

	"calzado/internal/models"
)

// Facets summarizes the full filtered set (never just the visible page) so
// the filter sidebar can offer exactly the options that still have matches.
type Facets struct {
	Brands     []string          `json:"brands"`
	Categories []models.Category `json:"categories"`
	Count      int               `json:"count"`
	MinPrice   float64           `json:"min_price"`
	MaxPrice   float64           `json:"max_price"`
}

// QueryResult is the envelope returned for one page of a catalog query.
type QueryResult struct {
	Items  []models.Product `json:"data"`
	Meta   PageMeta         `json:"meta"`
	Facets Facets           `json:"facets"`
}

// Query filters, orders and paginates a product snapshot. Filtering preserves
// the snapshot's relative order, facets are computed over the whole filtered
// set before slicing, and the input slice is never mutated. The only failure
// modes are the pageSize and sort key caller contracts; an empty collection
// or an empty filtered set is a normal result.
func Query(products []models.Product, spec FilterSpec, key SortKey, pg Pagination) (*QueryResult, error) {
	if pg.PageSize <= 0 {
		return nil, ErrInvalidPageSize
	}

	match := spec.Predicate()
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if match(p) {
			filtered = append(filtered, p)
		}
	}

	facets := computeFacets(filtered)

	ordered := make([]models.Product, len(filtered))
	copy(ordered, filtered)
	if err := Sort(ordered, key); err != nil {
		return nil, err
	}

	items, meta, err := Paginate(ordered, pg)
	if err != nil {
		return nil, err
	}

	return &QueryResult{Items: items, Meta: meta, Facets: facets}, nil
}

func computeFacets(filtered []models.Product) Facets {
	facets := Facets{
		Brands:     []string{},
		Categories: []models.Category{},
		Count:      len(filtered),
	}
	if len(filtered) == 0 {
		return facets
	}

	brandSet := make(map[string]struct{})
	categorySet := make(map[models.Category]struct{})
	facets.MinPrice = filtered[0].EffectivePrice()
	facets.MaxPrice = facets.MinPrice

	for _, p := range filtered {
		if name := p.BrandName(); name != "" {
			brandSet[name] = struct{}{}
		}
		categorySet[p.Category] = struct{}{}
		price := p.EffectivePrice()
		if price < facets.MinPrice {
			facets.MinPrice = price
		}
		if price > facets.MaxPrice {
			facets.MaxPrice = price
		}
	}

	for name := range brandSet {
		facets.Brands = append(facets.Brands, name)
	}
	sort.Strings(facets.Brands)

	for c := range categorySet {
		facets.Categories = append(facets.Categories, c)
	}
	sort.Slice(facets.Categories, func(i, j int) bool {
		return facets.Categories[i] < facets.Categories[j]
	})

	return facets
}
