package catalog

import (
	"strings"

	"calzado/internal/models"
)

// PriceRange bounds the effective price, inclusive on both ends. A range with
// Min > Max is accepted and simply matches nothing.
type PriceRange struct {
	Min float64
	Max float64
}

// FilterSpec enumerates every filter the catalog understands. The zero value
// matches everything: each field only constrains the result when it is set,
// so absent options can never accidentally exclude the whole collection.
type FilterSpec struct {
	// SearchTerm matches case-insensitively against product name or brand name.
	SearchTerm string
	// BrandName narrows to a single brand; BrandNames to any of a set. Both
	// may be combined, the union is accepted.
	BrandName  string
	BrandNames []string
	// BrandID narrows by the brand foreign key, used by the admin listing.
	BrandID    string
	Genres     []models.Genre
	Categories []models.Category
	PriceRange *PriceRange
	// Colors is accepted for compatibility with the storefront filter panel
	// but the entity model carries no color dimension, so it never constrains
	// the result.
	Colors       []string
	OnSaleOnly   bool
	FeaturedOnly bool
	NewOnly      bool
	InStockOnly  bool
}

// Predicate compiles the spec into a single product predicate: the logical
// AND of all active sub-filters. It is a pure function of the spec and never
// touches a store, so building it cannot fail.
func (f FilterSpec) Predicate() func(models.Product) bool {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	brands := make(map[string]struct{}, len(f.BrandNames)+1)
	if f.BrandName != "" {
		brands[f.BrandName] = struct{}{}
	}
	for _, b := range f.BrandNames {
		if b != "" {
			brands[b] = struct{}{}
		}
	}

	genres := make(map[models.Genre]struct{}, len(f.Genres))
	for _, g := range f.Genres {
		genres[g] = struct{}{}
	}

	categories := make(map[models.Category]struct{}, len(f.Categories))
	for _, c := range f.Categories {
		categories[c] = struct{}{}
	}

	return func(p models.Product) bool {
		if term != "" {
			name := strings.ToLower(p.Name)
			brand := strings.ToLower(p.BrandName())
			if !strings.Contains(name, term) && !strings.Contains(brand, term) {
				return false
			}
		}
		if len(brands) > 0 {
			if _, ok := brands[p.BrandName()]; !ok {
				return false
			}
		}
		if f.BrandID != "" && p.BrandID != f.BrandID {
			return false
		}
		if len(genres) > 0 {
			// Unisex products belong on every gendered shelf.
			if _, ok := genres[p.Genre]; !ok && p.Genre != models.GenreUnisex {
				return false
			}
		}
		if len(categories) > 0 {
			if _, ok := categories[p.Category]; !ok {
				return false
			}
		}
		if f.PriceRange != nil {
			price := p.EffectivePrice()
			if price < f.PriceRange.Min || price > f.PriceRange.Max {
				return false
			}
		}
		if f.OnSaleOnly && !p.IsOnSale() {
			return false
		}
		if f.FeaturedOnly && !p.Featured {
			return false
		}
		if f.NewOnly && !p.IsNew {
			return false
		}
		if f.InStockOnly && !p.InStock() {
			return false
		}
		return true
	}
}
