package catalog

import (
	"fmt"
	"sort"

	"calzado/internal/models"
)

// SortKey identifies one of the fixed catalog orderings.
type SortKey string

const (
	// SortFeatured puts featured products first, preserving the incoming
	// relative order inside each partition. It is the default.
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// SortKeyFor maps the request-level (sortBy, sortOrder) pair onto a SortKey.
// Empty sortBy falls back to the featured ordering; unknown values are
// rejected so a typo cannot silently degrade into the default.
func SortKeyFor(sortBy, sortOrder string) (SortKey, error) {
	desc := sortOrder == "desc"
	switch sortBy {
	case "":
		return SortFeatured, nil
	case "price":
		if desc {
			return SortPriceDesc, nil
		}
		return SortPriceAsc, nil
	case "name":
		if desc {
			return SortNameDesc, nil
		}
		return SortNameAsc, nil
	case "createdAt":
		return SortNewest, nil
	}
	return "", fmt.Errorf("%w: sortBy %q", ErrUnknownSortKey, sortBy)
}

// Sort orders products in place according to key. Every ordering except the
// featured partition breaks ties by ID ascending, so equal prices or equal
// timestamps still produce one reproducible order regardless of how the
// collection arrived.
func Sort(products []models.Product, key SortKey) error {
	var less func(a, b models.Product) bool

	switch key {
	case SortFeatured, "":
		// Stable partition, not a full sort: arrival order survives within
		// the featured and non-featured halves.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
		return nil
	case SortPriceAsc:
		less = func(a, b models.Product) bool {
			if pa, pb := a.EffectivePrice(), b.EffectivePrice(); pa != pb {
				return pa < pb
			}
			return a.ID < b.ID
		}
	case SortPriceDesc:
		less = func(a, b models.Product) bool {
			if pa, pb := a.EffectivePrice(), b.EffectivePrice(); pa != pb {
				return pa > pb
			}
			return a.ID < b.ID
		}
	case SortNewest:
		less = func(a, b models.Product) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID < b.ID
		}
	case SortNameAsc:
		less = func(a, b models.Product) bool {
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			return a.ID < b.ID
		}
	case SortNameDesc:
		less = func(a, b models.Product) bool {
			if a.Name != b.Name {
				return a.Name > b.Name
			}
			return a.ID < b.ID
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
	return nil
}
