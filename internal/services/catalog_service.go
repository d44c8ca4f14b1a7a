package services

import (
	"errors"
	"fmt"
	"math"

	"calzado/internal/catalog"
	"calzado/internal/models"
	"calzado/internal/repositories"
)

// ErrInvalidQuery marks a listing request that fails parameter validation
// (unknown category, genre or sort key). It is raised before any store
// access.
var ErrInvalidQuery = errors.New("invalid query parameter")

// ListProductsRequest is the transport-independent shape of a catalog listing
// request. Zero values mean "no constraint"; Page and Limit get the usual
// defaults when unset.
type ListProductsRequest struct {
	Page      int
	Limit     int
	Search    string
	Category  string
	Genre     string
	BrandID   string
	Brands    []string
	MinPrice  *float64
	MaxPrice  *float64
	Featured  bool
	IsNew     bool
	OnSale    bool
	InStock   bool
	SortBy    string
	SortOrder string
}

// CatalogService is the read side of the catalog: every listing, search and
// detail page goes through it. It fetches a snapshot from the product store
// and runs the query engine over it; the store's coarse filtering is only an
// optimization, never load-bearing.
type CatalogService struct {
	productRepo repositories.ProductRepository
	brandRepo   repositories.BrandRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, brandRepo repositories.BrandRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		brandRepo:   brandRepo,
	}
}

// ListProducts validates the request, builds the filter and sort criteria,
// fetches a product snapshot and queries it. Parameter errors surface before
// the store is touched; store errors propagate unchanged.
func (s *CatalogService) ListProducts(req ListProductsRequest) (*catalog.QueryResult, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = 10
	}
	if req.Limit < 0 {
		return nil, catalog.ErrInvalidPageSize
	}

	spec := catalog.FilterSpec{
		SearchTerm:   req.Search,
		BrandNames:   req.Brands,
		BrandID:      req.BrandID,
		OnSaleOnly:   req.OnSale,
		FeaturedOnly: req.Featured,
		NewOnly:      req.IsNew,
		InStockOnly:  req.InStock,
	}
	coarse := repositories.ProductListFilter{BrandID: req.BrandID}

	if req.Category != "" {
		category, ok := models.ParseCategory(req.Category)
		if !ok {
			return nil, fmt.Errorf("%w: category %q", ErrInvalidQuery, req.Category)
		}
		spec.Categories = []models.Category{category}
		coarse.Category = category
	}
	if req.Genre != "" {
		genre, ok := models.ParseGenre(req.Genre)
		if !ok {
			return nil, fmt.Errorf("%w: genre %q", ErrInvalidQuery, req.Genre)
		}
		spec.Genres = []models.Genre{genre}
		// Genre is not pushed down: unisex products must pass a genre filter
		// and the store cannot know that rule.
	}
	if req.MinPrice != nil || req.MaxPrice != nil {
		pr := catalog.PriceRange{Max: math.MaxFloat64}
		if req.MinPrice != nil {
			pr.Min = *req.MinPrice
		}
		if req.MaxPrice != nil {
			pr.Max = *req.MaxPrice
		}
		spec.PriceRange = &pr
	}
	if req.Featured {
		featured := true
		coarse.Featured = &featured
	}
	if req.IsNew {
		isNew := true
		coarse.IsNew = &isNew
	}

	key, err := catalog.SortKeyFor(req.SortBy, req.SortOrder)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.productRepo.List(coarse)
	if err != nil {
		return nil, err
	}

	return catalog.Query(snapshot, spec, key, catalog.Pagination{Page: req.Page, PageSize: req.Limit})
}

// GetProductByID retrieves a single product. A missing product surfaces as
// repositories.ErrProductNotFound, which callers treat as a normal outcome.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// FeaturedProducts returns the newest featured products, capped at limit
// (default 6). Used by the landing page carousel.
func (s *CatalogService) FeaturedProducts(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 6
	}
	return s.curated(catalog.FilterSpec{FeaturedOnly: true}, limit)
}

// NewArrivals returns the newest products flagged as new, capped at limit
// (default 8).
func (s *CatalogService) NewArrivals(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	return s.curated(catalog.FilterSpec{NewOnly: true}, limit)
}

func (s *CatalogService) curated(spec catalog.FilterSpec, limit int) ([]models.Product, error) {
	snapshot, err := s.productRepo.List(repositories.ProductListFilter{})
	if err != nil {
		return nil, err
	}
	result, err := catalog.Query(snapshot, spec, catalog.SortNewest, catalog.Pagination{Page: 1, PageSize: limit})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// Brands returns all brands ordered by name, for filter option lists.
func (s *CatalogService) Brands() ([]models.Brand, error) {
	return s.brandRepo.GetAll()
}
