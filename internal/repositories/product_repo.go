package repositories

import (
	"errors"

	"calzado/internal/models"
)

// Sentinel errors returned by repositories. A missing record is a normal
// outcome callers check with errors.Is, distinct from a store failure.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrBrandNotFound   = errors.New("brand not found")
)

// ProductListFilter is a coarse filter pushed down to the store as an
// optimization. The query engine re-applies the full FilterSpec over whatever
// comes back, so correctness never depends on the store honoring any field.
// The zero value means "the entire collection".
type ProductListFilter struct {
	Category models.Category
	Genre    models.Genre
	BrandID  string
	Featured *bool
	IsNew    *bool
	Limit    int
	Offset   int
}

// ProductRepository defines the interface for product data access. List
// implementations must return products with brand, images (by position) and
// sizes (by value) loaded, as a consistent snapshot for the duration of the
// call.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	AddImage(productID string, image *models.ProductImage) error
	ReorderImages(productID string, positions map[string]int) error
	ReplaceSizes(productID string, sizes []models.Size) error
}
