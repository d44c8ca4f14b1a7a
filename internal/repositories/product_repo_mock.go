package repositories

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"calzado/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository,
// used for local development and tests that do not want a database.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

func matchesCoarse(p models.Product, filter ProductListFilter) bool {
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.Genre != "" && p.Genre != filter.Genre {
		return false
	}
	if filter.BrandID != "" && p.BrandID != filter.BrandID {
		return false
	}
	if filter.Featured != nil && p.Featured != *filter.Featured {
		return false
	}
	if filter.IsNew != nil && p.IsNew != *filter.IsNew {
		return false
	}
	return true
}

// List returns products matching the coarse filter. Results are ordered by
// creation time descending like the GORM implementation, so both stores hand
// the engine equivalently shaped snapshots.
func (r *MockProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesCoarse(p, filter) {
			productList = append(productList, p)
		}
	}
	sort.Slice(productList, func(i, j int) bool {
		if !productList[i].CreatedAt.Equal(productList[j].CreatedAt) {
			return productList[i].CreatedAt.After(productList[j].CreatedAt)
		}
		return productList[i].ID < productList[j].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(productList) {
			return []models.Product{}, nil
		}
		productList = productList[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(productList) {
		productList = productList[:filter.Limit]
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for i := range product.Images {
		if product.Images[i].ID == "" {
			product.Images[i].ID = uuid.New().String()
		}
		product.Images[i].ProductID = product.ID
	}
	for i := range product.Sizes {
		if product.Sizes[i].ID == "" {
			product.Sizes[i].ID = uuid.New().String()
		}
		product.Sizes[i].ProductID = product.ID
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product %s: %w", product.ID, ErrProductNotFound)
	}
	// Nested collections are managed through the dedicated methods.
	product.Images = existing.Images
	product.Sizes = existing.Sizes
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}

// AddImage attaches an image to a product.
func (r *MockProductRepository) AddImage(productID string, image *models.ProductImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("product %s: %w", productID, ErrProductNotFound)
	}
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	image.ProductID = productID
	product.Images = append(product.Images, *image)
	sort.Slice(product.Images, func(i, j int) bool {
		return product.Images[i].Position < product.Images[j].Position
	})
	r.products[productID] = product
	return nil
}

// ReorderImages rewrites image positions, keyed by image ID.
func (r *MockProductRepository) ReorderImages(productID string, positions map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("product %s: %w", productID, ErrProductNotFound)
	}
	for i := range product.Images {
		if pos, ok := positions[product.Images[i].ID]; ok {
			product.Images[i].Position = pos
		}
	}
	sort.Slice(product.Images, func(i, j int) bool {
		return product.Images[i].Position < product.Images[j].Position
	})
	r.products[productID] = product
	return nil
}

// ReplaceSizes upserts the size set of a product by value.
func (r *MockProductRepository) ReplaceSizes(productID string, sizes []models.Size) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("product %s: %w", productID, ErrProductNotFound)
	}
	byValue := make(map[string]int, len(product.Sizes))
	for i, s := range product.Sizes {
		byValue[s.Value] = i
	}
	for _, size := range sizes {
		if i, ok := byValue[size.Value]; ok {
			product.Sizes[i].Inventory = size.Inventory
			continue
		}
		size.ID = uuid.New().String()
		size.ProductID = productID
		product.Sizes = append(product.Sizes, size)
	}
	r.products[productID] = product
	return nil
}
