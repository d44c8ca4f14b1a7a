package repositories

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"calzado/internal/models"
)

// MockBrandRepository is an in-memory implementation of BrandRepository.
type MockBrandRepository struct {
	brands map[string]models.Brand
	mu     sync.RWMutex
}

// NewMockBrandRepository creates a new instance of MockBrandRepository.
func NewMockBrandRepository() *MockBrandRepository {
	return &MockBrandRepository{
		brands: make(map[string]models.Brand),
	}
}

// GetAll returns all brands ordered by name.
func (r *MockBrandRepository) GetAll() ([]models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brandList := make([]models.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		brandList = append(brandList, b)
	}
	sort.Slice(brandList, func(i, j int) bool {
		return brandList[i].Name < brandList[j].Name
	})
	return brandList, nil
}

// GetByID returns a brand by its ID.
func (r *MockBrandRepository) GetByID(id string) (*models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brand, ok := r.brands[id]
	if !ok {
		return nil, fmt.Errorf("brand %s: %w", id, ErrBrandNotFound)
	}
	return &brand, nil
}

// GetByName returns a brand by its unique display name.
func (r *MockBrandRepository) GetByName(name string) (*models.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.brands {
		if b.Name == name {
			brand := b
			return &brand, nil
		}
	}
	return nil, fmt.Errorf("brand %q: %w", name, ErrBrandNotFound)
}

// Create adds a new brand.
func (r *MockBrandRepository) Create(brand *models.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}
	r.brands[brand.ID] = *brand
	return nil
}

// Update modifies an existing brand.
func (r *MockBrandRepository) Update(brand *models.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.brands[brand.ID]; !ok {
		return fmt.Errorf("brand %s: %w", brand.ID, ErrBrandNotFound)
	}
	r.brands[brand.ID] = *brand
	return nil
}

// Delete removes a brand by its ID.
func (r *MockBrandRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.brands[id]; !ok {
		return fmt.Errorf("brand %s: %w", id, ErrBrandNotFound)
	}
	delete(r.brands, id)
	return nil
}
