package services

import (
	"errors"
	"fmt"

	"calzado/internal/models"
	"calzado/internal/repositories"
)

// ErrBrandNameTaken is returned when creating a brand whose display name is
// already in use.
var ErrBrandNameTaken = errors.New("brand name already in use")

// BrandService handles business logic related to brands.
type BrandService struct {
	repo repositories.BrandRepository
}

// NewBrandService creates a new BrandService.
func NewBrandService(repo repositories.BrandRepository) *BrandService {
	return &BrandService{
		repo: repo,
	}
}

// GetAllBrands retrieves all brands ordered by name.
func (s *BrandService) GetAllBrands() ([]models.Brand, error) {
	return s.repo.GetAll()
}

// GetBrandByID retrieves a single brand by its ID.
func (s *BrandService) GetBrandByID(id string) (*models.Brand, error) {
	return s.repo.GetByID(id)
}

// CreateBrand creates a new brand, rejecting duplicate display names.
func (s *BrandService) CreateBrand(brand *models.Brand) error {
	existing, err := s.repo.GetByName(brand.Name)
	if err != nil && !errors.Is(err, repositories.ErrBrandNotFound) {
		return fmt.Errorf("brand name check failed: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %q", ErrBrandNameTaken, brand.Name)
	}
	return s.repo.Create(brand)
}

// UpdateBrand updates an existing brand.
func (s *BrandService) UpdateBrand(brand *models.Brand) error {
	return s.repo.Update(brand)
}

// DeleteBrand deletes a brand by its ID.
func (s *BrandService) DeleteBrand(id string) error {
	return s.repo.Delete(id)
}
