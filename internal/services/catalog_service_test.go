package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"calzado/internal/catalog"
	"calzado/internal/models"
	"calzado/internal/repositories"
	"calzado/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(filter repositories.ProductListFilter) ([]models.Product, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) AddImage(productID string, image *models.ProductImage) error {
	args := m.Called(productID, image)
	return args.Error(0)
}

func (m *MockProductRepository) ReorderImages(productID string, positions map[string]int) error {
	args := m.Called(productID, positions)
	return args.Error(0)
}

func (m *MockProductRepository) ReplaceSizes(productID string, sizes []models.Size) error {
	args := m.Called(productID, sizes)
	return args.Error(0)
}

// MockBrandRepository is a mock implementation of repositories.BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) GetAll() ([]models.Brand, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Brand), args.Error(1)
}

func (m *MockBrandRepository) GetByID(id string) (*models.Brand, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Brand), args.Error(1)
}

func (m *MockBrandRepository) GetByName(name string) (*models.Brand, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Brand), args.Error(1)
}

func (m *MockBrandRepository) Create(brand *models.Brand) error {
	args := m.Called(brand)
	return args.Error(0)
}

func (m *MockBrandRepository) Update(brand *models.Brand) error {
	args := m.Called(brand)
	return args.Error(0)
}

func (m *MockBrandRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func catalogFixture() []models.Product {
	brand := &models.Brand{ID: "brand-1", Name: "Urban Feet"}
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{ID: "p1", Name: "Urban Runner", Category: models.CategorySneakers, Genre: models.GenreUnisex, Price: 120, Featured: true, BrandID: brand.ID, Brand: brand, CreatedAt: base.Add(time.Hour)},
		{ID: "p2", Name: "Oxford Clásico", Category: models.CategoryFormal, Genre: models.GenreMens, Price: 150, BrandID: brand.ID, Brand: brand, CreatedAt: base.Add(2 * time.Hour), IsNew: true},
		{ID: "p3", Name: "Street Icon", Category: models.CategorySneakers, Genre: models.GenreWomens, Price: 90, BrandID: brand.ID, Brand: brand, CreatedAt: base.Add(3 * time.Hour), IsNew: true},
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockBrands := new(MockBrandRepository)
	service := services.NewCatalogService(mockRepo, mockBrands)

	mockRepo.On("List", repositories.ProductListFilter{Category: models.CategorySneakers}).
		Return(catalogFixture(), nil).Once()

	result, err := service.ListProducts(services.ListProductsRequest{
		Category: "SNEAKERS",
		SortBy:   "price",
	})

	assert.NoError(t, err)
	// The engine re-filters the snapshot even though the coarse filter was
	// pushed down, so the formal product is excluded regardless of what the
	// store returned.
	assert.Equal(t, 2, result.Meta.Total)
	assert.Equal(t, "p3", result.Items[0].ID)
	assert.Equal(t, "p1", result.Items[1].ID)
	assert.Equal(t, []string{"Urban Feet"}, result.Facets.Brands)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListProductsDefaultsPagination(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, new(MockBrandRepository))

	mockRepo.On("List", repositories.ProductListFilter{}).Return(catalogFixture(), nil).Once()

	result, err := service.ListProducts(services.ListProductsRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Meta.Page)
	assert.Equal(t, 10, result.Meta.PageSize)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListProductsInvalidEnumsFailBeforeStore(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, new(MockBrandRepository))

	_, err := service.ListProducts(services.ListProductsRequest{Category: "HATS"})
	assert.ErrorIs(t, err, services.ErrInvalidQuery)

	_, err = service.ListProducts(services.ListProductsRequest{Genre: "EVERYONE"})
	assert.ErrorIs(t, err, services.ErrInvalidQuery)

	_, err = service.ListProducts(services.ListProductsRequest{SortBy: "rating"})
	assert.ErrorIs(t, err, catalog.ErrUnknownSortKey)

	_, err = service.ListProducts(services.ListProductsRequest{Limit: -1})
	assert.ErrorIs(t, err, catalog.ErrInvalidPageSize)

	// None of the invalid requests may touch the store.
	mockRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestCatalogService_ListProductsPropagatesStoreError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, new(MockBrandRepository))

	storeErr := fmt.Errorf("connection refused")
	mockRepo.On("List", mock.Anything).Return(nil, storeErr).Once()

	_, err := service.ListProducts(services.ListProductsRequest{})
	assert.ErrorIs(t, err, storeErr)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListProductsPriceBounds(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, new(MockBrandRepository))

	min := 100.0
	mockRepo.On("List", repositories.ProductListFilter{}).Return(catalogFixture(), nil).Once()

	result, err := service.ListProducts(services.ListProductsRequest{MinPrice: &min})
	assert.NoError(t, err)
	// Open-ended max: everything at or above 100.
	assert.Equal(t, 2, result.Meta.Total)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, new(MockBrandRepository))

	expected := &models.Product{ID: "p1", Name: "Urban Runner"}
	mockRepo.On("GetByID", "p1").Return(expected, nil).Once()

	product, err := service.GetProductByID("p1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetByID", "missing").
		Return(nil, fmt.Errorf("product missing: %w", repositories.ErrProductNotFound)).Once()

	product, err = service.GetProductByID("missing")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_FeaturedProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, new(MockBrandRepository))

	mockRepo.On("List", repositories.ProductListFilter{}).Return(catalogFixture(), nil).Once()

	products, err := service.FeaturedProducts(0)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_NewArrivalsNewestFirst(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, new(MockBrandRepository))

	mockRepo.On("List", repositories.ProductListFilter{}).Return(catalogFixture(), nil).Once()

	products, err := service.NewArrivals(0)
	assert.NoError(t, err)
	assert.Equal(t, []string{"p3", "p2"}, []string{products[0].ID, products[1].ID})
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Brands(t *testing.T) {
	mockBrands := new(MockBrandRepository)
	service := services.NewCatalogService(new(MockProductRepository), mockBrands)

	expected := []models.Brand{{ID: "b1", Name: "Paso Fino"}, {ID: "b2", Name: "Urban Feet"}}
	mockBrands.On("GetAll").Return(expected, nil).Once()

	brands, err := service.Brands()
	assert.NoError(t, err)
	assert.Equal(t, expected, brands)
	mockBrands.AssertExpectations(t)
}
