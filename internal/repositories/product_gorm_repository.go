package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"calzado/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// withRelations loads the associations every caller needs: the joined brand,
// images in display order and sizes in label order.
func (r *GORMProductRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("value ASC")
		})
}

// List retrieves products matching the coarse filter. Unset filter fields add
// no constraint, so the zero filter returns the whole catalog.
func (r *GORMProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	query := r.withRelations()

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.BrandID != "" {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.IsNew != nil {
		query = query.Where("is_new = ?", *filter.IsNew)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product with all relations loaded.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.withRelations().First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product %s: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product, generating IDs for the product and any nested
// images and sizes that arrive without one.
func (r *GORMProductRepository) Create(product *models.Product) error {
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
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product's own columns. Nested images and sizes
// are managed through AddImage, ReorderImages and ReplaceSizes.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Omit("Images", "Sizes", "Brand").Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", product.ID, ErrProductNotFound)
	}
	return nil
}

// Delete deletes a product by its ID. Images and sizes go with it.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Select("Images", "Sizes").Delete(&models.Product{ID: id})
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	return nil
}

// AddImage attaches a processed image to a product.
func (r *GORMProductRepository) AddImage(productID string, image *models.ProductImage) error {
	if _, err := r.GetByID(productID); err != nil {
		return err
	}
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	image.ProductID = productID
	if err := r.db.Create(image).Error; err != nil {
		return fmt.Errorf("failed to add image to product %s: %w", productID, err)
	}
	return nil
}

// ReorderImages rewrites the display positions of a product's images.
// Positions is keyed by image ID.
func (r *GORMProductRepository) ReorderImages(productID string, positions map[string]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for imageID, position := range positions {
			res := tx.Model(&models.ProductImage{}).
				Where("id = ? AND product_id = ?", imageID, productID).
				Update("position", position)
			if res.Error != nil {
				return fmt.Errorf("failed to reorder image %s: %w", imageID, res.Error)
			}
		}
		return nil
	})
}

// ReplaceSizes upserts the size set of a product: existing values get their
// inventory updated, new values are created.
func (r *GORMProductRepository) ReplaceSizes(productID string, sizes []models.Size) error {
	if _, err := r.GetByID(productID); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, size := range sizes {
			var existing models.Size
			err := tx.First(&existing, "product_id = ? AND value = ?", productID, size.Value).Error
			switch {
			case err == gorm.ErrRecordNotFound:
				size.ID = uuid.New().String()
				size.ProductID = productID
				if err := tx.Create(&size).Error; err != nil {
					return fmt.Errorf("failed to create size %s: %w", size.Value, err)
				}
			case err != nil:
				return fmt.Errorf("failed to look up size %s: %w", size.Value, err)
			default:
				if err := tx.Model(&existing).Update("inventory", size.Inventory).Error; err != nil {
					return fmt.Errorf("failed to update size %s: %w", size.Value, err)
				}
			}
		}
		return nil
	})
}
