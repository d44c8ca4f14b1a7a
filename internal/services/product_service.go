package services

import (
	"fmt"
	"log"

	"calzado/internal/images"
	"calzado/internal/models"
	"calzado/internal/repositories"
	"calzado/pkg/rabbitmq"
)

// ProductService handles the write side of the catalog: creating, updating
// and deleting products and managing their image galleries. Every successful
// write publishes a lifecycle event; publish failures are logged and never
// fail the write.
type ProductService struct {
	repo      repositories.ProductRepository
	brandRepo repositories.BrandRepository
	processor images.Processor
	mqClient  rabbitmq.Publisher
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case event publication is skipped.
func NewProductService(repo repositories.ProductRepository, brandRepo repositories.BrandRepository, processor images.Processor, mqClient rabbitmq.Publisher) *ProductService {
	return &ProductService{
		repo:      repo,
		brandRepo: brandRepo,
		processor: processor,
		mqClient:  mqClient,
	}
}

// CreateProduct creates a new product after checking the brand exists.
// Images that arrive as raw URLs are resolved into their stored variants
// before the product is persisted.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if _, err := s.brandRepo.GetByID(product.BrandID); err != nil {
		return fmt.Errorf("brand check for product %q failed: %w", product.Name, err)
	}
	for i := range product.Images {
		if product.Images[i].StandardURL != "" {
			continue
		}
		processed, err := s.processor.Process(product.Images[i].OriginalURL, "products")
		if err != nil {
			return fmt.Errorf("failed to process image for product %q: %w", product.Name, err)
		}
		product.Images[i].OriginalURL = processed.OriginalURL
		product.Images[i].StandardURL = processed.StandardURL
		product.Images[i].PublicID = processed.PublicID
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish("product.created", product)
	return nil
}

// UpdateProduct updates a product's own fields and, when sizes are supplied,
// upserts the size set by value.
func (s *ProductService) UpdateProduct(product *models.Product, sizes []models.Size) error {
	if product.BrandID != "" {
		if _, err := s.brandRepo.GetByID(product.BrandID); err != nil {
			return fmt.Errorf("brand check for product %s failed: %w", product.ID, err)
		}
	}
	if err := s.repo.Update(product); err != nil {
		return err
	}
	if len(sizes) > 0 {
		if err := s.repo.ReplaceSizes(product.ID, sizes); err != nil {
			return err
		}
	}
	s.publish("product.updated", product)
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishID("product.deleted", id)
	return nil
}

// AttachImage processes a raw image URL into its stored variants and attaches
// the result to the product at the given gallery position.
func (s *ProductService) AttachImage(productID, rawURL string, position int, isMain bool) (*models.ProductImage, error) {
	processed, err := s.processor.Process(rawURL, "products")
	if err != nil {
		return nil, fmt.Errorf("failed to process image for product %s: %w", productID, err)
	}

	image := &models.ProductImage{
		OriginalURL: processed.OriginalURL,
		StandardURL: processed.StandardURL,
		PublicID:    processed.PublicID,
		Position:    position,
		IsMain:      isMain,
	}
	if err := s.repo.AddImage(productID, image); err != nil {
		return nil, err
	}
	s.publishID("product.updated", productID)
	return image, nil
}

// ReorderImages rewrites the gallery positions of a product's images.
func (s *ProductService) ReorderImages(productID string, positions map[string]int) error {
	if err := s.repo.ReorderImages(productID, positions); err != nil {
		return err
	}
	s.publishID("product.updated", productID)
	return nil
}

func (s *ProductService) publish(event string, product *models.Product) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}
	payload := map[string]interface{}{
		"productID": product.ID,
		"name":      product.Name,
		"category":  product.Category,
	}
	if err := s.mqClient.PublishProductEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}

func (s *ProductService) publishID(event, productID string) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}
	payload := map[string]interface{}{"productID": productID}
	if err := s.mqClient.PublishProductEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %s: %v", event, productID, err)
	}
}
