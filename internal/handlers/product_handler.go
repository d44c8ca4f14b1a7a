package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"calzado/internal/models"
	"calzado/internal/services"
)

// ProductHandler handles the admin write endpoints for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product admin routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Post("/", h.HandleCreateProduct)
	products.Put("/:id", h.HandleUpdateProduct)
	products.Delete("/:id", h.HandleDeleteProduct)
	products.Post("/:id/images", h.HandleAttachImage)
	products.Put("/:id/images", h.HandleReorderImages)
}

type productImageRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Position int    `json:"position" validate:"gte=0"`
	IsMain   bool   `json:"is_main"`
}

type productSizeRequest struct {
	Value     string `json:"value" validate:"required"`
	Inventory int    `json:"inventory" validate:"gte=0"`
}

type createProductRequest struct {
	Name        string                `json:"name" validate:"required,min=3,max=100"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	Category    string                `json:"category" validate:"required"`
	Genre       string                `json:"genre" validate:"required"`
	Price       float64               `json:"price" validate:"required,gt=0"`
	SalePrice   *float64              `json:"sale_price" validate:"omitempty,gt=0"`
	Featured    bool                  `json:"featured"`
	IsNew       bool                  `json:"is_new"`
	BrandID     string                `json:"brand_id" validate:"required,uuid"`
	Images      []productImageRequest `json:"images" validate:"dive"`
	Sizes       []productSizeRequest  `json:"sizes" validate:"dive"`
}

type updateProductRequest struct {
	Name        string                `json:"name" validate:"required,min=3,max=100"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	Category    string                `json:"category" validate:"required"`
	Genre       string                `json:"genre" validate:"required"`
	Price       float64               `json:"price" validate:"required,gt=0"`
	SalePrice   *float64              `json:"sale_price" validate:"omitempty,gt=0"`
	Featured    bool                  `json:"featured"`
	IsNew       bool                  `json:"is_new"`
	BrandID     string                `json:"brand_id" validate:"omitempty,uuid"`
	Sizes       []productSizeRequest  `json:"sizes" validate:"dive"`
}

// validationErrorResponse turns validator errors into the field-error map the
// API returns for every 400.
func (h *ProductHandler) validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// checkEnumsAndSale validates the closed enum sets and the sale price
// invariant shared by create and update.
func checkEnumsAndSale(category, genre string, price float64, salePrice *float64) (models.Category, models.Genre, string) {
	cat, ok := models.ParseCategory(category)
	if !ok {
		return "", "", fmt.Sprintf("unknown category %q", category)
	}
	gen, ok := models.ParseGenre(genre)
	if !ok {
		return "", "", fmt.Sprintf("unknown genre %q", genre)
	}
	if salePrice != nil && *salePrice >= price {
		return "", "", "sale_price must be lower than price"
	}
	return cat, gen, ""
}

// HandleCreateProduct creates a new product with its images and sizes.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return h.validationErrorResponse(c, err)
	}
	category, genre, msg := checkEnumsAndSale(req.Category, req.Genre, req.Price, req.SalePrice)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Genre:       genre,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		Featured:    req.Featured,
		IsNew:       req.IsNew,
		BrandID:     req.BrandID,
	}
	for _, img := range req.Images {
		product.Images = append(product.Images, models.ProductImage{
			OriginalURL: img.URL,
			Position:    img.Position,
			IsMain:      img.IsMain,
		})
	}
	for _, size := range req.Sizes {
		product.Sizes = append(product.Sizes, models.Size{
			Value:     size.Value,
			Inventory: size.Inventory,
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates a product's fields and upserts its sizes.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return h.validationErrorResponse(c, err)
	}
	category, genre, msg := checkEnumsAndSale(req.Category, req.Genre, req.Price, req.SalePrice)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	product := models.Product{
		ID:          productID,
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Genre:       genre,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		Featured:    req.Featured,
		IsNew:       req.IsNew,
		BrandID:     req.BrandID,
	}
	var sizes []models.Size
	for _, size := range req.Sizes {
		sizes = append(sizes, models.Size{Value: size.Value, Inventory: size.Inventory})
	}

	if err := h.service.UpdateProduct(&product, sizes); err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s deleted successfully", productID),
	})
}

type attachImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Position int    `json:"position" validate:"gte=0"`
	IsMain   bool   `json:"is_main"`
}

// HandleAttachImage processes a raw image URL and attaches the stored
// variants to the product gallery.
func (h *ProductHandler) HandleAttachImage(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req attachImageRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing attach image body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return h.validationErrorResponse(c, err)
	}

	image, err := h.service.AttachImage(productID, req.ImageURL, req.Position, req.IsMain)
	if err != nil {
		log.Printf("Error attaching image to product %s: %v", productID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not attach image",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

type reorderImagesRequest struct {
	ImagePositions map[string]int `json:"image_positions" validate:"required,min=1"`
}

// HandleReorderImages rewrites the gallery order of a product's images.
func (h *ProductHandler) HandleReorderImages(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req reorderImagesRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing reorder images body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return h.validationErrorResponse(c, err)
	}

	if err := h.service.ReorderImages(productID, req.ImagePositions); err != nil {
		log.Printf("Error reordering images for product %s: %v", productID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not reorder images",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Images for product %s reordered successfully", productID),
	})
}
