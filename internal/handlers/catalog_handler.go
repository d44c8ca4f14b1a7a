package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"calzado/internal/services"
)

// CatalogHandler handles the public read-only catalog endpoints.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/featured", h.HandleFeaturedProducts)
	products.Get("/new", h.HandleNewArrivals)
	products.Get("/:id", h.HandleGetProductByID)
}

// HandleListProducts serves the catalog listing: filtering, sorting, search
// and pagination in one endpoint, shared by category pages, the search box
// and the admin table.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	req := services.ListProductsRequest{
		Page:      c.QueryInt("page", 1),
		Limit:     10,
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Genre:     c.Query("genre"),
		BrandID:   c.Query("brandId"),
		Featured:  c.QueryBool("featured", false),
		IsNew:     c.QueryBool("isNew", false),
		OnSale:    c.QueryBool("onSale", false),
		InStock:   c.QueryBool("inStock", false),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	// An explicit limit must be validated as given: limit=0 is a contract
	// violation, not a request for the default.
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "limit must be a positive integer",
			})
		}
		req.Limit = limit
	}
	if brand := c.Query("brand"); brand != "" {
		req.Brands = []string{brand}
	}
	if raw := c.Query("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "minPrice must be a number",
			})
		}
		req.MinPrice = &min
	}
	if raw := c.Query("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "maxPrice must be a number",
			})
		}
		req.MaxPrice = &max
	}

	result, err := h.service.ListProducts(req)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not list products",
			"error":   err.Error(),
		})
	}
	return c.JSON(result)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *CatalogHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleFeaturedProducts serves the landing page carousel.
func (h *CatalogHandler) HandleFeaturedProducts(c *fiber.Ctx) error {
	products, err := h.service.FeaturedProducts(c.QueryInt("limit", 0))
	if err != nil {
		log.Printf("Error getting featured products: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve featured products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": products})
}

// HandleNewArrivals serves the new arrivals strip.
func (h *CatalogHandler) HandleNewArrivals(c *fiber.Ctx) error {
	products, err := h.service.NewArrivals(c.QueryInt("limit", 0))
	if err != nil {
		log.Printf("Error getting new arrivals: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve new arrivals",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": products})
}
