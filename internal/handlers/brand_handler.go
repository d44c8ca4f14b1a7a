package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"calzado/internal/models"
	"calzado/internal/services"
)

// BrandHandler handles HTTP requests for brands.
type BrandHandler struct {
	service  *services.BrandService
	validate *validator.Validate
}

// NewBrandHandler creates a new BrandHandler.
func NewBrandHandler(service *services.BrandService) *BrandHandler {
	return &BrandHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the brand routes with the Fiber app.
func (h *BrandHandler) RegisterRoutes(router fiber.Router) {
	brands := router.Group("/brands")
	brands.Get("/", h.HandleGetBrands)
	brands.Get("/:id", h.HandleGetBrandByID)
	brands.Post("/", h.HandleCreateBrand)
	brands.Put("/:id", h.HandleUpdateBrand)
	brands.Delete("/:id", h.HandleDeleteBrand)
}

// HandleGetBrands retrieves all brands, ordered by name. Used to populate
// the filter sidebar's brand options.
func (h *BrandHandler) HandleGetBrands(c *fiber.Ctx) error {
	brands, err := h.service.GetAllBrands()
	if err != nil {
		log.Printf("Error getting all brands: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve brands",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": brands})
}

// HandleGetBrandByID retrieves a single brand by its ID.
func (h *BrandHandler) HandleGetBrandByID(c *fiber.Ctx) error {
	brandID := c.Params("id")
	brand, err := h.service.GetBrandByID(brandID)
	if err != nil {
		log.Printf("Error getting brand by ID %s: %v", brandID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve brand",
			"error":   err.Error(),
		})
	}
	return c.JSON(brand)
}

type brandRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	LogoURL *string `json:"logo_url" validate:"omitempty,url"`
}

// HandleCreateBrand creates a new brand.
func (h *BrandHandler) HandleCreateBrand(c *fiber.Ctx) error {
	var req brandRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create brand body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
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

	brand := models.Brand{Name: req.Name, LogoURL: req.LogoURL}
	if err := h.service.CreateBrand(&brand); err != nil {
		log.Printf("Error creating brand: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create brand",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

// HandleUpdateBrand updates an existing brand.
func (h *BrandHandler) HandleUpdateBrand(c *fiber.Ctx) error {
	brandID := c.Params("id")

	var req brandRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update brand body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	brand := models.Brand{ID: brandID, Name: req.Name, LogoURL: req.LogoURL}
	if err := h.service.UpdateBrand(&brand); err != nil {
		log.Printf("Error updating brand %s: %v", brandID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update brand",
			"error":   err.Error(),
		})
	}
	return c.JSON(brand)
}

// HandleDeleteBrand deletes a brand by its ID.
func (h *BrandHandler) HandleDeleteBrand(c *fiber.Ctx) error {
	brandID := c.Params("id")
	if err := h.service.DeleteBrand(brandID); err != nil {
		log.Printf("Error deleting brand %s: %v", brandID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete brand",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Brand %s deleted successfully", brandID),
	})
}
