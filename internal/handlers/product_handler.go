package handlers

import (
	"log"

	"jeansfactory/internal/middleware"
	"jeansfactory/internal/models"
	"jeansfactory/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service     *services.ProductService
	authService *services.AuthService
	adminEmail  string
	validate    *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, authService *services.AuthService, adminEmail string) *ProductHandler {
	return &ProductHandler{
		service:     service,
		authService: authService,
		adminEmail:  adminEmail,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app. Listing
// is public; upload is gated behind the admin session.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Post("/products",
		middleware.AuthRequired(h.authService),
		middleware.AdminRequired(h.adminEmail),
		h.HandleCreateProduct,
	)
}

// HandleGetProducts returns the full catalog. No filtering, pagination or
// sorting happens server-side.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// CreateProductRequest represents the request body for the admin upload.
// The image URL comes from a prior call to the external image host.
type CreateProductRequest struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name" validate:"required,min=3,max=100"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Gender   string  `json:"gender" validate:"required,oneof=Men Women Unisex"`
	Image    string  `json:"image" validate:"omitempty,url"`
}

// HandleCreateProduct creates a new catalog item.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product upload body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	product := models.Product{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Gender:   req.Gender,
		Image:    req.Image,
		IsSale:   false,
	}
	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}
