package handlers

import (
	"log"
	"strings"

	"jeansfactory/internal/middleware"
	"jeansfactory/internal/models"
	"jeansfactory/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout, order history and
// returns.
type OrderHandler struct {
	service     *services.OrderService
	authService *services.AuthService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, authService *services.AuthService) *OrderHandler {
	return &OrderHandler{
		service:     service,
		authService: authService,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. Checkout
// carries its token in the request body; history and returns take it from
// the Authorization header.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/orders", h.HandlePlaceOrder)
	router.Get("/myorders", middleware.AuthRequired(h.authService), h.HandleMyOrders)
	router.Post("/return", middleware.AuthRequired(h.authService), h.HandleReturnOrder)
}

// PlaceOrderRequest represents the checkout payload. The session token
// travels in the body; name, email and address are the denormalized copies
// the client holds from login.
type PlaceOrderRequest struct {
	Token   string             `json:"token"`
	Cart    []models.OrderItem `json:"cart"`
	Total   float64            `json:"total"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Address string             `json:"address"`
}

// HandlePlaceOrder verifies the embedded token and persists a new order.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	claims, err := h.authService.ValidateToken(req.Token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}
	userID, _ := claims["user_id"].(string)

	order, err := h.service.PlaceOrder(services.CheckoutRequest{
		UserID:       userID,
		CustomerName: req.Name,
		Email:        req.Email,
		Address:      req.Address,
		Items:        req.Cart,
		Total:        req.Total,
	})
	if err != nil {
		log.Printf("Error placing order for user %s: %v", userID, err)
		if strings.Contains(err.Error(), "total mismatch") ||
			strings.Contains(err.Error(), "at least one item") ||
			strings.Contains(err.Error(), "invalid quantity") ||
			strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order rejected",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order placed",
		"orderId": order.ID,
	})
}

// HandleMyOrders returns the caller's orders, newest first.
func (h *OrderHandler) HandleMyOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	orders, err := h.service.ListUserOrders(userID)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// ReturnOrderRequest represents the request body for marking an order
// returned.
type ReturnOrderRequest struct {
	OrderID string `json:"orderId"`
}

// HandleReturnOrder marks one of the caller's orders as returned.
func (h *OrderHandler) HandleReturnOrder(c *fiber.Ctx) error {
	var req ReturnOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "orderId is required",
		})
	}

	userID, _ := c.Locals("user_id").(string)
	if err := h.service.ReturnOrder(req.OrderID, userID); err != nil {
		log.Printf("Error returning order %s: %v", req.OrderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		if strings.Contains(err.Error(), "does not belong") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Order belongs to another user",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not return order",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order returned",
	})
}
