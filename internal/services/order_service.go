package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"jeansfactory/internal/models"
	"jeansfactory/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes order lifecycle events to the message broker.
// A nil publisher disables event publication.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// totalTolerance absorbs float rounding when comparing a client-supplied
// total against the recomputed one.
const totalTolerance = 0.01

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	publisher    EventPublisher
	strictTotals bool
}

// NewOrderService creates a new OrderService. With strictTotals enabled the
// service recomputes checkout totals from catalog prices and rejects
// mismatches; otherwise the client-supplied total is persisted verbatim.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher EventPublisher, strictTotals bool) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		publisher:    publisher,
		strictTotals: strictTotals,
	}
}

// CheckoutRequest is a verified checkout: the user ID comes from the session
// token, everything else from the client.
type CheckoutRequest struct {
	UserID       string
	CustomerName string
	Email        string
	Address      string
	Items        []models.OrderItem
	Total        float64
}

// PlaceOrder persists a new order with status Ordered and the current
// timestamp. There is no idempotency key; resubmitting the identical
// request creates a duplicate order.
func (s *OrderService) PlaceOrder(req CheckoutRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("invalid quantity %d for product %d", item.Quantity, item.ProductID)
		}
	}

	total := req.Total
	if s.strictTotals {
		recomputed, err := s.recomputeTotal(req.Items)
		if err != nil {
			return nil, err
		}
		if math.Abs(recomputed-req.Total) > totalTolerance {
			return nil, fmt.Errorf("total mismatch: submitted %.2f, computed %.2f", req.Total, recomputed)
		}
		total = recomputed
	}

	newOrder := &models.Order{
		ID:           uuid.New().String(),
		UserID:       req.UserID,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Address:      req.Address,
		Items:        req.Items,
		TotalAmount:  total,
		Status:       models.StatusOrdered,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent("order.created", newOrder)
	return newOrder, nil
}

// recomputeTotal prices the cart from the server-held catalog. Item prices
// snapshotted into the order stay as submitted; only the sum is enforced.
func (s *OrderService) recomputeTotal(items []models.OrderItem) (float64, error) {
	var total float64
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return 0, fmt.Errorf("product %d not found: %w", item.ProductID, err)
		}
		total += product.Price * float64(item.Quantity)
	}
	return total, nil
}

// ListUserOrders retrieves the caller's orders, newest first.
func (s *OrderService) ListUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// ReturnOrder marks an order returned. The caller must own the order.
// Returning an already-returned order is a silent no-op success.
func (s *OrderService) ReturnOrder(orderID, userID string) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return fmt.Errorf("order with ID %s not found", orderID)
	}
	if order.UserID != userID {
		return fmt.Errorf("order %s does not belong to the caller", orderID)
	}
	if order.Status == models.StatusReturned {
		return nil
	}

	if err := s.orderRepo.UpdateStatus(orderID, models.StatusReturned); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", orderID, err)
	}

	order.Status = models.StatusReturned
	s.publishEvent("order.returned", order)
	return nil
}

// publishEvent fires an order event at the broker. Publication failures are
// logged, never surfaced; the order itself is already durable.
func (s *OrderService) publishEvent(routingKey string, order *models.Order) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
	})
	if err != nil {
		log.Printf("Failed to marshal order event: %v", err)
		return
	}

	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", routingKey, order.ID, err)
	}
}
