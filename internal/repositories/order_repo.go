package repositories

import (
	"jeansfactory/internal/models"
)

// OrderRepository defines the interface for order data access.
// Orders are never deleted; the only mutation is the status update used by
// the return flow.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	ListByUser(userID string) ([]models.Order, error)
	UpdateStatus(id string, status string) error
}
