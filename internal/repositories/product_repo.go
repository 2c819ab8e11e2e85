package repositories

import (
	"jeansfactory/internal/models"
)

// ProductRepository defines the interface for product data access.
// The catalog has no update or delete paths; products are written once by
// the admin upload flow and read by everyone.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int64) (*models.Product, error)
	Create(product *models.Product) error
}
