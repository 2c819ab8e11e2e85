package services

import (
	"time"

	"jeansfactory/internal/models"
	"jeansfactory/internal/repositories"
)

// DefaultRating is assigned to freshly uploaded products until reviews
// exist.
const DefaultRating = 4.0

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves the full catalog. Filtering, search and
// pagination are client-side concerns.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// CreateProduct stores a new catalog item from the admin upload flow.
// A missing ID defaults to the current Unix millisecond timestamp, matching
// the uploader's client-generated scheme; new items start unrated-ish and
// off sale.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.ID == 0 {
		product.ID = time.Now().UnixMilli()
	}
	if product.Rating == 0 {
		product.Rating = DefaultRating
	}
	return s.repo.Create(product)
}
