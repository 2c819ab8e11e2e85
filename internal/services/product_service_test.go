package services_test

import (
	"fmt"
	"testing"
	"time"

	"jeansfactory/internal/models"
	"jeansfactory/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id int64) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Classic Blue Regular Fit", Price: 1999, Category: "Regular", Gender: "Men"},
		{ID: 2, Name: "Urban Black Slim Fit", Price: 2499, Category: "Slim", Gender: "Men", IsSale: true},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()
	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)

	// Persistence failure surfaces as-is; the client handles the fallback.
	mockRepo.On("GetAll").Return(nil, fmt.Errorf("database error")).Once()
	_, err = service.GetAllProducts()
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_Defaults(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	before := time.Now().UnixMilli()
	product := &models.Product{Name: "Stonewash Bootcut", Price: 2199, Category: "Bootcut", Gender: "Women"}

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	err := service.CreateProduct(product)
	assert.NoError(t, err)

	// A missing ID defaults to the current Unix millisecond timestamp.
	assert.GreaterOrEqual(t, product.ID, before)
	assert.LessOrEqual(t, product.ID, time.Now().UnixMilli())
	assert.Equal(t, services.DefaultRating, product.Rating)
	assert.False(t, product.IsSale)
	mockRepo.AssertExpectations(t)

	// Explicit IDs and ratings are kept.
	explicit := &models.Product{ID: 42, Name: "Raw Selvedge", Price: 4999, Category: "Straight", Gender: "Men", Rating: 3.5}
	mockRepo.On("Create", explicit).Return(nil).Once()
	err = service.CreateProduct(explicit)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), explicit.ID)
	assert.Equal(t, 3.5, explicit.Rating)
	mockRepo.AssertExpectations(t)
}
