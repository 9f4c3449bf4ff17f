package services

import (
	"database/sql"
	"errors"
	"fmt"

	"ecommerce_admin_backend/internal/models"
	"ecommerce_admin_backend/internal/repositories"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSKUExists       = errors.New("product with this SKU already exists")
)

// CreateProductRequest is used for creating a new product.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	SKU         string  `json:"sku" binding:"required"`
	CategoryID  int64   `json:"category_id" binding:"required"`
}

// ProductService exposes product catalog operations.
type ProductService interface {
	CreateProduct(req CreateProductRequest) (*models.Product, error)
	GetProductByID(productID int64) (*models.Product, error)
	GetProducts(filters models.ProductFilters) ([]models.Product, error)
}

type productService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	db           *sql.DB
}

// NewProductService creates a new instance of ProductService.
func NewProductService(pr repositories.ProductRepository, cr repositories.CategoryRepository, db *sql.DB) ProductService {
	return &productService{productRepo: pr, categoryRepo: cr, db: db}
}

func (s *productService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	if _, err := s.categoryRepo.GetCategoryByID(req.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to verify category %d: %w", req.CategoryID, err)
	}
	if _, err := s.productRepo.GetProductBySKU(req.SKU); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrSKUExists, req.SKU)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check SKU '%s': %w", req.SKU, err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SKU:         req.SKU,
		CategoryID:  req.CategoryID,
	}
	id, err := s.productRepo.CreateProduct(s.db, product)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrSKUExists, req.SKU)
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return s.productRepo.GetProductByID(id)
}

func (s *productService) GetProductByID(productID int64) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return product, nil
}

func (s *productService) GetProducts(filters models.ProductFilters) ([]models.Product, error) {
	if filters.Skip < 0 {
		filters.Skip = 0
	}
	if filters.Limit <= 0 {
		filters.Limit = 100
	}
	products, err := s.productRepo.GetProducts(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}
