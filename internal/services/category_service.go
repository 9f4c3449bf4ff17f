package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ecommerce_admin_backend/internal/models"
	"ecommerce_admin_backend/internal/repositories"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category already exists")
	ErrValidation         = errors.New("validation error")
)

// CreateCategoryRequest is used for creating a new category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// CategoryService exposes category catalog operations.
type CategoryService interface {
	CreateCategory(req CreateCategoryRequest) (*models.Category, error)
	GetCategoryByID(categoryID int64) (*models.Category, error)
	GetCategories(skip, limit int) ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	db           *sql.DB
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, db *sql.DB) CategoryService {
	return &categoryService{categoryRepo: repo, db: db}
}

func (s *categoryService) CreateCategory(req CreateCategoryRequest) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}
	if _, err := s.categoryRepo.GetCategoryByName(req.Name); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNameExists, req.Name)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name '%s': %w", req.Name, err)
	}
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	id, err := s.categoryRepo.CreateCategory(s.db, category)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrCategoryNameExists, req.Name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return s.categoryRepo.GetCategoryByID(id)
}

func (s *categoryService) GetCategoryByID(categoryID int64) (*models.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}
	return category, nil
}

func (s *categoryService) GetCategories(skip, limit int) ([]models.Category, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	categories, err := s.categoryRepo.GetCategories(skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}
