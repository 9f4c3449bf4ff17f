package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecommerce_admin_backend/internal/models"

	"github.com/lib/pq"
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	CreateProduct(executor SQLExecutor, product *models.Product) (int64, error)
	GetProductByID(id int64) (*models.Product, error)
	GetProductBySKU(sku string) (*models.Product, error)
	GetProducts(filters models.ProductFilters) ([]models.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(executor SQLExecutor, product *models.Product) (int64, error) {
	query := `INSERT INTO products (name, description, price, sku, category_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	err := executor.QueryRow(query,
		product.Name, product.Description, product.Price, product.SKU, product.CategoryID, product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: product SKU '%s' already exists (constraint: %s)", ErrDuplicateKey, product.SKU, pqErr.Constraint)
			}
			if pqErr.Code.Name() == "foreign_key_violation" {
				return 0, fmt.Errorf("%w: invalid category_id %d (constraint: %s)", ErrNotFound, product.CategoryID, pqErr.Constraint)
			}
		}
		return 0, fmt.Errorf("%w: creating product: %v", ErrDatabaseError, err)
	}
	return product.ID, nil
}

func (r *productRepository) GetProductByID(id int64) (*models.Product, error) {
	product := &models.Product{}
	var updatedAt sql.NullTime
	query := `SELECT id, name, description, price, sku, category_id, created_at, updated_at
	          FROM products
	          WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.SKU,
		&product.CategoryID, &product.CreatedAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product by ID %d: %v", ErrDatabaseError, id, err)
	}
	if updatedAt.Valid {
		product.UpdatedAt = &updatedAt.Time
	}
	return product, nil
}

func (r *productRepository) GetProductBySKU(sku string) (*models.Product, error) {
	product := &models.Product{}
	var updatedAt sql.NullTime
	query := `SELECT id, name, description, price, sku, category_id, created_at, updated_at
	          FROM products
	          WHERE sku = $1`
	err := r.db.QueryRow(query, sku).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.SKU,
		&product.CategoryID, &product.CreatedAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product by SKU '%s': %v", ErrDatabaseError, sku, err)
	}
	if updatedAt.Valid {
		product.UpdatedAt = &updatedAt.Time
	}
	return product, nil
}

func (r *productRepository) GetProducts(filters models.ProductFilters) ([]models.Product, error) {
	products := []models.Product{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, name, description, price, sku, category_id, created_at, updated_at
	  FROM products`)

	var args []interface{}
	argCounter := 1
	if filters.CategoryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE category_id = $%d", argCounter))
		args = append(args, *filters.CategoryID)
		argCounter++
	}
	queryBuilder.WriteString(" ORDER BY id")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCounter, argCounter+1))
	args = append(args, filters.Limit, filters.Skip)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var product models.Product
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Description, &product.Price, &product.SKU,
			&product.CategoryID, &product.CreatedAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning product: %v", ErrDatabaseError, err)
		}
		if updatedAt.Valid {
			product.UpdatedAt = &updatedAt.Time
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating product rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}
