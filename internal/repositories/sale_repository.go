package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecommerce_admin_backend/internal/models"

	"github.com/lib/pq"
)

// SaleRepository defines the interface for sale-related database operations.
// Sales and their items are insert-only; there are no update methods.
type SaleRepository interface {
	CreateSale(executor SQLExecutor, sale *models.Sale) (int64, error)
	CreateSaleItem(executor SQLExecutor, item *models.SaleItem) (int64, error)
	GetSaleByID(saleID int64) (*models.Sale, error)
	GetSaleItemsBySaleID(saleID int64) ([]models.SaleItem, error)
	GetSales(skip, limit int) ([]models.Sale, error)
}

type saleRepository struct {
	db *sql.DB
}

// NewSaleRepository creates a new instance of SaleRepository.
func NewSaleRepository(db *sql.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) CreateSale(executor SQLExecutor, sale *models.Sale) (int64, error) {
	query := `INSERT INTO sales (order_id, total_amount, transaction_date, marketplace)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	if sale.TransactionDate.IsZero() {
		sale.TransactionDate = time.Now()
	}
	err := executor.QueryRow(query, sale.OrderID, sale.TotalAmount, sale.TransactionDate, sale.Marketplace).Scan(&sale.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: order_id '%s' already exists (constraint: %s)", ErrDuplicateKey, sale.OrderID, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating sale: %v", ErrDatabaseError, err)
	}
	return sale.ID, nil
}

func (r *saleRepository) CreateSaleItem(executor SQLExecutor, item *models.SaleItem) (int64, error) {
	query := `INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, subtotal)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	err := executor.QueryRow(query, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal).Scan(&item.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return 0, fmt.Errorf("%w: creating sale item (constraint: %s): %v", ErrDatabaseError, pqErr.Constraint, err)
		}
		return 0, fmt.Errorf("%w: creating sale item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *saleRepository) GetSaleByID(saleID int64) (*models.Sale, error) {
	sale := &models.Sale{}
	query := `SELECT id, order_id, total_amount, transaction_date, marketplace FROM sales WHERE id = $1`
	err := r.db.QueryRow(query, saleID).Scan(
		&sale.ID, &sale.OrderID, &sale.TotalAmount, &sale.TransactionDate, &sale.Marketplace,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting sale by ID %d: %v", ErrDatabaseError, saleID, err)
	}
	return sale, nil
}

func (r *saleRepository) GetSaleItemsBySaleID(saleID int64) ([]models.SaleItem, error) {
	items := []models.SaleItem{}
	query := `SELECT id, sale_id, product_id, quantity, unit_price, subtotal
	          FROM sale_items
	          WHERE sale_id = $1
	          ORDER BY id`
	rows, err := r.db.Query(query, saleID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying sale items for sale %d: %v", ErrDatabaseError, saleID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("%w: scanning sale item for sale %d: %v", ErrDatabaseError, saleID, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sale item rows for sale %d: %v", ErrDatabaseError, saleID, err)
	}
	return items, nil
}

func (r *saleRepository) GetSales(skip, limit int) ([]models.Sale, error) {
	sales := []models.Sale{}
	query := `SELECT id, order_id, total_amount, transaction_date, marketplace
	          FROM sales
	          ORDER BY transaction_date DESC
	          LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("%w: querying sales: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var sale models.Sale
		if err := rows.Scan(&sale.ID, &sale.OrderID, &sale.TotalAmount, &sale.TransactionDate, &sale.Marketplace); err != nil {
			return nil, fmt.Errorf("%w: scanning sale: %v", ErrDatabaseError, err)
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sale rows: %v", ErrDatabaseError, err)
	}
	return sales, nil
}
