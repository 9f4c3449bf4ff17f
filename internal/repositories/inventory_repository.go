package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecommerce_admin_backend/internal/models"

	"github.com/lib/pq"
)

// InventoryRepository defines the interface for inventory and inventory-log
// database operations. Quantity-changing methods take an SQLExecutor so the
// services can run them inside a transaction together with the audit log.
type InventoryRepository interface {
	CreateInventory(executor SQLExecutor, inventory *models.Inventory) (int64, error)
	GetInventoryByProductID(productID int64) (*models.Inventory, error)
	GetAllInventory(skip, limit int) ([]models.Inventory, error)

	// SetQuantity overwrites the stored quantity. Used by the manual-update path.
	SetQuantity(executor SQLExecutor, productID int64, quantity int, restockedAt *time.Time) error
	SetLowStockThreshold(executor SQLExecutor, productID int64, threshold int) error

	// DecrementQuantity subtracts quantity conditionally
	// (WHERE quantity >= requested) and returns the new level.
	// ErrInsufficientStock when no row qualifies but the row exists,
	// ErrNotFound when there is no inventory row at all.
	DecrementQuantity(executor SQLExecutor, productID int64, quantity int) (int, error)

	CreateLog(executor SQLExecutor, log *models.InventoryLog) (int64, error)
	GetInventoryHistory(productID int64, limit int) ([]models.InventoryLog, error)
	GetLowStockProducts() ([]models.LowStockProduct, error)
}

type inventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new instance of InventoryRepository.
func NewInventoryRepository(db *sql.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) CreateInventory(executor SQLExecutor, inventory *models.Inventory) (int64, error) {
	query := `INSERT INTO inventory (product_id, quantity, low_stock_threshold)
	          VALUES ($1, $2, $3)
	          RETURNING id`
	err := executor.QueryRow(query, inventory.ProductID, inventory.Quantity, inventory.LowStockThreshold).Scan(&inventory.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: inventory for product %d already exists (constraint: %s)", ErrDuplicateKey, inventory.ProductID, pqErr.Constraint)
			}
			if pqErr.Code.Name() == "foreign_key_violation" {
				return 0, fmt.Errorf("%w: invalid product_id %d (constraint: %s)", ErrNotFound, inventory.ProductID, pqErr.Constraint)
			}
		}
		return 0, fmt.Errorf("%w: creating inventory: %v", ErrDatabaseError, err)
	}
	return inventory.ID, nil
}

func (r *inventoryRepository) GetInventoryByProductID(productID int64) (*models.Inventory, error) {
	inventory := &models.Inventory{}
	var lastRestocked, updatedAt sql.NullTime
	query := `SELECT id, product_id, quantity, low_stock_threshold, last_restocked, updated_at
	          FROM inventory
	          WHERE product_id = $1`
	err := r.db.QueryRow(query, productID).Scan(
		&inventory.ID, &inventory.ProductID, &inventory.Quantity, &inventory.LowStockThreshold,
		&lastRestocked, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting inventory for product %d: %v", ErrDatabaseError, productID, err)
	}
	if lastRestocked.Valid {
		inventory.LastRestocked = &lastRestocked.Time
	}
	if updatedAt.Valid {
		inventory.UpdatedAt = &updatedAt.Time
	}
	return inventory, nil
}

func (r *inventoryRepository) GetAllInventory(skip, limit int) ([]models.Inventory, error) {
	items := []models.Inventory{}
	query := `SELECT id, product_id, quantity, low_stock_threshold, last_restocked, updated_at
	          FROM inventory
	          ORDER BY product_id
	          LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("%w: querying inventory: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var inventory models.Inventory
		var lastRestocked, updatedAt sql.NullTime
		if err := rows.Scan(
			&inventory.ID, &inventory.ProductID, &inventory.Quantity, &inventory.LowStockThreshold,
			&lastRestocked, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning inventory row: %v", ErrDatabaseError, err)
		}
		if lastRestocked.Valid {
			inventory.LastRestocked = &lastRestocked.Time
		}
		if updatedAt.Valid {
			inventory.UpdatedAt = &updatedAt.Time
		}
		items = append(items, inventory)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating inventory rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *inventoryRepository) SetQuantity(executor SQLExecutor, productID int64, quantity int, restockedAt *time.Time) error {
	var result sql.Result
	var err error
	if restockedAt != nil {
		query := `UPDATE inventory SET quantity = $1, last_restocked = $2, updated_at = $3 WHERE product_id = $4`
		result, err = executor.Exec(query, quantity, *restockedAt, time.Now(), productID)
	} else {
		query := `UPDATE inventory SET quantity = $1, updated_at = $2 WHERE product_id = $3`
		result, err = executor.Exec(query, quantity, time.Now(), productID)
	}
	if err != nil {
		return fmt.Errorf("%w: setting quantity for product %d: %v", ErrDatabaseError, productID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for product %d: %v", ErrDatabaseError, productID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) SetLowStockThreshold(executor SQLExecutor, productID int64, threshold int) error {
	query := `UPDATE inventory SET low_stock_threshold = $1, updated_at = $2 WHERE product_id = $3`
	result, err := executor.Exec(query, threshold, time.Now(), productID)
	if err != nil {
		return fmt.Errorf("%w: setting threshold for product %d: %v", ErrDatabaseError, productID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for product %d: %v", ErrDatabaseError, productID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) DecrementQuantity(executor SQLExecutor, productID int64, quantity int) (int, error) {
	// The quantity >= $1 guard makes the check-and-decrement a single
	// statement, so two concurrent sales cannot both drive the level
	// below zero.
	var newQuantity int
	query := `UPDATE inventory
	          SET quantity = quantity - $1, updated_at = $2
	          WHERE product_id = $3 AND quantity >= $1
	          RETURNING quantity`
	err := executor.QueryRow(query, quantity, time.Now(), productID).Scan(&newQuantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			checkErr := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM inventory WHERE product_id = $1)`, productID).Scan(&exists)
			if checkErr == nil && !exists {
				return 0, ErrNotFound
			}
			return 0, fmt.Errorf("%w: product %d, requested %d", ErrInsufficientStock, productID, quantity)
		}
		return 0, fmt.Errorf("%w: decrementing quantity for product %d: %v", ErrDatabaseError, productID, err)
	}
	return newQuantity, nil
}

func (r *inventoryRepository) CreateLog(executor SQLExecutor, log *models.InventoryLog) (int64, error) {
	query := `INSERT INTO inventory_logs (product_id, previous_quantity, new_quantity, change_reason, timestamp)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	err := executor.QueryRow(query,
		log.ProductID, log.PreviousQuantity, log.NewQuantity, log.ChangeReason, log.Timestamp,
	).Scan(&log.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating inventory log: %v", ErrDatabaseError, err)
	}
	return log.ID, nil
}

func (r *inventoryRepository) GetInventoryHistory(productID int64, limit int) ([]models.InventoryLog, error) {
	logs := []models.InventoryLog{}
	query := `SELECT id, product_id, previous_quantity, new_quantity, change_reason, timestamp
	          FROM inventory_logs
	          WHERE product_id = $1
	          ORDER BY timestamp DESC
	          LIMIT $2`
	rows, err := r.db.Query(query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying inventory history for product %d: %v", ErrDatabaseError, productID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var log models.InventoryLog
		if err := rows.Scan(
			&log.ID, &log.ProductID, &log.PreviousQuantity, &log.NewQuantity, &log.ChangeReason, &log.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning inventory log: %v", ErrDatabaseError, err)
		}
		logs = append(logs, log)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating inventory log rows: %v", ErrDatabaseError, err)
	}
	return logs, nil
}

func (r *inventoryRepository) GetLowStockProducts() ([]models.LowStockProduct, error) {
	products := []models.LowStockProduct{}
	query := `SELECT i.product_id, p.name, i.quantity, i.low_stock_threshold
	          FROM inventory i
	          JOIN products p ON i.product_id = p.id
	          WHERE i.quantity <= i.low_stock_threshold
	          ORDER BY i.product_id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying low-stock products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.LowStockProduct
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.CurrentQuantity, &p.Threshold); err != nil {
			return nil, fmt.Errorf("%w: scanning low-stock product: %v", ErrDatabaseError, err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating low-stock rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}
