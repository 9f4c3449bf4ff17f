package services

import (
	"errors"
	"fmt"
	"time"

	"ecommerce_admin_backend/internal/models"
	"ecommerce_admin_backend/internal/repositories"
)

var (
	ErrInventoryNotFound = errors.New("inventory not found for this product")
	ErrInventoryExists   = errors.New("inventory for this product already exists")
)

// ManualUpdateReason is recorded in the ledger for operator-initiated
// quantity changes.
const ManualUpdateReason = "Manual update"

// CreateInventoryRequest is used for creating the inventory row of a product.
type CreateInventoryRequest struct {
	ProductID         int64 `json:"product_id" binding:"required"`
	Quantity          int   `json:"quantity" binding:"gte=0"`
	LowStockThreshold int   `json:"low_stock_threshold" binding:"gte=0"`
}

// UpdateInventoryRequest applies only the fields that are present.
// Pointers distinguish "not provided" from zero values.
type UpdateInventoryRequest struct {
	Quantity          *int `json:"quantity" binding:"omitempty,gte=0"`
	LowStockThreshold *int `json:"low_stock_threshold" binding:"omitempty,gte=0"`
}

// InventoryService maintains per-product stock levels and the append-only
// change ledger.
type InventoryService interface {
	CreateInventory(req CreateInventoryRequest) (*models.Inventory, error)
	GetInventoryByProductID(productID int64) (*models.Inventory, error)
	GetAllInventory(skip, limit int) ([]models.Inventory, error)
	UpdateInventory(productID int64, req UpdateInventoryRequest) (*models.Inventory, error)
	GetLowStockProducts() ([]models.LowStockProduct, error)
	GetInventoryHistory(productID int64, limit int) ([]models.InventoryLog, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	productRepo   repositories.ProductRepository
	txBeginner    repositories.TxBeginner
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(
	ir repositories.InventoryRepository,
	pr repositories.ProductRepository,
	tb repositories.TxBeginner,
) InventoryService {
	return &inventoryService{
		inventoryRepo: ir,
		productRepo:   pr,
		txBeginner:    tb,
	}
}

func (s *inventoryService) CreateInventory(req CreateInventoryRequest) (*models.Inventory, error) {
	if _, err := s.productRepo.GetProductByID(req.ProductID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to verify product %d: %w", req.ProductID, err)
	}

	inventory := &models.Inventory{
		ProductID:         req.ProductID,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	}
	tx, err := s.txBeginner.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.inventoryRepo.CreateInventory(tx, inventory); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: product %d", ErrInventoryExists, req.ProductID)
		}
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit inventory creation: %w", err)
	}
	return s.GetInventoryByProductID(req.ProductID)
}

func (s *inventoryService) GetInventoryByProductID(productID int64) (*models.Inventory, error) {
	inventory, err := s.inventoryRepo.GetInventoryByProductID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to get inventory for product %d: %w", productID, err)
	}
	return inventory, nil
}

func (s *inventoryService) GetAllInventory(skip, limit int) ([]models.Inventory, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	items, err := s.inventoryRepo.GetAllInventory(skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory list: %w", err)
	}
	return items, nil
}

// UpdateInventory applies the fields present in req. A quantity change is
// logged before it is applied; a quantity increase also stamps
// last_restocked. Threshold-only changes produce no log entry.
func (s *inventoryService) UpdateInventory(productID int64, req UpdateInventoryRequest) (*models.Inventory, error) {
	if _, err := s.productRepo.GetProductByID(productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to verify product %d: %w", productID, err)
	}

	current, err := s.inventoryRepo.GetInventoryByProductID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to read inventory for product %d: %w", productID, err)
	}

	if req.Quantity == nil && req.LowStockThreshold == nil {
		return current, nil
	}

	tx, err := s.txBeginner.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	if req.Quantity != nil && *req.Quantity != current.Quantity {
		reason := ManualUpdateReason
		log := models.InventoryLog{
			ProductID:        productID,
			PreviousQuantity: current.Quantity,
			NewQuantity:      *req.Quantity,
			ChangeReason:     &reason,
		}
		if _, err := s.inventoryRepo.CreateLog(tx, &log); err != nil {
			return nil, fmt.Errorf("failed to record inventory log for product %d: %w", productID, err)
		}

		var restockedAt *time.Time
		if *req.Quantity > current.Quantity {
			now := time.Now()
			restockedAt = &now
		}
		if err := s.inventoryRepo.SetQuantity(tx, productID, *req.Quantity, restockedAt); err != nil {
			return nil, fmt.Errorf("failed to update quantity for product %d: %w", productID, err)
		}
	}

	if req.LowStockThreshold != nil {
		if err := s.inventoryRepo.SetLowStockThreshold(tx, productID, *req.LowStockThreshold); err != nil {
			return nil, fmt.Errorf("failed to update threshold for product %d: %w", productID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit inventory update: %w", err)
	}
	return s.GetInventoryByProductID(productID)
}

func (s *inventoryService) GetLowStockProducts() ([]models.LowStockProduct, error) {
	products, err := s.inventoryRepo.GetLowStockProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to get low-stock products: %w", err)
	}
	return products, nil
}

// GetInventoryHistory returns the most recent log entries for a product,
// newest first. A product without logs yields an empty list; a missing
// product is an error.
func (s *inventoryService) GetInventoryHistory(productID int64, limit int) ([]models.InventoryLog, error) {
	if limit <= 0 {
		limit = 10
	}
	if _, err := s.productRepo.GetProductByID(productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to verify product %d: %w", productID, err)
	}
	logs, err := s.inventoryRepo.GetInventoryHistory(productID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory history for product %d: %w", productID, err)
	}
	return logs, nil
}
