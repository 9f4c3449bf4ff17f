package services

import (
	"errors"
	"fmt"
	"math"

	"ecommerce_admin_backend/internal/models"
	"ecommerce_admin_backend/internal/repositories"
)

var (
	ErrSaleNotFound      = errors.New("sale not found")
	ErrOrderIDExists     = errors.New("sale with this order_id already exists")
	ErrInsufficientStock = errors.New("insufficient stock for product")
	ErrAmountMismatch    = errors.New("total amount doesn't match sum of item subtotals")
)

// AmountTolerance is the maximum accepted drift between the declared total
// and the sum of declared subtotals, in currency units.
const AmountTolerance = 0.01

// CreateSaleItemRequest is one line of an incoming sale.
type CreateSaleItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
	Subtotal  float64 `json:"subtotal" binding:"gte=0"`
}

// CreateSaleRequest is used for recording a new sale.
type CreateSaleRequest struct {
	OrderID     string                  `json:"order_id" binding:"required"`
	TotalAmount float64                 `json:"total_amount" binding:"required"`
	Marketplace string                  `json:"marketplace" binding:"required"`
	Items       []CreateSaleItemRequest `json:"items" binding:"required,dive"`
}

// SaleService validates and commits sales atomically together with the
// inventory decrements and ledger entries they cause.
type SaleService interface {
	CreateSale(req CreateSaleRequest) (*models.Sale, error)
	GetSaleByID(saleID int64) (*models.Sale, error)
	GetSales(skip, limit int) ([]models.Sale, error)
}

type saleService struct {
	saleRepo      repositories.SaleRepository
	inventoryRepo repositories.InventoryRepository
	txBeginner    repositories.TxBeginner
}

// NewSaleService creates a new instance of SaleService.
func NewSaleService(
	sr repositories.SaleRepository,
	ir repositories.InventoryRepository,
	tb repositories.TxBeginner,
) SaleService {
	return &saleService{
		saleRepo:      sr,
		inventoryRepo: ir,
		txBeginner:    tb,
	}
}

// CreateSale runs the whole sale as one atomic unit: every line's
// inventory row must exist and cover the requested quantity as read at
// the start of the operation, the declared total must match the declared
// subtotals within AmountTolerance, and only then are the sale, its
// items, the stock decrements and one ledger entry per product written
// and committed together. Any failure leaves no partial state.
func (s *saleService) CreateSale(req CreateSaleRequest) (*models.Sale, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: a sale needs at least one item", ErrValidation)
	}

	var subtotalSum float64
	for _, item := range req.Items {
		inventory, err := s.inventoryRepo.GetInventoryByProductID(item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %d", ErrInventoryNotFound, item.ProductID)
			}
			return nil, fmt.Errorf("failed to read inventory for product %d: %w", item.ProductID, err)
		}
		if inventory.Quantity < item.Quantity {
			return nil, fmt.Errorf("%w %d: requested %d, available %d",
				ErrInsufficientStock, item.ProductID, item.Quantity, inventory.Quantity)
		}
		subtotalSum += item.Subtotal
	}

	if math.Abs(subtotalSum-req.TotalAmount) > AmountTolerance {
		return nil, fmt.Errorf("%w: declared %.2f, items sum to %.2f", ErrAmountMismatch, req.TotalAmount, subtotalSum)
	}

	tx, err := s.txBeginner.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	sale := models.Sale{
		OrderID:     req.OrderID,
		TotalAmount: req.TotalAmount,
		Marketplace: req.Marketplace,
	}
	saleID, err := s.saleRepo.CreateSale(tx, &sale)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrOrderIDExists, req.OrderID)
		}
		return nil, fmt.Errorf("failed to create sale record: %w", err)
	}

	reason := fmt.Sprintf("Sale - Order ID: %s", req.OrderID)
	for _, item := range req.Items {
		saleItem := models.SaleItem{
			SaleID:    saleID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
		if _, err := s.saleRepo.CreateSaleItem(tx, &saleItem); err != nil {
			return nil, fmt.Errorf("failed to create sale item (product %d): %w", item.ProductID, err)
		}

		newQuantity, err := s.inventoryRepo.DecrementQuantity(tx, item.ProductID, item.Quantity)
		if err != nil {
			if errors.Is(err, repositories.ErrInsufficientStock) {
				// A concurrent sale won the stock between our read and
				// the conditional update.
				return nil, fmt.Errorf("%w %d: requested %d", ErrInsufficientStock, item.ProductID, item.Quantity)
			}
			return nil, fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, err)
		}

		log := models.InventoryLog{
			ProductID:        item.ProductID,
			PreviousQuantity: newQuantity + item.Quantity,
			NewQuantity:      newQuantity,
			ChangeReason:     &reason,
		}
		if _, err := s.inventoryRepo.CreateLog(tx, &log); err != nil {
			return nil, fmt.Errorf("failed to record inventory log for product %d: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sale transaction: %w", err)
	}
	return s.GetSaleByID(saleID)
}

func (s *saleService) GetSaleByID(saleID int64) (*models.Sale, error) {
	sale, err := s.saleRepo.GetSaleByID(saleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale by ID: %w", err)
	}
	items, err := s.saleRepo.GetSaleItemsBySaleID(saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items for sale %d: %w", saleID, err)
	}
	sale.Items = items
	return sale, nil
}

func (s *saleService) GetSales(skip, limit int) ([]models.Sale, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	sales, err := s.saleRepo.GetSales(skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales: %w", err)
	}
	for i := range sales {
		items, err := s.saleRepo.GetSaleItemsBySaleID(sales[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get items for sale %d: %w", sales[i].ID, err)
		}
		sales[i].Items = items
	}
	return sales, nil
}
