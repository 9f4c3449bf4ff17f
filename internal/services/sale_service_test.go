package services

import (
	"testing"

	"ecommerce_admin_backend/internal/models"
	"ecommerce_admin_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSaleRequest() CreateSaleRequest {
	return CreateSaleRequest{
		OrderID:     "ORD-1001",
		TotalAmount: 149.97,
		Marketplace: "Amazon",
		Items: []CreateSaleItemRequest{
			{ProductID: 1, Quantity: 3, UnitPrice: 49.99, Subtotal: 149.97},
		},
	}
}

func TestCreateSale_Success(t *testing.T) {
	saleRepo := new(mockSaleRepository)
	inventoryRepo := new(mockInventoryRepository)
	txBeginner, tx := newCommittableTx()
	service := NewSaleService(saleRepo, inventoryRepo, txBeginner)

	inventoryRepo.On("GetInventoryByProductID", int64(1)).
		Return(&models.Inventory{ProductID: 1, Quantity: 10}, nil)
	saleRepo.On("CreateSale", tx, mock.AnythingOfType("*models.Sale")).Return(int64(7), nil)
	saleRepo.On("CreateSaleItem", tx, mock.AnythingOfType("*models.SaleItem")).Return(int64(1), nil)
	inventoryRepo.On("DecrementQuantity", tx, int64(1), 3).Return(7, nil)
	inventoryRepo.On("CreateLog", tx, mock.MatchedBy(func(log *models.InventoryLog) bool {
		return log.ProductID == 1 &&
			log.PreviousQuantity == 10 &&
			log.NewQuantity == 7 &&
			log.ChangeReason != nil &&
			*log.ChangeReason == "Sale - Order ID: ORD-1001"
	})).Return(int64(1), nil)
	saleRepo.On("GetSaleByID", int64(7)).
		Return(&models.Sale{ID: 7, OrderID: "ORD-1001", TotalAmount: 149.97, Marketplace: "Amazon"}, nil)
	saleRepo.On("GetSaleItemsBySaleID", int64(7)).
		Return([]models.SaleItem{{SaleID: 7, ProductID: 1, Quantity: 3}}, nil)

	sale, err := service.CreateSale(validSaleRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(7), sale.ID)
	assert.Len(t, sale.Items, 1)
	tx.AssertCalled(t, "Commit")
	saleRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
}

func TestCreateSale_InsufficientStockOnPreRead(t *testing.T) {
	saleRepo := new(mockSaleRepository)
	inventoryRepo := new(mockInventoryRepository)
	txBeginner := new(mockTxBeginner)
	service := NewSaleService(saleRepo, inventoryRepo, txBeginner)

	inventoryRepo.On("GetInventoryByProductID", int64(1)).
		Return(&models.Inventory{ProductID: 1, Quantity: 2}, nil)

	_, err := service.CreateSale(validSaleRequest())

	assert.ErrorIs(t, err, ErrInsufficientStock)
	// Validation failed before any transaction started.
	txBeginner.AssertNotCalled(t, "BeginTx")
	saleRepo.AssertNotCalled(t, "CreateSale", mock.Anything, mock.Anything)
}

func TestCreateSale_MissingInventoryRow(t *testing.T) {
	saleRepo := new(mockSaleRepository)
	inventoryRepo := new(mockInventoryRepository)
	txBeginner := new(mockTxBeginner)
	service := NewSaleService(saleRepo, inventoryRepo, txBeginner)

	inventoryRepo.On("GetInventoryByProductID", int64(1)).
		Return(nil, repositories.ErrNotFound)

	_, err := service.CreateSale(validSaleRequest())

	assert.ErrorIs(t, err, ErrInventoryNotFound)
	txBeginner.AssertNotCalled(t, "BeginTx")
}

func TestCreateSale_AmountMismatch(t *testing.T) {
	saleRepo := new(mockSaleRepository)
	inventoryRepo := new(mockInventoryRepository)
	txBeginner := new(mockTxBeginner)
	service := NewSaleService(saleRepo, inventoryRepo, txBeginner)

	inventoryRepo.On("GetInventoryByProductID", int64(1)).
		Return(&models.Inventory{ProductID: 1, Quantity: 10}, nil)

	req := validSaleRequest()
	req.TotalAmount = 140.00

	_, err := service.CreateSale(req)

	assert.ErrorIs(t, err, ErrAmountMismatch)
	txBeginner.AssertNotCalled(t, "BeginTx")
}

func TestCreateSale_AmountWithinTolerance(t *testing.T) {
	saleRepo := new(mockSaleRepository)
	inventoryRepo := new(mockInventoryRepository)
	txBeginner, tx := newCommittableTx()
	service := NewSaleService(saleRepo, inventoryRepo, txBeginner)

	inventoryRepo.On("GetInventoryByProductID", int64(1)).
		Return(&models.Inventory{ProductID: 1, Quantity: 10}, nil)
	saleRepo.On("CreateSale", tx, mock.Anything).Return(int64(8), nil)
	saleRepo.On("CreateSaleItem", tx, mock.Anything).Return(int64(1), nil)
	inventoryRepo.On("DecrementQuantity", tx, int64(1), 3).Return(7, nil)
	inventoryRepo.On("CreateLog", tx, mock.Anything).Return(int64(1), nil)
	saleRepo.On("GetSaleByID", int64(8)).Return(&models.Sale{ID: 8}, nil)
	saleRepo.On("GetSaleItemsBySaleID", int64(8)).Return([]models.SaleItem{}, nil)

	req := validSaleRequest()
	// A cent of rounding drift is accepted.
	req.TotalAmount = 149.96

	_, err := service.CreateSale(req)

	assert.NoError(t, err)
}

func TestCreateSale_DuplicateOrderID(t *testing.T) {
	saleRepo := new(mockSaleRepository)
	inventoryRepo := new(mockInventoryRepository)
	txBeginner, tx := newRolledBackTx()
	service := NewSaleService(saleRepo, inventoryRepo, txBeginner)

	inventoryRepo.On("GetInventoryByProductID", int64(1)).
		Return(&models.Inventory{ProductID: 1, Quantity: 10}, nil)
	saleRepo.On("CreateSale", tx, mock.Anything).Return(int64(0), repositories.ErrDuplicateKey)

	_, err := service.CreateSale(validSaleRequest())

	assert.ErrorIs(t, err, ErrOrderIDExists)
	tx.AssertNotCalled(t, "Commit")
}

func TestCreateSale_LostRaceOnDecrement(t *testing.T) {
	saleRepo := new(mockSaleRepository)
	inventoryRepo := new(mockInventoryRepository)
	txBeginner, tx := newRolledBackTx()
	service := NewSaleService(saleRepo, inventoryRepo, txBeginner)

	// Pre-read sees enough stock, but a concurrent sale takes it before
	// the conditional decrement runs.
	inventoryRepo.On("GetInventoryByProductID", int64(1)).
		Return(&models.Inventory{ProductID: 1, Quantity: 10}, nil)
	saleRepo.On("CreateSale", tx, mock.Anything).Return(int64(9), nil)
	saleRepo.On("CreateSaleItem", tx, mock.Anything).Return(int64(1), nil)
	inventoryRepo.On("DecrementQuantity", tx, int64(1), 3).
		Return(0, repositories.ErrInsufficientStock)

	_, err := service.CreateSale(validSaleRequest())

	assert.ErrorIs(t, err, ErrInsufficientStock)
	tx.AssertNotCalled(t, "Commit")
	inventoryRepo.AssertNotCalled(t, "CreateLog", mock.Anything, mock.Anything)
}

func TestCreateSale_NoItems(t *testing.T) {
	service := NewSaleService(new(mockSaleRepository), new(mockInventoryRepository), new(mockTxBeginner))

	_, err := service.CreateSale(CreateSaleRequest{
		OrderID:     "ORD-1002",
		TotalAmount: 0,
		Marketplace: "eBay",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateSale_MultiLineLogQuantities(t *testing.T) {
	saleRepo := new(mockSaleRepository)
	inventoryRepo := new(mockInventoryRepository)
	txBeginner, tx := newCommittableTx()
	service := NewSaleService(saleRepo, inventoryRepo, txBeginner)

	inventoryRepo.On("GetInventoryByProductID", int64(1)).
		Return(&models.Inventory{ProductID: 1, Quantity: 20}, nil)
	inventoryRepo.On("GetInventoryByProductID", int64(2)).
		Return(&models.Inventory{ProductID: 2, Quantity: 5}, nil)
	saleRepo.On("CreateSale", tx, mock.Anything).Return(int64(11), nil)
	saleRepo.On("CreateSaleItem", tx, mock.Anything).Return(int64(1), nil)
	inventoryRepo.On("DecrementQuantity", tx, int64(1), 4).Return(16, nil)
	inventoryRepo.On("DecrementQuantity", tx, int64(2), 2).Return(3, nil)
	inventoryRepo.On("CreateLog", tx, mock.MatchedBy(func(log *models.InventoryLog) bool {
		return log.ProductID == 1 && log.PreviousQuantity == 20 && log.NewQuantity == 16
	})).Return(int64(1), nil)
	inventoryRepo.On("CreateLog", tx, mock.MatchedBy(func(log *models.InventoryLog) bool {
		return log.ProductID == 2 && log.PreviousQuantity == 5 && log.NewQuantity == 3
	})).Return(int64(2), nil)
	saleRepo.On("GetSaleByID", int64(11)).Return(&models.Sale{ID: 11}, nil)
	saleRepo.On("GetSaleItemsBySaleID", int64(11)).Return([]models.SaleItem{}, nil)

	_, err := service.CreateSale(CreateSaleRequest{
		OrderID:     "ORD-1003",
		TotalAmount: 60.00,
		Marketplace: "Etsy",
		Items: []CreateSaleItemRequest{
			{ProductID: 1, Quantity: 4, UnitPrice: 10.00, Subtotal: 40.00},
			{ProductID: 2, Quantity: 2, UnitPrice: 10.00, Subtotal: 20.00},
		},
	})

	require.NoError(t, err)
	inventoryRepo.AssertExpectations(t)
}

func TestGetSaleByID_NotFound(t *testing.T) {
	saleRepo := new(mockSaleRepository)
	service := NewSaleService(saleRepo, new(mockInventoryRepository), new(mockTxBeginner))

	saleRepo.On("GetSaleByID", int64(404)).Return(nil, repositories.ErrNotFound)

	_, err := service.GetSaleByID(404)

	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestGetSales_AttachesItems(t *testing.T) {
	saleRepo := new(mockSaleRepository)
	service := NewSaleService(saleRepo, new(mockInventoryRepository), new(mockTxBeginner))

	saleRepo.On("GetSales", 0, 100).Return([]models.Sale{{ID: 1}, {ID: 2}}, nil)
	saleRepo.On("GetSaleItemsBySaleID", int64(1)).Return([]models.SaleItem{{SaleID: 1}}, nil)
	saleRepo.On("GetSaleItemsBySaleID", int64(2)).Return([]models.SaleItem{}, nil)

	sales, err := service.GetSales(-1, 0)

	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Len(t, sales[0].Items, 1)
	assert.Empty(t, sales[1].Items)
}
