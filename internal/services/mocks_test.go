package services

import (
	"database/sql"
	"time"

	"ecommerce_admin_backend/internal/models"
	"ecommerce_admin_backend/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// mockTx satisfies repositories.Tx without touching a database.
type mockTx struct {
	mock.Mock
}

func (m *mockTx) Exec(query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (m *mockTx) QueryRow(query string, args ...interface{}) *sql.Row {
	return nil
}

func (m *mockTx) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (m *mockTx) Commit() error {
	return m.Called().Error(0)
}

func (m *mockTx) Rollback() error {
	return m.Called().Error(0)
}

type mockTxBeginner struct {
	mock.Mock
}

func (m *mockTxBeginner) BeginTx() (repositories.Tx, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repositories.Tx), args.Error(1)
}

// newCommittableTx returns a beginner handing out one tx that accepts
// Commit and any number of deferred Rollbacks.
func newCommittableTx() (*mockTxBeginner, *mockTx) {
	tx := new(mockTx)
	tx.On("Commit").Return(nil)
	tx.On("Rollback").Return(sql.ErrTxDone).Maybe()
	tb := new(mockTxBeginner)
	tb.On("BeginTx").Return(tx, nil)
	return tb, tx
}

// newRolledBackTx returns a beginner whose tx must never be committed.
func newRolledBackTx() (*mockTxBeginner, *mockTx) {
	tx := new(mockTx)
	tx.On("Rollback").Return(nil).Maybe()
	tb := new(mockTxBeginner)
	tb.On("BeginTx").Return(tx, nil)
	return tb, tx
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) CreateCategory(executor repositories.SQLExecutor, category *models.Category) (int64, error) {
	args := m.Called(executor, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepository) GetCategoryByID(id int64) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetCategoryByName(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetCategories(skip, limit int) ([]models.Category, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) CreateProduct(executor repositories.SQLExecutor, product *models.Product) (int64, error) {
	args := m.Called(executor, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) GetProductByID(id int64) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductRepository) GetProductBySKU(sku string) (*models.Product, error) {
	args := m.Called(sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductRepository) GetProducts(filters models.ProductFilters) ([]models.Product, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) CreateInventory(executor repositories.SQLExecutor, inventory *models.Inventory) (int64, error) {
	args := m.Called(executor, inventory)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInventoryRepository) GetInventoryByProductID(productID int64) (*models.Inventory, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inventory), args.Error(1)
}

func (m *mockInventoryRepository) GetAllInventory(skip, limit int) ([]models.Inventory, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Inventory), args.Error(1)
}

func (m *mockInventoryRepository) SetQuantity(executor repositories.SQLExecutor, productID int64, quantity int, restockedAt *time.Time) error {
	args := m.Called(executor, productID, quantity, restockedAt)
	return args.Error(0)
}

func (m *mockInventoryRepository) SetLowStockThreshold(executor repositories.SQLExecutor, productID int64, threshold int) error {
	args := m.Called(executor, productID, threshold)
	return args.Error(0)
}

func (m *mockInventoryRepository) DecrementQuantity(executor repositories.SQLExecutor, productID int64, quantity int) (int, error) {
	args := m.Called(executor, productID, quantity)
	return args.Int(0), args.Error(1)
}

func (m *mockInventoryRepository) CreateLog(executor repositories.SQLExecutor, log *models.InventoryLog) (int64, error) {
	args := m.Called(executor, log)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInventoryRepository) GetInventoryHistory(productID int64, limit int) ([]models.InventoryLog, error) {
	args := m.Called(productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InventoryLog), args.Error(1)
}

func (m *mockInventoryRepository) GetLowStockProducts() ([]models.LowStockProduct, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LowStockProduct), args.Error(1)
}

type mockSaleRepository struct {
	mock.Mock
}

func (m *mockSaleRepository) CreateSale(executor repositories.SQLExecutor, sale *models.Sale) (int64, error) {
	args := m.Called(executor, sale)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSaleRepository) CreateSaleItem(executor repositories.SQLExecutor, item *models.SaleItem) (int64, error) {
	args := m.Called(executor, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSaleRepository) GetSaleByID(saleID int64) (*models.Sale, error) {
	args := m.Called(saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sale), args.Error(1)
}

func (m *mockSaleRepository) GetSaleItemsBySaleID(saleID int64) ([]models.SaleItem, error) {
	args := m.Called(saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SaleItem), args.Error(1)
}

func (m *mockSaleRepository) GetSales(skip, limit int) ([]models.Sale, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sale), args.Error(1)
}

type mockAnalyticsRepository struct {
	mock.Mock
}

func (m *mockAnalyticsRepository) GetSalesSummary(start, end time.Time) (*models.SalesSummary, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SalesSummary), args.Error(1)
}

func (m *mockAnalyticsRepository) SumRevenue(start, end time.Time) (float64, error) {
	args := m.Called(start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockAnalyticsRepository) GetProductSales(filters repositories.ProductSalesFilters) ([]models.ProductSalesRow, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductSalesRow), args.Error(1)
}
