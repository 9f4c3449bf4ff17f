package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce_admin_backend/internal/models"
	"ecommerce_admin_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSaleService struct {
	mock.Mock
}

func (m *mockSaleService) CreateSale(req services.CreateSaleRequest) (*models.Sale, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sale), args.Error(1)
}

func (m *mockSaleService) GetSaleByID(saleID int64) (*models.Sale, error) {
	args := m.Called(saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sale), args.Error(1)
}

func (m *mockSaleService) GetSales(skip, limit int) ([]models.Sale, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sale), args.Error(1)
}

func setupSaleRouter(service services.SaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewSaleHandler(service)
	engine.POST("/sales/", h.CreateSale)
	engine.GET("/sales/:id", h.GetSaleByID)
	return engine
}

const saleBody = `{
	"order_id": "ORD-1001",
	"total_amount": 149.97,
	"marketplace": "Amazon",
	"items": [{"product_id": 1, "quantity": 3, "unit_price": 49.99, "subtotal": 149.97}]
}`

func postSale(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateSaleHandler_OK(t *testing.T) {
	service := new(mockSaleService)
	service.On("CreateSale", mock.Anything).Return(&models.Sale{ID: 1, OrderID: "ORD-1001"}, nil)
	engine := setupSaleRouter(service)

	w := postSale(engine, saleBody)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateSaleHandler_MissingOrderID(t *testing.T) {
	engine := setupSaleRouter(new(mockSaleService))

	w := postSale(engine, `{"total_amount": 10, "marketplace": "Amazon", "items": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSaleHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{"duplicate order", services.ErrOrderIDExists, http.StatusBadRequest, "CONFLICT"},
		{"missing inventory", services.ErrInventoryNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"insufficient stock", services.ErrInsufficientStock, http.StatusBadRequest, "INSUFFICIENT_STOCK"},
		{"amount mismatch", services.ErrAmountMismatch, http.StatusBadRequest, "AMOUNT_MISMATCH"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := new(mockSaleService)
			service.On("CreateSale", mock.Anything).Return(nil, tc.serviceErr)
			engine := setupSaleRouter(service)

			w := postSale(engine, saleBody)

			assert.Equal(t, tc.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.wantCode, body["code"])
		})
	}
}

func TestGetSaleByIDHandler_NotFound(t *testing.T) {
	service := new(mockSaleService)
	service.On("GetSaleByID", int64(99)).Return(nil, services.ErrSaleNotFound)
	engine := setupSaleRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sales/99", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSaleByIDHandler_BadID(t *testing.T) {
	engine := setupSaleRouter(new(mockSaleService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sales/abc", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
