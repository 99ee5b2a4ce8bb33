package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cafe-pos/internal/billing"
	"cafe-pos/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) CalculateBill(ctx context.Context, items []model.OrderLineRequest) (*billing.Bill, []model.SkippedLine, error) {
	args := m.Called(ctx, items)
	var bill *billing.Bill
	if args.Get(0) != nil {
		bill = args.Get(0).(*billing.Bill)
	}
	var skipped []model.SkippedLine
	if args.Get(1) != nil {
		skipped = args.Get(1).([]model.SkippedLine)
	}
	return bill, skipped, args.Error(2)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id int64) (*model.OrderDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDetail), args.Error(1)
}

func (m *MockOrderService) ListLedger(ctx context.Context, limit, offset int) ([]model.LedgerEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LedgerEntry), args.Error(1)
}

func (m *MockOrderService) DeleteOrders(ctx context.Context, req *model.DeleteOrdersRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderService) SaveReceipt(ctx context.Context, orderID int64) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

func testBill() billing.Bill {
	lines := []billing.Line{
		{ItemID: 1, Name: "Espresso", UnitPrice: decimal.RequireFromString("150.00"), Quantity: 2},
	}
	return billing.Calculate(lines, billing.DefaultTaxRate)
}

func TestOrderHandler_Create(t *testing.T) {
	orderID := int64(101)
	bill := testBill()

	tests := []struct {
		name           string
		method         string
		body           string
		setupMock      func(*MockOrderService)
		expectedStatus int
		checkBody      func(*testing.T, []byte)
	}{
		{
			name:   "order created",
			method: http.MethodPost,
			body:   `{"items":[{"itemId":1,"quantity":2}]}`,
			setupMock: func(m *MockOrderService) {
				m.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
					Return(&model.OrderResponse{
						OrderID: &orderID,
						Total:   decimal.RequireFromString("315.00"),
						Bill:    bill,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.OrderResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				require.NotNil(t, resp.OrderID)
				assert.Equal(t, int64(101), *resp.OrderID)
			},
		},
		{
			name:   "nothing persisted when all lines invalid",
			method: http.MethodPost,
			body:   `{"items":[{"itemId":999,"quantity":1}]}`,
			setupMock: func(m *MockOrderService) {
				m.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
					Return(&model.OrderResponse{
						OrderID: nil,
						Total:   decimal.Zero,
						Skipped: []model.SkippedLine{{ItemID: 999, Reason: "item not found in menu"}},
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.OrderResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Nil(t, resp.OrderID)
				require.Len(t, resp.Skipped, 1)
			},
		},
		{
			name:   "invalid quantity",
			method: http.MethodPost,
			body:   `{"items":[{"itemId":1,"quantity":0}]}`,
			setupMock: func(m *MockOrderService) {
				m.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
					Return(nil, model.ErrInvalidQuantity)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, model.ErrCodeInvalidInput, resp.Error)
			},
		},
		{
			name:           "malformed JSON",
			method:         http.MethodPost,
			body:           `{"items":`,
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, model.ErrCodeInvalidJSON, resp.Error)
			},
		},
		{
			name:           "wrong method",
			method:         http.MethodGet,
			body:           "",
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.setupMock(mockService)

			h := NewOrderHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(tt.method, "/api/orders", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.Bytes())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_CalculateBill(t *testing.T) {
	bill := testBill()

	mockService := new(MockOrderService)
	mockService.On("CalculateBill", mock.Anything, mock.AnythingOfType("[]model.OrderLineRequest")).
		Return(&bill, nil, nil)

	h := NewOrderHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/bills",
		bytes.NewBufferString(`{"items":[{"itemId":1,"quantity":2}]}`))
	rec := httptest.NewRecorder()

	h.CalculateBill(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Bill billing.Bill `json:"bill"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Bill.GrandTotal.Equal(decimal.RequireFromString("315.00")))
}

func TestOrderHandler_GetByID(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockOrderService)
		expectedStatus int
	}{
		{
			name: "order found",
			path: "/api/orders/101",
			setupMock: func(m *MockOrderService) {
				m.On("GetOrder", mock.Anything, int64(101)).Return(&model.OrderDetail{
					Order: model.Order{ID: 101, TotalAmount: decimal.RequireFromString("315.00")},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "order not found",
			path: "/api/orders/404",
			setupMock: func(m *MockOrderService) {
				m.On("GetOrder", mock.Anything, int64(404)).Return(nil, model.ErrOrderNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			path:           "/api/orders/not-a-number",
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.setupMock(mockService)

			h := NewOrderHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			h.GetByID(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_List(t *testing.T) {
	mockService := new(MockOrderService)
	mockService.On("ListLedger", mock.Anything, 10, 20).Return([]model.LedgerEntry{
		{OrderID: 101, ItemName: "Espresso", Quantity: 2, TotalAmount: decimal.RequireFromString("300.00")},
	}, nil)

	h := NewOrderHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/orders?limit=10&offset=20", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []model.LedgerEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Espresso", entries[0].ItemName)
}

func TestOrderHandler_List_InvalidLimit(t *testing.T) {
	mockService := new(MockOrderService)
	h := NewOrderHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/orders?limit=abc", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "ListLedger", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockOrderService)
		expectedStatus int
	}{
		{
			name: "confirmed delete",
			body: `{"orderIds":[1,2],"confirm":true}`,
			setupMock: func(m *MockOrderService) {
				m.On("DeleteOrders", mock.Anything, mock.AnythingOfType("*model.DeleteOrdersRequest")).
					Return(int64(2), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing confirmation",
			body: `{"orderIds":[1,2]}`,
			setupMock: func(m *MockOrderService) {
				m.On("DeleteOrders", mock.Anything, mock.AnythingOfType("*model.DeleteOrdersRequest")).
					Return(int64(0), model.ErrConfirmationRequired)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.setupMock(mockService)

			h := NewOrderHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(http.MethodDelete, "/api/orders", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Delete(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_SaveReceipt(t *testing.T) {
	mockService := new(MockOrderService)
	mockService.On("SaveReceipt", mock.Anything, int64(101)).Return("receipts/receipt_101.txt", nil)

	h := NewOrderHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/orders/101/receipt", nil)
	rec := httptest.NewRecorder()

	h.SaveReceipt(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "receipts/receipt_101.txt", resp["path"])
}

func TestOrderHandler_SaveReceipt_NotFound(t *testing.T) {
	mockService := new(MockOrderService)
	mockService.On("SaveReceipt", mock.Anything, int64(404)).Return("", model.ErrOrderNotFound)

	h := NewOrderHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/orders/404/receipt", nil)
	rec := httptest.NewRecorder()

	h.SaveReceipt(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
