package handler

import (
	"context"
	"net/http"
	"testing"

	billingapp "github.com/flexo/backend/internal/application/billing"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockInvoiceService struct {
	mock.Mock
}

func (m *mockInvoiceService) invoice(args mock.Arguments) (*billingapp.InvoiceResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billingapp.InvoiceResponse), args.Error(1)
}

func (m *mockInvoiceService) Create(ctx context.Context, req billingapp.CreateInvoiceRequest) (*billingapp.InvoiceResponse, error) {
	return m.invoice(m.Called(ctx, req))
}

func (m *mockInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*billingapp.InvoiceResponse, error) {
	return m.invoice(m.Called(ctx, id))
}

func (m *mockInvoiceService) List(ctx context.Context, filter billingapp.InvoiceListFilter) ([]billingapp.InvoiceResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billingapp.InvoiceResponse), args.Get(1).(int64), args.Error(2)
}

func (m *mockInvoiceService) Update(ctx context.Context, id uuid.UUID, req billingapp.UpdateInvoiceRequest) (*billingapp.InvoiceResponse, error) {
	return m.invoice(m.Called(ctx, id, req))
}

func (m *mockInvoiceService) Issue(ctx context.Context, id uuid.UUID) (*billingapp.InvoiceResponse, error) {
	return m.invoice(m.Called(ctx, id))
}

func (m *mockInvoiceService) Pay(ctx context.Context, id uuid.UUID) (*billingapp.InvoiceResponse, error) {
	return m.invoice(m.Called(ctx, id))
}

func (m *mockInvoiceService) Cancel(ctx context.Context, id uuid.UUID) (*billingapp.InvoiceResponse, error) {
	return m.invoice(m.Called(ctx, id))
}

func TestInvoiceHandler_Create(t *testing.T) {
	customerID := uuid.New()
	orderIDs := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("created", func(t *testing.T) {
		svc := new(mockInvoiceService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(req billingapp.CreateInvoiceRequest) bool {
			return req.CustomerID == customerID && len(req.ServiceOrderIDs) == 2 && req.CreatedBy != nil
		})).Return(&billingapp.InvoiceResponse{ID: uuid.New(), Number: 12, Total: decimal.NewFromInt(480), Status: "open"}, nil)

		c, w := newContext(http.MethodPost, "/api/v1/invoice", map[string]any{
			"customerId":      customerID,
			"serviceOrderIds": orderIDs,
			"dueDate":         "2026-11-15",
		})
		authenticate(c, "manager")
		NewInvoiceHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "480", decode(t, w).Data.(map[string]any)["total"])
		svc.AssertExpectations(t)
	})

	t.Run("no orders", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/api/v1/invoice", map[string]any{
			"customerId":      customerID,
			"serviceOrderIds": []uuid.UUID{},
		})
		NewInvoiceHandler(new(mockInvoiceService)).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "serviceOrderIds", decode(t, w).Error.Details[0].Field)
	})

	t.Run("order of another customer", func(t *testing.T) {
		svc := new(mockInvoiceService)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, shared.NewDomainError("CUSTOMER_MISMATCH", "Order 7 belongs to another customer"))

		c, w := newContext(http.MethodPost, "/api/v1/invoice", map[string]any{
			"customerId":      customerID,
			"serviceOrderIds": orderIDs,
		})
		NewInvoiceHandler(svc).Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "ERR_CUSTOMER_MISMATCH", decode(t, w).Error.Code)
	})
}

func TestInvoiceHandler_Transitions(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		method string
		call   func(h *InvoiceHandler) gin.HandlerFunc
		status string
	}{
		{"Issue", func(h *InvoiceHandler) gin.HandlerFunc { return h.Issue }, "issued"},
		{"Pay", func(h *InvoiceHandler) gin.HandlerFunc { return h.Pay }, "paid"},
		{"Cancel", func(h *InvoiceHandler) gin.HandlerFunc { return h.Cancel }, "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			svc := new(mockInvoiceService)
			svc.On(tt.method, mock.Anything, id).Return(&billingapp.InvoiceResponse{ID: id, Status: tt.status}, nil)

			c, w := newContext(http.MethodPost, "/api/v1/invoice/"+id.String(), nil)
			withParam(c, "id", id.String())
			tt.call(NewInvoiceHandler(svc))(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.status, decode(t, w).Data.(map[string]any)["status"])
			svc.AssertExpectations(t)
		})
	}

	t.Run("paying an open invoice", func(t *testing.T) {
		svc := new(mockInvoiceService)
		svc.On("Pay", mock.Anything, id).
			Return(nil, shared.NewDomainError("INVALID_STATE", "Only issued invoices can be paid"))

		c, w := newContext(http.MethodPost, "/api/v1/invoice/"+id.String()+"/pay", nil)
		withParam(c, "id", id.String())
		NewInvoiceHandler(svc).Pay(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/api/v1/invoice/x/issue", nil)
		withParam(c, "id", "x")
		NewInvoiceHandler(new(mockInvoiceService)).Issue(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid invoice ID format", decode(t, w).Error.Message)
	})
}
