package report

import (
	"context"
	"time"

	"github.com/flexo/backend/internal/domain/billing"
	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/report"
	"github.com/flexo/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderFinder struct {
	mock.Mock
}

func (m *MockOrderFinder) FindByID(ctx context.Context, id uuid.UUID) (*production.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ServiceOrder), args.Error(1)
}

type MockInvoiceFinder struct {
	mock.Mock
}

func (m *MockInvoiceFinder) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

type MockCustomerFinder struct {
	mock.Mock
}

func (m *MockCustomerFinder) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

type MockTransportFinder struct {
	mock.Mock
}

func (m *MockTransportFinder) FindByID(ctx context.Context, id uuid.UUID) (*partner.Transport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Transport), args.Error(1)
}

type MockPrinterFinder struct {
	mock.Mock
}

func (m *MockPrinterFinder) FindByID(ctx context.Context, id uuid.UUID) (*prepress.Printer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prepress.Printer), args.Error(1)
}

type MockProfileFinder struct {
	mock.Mock
}

func (m *MockProfileFinder) FindByID(ctx context.Context, id uuid.UUID) (*prepress.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prepress.Profile), args.Error(1)
}

type MockReadModel struct {
	mock.Mock
}

func (m *MockReadModel) Orders(ctx context.Context, filter report.OrderFilter) ([]report.OrderRow, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]report.OrderRow), args.Error(1)
}

func (m *MockReadModel) Replacements(ctx context.Context, period report.Period) ([]report.OrderRow, error) {
	args := m.Called(ctx, period)
	return args.Get(0).([]report.OrderRow), args.Error(1)
}

type MockSheetRenderer struct {
	mock.Mock
}

func (m *MockSheetRenderer) ServiceOrderPDF(ctx context.Context, sheet printing.ServiceOrderSheet) ([]byte, error) {
	args := m.Called(ctx, sheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSheetRenderer) InvoicePDF(ctx context.Context, sheet printing.InvoiceSheet) ([]byte, error) {
	args := m.Called(ctx, sheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Key(key string) string {
	return "flexo/" + key
}

func (m *MockObjectStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Exists(ctx context.Context, objectKey string) (bool, error) {
	args := m.Called(ctx, objectKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockObjectStorage) SignedURL(ctx context.Context, objectKey string, ttl time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, objectKey, ttl)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
