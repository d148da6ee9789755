package production

import (
	"context"

	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/domain/tooling"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockServiceOrderRepository is a mock implementation of ServiceOrderRepository
type MockServiceOrderRepository struct {
	mock.Mock
}

func (m *MockServiceOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) FindByNumber(ctx context.Context, number int64) (*production.ServiceOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]production.ServiceOrder, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]production.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.ServiceOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]production.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) FindAllUnpaginated(ctx context.Context, filter shared.Filter) ([]production.ServiceOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]production.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceOrderRepository) Save(ctx context.Context, order *production.ServiceOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockServiceOrderRepository) SaveAll(ctx context.Context, orders []*production.ServiceOrder) error {
	return m.Called(ctx, orders).Error(0)
}

func (m *MockServiceOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockServiceOrderRepository) NextNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceOrderRepository) CountByCustomer(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceOrderRepository) CountByPrinter(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceOrderRepository) CountByProfile(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceOrderRepository) CountByTransport(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceOrderRepository) CountByDieCutBlock(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// mockFinder serves every reference lookup of an order
type mockFinder struct {
	mock.Mock
}

func (m *mockFinder) get(method string, ctx context.Context, id uuid.UUID) (any, error) {
	args := m.Called(method, ctx, id)
	return args.Get(0), args.Error(1)
}

type customerFinder struct{ *mockFinder }

func (f customerFinder) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	v, err := f.get("customer", ctx, id)
	if v == nil {
		return nil, err
	}
	return v.(*partner.Customer), err
}

type printerFinder struct{ *mockFinder }

func (f printerFinder) FindByID(ctx context.Context, id uuid.UUID) (*prepress.Printer, error) {
	v, err := f.get("printer", ctx, id)
	if v == nil {
		return nil, err
	}
	return v.(*prepress.Printer), err
}

type profileFinder struct{ *mockFinder }

func (f profileFinder) FindByID(ctx context.Context, id uuid.UUID) (*prepress.Profile, error) {
	v, err := f.get("profile", ctx, id)
	if v == nil {
		return nil, err
	}
	return v.(*prepress.Profile), err
}

type transportFinder struct{ *mockFinder }

func (f transportFinder) FindByID(ctx context.Context, id uuid.UUID) (*partner.Transport, error) {
	v, err := f.get("transport", ctx, id)
	if v == nil {
		return nil, err
	}
	return v.(*partner.Transport), err
}

type blockFinder struct{ *mockFinder }

func (f blockFinder) FindByID(ctx context.Context, id uuid.UUID) (*tooling.DieCutBlock, error) {
	v, err := f.get("block", ctx, id)
	if v == nil {
		return nil, err
	}
	return v.(*tooling.DieCutBlock), err
}

func newReferences(m *mockFinder) References {
	return References{
		Customers:  customerFinder{m},
		Printers:   printerFinder{m},
		Profiles:   profileFinder{m},
		Transports: transportFinder{m},
		Blocks:     blockFinder{m},
	}
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}
