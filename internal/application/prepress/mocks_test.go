package prepress

import (
	"context"

	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockPrinterRepository struct {
	mock.Mock
}

func (m *MockPrinterRepository) FindByID(ctx context.Context, id uuid.UUID) (*prepress.Printer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prepress.Printer), args.Error(1)
}

func (m *MockPrinterRepository) FindAll(ctx context.Context, filter shared.Filter) ([]prepress.Printer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]prepress.Printer), args.Error(1)
}

func (m *MockPrinterRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPrinterRepository) Save(ctx context.Context, printer *prepress.Printer) error {
	return m.Called(ctx, printer).Error(0)
}

func (m *MockPrinterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPrinterRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCurveRepository struct {
	mock.Mock
}

func (m *MockCurveRepository) FindByID(ctx context.Context, id uuid.UUID) (*prepress.Curve, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prepress.Curve), args.Error(1)
}

func (m *MockCurveRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]prepress.Curve, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]prepress.Curve), args.Error(1)
}

func (m *MockCurveRepository) FindAll(ctx context.Context, filter shared.Filter) ([]prepress.Curve, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]prepress.Curve), args.Error(1)
}

func (m *MockCurveRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCurveRepository) Save(ctx context.Context, curve *prepress.Curve) error {
	return m.Called(ctx, curve).Error(0)
}

func (m *MockCurveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCurveRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*prepress.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prepress.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]prepress.Profile, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]prepress.Profile), args.Error(1)
}

func (m *MockProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *prepress.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProfileRepository) ExistsByPrinterAndName(ctx context.Context, printerID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, printerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) CountByPrinter(ctx context.Context, printerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, printerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) CountByCurve(ctx context.Context, curveID uuid.UUID) (int64, error) {
	args := m.Called(ctx, curveID)
	return args.Get(0).(int64), args.Error(1)
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

// MockOrderCounter stands in for the service order repository
type MockOrderCounter struct {
	mock.Mock
}

func (m *MockOrderCounter) CountByPrinter(ctx context.Context, printerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, printerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderCounter) CountByProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}
