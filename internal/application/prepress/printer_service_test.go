package prepress

import (
	"context"
	"testing"

	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPrinterService_Create(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("creates a press for an existing customer", func(t *testing.T) {
		printers := new(MockPrinterRepository)
		customers := new(MockCustomerFinder)
		service := NewPrinterService(printers, customers, nil, nil)

		customers.On("FindByID", ctx, customerID).Return(&partner.Customer{}, nil)
		printers.On("Save", ctx, mock.AnythingOfType("*prepress.Printer")).Return(nil)

		resp, err := service.Create(ctx, PrinterRequest{
			CustomerID:   customerID,
			Name:         "Bobst 6 cores",
			Manufacturer: "Bobst",
			Colors:       6,
			MaxWidthMM:   1600,
		})

		require.NoError(t, err)
		assert.Equal(t, customerID, resp.CustomerID)
		assert.Equal(t, 6, resp.Colors)
		assert.Equal(t, 1600, resp.MaxWidthMM)
		assert.Equal(t, "Bobst", resp.Manufacturer)
		printers.AssertExpectations(t)
	})

	t.Run("fails when the customer does not exist", func(t *testing.T) {
		printers := new(MockPrinterRepository)
		customers := new(MockCustomerFinder)
		service := NewPrinterService(printers, customers, nil, nil)

		customers.On("FindByID", ctx, customerID).Return(nil, shared.NotFound("Customer"))

		_, err := service.Create(ctx, PrinterRequest{CustomerID: customerID, Name: "X", Colors: 4})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		printers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPrinterService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked by profiles", func(t *testing.T) {
		printers := new(MockPrinterRepository)
		profiles := new(MockProfileRepository)
		orders := new(MockOrderCounter)
		service := NewPrinterService(printers, nil, profiles, orders)
		id := uuid.New()

		printers.On("FindByID", ctx, id).Return(&prepress.Printer{}, nil)
		profiles.On("CountByPrinter", ctx, id).Return(int64(3), nil)

		err := service.Delete(ctx, id)

		assert.ErrorIs(t, err, shared.ErrInUse)
		assert.Contains(t, err.Error(), "profiles")
		orders.AssertNotCalled(t, "CountByPrinter", mock.Anything, mock.Anything)
	})

	t.Run("blocked by service orders", func(t *testing.T) {
		printers := new(MockPrinterRepository)
		profiles := new(MockProfileRepository)
		orders := new(MockOrderCounter)
		service := NewPrinterService(printers, nil, profiles, orders)
		id := uuid.New()

		printers.On("FindByID", ctx, id).Return(&prepress.Printer{}, nil)
		profiles.On("CountByPrinter", ctx, id).Return(int64(0), nil)
		orders.On("CountByPrinter", ctx, id).Return(int64(1), nil)

		assert.ErrorIs(t, service.Delete(ctx, id), shared.ErrInUse)
	})

	t.Run("deletes an unused press", func(t *testing.T) {
		printers := new(MockPrinterRepository)
		profiles := new(MockProfileRepository)
		orders := new(MockOrderCounter)
		service := NewPrinterService(printers, nil, profiles, orders)
		id := uuid.New()

		printers.On("FindByID", ctx, id).Return(&prepress.Printer{}, nil)
		profiles.On("CountByPrinter", ctx, id).Return(int64(0), nil)
		orders.On("CountByPrinter", ctx, id).Return(int64(0), nil)
		printers.On("Delete", ctx, id).Return(nil)

		require.NoError(t, service.Delete(ctx, id))
		printers.AssertExpectations(t)
	})
}
