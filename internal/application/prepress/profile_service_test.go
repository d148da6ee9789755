package prepress

import (
	"context"
	"testing"

	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	profiles *MockProfileRepository
	printers *MockPrinterRepository
	curves   *MockCurveRepository
	orders   *MockOrderCounter
	service  *ProfileService
	printer  *prepress.Printer
}

func newProfileFixture(t *testing.T) *profileFixture {
	printer, err := prepress.NewPrinter(uuid.New(), "Comexi F2", 4)
	require.NoError(t, err)
	f := &profileFixture{
		profiles: new(MockProfileRepository),
		printers: new(MockPrinterRepository),
		curves:   new(MockCurveRepository),
		orders:   new(MockOrderCounter),
		printer:  printer,
	}
	f.service = NewProfileService(f.profiles, f.printers, f.curves, f.orders)
	return f
}

func TestProfileService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates profile with existing curves", func(t *testing.T) {
		f := newProfileFixture(t)
		curveID := uuid.New()
		f.printers.On("FindByID", ctx, f.printer.ID).Return(f.printer, nil)
		f.profiles.On("ExistsByPrinterAndName", ctx, f.printer.ID, "Kraft 100lpi").Return(false, nil)
		f.curves.On("FindByIDs", ctx, []uuid.UUID{curveID}).Return([]prepress.Curve{{}}, nil)
		f.profiles.On("Save", ctx, mock.AnythingOfType("*prepress.Profile")).Return(nil)

		resp, err := f.service.Create(ctx, ProfileRequest{
			PrinterID: f.printer.ID,
			Name:      "Kraft 100lpi",
			Lineature: 100,
			DotType:   "round",
			Colors: []ProfileColorRequest{
				{Color: "Cyan", CurveID: &curveID, Angle: 15},
				{Color: "Magenta", CurveID: &curveID, Angle: 75},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "round", resp.DotType)
		assert.Len(t, resp.Colors, 2)
		f.profiles.AssertExpectations(t)
		f.curves.AssertExpectations(t)
	})

	t.Run("rejects missing curve", func(t *testing.T) {
		f := newProfileFixture(t)
		curveID := uuid.New()
		f.printers.On("FindByID", ctx, f.printer.ID).Return(f.printer, nil)
		f.profiles.On("ExistsByPrinterAndName", ctx, f.printer.ID, "Kraft").Return(false, nil)
		f.curves.On("FindByIDs", ctx, []uuid.UUID{curveID}).Return([]prepress.Curve{}, nil)

		_, err := f.service.Create(ctx, ProfileRequest{
			PrinterID: f.printer.ID,
			Name:      "Kraft",
			Lineature: 85,
			DotType:   "hybrid",
			Colors:    []ProfileColorRequest{{Color: "Black", CurveID: &curveID}},
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.profiles.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects more colors than the press has", func(t *testing.T) {
		f := newProfileFixture(t)
		f.printers.On("FindByID", ctx, f.printer.ID).Return(f.printer, nil)

		colors := make([]ProfileColorRequest, 5)
		for i := range colors {
			colors[i] = ProfileColorRequest{Color: "Pantone"}
		}
		_, err := f.service.Create(ctx, ProfileRequest{
			PrinterID: f.printer.ID, Name: "Too many", Lineature: 85, DotType: "round", Colors: colors,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_COLORS", domainErr.Code)
	})

	t.Run("rejects duplicate name on the same printer", func(t *testing.T) {
		f := newProfileFixture(t)
		f.printers.On("FindByID", ctx, f.printer.ID).Return(f.printer, nil)
		f.profiles.On("ExistsByPrinterAndName", ctx, f.printer.ID, "Kraft").Return(true, nil)

		_, err := f.service.Create(ctx, ProfileRequest{
			PrinterID: f.printer.ID,
			Name:      "Kraft",
			Lineature: 85,
			DotType:   "round",
			Colors:    []ProfileColorRequest{{Color: "Black"}},
		})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestProfileService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(t)
	id := uuid.New()
	f.profiles.On("FindByID", ctx, id).Return(&prepress.Profile{}, nil)
	f.orders.On("CountByProfile", ctx, id).Return(int64(1), nil)

	assert.ErrorIs(t, f.service.Delete(ctx, id), shared.ErrInUse)
	f.profiles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
