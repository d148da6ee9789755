package billing

import (
	"testing"
	"time"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finishedOrder(t *testing.T, number int64, customerID uuid.UUID, price string) *production.ServiceOrder {
	t.Helper()
	o, err := production.NewServiceOrder(number, customerID, production.Spec{
		ProductType: pricing.ProductClicheCorrugated,
		Corrugated: &production.CorrugatedPrinterDetails{
			Measures: []pricing.ClicheMeasure{{Width: decimal.NewFromInt(10), Height: decimal.NewFromInt(10), Quantity: 1}},
		},
	})
	require.NoError(t, err)
	o.Price = decimal.RequireFromString(price)
	require.NoError(t, o.ChangeStatus(production.StatusInProduction, ""))
	require.NoError(t, o.ChangeStatus(production.StatusFinished, ""))
	return o
}

func TestNewInvoice(t *testing.T) {
	customerID := uuid.New()
	a := finishedOrder(t, 1, customerID, "100.10")
	b := finishedOrder(t, 2, customerID, "50.25")

	inv, err := NewInvoice(10, customerID, []*production.ServiceOrder{a, b}, nil)
	require.NoError(t, err)

	assert.Equal(t, InvoiceOpen, inv.Status)
	assert.Equal(t, "150.35", inv.Total.StringFixed(2))
	assert.Len(t, inv.Items, 2)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID}, inv.OrderIDs())
	assert.Equal(t, inv.ID, *a.InvoiceID)
	assert.Equal(t, inv.ID, *b.InvoiceID)
	assert.Equal(t, 2, inv.Summary().ByProductType[pricing.ProductClicheCorrugated].Count)
}

func TestNewInvoice_Rejections(t *testing.T) {
	customerID := uuid.New()

	t.Run("no orders", func(t *testing.T) {
		_, err := NewInvoice(1, customerID, nil, nil)
		assert.Error(t, err)
	})

	t.Run("other customer", func(t *testing.T) {
		o := finishedOrder(t, 1, uuid.New(), "10")
		_, err := NewInvoice(1, customerID, []*production.ServiceOrder{o}, nil)
		assert.Error(t, err)
		assert.Nil(t, o.InvoiceID)
	})

	t.Run("pending order", func(t *testing.T) {
		o, _ := production.NewServiceOrder(5, customerID, production.Spec{
			ProductType: pricing.ProductClicheCorrugated,
			Corrugated: &production.CorrugatedPrinterDetails{
				Measures: []pricing.ClicheMeasure{{Width: decimal.NewFromInt(1), Height: decimal.NewFromInt(1)}},
			},
		})
		_, err := NewInvoice(1, customerID, []*production.ServiceOrder{o}, nil)
		assert.Error(t, err)
	})

	t.Run("duplicate order", func(t *testing.T) {
		o := finishedOrder(t, 1, customerID, "10")
		_, err := NewInvoice(1, customerID, []*production.ServiceOrder{o, o}, nil)
		assert.Error(t, err)
	})

	t.Run("already invoiced", func(t *testing.T) {
		o := finishedOrder(t, 1, customerID, "10")
		_, err := NewInvoice(1, customerID, []*production.ServiceOrder{o}, nil)
		require.NoError(t, err)
		_, err = NewInvoice(2, customerID, []*production.ServiceOrder{o}, nil)
		assert.Error(t, err)
	})
}

func TestInvoice_Lifecycle(t *testing.T) {
	customerID := uuid.New()
	o := finishedOrder(t, 1, customerID, "10")
	inv, err := NewInvoice(1, customerID, []*production.ServiceOrder{o}, nil)
	require.NoError(t, err)

	now := time.Now()
	assert.Error(t, inv.Pay(now), "open invoices cannot be paid")

	require.NoError(t, inv.Issue(now))
	assert.Error(t, inv.SetNotes("x", nil))
	require.NoError(t, inv.Pay(now))
	assert.Equal(t, InvoicePaid, inv.Status)
	assert.Error(t, inv.Cancel([]*production.ServiceOrder{o}))
	assert.Len(t, inv.GetDomainEvents(), 2)
}

func TestInvoice_CancelReleasesOrders(t *testing.T) {
	customerID := uuid.New()
	o := finishedOrder(t, 1, customerID, "10")
	inv, err := NewInvoice(1, customerID, []*production.ServiceOrder{o}, nil)
	require.NoError(t, err)

	require.NoError(t, inv.Cancel([]*production.ServiceOrder{o}))
	assert.Equal(t, InvoiceCancelled, inv.Status)
	assert.Nil(t, o.InvoiceID)
	assert.True(t, o.IsBillable())
}
