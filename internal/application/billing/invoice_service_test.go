package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/flexo/backend/internal/application/listing"
	"github.com/flexo/backend/internal/domain/billing"
	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invoiceFixture struct {
	invoices  *MockInvoiceRepository
	orders    *MockOrderRepository
	customers *MockCustomerFinder
	tx        *passthroughTx
	events    *MockEventPublisher
	service   *InvoiceService
}

func newInvoiceFixture() *invoiceFixture {
	f := &invoiceFixture{
		invoices:  new(MockInvoiceRepository),
		orders:    new(MockOrderRepository),
		customers: new(MockCustomerFinder),
		tx:        new(passthroughTx),
		events:    new(MockEventPublisher),
	}
	f.service = NewInvoiceService(f.invoices, f.orders, f.customers, f.tx, f.events, nil)
	return f
}

func customer(t *testing.T) *partner.Customer {
	c, err := partner.NewCustomer("Embalagens Sul Ltda", "11222333000181")
	require.NoError(t, err)
	return c
}

// finishedOrder is a cliché order of width×height cm² priced at 0.35/cm²
func finishedOrder(t *testing.T, number int64, customerID uuid.UUID, width, height int64) production.ServiceOrder {
	o, err := production.NewServiceOrder(number, customerID, production.Spec{
		ProductType: pricing.ProductClicheCorrugated,
		Description: "Caixa kraft",
		Corrugated: &production.CorrugatedPrinterDetails{
			Measures: []pricing.ClicheMeasure{
				{Width: decimal.NewFromInt(width), Height: decimal.NewFromInt(height), Quantity: 1, Color: "Preto"},
			},
		},
	})
	require.NoError(t, err)
	require.NoError(t, o.Reprice(pricing.PriceTable{ClichePerCm2: decimal.RequireFromString("0.35")}))
	require.NoError(t, o.ChangeStatus(production.StatusInProduction, ""))
	require.NoError(t, o.ChangeStatus(production.StatusFinished, ""))
	o.ClearDomainEvents()
	o.MarkPersisted()
	return *o
}

func TestInvoiceService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("bills orders in number order inside one transaction", func(t *testing.T) {
		f := newInvoiceFixture()
		c := customer(t)
		second := finishedOrder(t, 12, c.ID, 10, 10)
		first := finishedOrder(t, 11, c.ID, 20, 10)
		ids := []uuid.UUID{second.ID, first.ID}

		f.customers.On("FindByID", ctx, c.ID).Return(c, nil)
		f.orders.On("FindByIDs", ctx, ids).Return([]production.ServiceOrder{second, first}, nil)
		f.invoices.On("NextNumber", ctx).Return(int64(7), nil)
		f.invoices.On("Save", ctx, mock.AnythingOfType("*billing.Invoice")).Return(nil)
		f.orders.On("SaveAll", ctx, mock.MatchedBy(func(orders []*production.ServiceOrder) bool {
			return len(orders) == 2 && orders[0].InvoiceID != nil && orders[1].InvoiceID != nil
		})).Return(nil)

		resp, err := f.service.Create(ctx, CreateInvoiceRequest{
			CustomerID:      c.ID,
			ServiceOrderIDs: ids,
			DueDate:         "2024-07-15",
			Notes:           "30 dias",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.Number)
		assert.Equal(t, "open", resp.Status)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, int64(11), resp.Items[0].OrderNumber)
		assert.Equal(t, int64(12), resp.Items[1].OrderNumber)
		// (200 + 100) cm² × 0.35
		assert.Equal(t, "105", resp.Total.String())
		assert.Equal(t, "30 dias", resp.Notes)
		require.NotNil(t, resp.DueDate)
		assert.Equal(t, 15, resp.DueDate.Day())
		assert.Equal(t, 1, f.tx.calls)
		f.invoices.AssertExpectations(t)
		f.orders.AssertExpectations(t)
	})

	t.Run("missing order", func(t *testing.T) {
		f := newInvoiceFixture()
		c := customer(t)
		o := finishedOrder(t, 11, c.ID, 10, 10)
		ids := []uuid.UUID{o.ID, uuid.New()}
		f.customers.On("FindByID", ctx, c.ID).Return(c, nil)
		f.orders.On("FindByIDs", ctx, ids).Return([]production.ServiceOrder{o}, nil)

		_, err := f.service.Create(ctx, CreateInvoiceRequest{CustomerID: c.ID, ServiceOrderIDs: ids})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.invoices.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("order of another customer", func(t *testing.T) {
		f := newInvoiceFixture()
		c := customer(t)
		o := finishedOrder(t, 11, uuid.New(), 10, 10)
		ids := []uuid.UUID{o.ID}
		f.customers.On("FindByID", ctx, c.ID).Return(c, nil)
		f.orders.On("FindByIDs", ctx, ids).Return([]production.ServiceOrder{o}, nil)
		f.invoices.On("NextNumber", ctx).Return(int64(8), nil)

		_, err := f.service.Create(ctx, CreateInvoiceRequest{CustomerID: c.ID, ServiceOrderIDs: ids})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CUSTOMER_MISMATCH", domainErr.Code)
		f.orders.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newInvoiceFixture()
		id := uuid.New()
		f.customers.On("FindByID", ctx, id).Return(nil, shared.NotFound("Customer"))

		_, err := f.service.Create(ctx, CreateInvoiceRequest{CustomerID: id, ServiceOrderIDs: []uuid.UUID{uuid.New()}})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Zero(t, f.tx.calls)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		f := newInvoiceFixture()
		c := customer(t)
		o := finishedOrder(t, 11, c.ID, 10, 10)
		ids := []uuid.UUID{o.ID}
		f.customers.On("FindByID", ctx, c.ID).Return(c, nil)
		f.orders.On("FindByIDs", ctx, ids).Return([]production.ServiceOrder{o}, nil)
		f.invoices.On("NextNumber", ctx).Return(int64(9), nil)
		f.invoices.On("Save", ctx, mock.Anything).Return(errors.New("connection reset"))

		_, err := f.service.Create(ctx, CreateInvoiceRequest{CustomerID: c.ID, ServiceOrderIDs: ids})

		assert.EqualError(t, err, "connection reset")
	})
}

func openInvoice(t *testing.T, c *partner.Customer) (*billing.Invoice, []production.ServiceOrder) {
	orders := []production.ServiceOrder{finishedOrder(t, 11, c.ID, 10, 10)}
	inv, err := billing.NewInvoice(5, c.ID, []*production.ServiceOrder{&orders[0]}, nil)
	require.NoError(t, err)
	inv.MarkPersisted()
	orders[0].MarkPersisted()
	return inv, orders
}

func TestInvoiceService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("issue then pay publishes both events", func(t *testing.T) {
		f := newInvoiceFixture()
		inv, _ := openInvoice(t, customer(t))
		f.invoices.On("FindByID", ctx, inv.ID).Return(inv, nil)
		f.invoices.On("Save", ctx, inv).Return(nil)
		f.events.On("Publish", ctx, mock.MatchedBy(func(evs []shared.DomainEvent) bool {
			return len(evs) == 1 && evs[0].EventType() == billing.EventTypeInvoiceIssued
		})).Return(nil).Once()
		f.events.On("Publish", ctx, mock.MatchedBy(func(evs []shared.DomainEvent) bool {
			return len(evs) == 1 && evs[0].EventType() == billing.EventTypeInvoicePaid
		})).Return(nil).Once()

		resp, err := f.service.Issue(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, "issued", resp.Status)
		assert.NotNil(t, resp.IssueDate)

		resp, err = f.service.Pay(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, "paid", resp.Status)
		assert.NotNil(t, resp.PaidAt)
		f.events.AssertExpectations(t)
	})

	t.Run("paying an open invoice is refused", func(t *testing.T) {
		f := newInvoiceFixture()
		inv, _ := openInvoice(t, customer(t))
		f.invoices.On("FindByID", ctx, inv.ID).Return(inv, nil)

		_, err := f.service.Pay(ctx, inv.ID)

		assert.ErrorIs(t, err, shared.ErrInvalidState)
		f.invoices.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("cancel releases the orders", func(t *testing.T) {
		f := newInvoiceFixture()
		inv, orders := openInvoice(t, customer(t))
		f.invoices.On("FindByID", ctx, inv.ID).Return(inv, nil)
		f.orders.On("FindByIDs", ctx, inv.OrderIDs()).Return(orders, nil)
		f.invoices.On("Save", ctx, inv).Return(nil)
		f.orders.On("SaveAll", ctx, mock.MatchedBy(func(os []*production.ServiceOrder) bool {
			return len(os) == 1 && os[0].InvoiceID == nil && os[0].IsBillable()
		})).Return(nil)
		f.events.On("Publish", ctx, mock.Anything).Return(nil)

		resp, err := f.service.Cancel(ctx, inv.ID)

		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.NotNil(t, resp.CancelledAt)
		assert.Equal(t, 1, f.tx.calls)
		f.orders.AssertExpectations(t)
	})

	t.Run("cannot cancel a paid invoice", func(t *testing.T) {
		f := newInvoiceFixture()
		inv, orders := openInvoice(t, customer(t))
		require.NoError(t, inv.Issue(inv.CreatedAt))
		require.NoError(t, inv.Pay(inv.CreatedAt))
		f.invoices.On("FindByID", ctx, inv.ID).Return(inv, nil)
		f.orders.On("FindByIDs", ctx, inv.OrderIDs()).Return(orders, nil)

		_, err := f.service.Cancel(ctx, inv.ID)

		assert.ErrorIs(t, err, shared.ErrInvalidState)
		f.orders.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})
}

func TestInvoiceService_Update(t *testing.T) {
	ctx := context.Background()
	f := newInvoiceFixture()
	inv, _ := openInvoice(t, customer(t))
	f.invoices.On("FindByID", ctx, inv.ID).Return(inv, nil)
	f.invoices.On("Save", ctx, inv).Return(nil)

	resp, err := f.service.Update(ctx, inv.ID, UpdateInvoiceRequest{DueDate: "2024-08-01", Notes: "boleto"})

	require.NoError(t, err)
	assert.Equal(t, "boleto", resp.Notes)
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, 8, int(resp.DueDate.Month()))

	_, err = f.service.Update(ctx, inv.ID, UpdateInvoiceRequest{DueDate: "01/08/2024"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DUE_DATE", domainErr.Code)
}

func TestInvoiceService_List(t *testing.T) {
	ctx := context.Background()
	f := newInvoiceFixture()
	customerID := uuid.New()

	f.invoices.On("FindAll", ctx, mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.Filters["customer_id"] == customerID && filter.Filters["status"] == "issued"
	})).Return([]billing.Invoice{}, nil)
	f.invoices.On("Count", ctx, mock.Anything).Return(int64(0), nil)

	items, total, err := f.service.List(ctx, InvoiceListFilter{
		Query:      listing.Query{Page: 1, Limit: 20},
		CustomerID: customerID.String(),
		Status:     "issued",
	})

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}
