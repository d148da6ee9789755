package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flexo/backend/internal/domain/billing"
	"github.com/flexo/backend/internal/domain/partner"
	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/report"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/cache"
	"github.com/flexo/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCompany = printing.Company{Name: "Flexo Clichês Ltda", Document: "11.222.333/0001-81"}

type fixture struct {
	orders     *MockOrderFinder
	invoices   *MockInvoiceFinder
	customers  *MockCustomerFinder
	transports *MockTransportFinder
	printers   *MockPrinterFinder
	profiles   *MockProfileFinder
	readModel  *MockReadModel
	sheets     *MockSheetRenderer
	storage    *MockObjectStorage
	cache      *cache.InMemoryDocumentCache
	service    *ReportService
}

func newFixture(t *testing.T, withStorage bool) *fixture {
	t.Helper()
	f := &fixture{
		orders:     new(MockOrderFinder),
		invoices:   new(MockInvoiceFinder),
		customers:  new(MockCustomerFinder),
		transports: new(MockTransportFinder),
		printers:   new(MockPrinterFinder),
		profiles:   new(MockProfileFinder),
		readModel:  new(MockReadModel),
		sheets:     new(MockSheetRenderer),
		storage:    new(MockObjectStorage),
		cache:      cache.NewInMemoryDocumentCache(0, time.Minute),
	}
	t.Cleanup(func() { _ = f.cache.Close() })

	deps := Dependencies{
		Orders:     f.orders,
		Invoices:   f.invoices,
		Customers:  f.customers,
		Transports: f.transports,
		Printers:   f.printers,
		Profiles:   f.profiles,
		ReadModel:  f.readModel,
		Sheets:     f.sheets,
		Cache:      f.cache,
	}
	if withStorage {
		deps.Storage = f.storage
	}
	f.service = NewReportService(deps, testCompany, time.Hour, nil)
	f.service.now = func() time.Time { return time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC) }
	return f
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	c, err := partner.NewCustomer("Embalagens Sul", "11222333000181")
	require.NoError(t, err)
	return c
}

func testOrder(t *testing.T, customerID uuid.UUID) *production.ServiceOrder {
	t.Helper()
	o, err := production.NewServiceOrder(42, customerID, production.Spec{
		ProductType: pricing.ProductClicheCorrugated,
		Description: "Caixa 4 cores",
		Corrugated: &production.CorrugatedPrinterDetails{
			Measures: []pricing.ClicheMeasure{
				{Color: "magenta", Width: d("30"), Height: d("20"), Quantity: 1},
				{Color: "preto", Width: d("10"), Height: d("10"), Quantity: 2},
			},
			ThicknessMM: d("1.14"),
		},
	})
	require.NoError(t, err)
	o.Price = d("280")
	return o
}

func TestReportService_ServiceOrderPDF(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	customer := testCustomer(t)
	order := testOrder(t, customer.ID)
	printerID, transportID := uuid.New(), uuid.New()
	order.PrinterID = &printerID
	order.TransportID = &transportID

	f.orders.On("FindByID", ctx, order.ID).Return(order, nil)
	f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	f.printers.On("FindByID", ctx, printerID).Return(&prepress.Printer{Name: "Bobst 4 cores"}, nil).Once()
	f.transports.On("FindByID", ctx, transportID).Return(nil, shared.NotFound("Transport")).Once()
	f.sheets.On("ServiceOrderPDF", ctx, mock.MatchedBy(func(s printing.ServiceOrderSheet) bool {
		return s.Number == 42 &&
			s.CustomerDocument == "11.222.333/0001-81" &&
			s.PrinterName == "Bobst 4 cores" &&
			s.TransportName == "" &&
			len(s.Cliches) == 2 &&
			s.Cliches[1].Area.Equal(d("200")) &&
			s.Measure.Equal(d("800")) &&
			s.MeasureUnit == pricing.UnitSquareCentimeter &&
			s.Replacement == nil
	})).Return([]byte("%PDF-os"), nil).Once()

	doc, err := f.service.ServiceOrderPDF(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "os-000042.pdf", doc.Filename)
	assert.Equal(t, ContentTypePDF, doc.ContentType)
	assert.Equal(t, []byte("%PDF-os"), doc.Data)
	assert.False(t, doc.Cached)

	// same version is served from the cache without rendering again
	doc, err = f.service.ServiceOrderPDF(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, doc.Cached)
	assert.Equal(t, []byte("%PDF-os"), doc.Data)

	f.sheets.AssertExpectations(t)
	f.customers.AssertExpectations(t)
}

func TestReportService_ServiceOrderPDF_NewVersionRendersAgain(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	customer := testCustomer(t)
	order := testOrder(t, customer.ID)

	f.orders.On("FindByID", ctx, order.ID).Return(order, nil)
	f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
	f.sheets.On("ServiceOrderPDF", ctx, mock.Anything).Return([]byte("%PDF"), nil).Twice()

	_, err := f.service.ServiceOrderPDF(ctx, order.ID)
	require.NoError(t, err)

	order.Version++
	doc, err := f.service.ServiceOrderPDF(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, doc.Cached)
	f.sheets.AssertExpectations(t)
}

func TestReportService_ServiceOrderPDF_Replacement(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	customer := testCustomer(t)
	original := testOrder(t, customer.ID)
	original.Status = production.StatusFinished
	replacement, err := production.NewReplacementOrder(43, original, "Registro fora", production.ResponsibleSupplier)
	require.NoError(t, err)

	f.orders.On("FindByID", ctx, replacement.ID).Return(replacement, nil)
	f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
	f.sheets.On("ServiceOrderPDF", ctx, mock.MatchedBy(func(s printing.ServiceOrderSheet) bool {
		return s.Replacement != nil &&
			s.Replacement.OriginalNumber == 42 &&
			s.Replacement.Responsible == "Fornecedor"
	})).Return([]byte("%PDF"), nil)

	_, err = f.service.ServiceOrderPDF(ctx, replacement.ID)
	require.NoError(t, err)
	f.sheets.AssertExpectations(t)
}

func TestReportService_ServiceOrderPDF_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("order not found", func(t *testing.T) {
		f := newFixture(t, false)
		id := uuid.New()
		f.orders.On("FindByID", ctx, id).Return(nil, shared.NotFound("Service order"))

		_, err := f.service.ServiceOrderPDF(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("renderer failure is not cached", func(t *testing.T) {
		f := newFixture(t, false)
		customer := testCustomer(t)
		order := testOrder(t, customer.ID)
		f.orders.On("FindByID", ctx, order.ID).Return(order, nil)
		f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
		renderErr := printing.NewRenderError(printing.ErrCodeDisabled, "disabled", nil)
		f.sheets.On("ServiceOrderPDF", ctx, mock.Anything).Return(nil, renderErr)

		_, err := f.service.ServiceOrderPDF(ctx, order.ID)
		assert.ErrorIs(t, err, renderErr)
		assert.Zero(t, f.cache.Size())
	})

	t.Run("printer lookup failure", func(t *testing.T) {
		f := newFixture(t, false)
		customer := testCustomer(t)
		order := testOrder(t, customer.ID)
		printerID := uuid.New()
		order.PrinterID = &printerID
		dbErr := errors.New("connection reset")
		f.orders.On("FindByID", ctx, order.ID).Return(order, nil)
		f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
		f.printers.On("FindByID", ctx, printerID).Return(nil, dbErr)

		_, err := f.service.ServiceOrderPDF(ctx, order.ID)
		assert.ErrorIs(t, err, dbErr)
		f.sheets.AssertNotCalled(t, "ServiceOrderPDF", mock.Anything, mock.Anything)
	})
}

func testInvoice(customerID uuid.UUID) *billing.Invoice {
	issued := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	inv := &billing.Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            7,
		CustomerID:        customerID,
		Status:            billing.InvoiceIssued,
		IssueDate:         &issued,
		Items: []billing.InvoiceItem{
			{OrderNumber: 40, ProductType: pricing.ProductClicheCorrugated, Measure: d("200"), Unit: "cm2", Amount: d("70")},
			{OrderNumber: 41, ProductType: pricing.ProductDieCutBlock, Measure: d("2.8"), Unit: "m", Amount: d("633.6")},
		},
		Total: d("703.6"),
	}
	inv.CreatedAt = time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC)
	return inv
}

func TestReportService_InvoicePDF(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	customer := testCustomer(t)
	inv := testInvoice(customer.ID)

	f.invoices.On("FindByID", ctx, inv.ID).Return(inv, nil)
	f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
	f.sheets.On("InvoicePDF", ctx, mock.MatchedBy(func(s printing.InvoiceSheet) bool {
		return s.Number == 7 &&
			s.Status == "Emitida" &&
			len(s.Items) == 2 &&
			s.Items[1].ProductType == "Forma" &&
			s.Total.Equal(d("703.6")) &&
			s.Company == testCompany
	})).Return([]byte("%PDF-inv"), nil).Once()

	doc, err := f.service.InvoicePDF(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "fatura-7.pdf", doc.Filename)
	assert.Equal(t, []byte("%PDF-inv"), doc.Data)
	f.sheets.AssertExpectations(t)
}

func TestReportService_ArchiveInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("storage disabled", func(t *testing.T) {
		f := newFixture(t, false)
		_, err := f.service.ArchiveInvoice(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrStorageDisabled)
	})

	t.Run("uploads and signs", func(t *testing.T) {
		f := newFixture(t, true)
		customer := testCustomer(t)
		inv := testInvoice(customer.ID)
		expires := time.Date(2026, 4, 1, 8, 15, 0, 0, time.UTC)
		pdf := []byte("%PDF-inv")

		f.invoices.On("FindByID", ctx, inv.ID).Return(inv, nil)
		f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
		f.sheets.On("InvoicePDF", ctx, mock.Anything).Return(pdf, nil)
		f.storage.On("Exists", ctx, "flexo/invoices/2026/fatura-7-v1.pdf").Return(false, nil)
		f.storage.On("Put", ctx, "invoices/2026/fatura-7-v1.pdf", ContentTypePDF, pdf).
			Return("flexo/invoices/2026/fatura-7-v1.pdf", nil)
		f.storage.On("SignedURL", ctx, "flexo/invoices/2026/fatura-7-v1.pdf", time.Duration(0)).
			Return("https://s3.example.com/signed", expires, nil)

		resp, err := f.service.ArchiveInvoice(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, "flexo/invoices/2026/fatura-7-v1.pdf", resp.ObjectKey)
		assert.Equal(t, "https://s3.example.com/signed", resp.DownloadURL)
		assert.Equal(t, expires, resp.ExpiresAt)
		assert.Equal(t, len(pdf), resp.Size)
		assert.False(t, resp.Reused)
		f.storage.AssertExpectations(t)
	})

	t.Run("signs an archived version without rendering", func(t *testing.T) {
		f := newFixture(t, true)
		customer := testCustomer(t)
		inv := testInvoice(customer.ID)
		expires := time.Date(2026, 4, 1, 8, 15, 0, 0, time.UTC)

		f.invoices.On("FindByID", ctx, inv.ID).Return(inv, nil)
		f.storage.On("Exists", ctx, "flexo/invoices/2026/fatura-7-v1.pdf").Return(true, nil)
		f.storage.On("SignedURL", ctx, "flexo/invoices/2026/fatura-7-v1.pdf", time.Duration(0)).
			Return("https://s3.example.com/signed", expires, nil)

		resp, err := f.service.ArchiveInvoice(ctx, inv.ID)
		require.NoError(t, err)
		assert.True(t, resp.Reused)
		assert.Zero(t, resp.Size)
		f.sheets.AssertNotCalled(t, "InvoicePDF", mock.Anything, mock.Anything)
		f.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload failure", func(t *testing.T) {
		f := newFixture(t, true)
		customer := testCustomer(t)
		inv := testInvoice(customer.ID)

		f.invoices.On("FindByID", ctx, inv.ID).Return(inv, nil)
		f.customers.On("FindByID", ctx, customer.ID).Return(customer, nil)
		f.sheets.On("InvoicePDF", ctx, mock.Anything).Return([]byte("%PDF"), nil)
		f.storage.On("Exists", ctx, mock.Anything).Return(false, nil)
		f.storage.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("access denied"))

		_, err := f.service.ArchiveInvoice(ctx, inv.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
		f.storage.AssertNotCalled(t, "SignedURL", mock.Anything, mock.Anything, mock.Anything)
	})
}

func reportRows() []report.OrderRow {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return []report.OrderRow{
		{
			Number:       1,
			CreatedAt:    created,
			CustomerName: "Embalagens Sul",
			ProductType:  pricing.ProductClicheCorrugated,
			Status:       production.StatusFinished,
			Price:        d("210"),
			Corrugated: &production.CorrugatedPrinterDetails{
				Measures: []pricing.ClicheMeasure{{Width: d("30"), Height: d("20"), Quantity: 1}},
			},
		},
		{
			Number:              2,
			CreatedAt:           created,
			CustomerName:        "Embalagens Sul",
			ProductType:         pricing.ProductClicheCorrugated,
			Status:              production.StatusPending,
			Price:               d("105"),
			IsReplacement:       true,
			ReplacedOrderNumber: 1,
			ReplacementReason:   "Registro fora",
			Responsible:         production.ResponsibleCompany,
			Corrugated: &production.CorrugatedPrinterDetails{
				Measures: []pricing.ClicheMeasure{{Width: d("15"), Height: d("20"), Quantity: 1}},
			},
		},
	}
}

func TestReportService_OrdersPDF(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	customerID := uuid.New()

	f.readModel.On("Orders", ctx, mock.MatchedBy(func(filter report.OrderFilter) bool {
		return filter.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)) &&
			filter.End().Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)) &&
			filter.CustomerID != nil && *filter.CustomerID == customerID &&
			filter.ProductType == pricing.ProductClicheCorrugated
	})).Return(reportRows(), nil)

	doc, err := f.service.OrdersPDF(ctx, OrdersReportRequest{
		PeriodRequest: PeriodRequest{From: "2026-03-01", To: "2026-03-31"},
		CustomerID:    customerID.String(),
		ProductType:   string(pricing.ProductClicheCorrugated),
	})
	require.NoError(t, err)
	assert.Equal(t, "ordens-2026-03-01_2026-03-31.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
	f.readModel.AssertExpectations(t)
}

func TestReportService_OrdersXLSX(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	f.readModel.On("Orders", ctx, mock.Anything).Return(reportRows(), nil)

	doc, err := f.service.OrdersXLSX(ctx, OrdersReportRequest{PeriodRequest: PeriodRequest{From: "2026-03-01", To: "2026-03-31"}})
	require.NoError(t, err)
	assert.Equal(t, ContentTypeXLSX, doc.ContentType)
	assert.Equal(t, "ordens-2026-03-01_2026-03-31.xlsx", doc.Filename)
	// xlsx is a zip archive
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("PK")))
}

func TestReportService_OrdersRequestValidation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		req  OrdersReportRequest
		code string
	}{
		{"bad date", OrdersReportRequest{PeriodRequest: PeriodRequest{From: "01/03/2026", To: "2026-03-31"}}, "INVALID_PERIOD"},
		{"reversed", OrdersReportRequest{PeriodRequest: PeriodRequest{From: "2026-03-31", To: "2026-03-01"}}, "INVALID_PERIOD"},
		{"over a year", OrdersReportRequest{PeriodRequest: PeriodRequest{From: "2024-01-01", To: "2026-01-01"}}, "INVALID_PERIOD"},
		{"bad customer", OrdersReportRequest{PeriodRequest: PeriodRequest{From: "2026-03-01", To: "2026-03-31"}, CustomerID: "nope"}, "INVALID_CUSTOMER"},
		{"bad product", OrdersReportRequest{PeriodRequest: PeriodRequest{From: "2026-03-01", To: "2026-03-31"}, ProductType: "plate"}, "INVALID_PRODUCT_TYPE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			_, err := f.service.OrdersPDF(ctx, tt.req)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
			f.readModel.AssertNotCalled(t, "Orders", mock.Anything, mock.Anything)
		})
	}
}

func TestReportService_ReplacementsPDF(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	f.readModel.On("Replacements", ctx, mock.AnythingOfType("report.Period")).Return(reportRows()[1:], nil)

	doc, err := f.service.ReplacementsPDF(ctx, PeriodRequest{From: "2026-03-01", To: "2026-03-31"})
	require.NoError(t, err)
	assert.Equal(t, "perdas-2026-03-01_2026-03-31.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
}

func TestReportService_ReadModelFailure(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	f.readModel.On("Replacements", ctx, mock.Anything).Return([]report.OrderRow(nil), errors.New("pool closed"))

	_, err := f.service.ReplacementsPDF(ctx, PeriodRequest{From: "2026-03-01", To: "2026-03-31"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool closed")
}
