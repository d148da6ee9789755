package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	reportapp "github.com/flexo/backend/internal/application/report"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) document(args mock.Arguments) (*reportapp.Document, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reportapp.Document), args.Error(1)
}

func (m *mockReportService) ServiceOrderPDF(ctx context.Context, id uuid.UUID) (*reportapp.Document, error) {
	return m.document(m.Called(ctx, id))
}

func (m *mockReportService) InvoicePDF(ctx context.Context, id uuid.UUID) (*reportapp.Document, error) {
	return m.document(m.Called(ctx, id))
}

func (m *mockReportService) ArchiveInvoice(ctx context.Context, id uuid.UUID) (*reportapp.ArchiveResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reportapp.ArchiveResponse), args.Error(1)
}

func (m *mockReportService) OrdersPDF(ctx context.Context, req reportapp.OrdersReportRequest) (*reportapp.Document, error) {
	return m.document(m.Called(ctx, req))
}

func (m *mockReportService) OrdersXLSX(ctx context.Context, req reportapp.OrdersReportRequest) (*reportapp.Document, error) {
	return m.document(m.Called(ctx, req))
}

func (m *mockReportService) ReplacementsPDF(ctx context.Context, req reportapp.PeriodRequest) (*reportapp.Document, error) {
	return m.document(m.Called(ctx, req))
}

type documentCount struct {
	kind   string
	cached bool
}

type recordingDocumentObserver struct {
	seen []documentCount
}

func (o *recordingDocumentObserver) ObserveDocument(kind string, cached bool) {
	o.seen = append(o.seen, documentCount{kind: kind, cached: cached})
}

func TestReportHandler_ServiceOrderSheet(t *testing.T) {
	id := uuid.New()

	t.Run("streams the pdf inline", func(t *testing.T) {
		svc := new(mockReportService)
		svc.On("ServiceOrderPDF", mock.Anything, id).Return(&reportapp.Document{
			Filename:    "os-1042.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.7"),
			Cached:      true,
		}, nil)
		obs := &recordingDocumentObserver{}

		c, w := newContext(http.MethodGet, "/api/v1/report/serviceorder/"+id.String(), nil)
		withParam(c, "id", id.String())
		NewReportHandler(svc, obs).ServiceOrderSheet(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `inline; filename=os-1042.pdf`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "private, no-store", w.Header().Get("Cache-Control"))
		assert.Equal(t, "%PDF-1.7", w.Body.String())
		assert.Equal(t, []documentCount{{kind: DocumentServiceOrder, cached: true}}, obs.seen)
	})

	t.Run("renderer disabled", func(t *testing.T) {
		svc := new(mockReportService)
		svc.On("ServiceOrderPDF", mock.Anything, id).
			Return(nil, shared.NewDomainError("RENDERER_DISABLED", "PDF rendering is not configured"))
		obs := &recordingDocumentObserver{}

		c, w := newContext(http.MethodGet, "/api/v1/report/serviceorder/"+id.String(), nil)
		withParam(c, "id", id.String())
		NewReportHandler(svc, obs).ServiceOrderSheet(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "ERR_RENDERER_DISABLED", decode(t, w).Error.Code)
		assert.Empty(t, obs.seen)
	})
}

func TestReportHandler_OrdersXLSX(t *testing.T) {
	svc := new(mockReportService)
	svc.On("OrdersXLSX", mock.Anything, mock.MatchedBy(func(req reportapp.OrdersReportRequest) bool {
		return req.From == "2026-09-01" && req.To == "2026-09-30"
	})).Return(&reportapp.Document{
		Filename:    "ordens 2026-09.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("PK"),
	}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/report/orders.xlsx?from=2026-09-01&to=2026-09-30", nil)
	NewReportHandler(svc, nil).OrdersXLSX(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `inline; filename="ordens 2026-09.xlsx"`, w.Header().Get("Content-Disposition"))
}

func TestReportHandler_PeriodIsRequired(t *testing.T) {
	c, w := newContext(http.MethodGet, "/api/v1/report/replacements?from=2026-09-01", nil)
	NewReportHandler(new(mockReportService), nil).Replacements(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "to", decode(t, w).Error.Details[0].Field)
}

func TestReportHandler_ArchiveInvoice(t *testing.T) {
	id := uuid.New()
	svc := new(mockReportService)
	svc.On("ArchiveInvoice", mock.Anything, id).Return(&reportapp.ArchiveResponse{
		ObjectKey:   "invoices/2026/10/fatura-12.pdf",
		DownloadURL: "https://s3.example.test/invoices/2026/10/fatura-12.pdf?X-Amz-Signature=abc",
		ExpiresAt:   time.Now().Add(time.Hour),
		Size:        2048,
	}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/report/invoice/"+id.String()+"/archive", nil)
	withParam(c, "id", id.String())
	NewReportHandler(svc, nil).ArchiveInvoice(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "invoices/2026/10/fatura-12.pdf", decode(t, w).Data.(map[string]any)["objectKey"])
}
