package report

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/flexo/backend/internal/infrastructure/reportgen"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Document kinds, used in cache keys
const (
	KindServiceOrder = "serviceorder"
	KindInvoice      = "invoice"
)

// DefaultCacheTTL applies when no TTL is configured
const DefaultCacheTTL = 24 * time.Hour

// ErrStorageDisabled is returned by ArchiveInvoice when no object storage
// is configured
var ErrStorageDisabled = shared.NewDomainError("STORAGE_DISABLED", "Document archive storage is not configured")

// SheetRenderer renders the chromedp sheets
type SheetRenderer interface {
	ServiceOrderPDF(ctx context.Context, sheet printing.ServiceOrderSheet) ([]byte, error)
	InvoicePDF(ctx context.Context, sheet printing.InvoiceSheet) ([]byte, error)
}

// ObjectStorage archives documents. Put returns the full object key that
// Exists and SignedURL take.
type ObjectStorage interface {
	Key(key string) string
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Exists(ctx context.Context, objectKey string) (bool, error)
	SignedURL(ctx context.Context, objectKey string, ttl time.Duration) (string, time.Time, error)
}

// OrderFinder loads service orders
type OrderFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*production.ServiceOrder, error)
}

// InvoiceFinder loads invoices
type InvoiceFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error)
}

// CustomerFinder loads customers
type CustomerFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error)
}

// TransportFinder loads carriers
type TransportFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*partner.Transport, error)
}

// PrinterFinder loads printers
type PrinterFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*prepress.Printer, error)
}

// ProfileFinder loads profiles
type ProfileFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*prepress.Profile, error)
}

// Dependencies groups what ReportService reads from. Cache and Storage are
// optional.
type Dependencies struct {
	Orders     OrderFinder
	Invoices   InvoiceFinder
	Customers  CustomerFinder
	Transports TransportFinder
	Printers   PrinterFinder
	Profiles   ProfileFinder
	ReadModel  report.ReadModel
	Sheets     SheetRenderer
	Cache      cache.DocumentCache
	Storage    ObjectStorage
}

// ReportService produces every printable document: the chromedp sheets of
// single orders and invoices, and the maroto/excelize period reports
type ReportService struct {
	Dependencies
	company  printing.Company
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(deps Dependencies, company printing.Company, cacheTTL time.Duration, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &ReportService{
		Dependencies: deps,
		company:      company,
		cacheTTL:     cacheTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// =============================================================================
// Sheets
// =============================================================================

// ServiceOrderPDF renders the production sheet of an order. The PDF is
// cached under the order's id and version.
func (s *ReportService) ServiceOrderPDF(ctx context.Context, id uuid.UUID) (*Document, error) {
	order, err := s.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		Filename:    fmt.Sprintf("os-%s.pdf", printing.FormatOrderNumber(order.Number)),
		ContentType: ContentTypePDF,
	}
	key := cache.DocumentKey(KindServiceOrder, order.ID, order.Version)
	if s.fromCache(ctx, key, doc) {
		return doc, nil
	}

	sheet, err := s.serviceOrderSheet(ctx, order)
	if err != nil {
		return nil, err
	}
	data, err := s.Sheets.ServiceOrderPDF(ctx, sheet)
	if err != nil {
		return nil, err
	}
	doc.Data = data
	s.toCache(ctx, key, data)
	return doc, nil
}

// InvoicePDF renders the invoice sheet, cached like ServiceOrderPDF
func (s *ReportService) InvoicePDF(ctx context.Context, id uuid.UUID) (*Document, error) {
	inv, err := s.Invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.invoiceDocument(ctx, inv)
}

// ArchiveInvoice stores the invoice PDF in object storage and returns a
// signed download URL. Each invoice version gets its own key, so a version
// already in the bucket is not rendered again.
func (s *ReportService) ArchiveInvoice(ctx context.Context, id uuid.UUID) (*ArchiveResponse, error) {
	if s.Storage == nil {
		return nil, ErrStorageDisabled
	}
	inv, err := s.Invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("invoices/%d/fatura-%d-v%d.pdf", inv.CreatedAt.Year(), inv.Number, inv.Version)
	objectKey := s.Storage.Key(key)
	archived, err := s.Storage.Exists(ctx, objectKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check archive for invoice %d: %w", inv.Number, err)
	}

	size := 0
	if !archived {
		doc, err := s.invoiceDocument(ctx, inv)
		if err != nil {
			return nil, err
		}
		if objectKey, err = s.Storage.Put(ctx, key, ContentTypePDF, doc.Data); err != nil {
			return nil, fmt.Errorf("failed to archive invoice %d: %w", inv.Number, err)
		}
		size = len(doc.Data)
		s.logger.Info("Invoice archived",
			zap.Int64("invoice_number", inv.Number),
			zap.String("object_key", objectKey),
			zap.Int("size", size),
		)
	}

	url, expiresAt, err := s.Storage.SignedURL(ctx, objectKey, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to sign archive URL: %w", err)
	}
	return &ArchiveResponse{
		ObjectKey:   objectKey,
		DownloadURL: url,
		ExpiresAt:   expiresAt,
		Size:        size,
		Reused:      archived,
	}, nil
}

func (s *ReportService) invoiceDocument(ctx context.Context, inv *billing.Invoice) (*Document, error) {
	doc := &Document{
		Filename:    fmt.Sprintf("fatura-%d.pdf", inv.Number),
		ContentType: ContentTypePDF,
	}
	key := cache.DocumentKey(KindInvoice, inv.ID, inv.Version)
	if s.fromCache(ctx, key, doc) {
		return doc, nil
	}

	customer, err := s.Customers.FindByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}
	sheet := printing.InvoiceSheet{
		Company:          s.company,
		Number:           inv.Number,
		Status:           inv.Status.Label(),
		CreatedAt:        inv.CreatedAt,
		IssueDate:        inv.IssueDate,
		DueDate:          inv.DueDate,
		PaidAt:           inv.PaidAt,
		CustomerName:     customer.Name,
		CustomerDocument: printing.FormatDocument(customer.Document),
		CustomerAddress:  customer.Address.FullAddress(),
		Items:            make([]printing.InvoiceSheetItem, len(inv.Items)),
		Total:            inv.Total,
		Notes:            inv.Notes,
		GeneratedAt:      s.now(),
	}
	for i, item := range inv.Items {
		sheet.Items[i] = printing.InvoiceSheetItem{
			OrderNumber: item.OrderNumber,
			Description: item.Description,
			ProductType: item.ProductType.Label(),
			Measure:     item.Measure,
			Unit:        item.Unit,
			Amount:      item.Amount,
		}
	}

	data, err := s.Sheets.InvoicePDF(ctx, sheet)
	if err != nil {
		return nil, err
	}
	doc.Data = data
	s.toCache(ctx, key, data)
	return doc, nil
}

func (s *ReportService) serviceOrderSheet(ctx context.Context, o *production.ServiceOrder) (printing.ServiceOrderSheet, error) {
	customer, err := s.Customers.FindByID(ctx, o.CustomerID)
	if err != nil {
		return printing.ServiceOrderSheet{}, err
	}
	line := o.LineTotal()
	sheet := printing.ServiceOrderSheet{
		Company:          s.company,
		Number:           o.Number,
		CreatedAt:        o.CreatedAt,
		DueDate:          o.DueDate,
		Status:           o.Status.Label(),
		ProductType:      o.ProductType.Label(),
		CustomerName:     customer.Name,
		CustomerDocument: printing.FormatDocument(customer.Document),
		CustomerPhone:    customer.Phone,
		CustomerAddress:  customer.Address.FullAddress(),
		Description:      o.Description,
		Notes:            o.Notes,
		Measure:          line.Measure,
		MeasureUnit:      line.Unit,
		Price:            o.Price,
		GeneratedAt:      s.now(),
	}

	// references are optional and may have been deleted since
	if o.PrinterID != nil {
		if p, err := s.Printers.FindByID(ctx, *o.PrinterID); err == nil {
			sheet.PrinterName = p.Name
		} else if !errors.Is(err, shared.ErrNotFound) {
			return sheet, err
		}
	}
	if o.ProfileID != nil {
		if p, err := s.Profiles.FindByID(ctx, *o.ProfileID); err == nil {
			sheet.ProfileName = p.Name
		} else if !errors.Is(err, shared.ErrNotFound) {
			return sheet, err
		}
	}
	if o.TransportID != nil {
		if t, err := s.Transports.FindByID(ctx, *o.TransportID); err == nil {
			sheet.TransportName = t.Name
		} else if !errors.Is(err, shared.ErrNotFound) {
			return sheet, err
		}
	}

	if c := o.Corrugated; c != nil {
		sheet.ThicknessMM = c.ThicknessMM
		for _, m := range c.Measures {
			area, _ := pricing.TotalMeasuresCliche([]pricing.ClicheMeasure{m})
			sheet.Cliches = append(sheet.Cliches, printing.ClicheLine{
				Color:    m.Color,
				Width:    m.Width,
				Height:   m.Height,
				Quantity: m.Quantity,
				Area:     area,
			})
		}
	}
	if d := o.DieCut; d != nil {
		sheet.DieCut = &printing.DieCutLine{
			Origin:       d.Origin.Label(),
			WidthMM:      d.WidthMM,
			HeightMM:     d.HeightMM,
			LinearMeters: d.LinearMeters,
			Quantity:     d.Quantity,
		}
	}
	if r := o.Replacement; r != nil {
		sheet.Replacement = &printing.ReplacementLine{
			OriginalNumber: r.OriginalNumber,
			Reason:         r.Reason,
			Responsible:    r.Responsible.Label(),
		}
	}
	return sheet, nil
}

// =============================================================================
// Period reports
// =============================================================================

// OrdersPDF renders the period order report with footer totals
func (s *ReportService) OrdersPDF(ctx context.Context, req OrdersReportRequest) (*Document, error) {
	rep, err := s.periodReport(ctx, req)
	if err != nil {
		return nil, err
	}
	data, err := reportgen.PeriodReportPDF(s.company, rep)
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename:    "ordens-" + periodSuffix(rep.Filter.Period) + ".pdf",
		ContentType: ContentTypePDF,
		Data:        data,
	}, nil
}

// OrdersXLSX exports the same rows as OrdersPDF as a workbook
func (s *ReportService) OrdersXLSX(ctx context.Context, req OrdersReportRequest) (*Document, error) {
	rep, err := s.periodReport(ctx, req)
	if err != nil {
		return nil, err
	}
	data, err := reportgen.OrdersXLSX(rep)
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename:    "ordens-" + periodSuffix(rep.Filter.Period) + ".xlsx",
		ContentType: ContentTypeXLSX,
		Data:        data,
	}, nil
}

// ReplacementsPDF renders the loss report of a period
func (s *ReportService) ReplacementsPDF(ctx context.Context, req PeriodRequest) (*Document, error) {
	period, err := parsePeriod(req)
	if err != nil {
		return nil, err
	}
	rows, err := s.ReadModel.Replacements(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load replacements: %w", err)
	}
	data, err := reportgen.LossReportPDF(s.company, report.BuildLossReport(period, rows, s.now()))
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename:    "perdas-" + periodSuffix(period) + ".pdf",
		ContentType: ContentTypePDF,
		Data:        data,
	}, nil
}

func (s *ReportService) periodReport(ctx context.Context, req OrdersReportRequest) (report.PeriodReport, error) {
	period, err := parsePeriod(req.PeriodRequest)
	if err != nil {
		return report.PeriodReport{}, err
	}
	filter := report.OrderFilter{Period: period}
	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return report.PeriodReport{}, shared.NewDomainError("INVALID_CUSTOMER", "Invalid customer id")
		}
		filter.CustomerID = &id
	}
	if req.ProductType != "" {
		filter.ProductType = pricing.ProductType(req.ProductType)
		if !filter.ProductType.IsValid() {
			return report.PeriodReport{}, shared.NewDomainError("INVALID_PRODUCT_TYPE", "Unknown product type")
		}
	}

	rows, err := s.ReadModel.Orders(ctx, filter)
	if err != nil {
		return report.PeriodReport{}, fmt.Errorf("failed to load report rows: %w", err)
	}
	return report.BuildPeriodReport(filter, rows, s.now()), nil
}

func parsePeriod(req PeriodRequest) (report.Period, error) {
	from, err := time.ParseInLocation(time.DateOnly, req.From, time.Local)
	if err != nil {
		return report.Period{}, shared.NewDomainError("INVALID_PERIOD", "Invalid start date, expected YYYY-MM-DD")
	}
	to, err := time.ParseInLocation(time.DateOnly, req.To, time.Local)
	if err != nil {
		return report.Period{}, shared.NewDomainError("INVALID_PERIOD", "Invalid end date, expected YYYY-MM-DD")
	}
	return report.NewPeriod(from, to)
}

func periodSuffix(p report.Period) string {
	return p.From.Format(time.DateOnly) + "_" + p.To.Format(time.DateOnly)
}

// =============================================================================
// Cache
// =============================================================================

// fromCache fills doc from the cache. Cache failures are logged and
// treated as misses.
func (s *ReportService) fromCache(ctx context.Context, key string, doc *Document) bool {
	if s.Cache == nil {
		return false
	}
	data, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Document cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	doc.Data = data
	doc.Cached = true
	return true
}

func (s *ReportService) toCache(ctx context.Context, key string, data []byte) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn("Document cache write failed", zap.String("key", key), zap.Error(err))
	}
}
