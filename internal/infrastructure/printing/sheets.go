package printing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Company is the letterhead printed on every sheet
type Company struct {
	Name     string
	Document string
	Address  string
}

// ClicheLine is one plate of a cliché order
type ClicheLine struct {
	Color    string
	Width    decimal.Decimal
	Height   decimal.Decimal
	Quantity int
	Area     decimal.Decimal
}

// DieCutLine describes the knife of a die-cut order
type DieCutLine struct {
	Origin       string
	WidthMM      decimal.Decimal
	HeightMM     decimal.Decimal
	LinearMeters decimal.Decimal
	Quantity     int
}

// ReplacementLine marks the sheet of a replacement order
type ReplacementLine struct {
	OriginalNumber int64
	Reason         string
	Responsible    string
}

// ServiceOrderSheet is the production sheet handed to the prepress team
type ServiceOrderSheet struct {
	Company          Company
	Number           int64
	CreatedAt        time.Time
	DueDate          *time.Time
	Status           string
	ProductType      string
	CustomerName     string
	CustomerDocument string
	CustomerPhone    string
	CustomerAddress  string
	PrinterName      string
	ProfileName      string
	TransportName    string
	Description      string
	Notes            string
	Cliches          []ClicheLine
	ThicknessMM      decimal.Decimal
	DieCut           *DieCutLine
	Measure          decimal.Decimal
	MeasureUnit      string
	Price            decimal.Decimal
	Replacement      *ReplacementLine
	GeneratedAt      time.Time
}

// InvoiceSheetItem is one billed order on the invoice sheet
type InvoiceSheetItem struct {
	OrderNumber int64
	Description string
	ProductType string
	Measure     decimal.Decimal
	Unit        string
	Amount      decimal.Decimal
}

// InvoiceSheet is the printable faturamento
type InvoiceSheet struct {
	Company          Company
	Number           int64
	Status           string
	CreatedAt        time.Time
	IssueDate        *time.Time
	DueDate          *time.Time
	PaidAt           *time.Time
	CustomerName     string
	CustomerDocument string
	CustomerAddress  string
	Items            []InvoiceSheetItem
	Total            decimal.Decimal
	Notes            string
	GeneratedAt      time.Time
}

const pageFooter = `<div style="font-size:8px;width:100%;text-align:right;padding:0 10mm;">` +
	`Página <span class="pageNumber"></span> de <span class="totalPages"></span></div>`

// SheetRenderer turns sheets into HTML with the template engine and then
// into PDF with a PDFRenderer
type SheetRenderer struct {
	engine *TemplateEngine
	pdf    PDFRenderer
}

// NewSheetRenderer creates a new SheetRenderer
func NewSheetRenderer(engine *TemplateEngine, pdf PDFRenderer) *SheetRenderer {
	return &SheetRenderer{engine: engine, pdf: pdf}
}

// ServiceOrderHTML renders the service order sheet as HTML
func (r *SheetRenderer) ServiceOrderHTML(sheet ServiceOrderSheet) (string, error) {
	return r.engine.Render(TemplateServiceOrder, sheet)
}

// InvoiceHTML renders the invoice sheet as HTML
func (r *SheetRenderer) InvoiceHTML(sheet InvoiceSheet) (string, error) {
	return r.engine.Render(TemplateInvoice, sheet)
}

// ServiceOrderPDF renders the service order sheet as an A4 portrait PDF
func (r *SheetRenderer) ServiceOrderPDF(ctx context.Context, sheet ServiceOrderSheet) ([]byte, error) {
	html, err := r.ServiceOrderHTML(sheet)
	if err != nil {
		return nil, err
	}
	return r.toPDF(ctx, html, fmt.Sprintf("OS %s", FormatOrderNumber(sheet.Number)))
}

// InvoicePDF renders the invoice sheet as an A4 portrait PDF
func (r *SheetRenderer) InvoicePDF(ctx context.Context, sheet InvoiceSheet) ([]byte, error) {
	html, err := r.InvoiceHTML(sheet)
	if err != nil {
		return nil, err
	}
	return r.toPDF(ctx, html, fmt.Sprintf("Fatura %d", sheet.Number))
}

func (r *SheetRenderer) toPDF(ctx context.Context, html, title string) ([]byte, error) {
	result, err := r.pdf.Render(ctx, &RenderRequest{
		HTML:       html,
		Title:      title,
		Margins:    DefaultMargins(),
		FooterHTML: pageFooter,
	})
	if err != nil {
		return nil, err
	}
	return result.PDFData, nil
}
