package billing

import (
	"time"

	"github.com/flexo/backend/internal/application/listing"
	"github.com/flexo/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest bills finished orders of one customer
type CreateInvoiceRequest struct {
	CustomerID      uuid.UUID   `json:"customerId" binding:"required"`
	ServiceOrderIDs []uuid.UUID `json:"serviceOrderIds" binding:"required,min=1,max=500"`
	DueDate         string      `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Notes           string      `json:"notes" binding:"max=2000"`
	CreatedBy       *uuid.UUID  `json:"-"`
}

// UpdateInvoiceRequest edits an open invoice
type UpdateInvoiceRequest struct {
	DueDate string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Notes   string `json:"notes" binding:"max=2000"`
}

// InvoiceListFilter represents filter options for the invoice list
type InvoiceListFilter struct {
	listing.Query
	CustomerID string `form:"customerId" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=open issued paid cancelled"`
}

// InvoiceItemResponse is one billed order
type InvoiceItemResponse struct {
	ServiceOrderID uuid.UUID       `json:"serviceOrderId"`
	OrderNumber    int64           `json:"orderNumber"`
	Description    string          `json:"description"`
	ProductType    string          `json:"productType"`
	Measure        decimal.Decimal `json:"measure"`
	Unit           string          `json:"unit"`
	Amount         decimal.Decimal `json:"amount"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID          uuid.UUID             `json:"id"`
	Number      int64                 `json:"number"`
	CustomerID  uuid.UUID             `json:"customerId"`
	Items       []InvoiceItemResponse `json:"items"`
	Total       decimal.Decimal       `json:"total"`
	Status      string                `json:"status"`
	IssueDate   *time.Time            `json:"issueDate"`
	DueDate     *time.Time            `json:"dueDate"`
	PaidAt      *time.Time            `json:"paidAt"`
	CancelledAt *time.Time            `json:"cancelledAt"`
	Notes       string                `json:"notes"`
	CreatedBy   *uuid.UUID            `json:"createdBy,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	Version     int                   `json:"version"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(i *billing.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(i.Items))
	for k, it := range i.Items {
		items[k] = InvoiceItemResponse{
			ServiceOrderID: it.ServiceOrderID,
			OrderNumber:    it.OrderNumber,
			Description:    it.Description,
			ProductType:    string(it.ProductType),
			Measure:        it.Measure,
			Unit:           it.Unit,
			Amount:         it.Amount,
		}
	}
	return InvoiceResponse{
		ID:          i.ID,
		Number:      i.Number,
		CustomerID:  i.CustomerID,
		Items:       items,
		Total:       i.Total,
		Status:      string(i.Status),
		IssueDate:   i.IssueDate,
		DueDate:     i.DueDate,
		PaidAt:      i.PaidAt,
		CancelledAt: i.CancelledAt,
		Notes:       i.Notes,
		CreatedBy:   i.CreatedBy,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
		Version:     i.Version,
	}
}

// ToInvoiceResponses converts a slice of invoices
func ToInvoiceResponses(invoices []billing.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
