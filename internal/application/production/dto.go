package production

import (
	"time"

	"github.com/flexo/backend/internal/application/listing"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Request DTOs
// =============================================================================

// ClicheMeasureRequest is one plate: width and height in centimetres
type ClicheMeasureRequest struct {
	Width    decimal.Decimal `json:"width" binding:"required"`
	Height   decimal.Decimal `json:"height" binding:"required"`
	Quantity int             `json:"quantity" binding:"min=0"`
	Color    string          `json:"color" binding:"max=40"`
}

// CorrugatedDetailsRequest carries the plate data of a cliché order
type CorrugatedDetailsRequest struct {
	Measures    []ClicheMeasureRequest `json:"measures" binding:"required,min=1,dive"`
	ThicknessMM decimal.Decimal        `json:"thicknessMm"`
	PricePerCm2 *decimal.Decimal       `json:"pricePerCm2"`
}

func (r *CorrugatedDetailsRequest) toDomain() *production.CorrugatedPrinterDetails {
	if r == nil {
		return nil
	}
	measures := make([]pricing.ClicheMeasure, len(r.Measures))
	for i, m := range r.Measures {
		measures[i] = pricing.ClicheMeasure{Width: m.Width, Height: m.Height, Quantity: m.Quantity, Color: m.Color}
	}
	return &production.CorrugatedPrinterDetails{
		Measures:    measures,
		ThicknessMM: r.ThicknessMM,
		PricePerCm2: r.PricePerCm2,
	}
}

// DieCutDetailsRequest carries the tool data of a die-cut order. When
// DieCutBlockID is set the dimensions are taken from the stored block.
type DieCutDetailsRequest struct {
	DieCutBlockID *uuid.UUID      `json:"dieCutBlockId"`
	Origin        string          `json:"origin" binding:"omitempty,oneof=national imported"`
	WidthMM       decimal.Decimal `json:"widthMm"`
	HeightMM      decimal.Decimal `json:"heightMm"`
	LinearMeters  decimal.Decimal `json:"linearMeters"`
	Quantity      int             `json:"quantity" binding:"min=0"`
}

func (r *DieCutDetailsRequest) toDomain() *production.DieCutBlockDetails {
	if r == nil {
		return nil
	}
	return &production.DieCutBlockDetails{
		DieCutBlockID: r.DieCutBlockID,
		Origin:        pricing.DieCutOrigin(r.Origin),
		WidthMM:       r.WidthMM,
		HeightMM:      r.HeightMM,
		LinearMeters:  r.LinearMeters,
		Quantity:      r.Quantity,
	}
}

// ServiceOrderRequest is the body of create and update. CustomerID is
// ignored on update.
type ServiceOrderRequest struct {
	CustomerID               uuid.UUID                 `json:"customerId" binding:"required"`
	PrinterID                *uuid.UUID                `json:"printerId"`
	ProfileID                *uuid.UUID                `json:"profileId"`
	TransportID              *uuid.UUID                `json:"transportId"`
	ProductType              string                    `json:"productType" binding:"required,oneof=cliche_corrugated die_cut_block"`
	Description              string                    `json:"description" binding:"max=500"`
	DueDate                  string                    `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Notes                    string                    `json:"notes" binding:"max=2000"`
	CorrugatedPrinterDetails *CorrugatedDetailsRequest `json:"corrugatedPrinterDetails"`
	DieCutBlockDetails       *DieCutDetailsRequest     `json:"dieCutBlockDetails"`
	CreatedBy                *uuid.UUID                `json:"-"`
}

func (r ServiceOrderRequest) spec() (production.Spec, error) {
	spec := production.Spec{
		ProductType: pricing.ProductType(r.ProductType),
		Description: r.Description,
		Notes:       r.Notes,
		Corrugated:  r.CorrugatedPrinterDetails.toDomain(),
		DieCut:      r.DieCutBlockDetails.toDomain(),
	}
	if r.DueDate != "" {
		due, err := time.ParseInLocation(time.DateOnly, r.DueDate, time.Local)
		if err != nil {
			return spec, shared.NewDomainError("INVALID_DUE_DATE", "dueDate must be YYYY-MM-DD")
		}
		spec.DueDate = &due
	}
	return spec, nil
}

// StatusRequest moves an order through its lifecycle
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_production finished delivered cancelled"`
	Reason string `json:"reason" binding:"max=500"`
}

// ReplacementRequest creates a reposição of a produced order
type ReplacementRequest struct {
	Reason      string     `json:"reason" binding:"required,min=1,max=500"`
	Responsible string     `json:"responsible" binding:"required,oneof=company customer supplier"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// ServiceOrderListFilter represents filter options for the order list
type ServiceOrderListFilter struct {
	listing.Query
	listing.Period
	CustomerID  string `form:"customerId" binding:"omitempty,uuid"`
	Status      string `form:"status" binding:"omitempty,oneof=pending in_production finished delivered cancelled"`
	ProductType string `form:"productType" binding:"omitempty,oneof=cliche_corrugated die_cut_block"`
	Replacement *bool  `form:"replacement"`
	Invoiced    *bool  `form:"invoiced"`
}

// ReplacementListFilter represents filter options for the replacement list
type ReplacementListFilter struct {
	listing.Query
	listing.Period
	CustomerID  string `form:"customerId" binding:"omitempty,uuid"`
	ProductType string `form:"productType" binding:"omitempty,oneof=cliche_corrugated die_cut_block"`
}

// =============================================================================
// Response DTOs
// =============================================================================

// ClicheMeasureResponse is one plate in API responses
type ClicheMeasureResponse struct {
	Width    decimal.Decimal `json:"width"`
	Height   decimal.Decimal `json:"height"`
	Quantity int             `json:"quantity"`
	Color    string          `json:"color"`
}

// CorrugatedDetailsResponse is the plate data in API responses
type CorrugatedDetailsResponse struct {
	Measures    []ClicheMeasureResponse `json:"measures"`
	ThicknessMM decimal.Decimal         `json:"thicknessMm"`
	PricePerCm2 *decimal.Decimal        `json:"pricePerCm2,omitempty"`
	TotalAreaCm decimal.Decimal         `json:"totalAreaCm2"`
}

// DieCutDetailsResponse is the tool data in API responses
type DieCutDetailsResponse struct {
	DieCutBlockID *uuid.UUID      `json:"dieCutBlockId,omitempty"`
	Origin        string          `json:"origin"`
	WidthMM       decimal.Decimal `json:"widthMm"`
	HeightMM      decimal.Decimal `json:"heightMm"`
	LinearMeters  decimal.Decimal `json:"linearMeters"`
	Quantity      int             `json:"quantity"`
}

// ServiceOrderResponse represents a service order in API responses
type ServiceOrderResponse struct {
	ID                       uuid.UUID                  `json:"id"`
	Number                   int64                      `json:"number"`
	CustomerID               uuid.UUID                  `json:"customerId"`
	PrinterID                *uuid.UUID                 `json:"printerId"`
	ProfileID                *uuid.UUID                 `json:"profileId"`
	TransportID              *uuid.UUID                 `json:"transportId"`
	ProductType              string                     `json:"productType"`
	ProductTypeLabel         string                     `json:"productTypeLabel"`
	Description              string                     `json:"description"`
	Status                   string                     `json:"status"`
	StatusLabel              string                     `json:"statusLabel"`
	DueDate                  *time.Time                 `json:"dueDate"`
	Notes                    string                     `json:"notes"`
	CorrugatedPrinterDetails *CorrugatedDetailsResponse `json:"corrugatedPrinterDetails,omitempty"`
	DieCutBlockDetails       *DieCutDetailsResponse     `json:"dieCutBlockDetails,omitempty"`
	Price                    decimal.Decimal            `json:"price"`
	Measure                  decimal.Decimal            `json:"measure"`
	MeasureUnit              string                     `json:"measureUnit"`
	IsReplacement            bool                       `json:"isReplacement"`
	ReplacedOrderID          *uuid.UUID                 `json:"replacedOrderId,omitempty"`
	ReplacedOrderNumber      int64                      `json:"replacedOrderNumber,omitempty"`
	ReplacementReason        string                     `json:"replacementReason,omitempty"`
	Responsible              string                     `json:"responsible,omitempty"`
	InvoiceID                *uuid.UUID                 `json:"invoiceId"`
	StartedAt                *time.Time                 `json:"startedAt,omitempty"`
	FinishedAt               *time.Time                 `json:"finishedAt,omitempty"`
	DeliveredAt              *time.Time                 `json:"deliveredAt,omitempty"`
	CancelledAt              *time.Time                 `json:"cancelledAt,omitempty"`
	CancelReason             string                     `json:"cancelReason,omitempty"`
	CreatedBy                *uuid.UUID                 `json:"createdBy,omitempty"`
	CreatedAt                time.Time                  `json:"createdAt"`
	UpdatedAt                time.Time                  `json:"updatedAt"`
	Version                  int                        `json:"version"`
}

// ProductTotalsResponse is the footer row of one product line
type ProductTotalsResponse struct {
	ProductType string          `json:"productType"`
	Label       string          `json:"label"`
	Unit        string          `json:"unit"`
	Count       int             `json:"count"`
	Measure     decimal.Decimal `json:"measure"`
	Amount      decimal.Decimal `json:"amount"`
}

// SummaryResponse is the footer of order listings and reports
type SummaryResponse struct {
	Products []ProductTotalsResponse `json:"products"`
	Billable decimal.Decimal         `json:"billable"`
	Losses   decimal.Decimal         `json:"losses"`
	Total    decimal.Decimal         `json:"total"`
}

// LossGroupResponse aggregates replacements sharing a reason or a responsible party
type LossGroupResponse struct {
	Key    string          `json:"key"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// LossesResponse is the replacement loss report of a period
type LossesResponse struct {
	From          *time.Time          `json:"from,omitempty"`
	To            *time.Time          `json:"to,omitempty"`
	Count         int                 `json:"count"`
	Total         decimal.Decimal     `json:"total"`
	ByResponsible []LossGroupResponse `json:"byResponsible"`
	ByReason      []LossGroupResponse `json:"byReason"`
	Summary       SummaryResponse     `json:"summary"`
}

// ToServiceOrderResponse converts a domain order to a response DTO
func ToServiceOrderResponse(o *production.ServiceOrder) ServiceOrderResponse {
	resp := ServiceOrderResponse{
		ID:               o.ID,
		Number:           o.Number,
		CustomerID:       o.CustomerID,
		PrinterID:        o.PrinterID,
		ProfileID:        o.ProfileID,
		TransportID:      o.TransportID,
		ProductType:      string(o.ProductType),
		ProductTypeLabel: o.ProductType.Label(),
		Description:      o.Description,
		Status:           string(o.Status),
		StatusLabel:      o.Status.Label(),
		DueDate:          o.DueDate,
		Notes:            o.Notes,
		Price:            o.Price,
		Measure:          o.Measure(),
		MeasureUnit:      o.ProductType.MeasureUnit(),
		IsReplacement:    o.IsReplacement(),
		InvoiceID:        o.InvoiceID,
		StartedAt:        o.StartedAt,
		FinishedAt:       o.FinishedAt,
		DeliveredAt:      o.DeliveredAt,
		CancelledAt:      o.CancelledAt,
		CancelReason:     o.CancelReason,
		CreatedBy:        o.CreatedBy,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		Version:          o.Version,
	}
	if c := o.Corrugated; c != nil {
		measures := make([]ClicheMeasureResponse, len(c.Measures))
		for i, m := range c.Measures {
			measures[i] = ClicheMeasureResponse{Width: m.Width, Height: m.Height, Quantity: m.Quantity, Color: m.Color}
		}
		resp.CorrugatedPrinterDetails = &CorrugatedDetailsResponse{
			Measures:    measures,
			ThicknessMM: c.ThicknessMM,
			PricePerCm2: c.PricePerCm2,
			TotalAreaCm: c.TotalArea(),
		}
	}
	if d := o.DieCut; d != nil {
		resp.DieCutBlockDetails = &DieCutDetailsResponse{
			DieCutBlockID: d.DieCutBlockID,
			Origin:        string(d.Origin),
			WidthMM:       d.WidthMM,
			HeightMM:      d.HeightMM,
			LinearMeters:  d.LinearMeters,
			Quantity:      d.Quantity,
		}
	}
	if r := o.Replacement; r != nil {
		id := r.OriginalOrderID
		resp.ReplacedOrderID = &id
		resp.ReplacedOrderNumber = r.OriginalNumber
		resp.ReplacementReason = r.Reason
		resp.Responsible = string(r.Responsible)
	}
	return resp
}

// ToServiceOrderResponses converts a slice of orders
func ToServiceOrderResponses(orders []production.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, len(orders))
	for i := range orders {
		out[i] = ToServiceOrderResponse(&orders[i])
	}
	return out
}

// ToSummaryResponse flattens a pricing summary in product-type order
func ToSummaryResponse(s pricing.Summary) SummaryResponse {
	resp := SummaryResponse{
		Products: make([]ProductTotalsResponse, 0, len(s.ByProductType)),
		Billable: s.Billable,
		Losses:   s.Losses,
		Total:    s.Total,
	}
	for _, pt := range pricing.AllProductTypes {
		totals, ok := s.ByProductType[pt]
		if !ok {
			continue
		}
		resp.Products = append(resp.Products, ProductTotalsResponse{
			ProductType: string(pt),
			Label:       pt.Label(),
			Unit:        totals.Unit,
			Count:       totals.Count,
			Measure:     totals.Measure,
			Amount:      totals.Amount,
		})
	}
	return resp
}
