package tooling

import (
	"time"

	"github.com/flexo/backend/internal/application/listing"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/tooling"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DieCutBlockRequest is the body of create and update. Code and CustomerID
// are ignored on update.
type DieCutBlockRequest struct {
	Code         string          `json:"code" binding:"required,min=1,max=40"`
	CustomerID   uuid.UUID       `json:"customerId" binding:"required"`
	Description  string          `json:"description" binding:"max=500"`
	Origin       string          `json:"origin" binding:"required,oneof=national imported"`
	WidthMM      decimal.Decimal `json:"widthMm" binding:"required"`
	HeightMM     decimal.Decimal `json:"heightMm" binding:"required"`
	LinearMeters decimal.Decimal `json:"linearMeters"`
	Location     string          `json:"location" binding:"max=100"`
	Notes        string          `json:"notes" binding:"max=2000"`
	CreatedBy    *uuid.UUID      `json:"-"`
}

func (r DieCutBlockRequest) spec() tooling.DieCutBlockSpec {
	return tooling.DieCutBlockSpec{
		Description:  r.Description,
		Origin:       pricing.DieCutOrigin(r.Origin),
		WidthMM:      r.WidthMM,
		HeightMM:     r.HeightMM,
		LinearMeters: r.LinearMeters,
		Location:     r.Location,
		Notes:        r.Notes,
	}
}

// DieCutBlockResponse represents a die-cut block in API responses
type DieCutBlockResponse struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"`
	CustomerID   uuid.UUID       `json:"customerId"`
	Description  string          `json:"description"`
	Origin       string          `json:"origin"`
	OriginLabel  string          `json:"originLabel"`
	WidthMM      decimal.Decimal `json:"widthMm"`
	HeightMM     decimal.Decimal `json:"heightMm"`
	LinearMeters decimal.Decimal `json:"linearMeters"`
	AreaM2       decimal.Decimal `json:"areaM2"`
	Location     string          `json:"location"`
	Notes        string          `json:"notes"`
	CreatedBy    *uuid.UUID      `json:"createdBy,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	Version      int             `json:"version"`
}

// DieCutBlockListFilter represents filter options for the block list
type DieCutBlockListFilter struct {
	listing.Query
	CustomerID string `form:"customerId" binding:"omitempty,uuid"`
	Origin     string `form:"origin" binding:"omitempty,oneof=national imported"`
}

// DieCutBlockQuoteResponse is the price of producing copies of a stored block
type DieCutBlockQuoteResponse struct {
	BlockID      uuid.UUID       `json:"blockId"`
	Quantity     int             `json:"quantity"`
	AreaM2       decimal.Decimal `json:"areaM2"`
	LinearMeters decimal.Decimal `json:"linearMeters"`
	Amount       decimal.Decimal `json:"amount"`
}

// ToDieCutBlockResponse converts a domain block to a response DTO
func ToDieCutBlockResponse(b *tooling.DieCutBlock) DieCutBlockResponse {
	return DieCutBlockResponse{
		ID:           b.ID,
		Code:         b.Code,
		CustomerID:   b.CustomerID,
		Description:  b.Description,
		Origin:       string(b.Origin),
		OriginLabel:  b.Origin.Label(),
		WidthMM:      b.WidthMM,
		HeightMM:     b.HeightMM,
		LinearMeters: b.LinearMeters,
		AreaM2:       b.AreaM2(),
		Location:     b.Location,
		Notes:        b.Notes,
		CreatedBy:    b.CreatedBy,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
		Version:      b.Version,
	}
}

// ToDieCutBlockResponses converts a slice of blocks
func ToDieCutBlockResponses(blocks []tooling.DieCutBlock) []DieCutBlockResponse {
	out := make([]DieCutBlockResponse, len(blocks))
	for i := range blocks {
		out[i] = ToDieCutBlockResponse(&blocks[i])
	}
	return out
}
