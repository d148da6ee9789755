package pricing

import (
	productionapp "github.com/flexo/backend/internal/application/production"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// QuoteMeasureRequest is one cliché plate, in centimetres
type QuoteMeasureRequest struct {
	Width    decimal.Decimal `json:"width" binding:"required"`
	Height   decimal.Decimal `json:"height" binding:"required"`
	Quantity int             `json:"quantity" binding:"min=0"`
	Color    string          `json:"color" binding:"max=50"`
}

// QuoteItemRequest is one line to price. Cliché lines use measures and an
// optional pricePerCm2; die-cut lines use the block fields.
type QuoteItemRequest struct {
	ProductType  string                `json:"productType" binding:"required,oneof=cliche_corrugated die_cut_block"`
	Measures     []QuoteMeasureRequest `json:"measures" binding:"omitempty,max=200,dive"`
	PricePerCm2  *decimal.Decimal      `json:"pricePerCm2"`
	Origin       string                `json:"origin" binding:"omitempty,oneof=national imported"`
	WidthMM      decimal.Decimal       `json:"widthMm"`
	HeightMM     decimal.Decimal       `json:"heightMm"`
	LinearMeters decimal.Decimal       `json:"linearMeters"`
	Quantity     int                   `json:"quantity" binding:"min=0"`
}

// QuoteRequest prices several lines at once
type QuoteRequest struct {
	Items []QuoteItemRequest `json:"items" binding:"required,min=1,max=100,dive"`
}

// QuoteLineResponse is one priced line
type QuoteLineResponse struct {
	ProductType string          `json:"productType"`
	Measure     decimal.Decimal `json:"measure"`
	Unit        string          `json:"unit"`
	Amount      decimal.Decimal `json:"amount"`
	// AreaM2 is the plate or block area in square metres
	AreaM2 decimal.Decimal `json:"areaM2"`
}

// QuoteResponse holds every priced line plus the aggregated footer
type QuoteResponse struct {
	Lines   []QuoteLineResponse           `json:"lines"`
	Summary productionapp.SummaryResponse `json:"summary"`
}

// DieCutRatesResponse are the rates of one origin
type DieCutRatesResponse struct {
	Origin         string          `json:"origin"`
	Label          string          `json:"label"`
	PerLinearMeter decimal.Decimal `json:"perLinearMeter"`
	PerSquareMeter decimal.Decimal `json:"perSquareMeter"`
	Minimum        decimal.Decimal `json:"minimum"`
}

// PriceTableResponse is the current price table
type PriceTableResponse struct {
	ClichePerCm2 decimal.Decimal       `json:"clichePerCm2"`
	DieCut       []DieCutRatesResponse `json:"dieCut"`
}

// ToPriceTableResponse lists the die-cut rows in a fixed origin order
func ToPriceTableResponse(t pricing.PriceTable) PriceTableResponse {
	resp := PriceTableResponse{ClichePerCm2: t.ClichePerCm2}
	for _, origin := range []pricing.DieCutOrigin{pricing.OriginNational, pricing.OriginImported} {
		r, ok := t.DieCut[origin]
		if !ok {
			continue
		}
		resp.DieCut = append(resp.DieCut, DieCutRatesResponse{
			Origin:         string(origin),
			Label:          origin.Label(),
			PerLinearMeter: r.PerLinearMeter,
			PerSquareMeter: r.PerSquareMeter,
			Minimum:        r.Minimum,
		})
	}
	return resp
}
