package pricing

import (
	"context"
	"errors"
	"fmt"

	productionapp "github.com/flexo/backend/internal/application/production"
	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/shared"
)

// QuoteService prices ad hoc cliché and die-cut lines without creating orders
type QuoteService struct {
	prices pricing.PriceTable
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(prices pricing.PriceTable) *QuoteService {
	return &QuoteService{prices: prices}
}

// PriceTable returns the rates quotes are computed with
func (s *QuoteService) PriceTable(_ context.Context) PriceTableResponse {
	return ToPriceTableResponse(s.prices)
}

// Quote prices every line and aggregates them like an order listing footer
func (s *QuoteService) Quote(_ context.Context, req QuoteRequest) (*QuoteResponse, error) {
	resp := &QuoteResponse{Lines: make([]QuoteLineResponse, 0, len(req.Items))}
	lines := make([]pricing.LineTotal, 0, len(req.Items))

	for i, item := range req.Items {
		line, err := s.quoteItem(item)
		if err != nil {
			var domainErr *shared.DomainError
			if errors.As(err, &domainErr) {
				return nil, shared.NewDomainError(domainErr.Code, fmt.Sprintf("item %d: %s", i+1, domainErr.Message))
			}
			return nil, err
		}
		resp.Lines = append(resp.Lines, line)
		lines = append(lines, pricing.LineTotal{
			ProductType: pricing.ProductType(line.ProductType),
			Measure:     line.Measure,
			Unit:        line.Unit,
			Amount:      line.Amount,
		})
	}
	resp.Summary = productionapp.ToSummaryResponse(pricing.Aggregate(lines))
	return resp, nil
}

func (s *QuoteService) quoteItem(item QuoteItemRequest) (QuoteLineResponse, error) {
	pt := pricing.ProductType(item.ProductType)
	line := QuoteLineResponse{ProductType: item.ProductType, Unit: pt.MeasureUnit()}

	switch pt {
	case pricing.ProductClicheCorrugated:
		measures := make([]pricing.ClicheMeasure, len(item.Measures))
		for i, m := range item.Measures {
			measures[i] = pricing.ClicheMeasure{Width: m.Width, Height: m.Height, Quantity: m.Quantity, Color: m.Color}
		}
		amount, err := s.prices.QuoteCliche(measures, item.PricePerCm2)
		if err != nil {
			return line, err
		}
		area, err := pricing.TotalMeasuresCliche(measures)
		if err != nil {
			return line, err
		}
		line.Measure = area
		line.AreaM2 = pricing.SquareCentimetersToMeters(area)
		line.Amount = amount
	case pricing.ProductDieCutBlock:
		q := pricing.DieCutQuote{
			Origin:       pricing.DieCutOrigin(item.Origin),
			WidthMM:      item.WidthMM,
			HeightMM:     item.HeightMM,
			LinearMeters: item.LinearMeters,
			Quantity:     item.Quantity,
		}
		amount, err := s.prices.QuoteDieCut(q)
		if err != nil {
			return line, err
		}
		line.Measure = pricing.DieCutLinearMeters(q)
		line.AreaM2 = pricing.DieCutArea(q.WidthMM, q.HeightMM)
		line.Amount = amount
	default:
		return line, shared.NewDomainError("INVALID_PRODUCT_TYPE", "Unknown product type")
	}
	return line, nil
}
