package pricing

import (
	"context"
	"testing"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func priceTable() pricing.PriceTable {
	return pricing.PriceTable{
		ClichePerCm2: d("0.35"),
		DieCut: map[pricing.DieCutOrigin]pricing.DieCutRates{
			pricing.OriginNational: {PerLinearMeter: d("45"), PerSquareMeter: d("120"), Minimum: d("150")},
			pricing.OriginImported: {PerLinearMeter: d("80"), PerSquareMeter: d("200"), Minimum: d("300")},
		},
	}
}

func TestQuoteService_Quote(t *testing.T) {
	ctx := context.Background()
	service := NewQuoteService(priceTable())

	resp, err := service.Quote(ctx, QuoteRequest{Items: []QuoteItemRequest{
		{
			ProductType: "cliche_corrugated",
			Measures: []QuoteMeasureRequest{
				{Width: d("30"), Height: d("20"), Quantity: 2},
				{Width: d("10"), Height: d("10"), Quantity: 0},
			},
		},
		{
			ProductType:  "die_cut_block",
			Origin:       "national",
			WidthMM:      d("500"),
			HeightMM:     d("400"),
			LinearMeters: d("6.5"),
			Quantity:     2,
		},
	}})

	require.NoError(t, err)
	require.Len(t, resp.Lines, 2)

	cliche := resp.Lines[0]
	assert.Equal(t, "1300", cliche.Measure.String())
	assert.Equal(t, "cm2", cliche.Unit)
	assert.Equal(t, "455", cliche.Amount.String())
	assert.Equal(t, "0.13", cliche.AreaM2.String())

	// (6.5 × 45 + 0.2 × 120) × 2
	block := resp.Lines[1]
	assert.Equal(t, "633", block.Amount.String())
	assert.Equal(t, "13", block.Measure.String())
	assert.Equal(t, "m", block.Unit)

	assert.Equal(t, "1088", resp.Summary.Billable.String())
	assert.True(t, resp.Summary.Losses.IsZero())
	require.Len(t, resp.Summary.Products, 2)
	assert.Equal(t, "cliche_corrugated", resp.Summary.Products[0].ProductType)
}

func TestQuoteService_OverrideRateAndMinimum(t *testing.T) {
	ctx := context.Background()
	rate := d("0.5")

	resp, err := NewQuoteService(priceTable()).Quote(ctx, QuoteRequest{Items: []QuoteItemRequest{
		{ProductType: "cliche_corrugated", Measures: []QuoteMeasureRequest{{Width: d("10"), Height: d("10"), Quantity: 1}}, PricePerCm2: &rate},
		{ProductType: "die_cut_block", Origin: "imported", WidthMM: d("100"), HeightMM: d("100"), LinearMeters: d("1")},
	}})

	require.NoError(t, err)
	assert.Equal(t, "50", resp.Lines[0].Amount.String())
	assert.Equal(t, "300", resp.Lines[1].Amount.String())
}

func TestQuoteService_Errors(t *testing.T) {
	ctx := context.Background()
	service := NewQuoteService(priceTable())

	_, err := service.Quote(ctx, QuoteRequest{Items: []QuoteItemRequest{
		{ProductType: "die_cut_block", Origin: "martian"},
	}})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ORIGIN", domainErr.Code)
	assert.Contains(t, domainErr.Message, "item 1")

	_, err = service.Quote(ctx, QuoteRequest{Items: []QuoteItemRequest{
		{ProductType: "cliche_corrugated", Measures: []QuoteMeasureRequest{{Width: d("-1"), Height: d("2")}}},
	}})
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_MEASURE", domainErr.Code)

	_, err = service.Quote(ctx, QuoteRequest{Items: []QuoteItemRequest{{ProductType: "cliche_corrugated"}}})
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_MEASURES", domainErr.Code)
}

func TestQuoteService_PriceTable(t *testing.T) {
	resp := NewQuoteService(priceTable()).PriceTable(context.Background())
	assert.Equal(t, "0.35", resp.ClichePerCm2.String())
	require.Len(t, resp.DieCut, 2)
	assert.Equal(t, "national", resp.DieCut[0].Origin)
}
