package handler

import (
	"context"
	"net/http"
	"testing"

	pricingapp "github.com/flexo/backend/internal/application/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockQuoteService struct {
	mock.Mock
}

func (m *mockQuoteService) PriceTable(ctx context.Context) pricingapp.PriceTableResponse {
	return m.Called(ctx).Get(0).(pricingapp.PriceTableResponse)
}

func (m *mockQuoteService) Quote(ctx context.Context, req pricingapp.QuoteRequest) (*pricingapp.QuoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricingapp.QuoteResponse), args.Error(1)
}

func TestPricingHandler_Quote(t *testing.T) {
	t.Run("priced", func(t *testing.T) {
		svc := new(mockQuoteService)
		svc.On("Quote", mock.Anything, mock.MatchedBy(func(req pricingapp.QuoteRequest) bool {
			return len(req.Items) == 1 && req.Items[0].Origin == "imported"
		})).Return(&pricingapp.QuoteResponse{Lines: []pricingapp.QuoteLineResponse{{
			ProductType: "die_cut_block",
			Amount:      decimal.NewFromInt(350),
		}}}, nil)

		c, w := newContext(http.MethodPost, "/api/v1/pricing/quote", map[string]any{
			"items": []map[string]any{{
				"productType":  "die_cut_block",
				"origin":       "imported",
				"widthMm":      "400",
				"heightMm":     "300",
				"linearMeters": "2.5",
			}},
		})
		NewPricingHandler(svc).Quote(c)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("empty quote", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/api/v1/pricing/quote", map[string]any{"items": []any{}})
		NewPricingHandler(new(mockQuoteService)).Quote(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPricingHandler_PriceTable(t *testing.T) {
	svc := new(mockQuoteService)
	svc.On("PriceTable", mock.Anything).Return(pricingapp.PriceTableResponse{ClichePerCm2: decimal.RequireFromString("0.35")})

	c, w := newContext(http.MethodGet, "/api/v1/pricing/table", nil)
	NewPricingHandler(svc).PriceTable(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0.35", decode(t, w).Data.(map[string]any)["clichePerCm2"])
}
