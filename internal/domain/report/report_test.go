package report

import (
	"testing"
	"time"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 15, 30, 0, 0, time.UTC)
}

func TestNewPeriod(t *testing.T) {
	p, err := NewPeriod(date(2026, 3, 1), date(2026, 3, 31))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), p.End())

	t.Run("single day", func(t *testing.T) {
		p, err := NewPeriod(date(2026, 3, 5), date(2026, 3, 5))
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, p.End().Sub(p.From))
	})

	for name, tc := range map[string][2]time.Time{
		"reversed": {date(2026, 3, 31), date(2026, 3, 1)},
		"missing":  {{}, date(2026, 3, 1)},
		"too long": {date(2024, 1, 1), date(2026, 1, 1)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewPeriod(tc[0], tc[1])
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "INVALID_PERIOD", domainErr.Code)
		})
	}
}

func clicheRow(number int64, price string) OrderRow {
	return OrderRow{
		Number:      number,
		ProductType: pricing.ProductClicheCorrugated,
		Status:      production.StatusFinished,
		Price:       d(price),
		Corrugated: &production.CorrugatedPrinterDetails{
			Measures: []pricing.ClicheMeasure{{Width: d("30"), Height: d("20"), Quantity: 1}},
		},
	}
}

func replacementRow(number int64, price string, who production.ResponsibleParty) OrderRow {
	r := clicheRow(number, price)
	r.IsReplacement = true
	r.ReplacedOrderNumber = number - 100
	r.Responsible = who
	return r
}

func TestOrderRow_Line(t *testing.T) {
	line := clicheRow(1, "210").Line()
	assert.Equal(t, pricing.ProductClicheCorrugated, line.ProductType)
	assert.True(t, d("600").Equal(line.Measure))
	assert.Equal(t, pricing.UnitSquareCentimeter, line.Unit)
	assert.False(t, line.Replacement)

	assert.True(t, replacementRow(101, "210", production.ResponsibleCompany).Line().Replacement)
}

func TestBuildPeriodReport(t *testing.T) {
	now := date(2026, 4, 1)
	rows := []OrderRow{
		clicheRow(1, "210"),
		clicheRow(2, "105.50"),
		replacementRow(103, "210", production.ResponsibleCompany),
	}

	rep := BuildPeriodReport(OrderFilter{}, rows, now)

	require.Len(t, rep.Lines, 3)
	assert.Equal(t, now, rep.GeneratedAt)
	assert.True(t, d("315.5").Equal(rep.Summary.Billable))
	assert.True(t, d("210").Equal(rep.Summary.Losses))
	assert.True(t, d("525.5").Equal(rep.Summary.Total))

	cliche := rep.Summary.ByProductType[pricing.ProductClicheCorrugated]
	assert.Equal(t, 3, cliche.Count)
	assert.True(t, d("1800").Equal(cliche.Measure))
}

func TestBuildLossReport(t *testing.T) {
	period, err := NewPeriod(date(2026, 3, 1), date(2026, 3, 31))
	require.NoError(t, err)

	cancelled := replacementRow(104, "999", production.ResponsibleCompany)
	cancelled.Status = production.StatusCancelled

	rows := []OrderRow{
		replacementRow(101, "80", production.ResponsibleCustomer),
		replacementRow(102, "120.25", production.ResponsibleCompany),
		replacementRow(103, "50", production.ResponsibleCompany),
		cancelled,
		clicheRow(5, "300"),
	}

	rep := BuildLossReport(period, rows, date(2026, 4, 1))

	assert.Len(t, rep.Rows, 3)
	assert.True(t, d("250.25").Equal(rep.Total))
	require.Len(t, rep.ByResponsible, 2)
	assert.Equal(t, production.ResponsibleCompany, rep.ByResponsible[0].Responsible)
	assert.Equal(t, 2, rep.ByResponsible[0].Count)
	assert.True(t, d("170.25").Equal(rep.ByResponsible[0].Amount))
	assert.Equal(t, production.ResponsibleCustomer, rep.ByResponsible[1].Responsible)
}

func TestBuildLossReport_Empty(t *testing.T) {
	rep := BuildLossReport(Period{}, nil, time.Time{})
	assert.Empty(t, rep.Rows)
	assert.Empty(t, rep.ByResponsible)
	assert.True(t, rep.Total.IsZero())
}
