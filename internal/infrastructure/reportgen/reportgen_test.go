package reportgen

import (
	"bytes"
	"testing"
	"time"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/report"
	"github.com/flexo/backend/internal/infrastructure/printing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var company = printing.Company{Name: "Flexo Clichês Ltda", Document: "11.222.333/0001-81"}

func testPeriod(t *testing.T) report.Period {
	t.Helper()
	p, err := report.NewPeriod(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func testRows() []report.OrderRow {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return []report.OrderRow{
		{
			Number:       1,
			CreatedAt:    created,
			CustomerName: "Embalagens Sul",
			ProductType:  pricing.ProductClicheCorrugated,
			Description:  "Caixa 4 cores",
			Status:       production.StatusFinished,
			Price:        d("210"),
			Corrugated: &production.CorrugatedPrinterDetails{
				Measures: []pricing.ClicheMeasure{{Width: d("30"), Height: d("20"), Quantity: 1}},
			},
		},
		{
			Number:       2,
			CreatedAt:    created,
			CustomerName: "Caixas Paraná",
			ProductType:  pricing.ProductDieCutBlock,
			Status:       production.StatusDelivered,
			Price:        d("633.60"),
			DieCut: &production.DieCutBlockDetails{
				Origin:       pricing.OriginNational,
				WidthMM:      d("400"),
				HeightMM:     d("300"),
				LinearMeters: d("2.8"),
				Quantity:     1,
			},
		},
		{
			Number:              3,
			CreatedAt:           created,
			CustomerName:        "Embalagens Sul",
			ProductType:         pricing.ProductClicheCorrugated,
			Status:              production.StatusPending,
			Price:               d("105"),
			IsReplacement:       true,
			ReplacedOrderNumber: 1,
			ReplacementReason:   "Registro fora",
			Responsible:         production.ResponsibleCompany,
			Corrugated: &production.CorrugatedPrinterDetails{
				Measures: []pricing.ClicheMeasure{{Width: d("15"), Height: d("20"), Quantity: 1}},
			},
		},
	}
}

func periodReport(t *testing.T) report.PeriodReport {
	return report.BuildPeriodReport(report.OrderFilter{Period: testPeriod(t)}, testRows(), time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC))
}

func TestPeriodReportPDF(t *testing.T) {
	data, err := PeriodReportPDF(company, periodReport(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPeriodReportPDF_Empty(t *testing.T) {
	rep := report.BuildPeriodReport(report.OrderFilter{Period: testPeriod(t)}, nil, time.Now())
	data, err := PeriodReportPDF(company, rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestLossReportPDF(t *testing.T) {
	rep := report.BuildLossReport(testPeriod(t), testRows(), time.Now())
	require.Len(t, rep.Rows, 1)

	data, err := LossReportPDF(company, rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestOrdersXLSX(t *testing.T) {
	data, err := OrdersXLSX(periodReport(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{OrdersSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(OrdersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, orderHeaders, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Embalagens Sul", rows[1][2])
	assert.Equal(t, "Clichê Corrugado", rows[1][3])
	assert.Equal(t, "Não", rows[1][9])
	assert.Equal(t, "Sim", rows[3][9])
	assert.Equal(t, "1", rows[3][10])
	assert.Equal(t, "Registro fora", rows[3][11])

	price, err := f.GetCellValue(OrdersSheet, "I3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "633.6", price)

	total, err := f.GetCellValue(SummarySheet, "A10")
	require.NoError(t, err)
	assert.Equal(t, "Total", total)
	totalValue, err := f.GetCellValue(SummarySheet, "D10", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "948.6", totalValue)
}

func TestOrdersXLSX_Empty(t *testing.T) {
	rep := report.BuildPeriodReport(report.OrderFilter{Period: testPeriod(t)}, nil, time.Now())
	data, err := OrdersXLSX(rep)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(OrdersSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
