package reportgen

import (
	"bytes"
	"fmt"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// OrdersSheet is the name of the listing sheet
const OrdersSheet = "Ordens"

// SummarySheet is the name of the totals sheet
const SummarySheet = "Resumo"

var orderHeaders = []string{
	"OS", "Data", "Cliente", "Produto", "Descrição", "Status",
	"Medida", "Unidade", "Valor (R$)", "Reposição", "OS de origem", "Motivo", "Responsável",
}

var orderWidths = []float64{10, 12, 36, 18, 36, 14, 12, 9, 14, 11, 13, 36, 14}

// OrdersXLSX exports the period report rows and totals as a workbook with
// two sheets. Numbers are written as numbers so the sheet can be summed.
func OrdersXLSX(rep report.PeriodReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), OrdersSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#212529"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}
	boldMoneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, h := range orderHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(OrdersSheet, cell, h); err != nil {
			return nil, err
		}
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(OrdersSheet, colName, colName, orderWidths[i]); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(orderHeaders))
	if err := f.SetCellStyle(OrdersSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetPanes(OrdersSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}

	for i, r := range rep.Rows {
		line := rep.Lines[i]
		rowNum := i + 2
		replaced := any("")
		if r.IsReplacement {
			replaced = r.ReplacedOrderNumber
		}
		values := []any{
			r.Number,
			r.CreatedAt,
			r.CustomerName,
			r.ProductType.Label(),
			r.Description,
			r.Status.Label(),
			line.Measure.InexactFloat64(),
			line.Unit,
			r.Price.InexactFloat64(),
			yesNo(r.IsReplacement),
			replaced,
			r.ReplacementReason,
			responsibleLabel(r),
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(OrdersSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
		if err := f.SetCellStyle(OrdersSheet, fmt.Sprintf("B%d", rowNum), fmt.Sprintf("B%d", rowNum), dateStyle); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(OrdersSheet, fmt.Sprintf("I%d", rowNum), fmt.Sprintf("I%d", rowNum), moneyStyle); err != nil {
			return nil, err
		}
	}

	if len(rep.Rows) > 0 {
		lastRow := len(rep.Rows) + 1
		if err := f.AutoFilter(OrdersSheet, fmt.Sprintf("A1:%s%d", lastCol, lastRow), nil); err != nil {
			return nil, err
		}
	}

	if err := writeSummary(f, rep, boldStyle, moneyStyle, boldMoneyStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, rep report.PeriodReport, boldStyle, moneyStyle, boldMoneyStyle int) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "B", "D", 16); err != nil {
		return err
	}

	rows := [][]any{
		{"Período", fmt.Sprintf("%s a %s", rep.Filter.From.Format("02/01/2006"), rep.Filter.To.Format("02/01/2006"))},
		{"Gerado em", rep.GeneratedAt.Format("02/01/2006 15:04")},
		{},
		{"Produto", "Ordens", "Medida", "Valor (R$)"},
	}
	for _, pt := range pricing.AllProductTypes {
		totals, ok := rep.Summary.ByProductType[pt]
		if !ok {
			continue
		}
		rows = append(rows, []any{
			pt.Label(),
			totals.Count,
			fmt.Sprintf("%s %s", totals.Measure.StringFixed(2), totals.Unit),
			totals.Amount.InexactFloat64(),
		})
	}
	rows = append(rows,
		[]any{},
		[]any{"Faturável", "", "", rep.Summary.Billable.InexactFloat64()},
		[]any{"Perdas (reposições)", "", "", rep.Summary.Losses.InexactFloat64()},
		[]any{"Total", "", "", rep.Summary.Total.InexactFloat64()},
	)

	for i, values := range rows {
		if len(values) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return err
		}
		if i >= 4 {
			if err := f.SetCellStyle(SummarySheet, fmt.Sprintf("D%d", i+1), fmt.Sprintf("D%d", i+1), moneyStyle); err != nil {
				return err
			}
		}
	}

	last := len(rows)
	if err := f.SetCellStyle(SummarySheet, "A4", "D4", boldStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, fmt.Sprintf("A%d", last), fmt.Sprintf("A%d", last), boldStyle); err != nil {
		return err
	}
	return f.SetCellStyle(SummarySheet, fmt.Sprintf("D%d", last), fmt.Sprintf("D%d", last), boldMoneyStyle)
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func responsibleLabel(r report.OrderRow) string {
	if !r.IsReplacement {
		return ""
	}
	return r.Responsible.Label()
}
