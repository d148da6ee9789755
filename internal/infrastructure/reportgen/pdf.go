// Package reportgen builds the tabular reports: period and replacement
// PDFs with maroto and the order spreadsheet with excelize.
package reportgen

import (
	"fmt"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/report"
	"github.com/flexo/backend/internal/infrastructure/printing"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

var (
	gray       = &props.Color{Red: 90, Green: 90, Blue: 90}
	headerFill = &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	stripeFill = &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	lossFill   = &props.Cell{BackgroundColor: &props.Color{Red: 253, Green: 226, Blue: 225}}
)

// column is one table column: grid width and alignment
type column struct {
	title string
	size  int
	align align.Type
}

var periodColumns = []column{
	{"OS", 1, align.Center},
	{"Data", 1, align.Center},
	{"Cliente", 3, align.Left},
	{"Produto", 2, align.Left},
	{"Status", 2, align.Left},
	{"Medida", 1, align.Right},
	{"Valor", 2, align.Right},
}

var lossColumns = []column{
	{"OS", 1, align.Center},
	{"Origem", 1, align.Center},
	{"Data", 1, align.Center},
	{"Cliente", 3, align.Left},
	{"Motivo", 3, align.Left},
	{"Responsável", 1, align.Left},
	{"Valor", 2, align.Right},
}

func newDocument(landscape bool) core.Maroto {
	o := orientation.Vertical
	if landscape {
		o = orientation.Horizontal
	}
	cfg := config.NewBuilder().
		WithOrientation(o).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   gray,
		}).
		Build()
	return maroto.New(cfg)
}

// PeriodReportPDF renders the order listing of a period with per product
// totals, billable amount, losses and grand total
func PeriodReportPDF(company printing.Company, rep report.PeriodReport) ([]byte, error) {
	m := newDocument(true)

	addTitle(m, company, "Relatório de ordens de serviço", periodLine(rep.Filter.Period), rep.GeneratedAt.Format("02/01/2006 15:04"))
	addTableHeader(m, periodColumns)

	for i, r := range rep.Rows {
		line := rep.Lines[i]
		style := (*props.Cell)(nil)
		if r.IsReplacement {
			style = lossFill
		} else if i%2 == 1 {
			style = stripeFill
		}
		product := r.ProductType.Label()
		if r.IsReplacement {
			product += " (reposição)"
		}
		addTableRow(m, periodColumns, style,
			printing.FormatOrderNumber(r.Number),
			printing.FormatDate(r.CreatedAt),
			r.CustomerName,
			product,
			r.Status.Label(),
			printing.FormatNumber(line.Measure, 2)+" "+line.Unit,
			printing.FormatBRL(r.Price),
		)
	}
	if len(rep.Rows) == 0 {
		m.AddRows(text.NewRow(10, "Nenhuma ordem de serviço no período.", props.Text{Size: 9, Top: 3, Align: align.Center, Color: gray}))
	}

	m.AddRows(row.New(4))
	addSummary(m, rep.Summary)

	return generate(m)
}

// LossReportPDF renders the replacements of a period grouped by the party
// responsible for the defect
func LossReportPDF(company printing.Company, rep report.LossReport) ([]byte, error) {
	m := newDocument(true)

	addTitle(m, company, "Relatório de perdas (reposições)", periodLine(rep.Period), rep.GeneratedAt.Format("02/01/2006 15:04"))
	addTableHeader(m, lossColumns)

	for i, r := range rep.Rows {
		style := (*props.Cell)(nil)
		if i%2 == 1 {
			style = stripeFill
		}
		addTableRow(m, lossColumns, style,
			printing.FormatOrderNumber(r.Number),
			printing.FormatOrderNumber(r.ReplacedOrderNumber),
			printing.FormatDate(r.CreatedAt),
			r.CustomerName,
			r.ReplacementReason,
			r.Responsible.Label(),
			printing.FormatBRL(r.Price),
		)
	}
	if len(rep.Rows) == 0 {
		m.AddRows(text.NewRow(10, "Nenhuma reposição no período.", props.Text{Size: 9, Top: 3, Align: align.Center, Color: gray}))
	}

	m.AddRows(row.New(4))
	for _, t := range rep.ByResponsible {
		addTotalRow(m, fmt.Sprintf("%s (%d)", t.Responsible.Label(), t.Count), printing.FormatBRL(t.Amount), false)
	}
	addTotalRow(m, "Total de perdas", printing.FormatBRL(rep.Total), true)

	return generate(m)
}

func periodLine(p report.Period) string {
	return fmt.Sprintf("Período: %s a %s", printing.FormatDate(p.From), printing.FormatDate(p.To))
}

func addTitle(m core.Maroto, company printing.Company, title, subtitle, generated string) {
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New(company.Name, props.Text{Size: 11, Style: fontstyle.Bold})),
			col.New(4).Add(text.New(company.Document, props.Text{Size: 8, Align: align.Right, Color: gray})),
		),
		row.New(10).Add(
			col.New(12).Add(text.New(title, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center})),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(subtitle, props.Text{Size: 9, Color: gray})),
			col.New(6).Add(text.New("Gerado em "+generated, props.Text{Size: 9, Align: align.Right, Color: gray})),
		),
		row.New(3),
	)
}

func addTableHeader(m core.Maroto, columns []column) {
	cols := make([]core.Col, len(columns))
	for i, c := range columns {
		cols[i] = col.New(c.size).Add(text.New(c.title, props.Text{
			Size:  8,
			Top:   1.5,
			Style: fontstyle.Bold,
			Align: c.align,
			Color: &props.Color{Red: 255, Green: 255, Blue: 255},
		})).WithStyle(headerFill)
	}
	m.AddRows(row.New(7).Add(cols...))
}

func addTableRow(m core.Maroto, columns []column, style *props.Cell, values ...string) {
	cols := make([]core.Col, len(columns))
	for i, c := range columns {
		cl := col.New(c.size).Add(text.New(values[i], props.Text{Size: 7, Top: 1.5, Align: c.align}))
		if style != nil {
			cl = cl.WithStyle(style)
		}
		cols[i] = cl
	}
	m.AddRows(row.New(6).Add(cols...))
}

func addTotalRow(m core.Maroto, label, value string, bold bool) {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	m.AddRows(row.New(6).Add(
		col.New(9).Add(text.New(label, props.Text{Size: 9, Style: style, Align: align.Right})),
		col.New(3).Add(text.New(value, props.Text{Size: 9, Style: style, Align: align.Right})),
	))
}

func addSummary(m core.Maroto, s pricing.Summary) {
	for _, pt := range pricing.AllProductTypes {
		totals, ok := s.ByProductType[pt]
		if !ok {
			continue
		}
		label := fmt.Sprintf("%s: %d OS, %s %s", pt.Label(), totals.Count, printing.FormatNumber(totals.Measure, 2), totals.Unit)
		addTotalRow(m, label, printing.FormatBRL(totals.Amount), false)
	}
	addTotalRow(m, "Faturável", printing.FormatBRL(s.Billable), false)
	if !s.Losses.Equal(decimal.Zero) {
		addTotalRow(m, "Perdas (reposições)", printing.FormatBRL(s.Losses), false)
	}
	addTotalRow(m, "Total", printing.FormatBRL(s.Total), true)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}
