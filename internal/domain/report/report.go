// Package report holds the read-side rows and builders behind the period
// and replacement reports. Rows come from a read model, never from the
// aggregates' repositories.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxPeriodDays bounds a report period
const MaxPeriodDays = 366

// Period is a date range. Both ends are whole days and To is inclusive.
type Period struct {
	From time.Time
	To   time.Time
}

// NewPeriod truncates both ends to midnight and checks the range
func NewPeriod(from, to time.Time) (Period, error) {
	if from.IsZero() || to.IsZero() {
		return Period{}, shared.NewDomainError("INVALID_PERIOD", "Both from and to dates are required")
	}
	from = startOfDay(from)
	to = startOfDay(to)
	if to.Before(from) {
		return Period{}, shared.NewDomainError("INVALID_PERIOD", "The end date cannot be before the start date")
	}
	if to.Sub(from) > MaxPeriodDays*24*time.Hour {
		return Period{}, shared.NewDomainError("INVALID_PERIOD", "A report period cannot exceed one year")
	}
	return Period{From: from, To: to}, nil
}

// End is the exclusive upper bound, midnight after To
func (p Period) End() time.Time {
	return p.To.AddDate(0, 0, 1)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// OrderFilter selects the orders of a period report
type OrderFilter struct {
	Period
	CustomerID  *uuid.UUID
	ProductType pricing.ProductType
}

// OrderRow is one service order as printed on a report
type OrderRow struct {
	ID                  uuid.UUID
	Number              int64
	CreatedAt           time.Time
	CustomerID          uuid.UUID
	CustomerName        string
	ProductType         pricing.ProductType
	Description         string
	Status              production.Status
	Price               decimal.Decimal
	IsReplacement       bool
	ReplacedOrderNumber int64
	ReplacementReason   string
	Responsible         production.ResponsibleParty
	Corrugated          *production.CorrugatedPrinterDetails
	DieCut              *production.DieCutBlockDetails
}

// Line measures the row the same way the aggregate does
func (r OrderRow) Line() pricing.LineTotal {
	o := production.ServiceOrder{
		ProductType: r.ProductType,
		Corrugated:  r.Corrugated,
		DieCut:      r.DieCut,
		Price:       r.Price,
	}
	if r.IsReplacement {
		o.Replacement = &production.Replacement{
			OriginalNumber: r.ReplacedOrderNumber,
			Reason:         r.ReplacementReason,
			Responsible:    r.Responsible,
		}
	}
	return o.LineTotal()
}

// ReadModel serves report rows. Cancelled orders are never returned.
type ReadModel interface {
	// Orders returns the orders created in the period, ordered by number
	Orders(ctx context.Context, filter OrderFilter) ([]OrderRow, error)
	// Replacements returns the replacement orders created in the period
	Replacements(ctx context.Context, period Period) ([]OrderRow, error)
}

// PeriodReport is the order listing of a period with its footer totals
type PeriodReport struct {
	Filter      OrderFilter
	Rows        []OrderRow
	Lines       []pricing.LineTotal
	Summary     pricing.Summary
	GeneratedAt time.Time
}

// BuildPeriodReport measures every row and aggregates the footer
func BuildPeriodReport(filter OrderFilter, rows []OrderRow, now time.Time) PeriodReport {
	lines := make([]pricing.LineTotal, len(rows))
	for i, r := range rows {
		lines[i] = r.Line()
	}
	return PeriodReport{
		Filter:      filter,
		Rows:        rows,
		Lines:       lines,
		Summary:     pricing.Aggregate(lines),
		GeneratedAt: now,
	}
}

// ResponsibleTotal is the loss attributed to one party
type ResponsibleTotal struct {
	Responsible production.ResponsibleParty
	Count       int
	Amount      decimal.Decimal
}

// LossReport lists the replacements of a period grouped by who caused them
type LossReport struct {
	Period        Period
	Rows          []OrderRow
	ByResponsible []ResponsibleTotal
	Total         decimal.Decimal
	GeneratedAt   time.Time
}

// BuildLossReport totals replacement prices per responsible party.
// Rows that are not replacements are ignored.
func BuildLossReport(period Period, rows []OrderRow, now time.Time) LossReport {
	kept := make([]OrderRow, 0, len(rows))
	totals := make(map[production.ResponsibleParty]*ResponsibleTotal)
	amounts := make([]decimal.Decimal, 0, len(rows))

	for _, r := range rows {
		if !r.IsReplacement || r.Status == production.StatusCancelled {
			continue
		}
		kept = append(kept, r)
		amounts = append(amounts, r.Price)

		t, ok := totals[r.Responsible]
		if !ok {
			t = &ResponsibleTotal{Responsible: r.Responsible, Amount: decimal.Zero}
			totals[r.Responsible] = t
		}
		t.Count++
		t.Amount = pricing.Sum(t.Amount, r.Price)
	}

	by := make([]ResponsibleTotal, 0, len(totals))
	for _, t := range totals {
		by = append(by, *t)
	}
	sort.Slice(by, func(i, j int) bool {
		if !by[i].Amount.Equal(by[j].Amount) {
			return by[i].Amount.GreaterThan(by[j].Amount)
		}
		return by[i].Responsible < by[j].Responsible
	})

	return LossReport{
		Period:        period,
		Rows:          kept,
		ByResponsible: by,
		Total:         pricing.Sum(amounts...),
		GeneratedAt:   now,
	}
}
