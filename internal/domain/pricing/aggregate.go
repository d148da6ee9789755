package pricing

import (
	"github.com/shopspring/decimal"
)

// Aggregate sums lines per product type. Replacement lines count toward
// Losses instead of Billable, and Total = Billable + Losses.
func Aggregate(lines []LineTotal) Summary {
	s := Summary{
		ByProductType: make(map[ProductType]ProductTotals, len(AllProductTypes)),
		Billable:      decimal.Zero,
		Losses:        decimal.Zero,
	}

	for _, l := range lines {
		pt := s.ByProductType[l.ProductType]
		if pt.Unit == "" {
			pt.Unit = l.Unit
			if pt.Unit == "" {
				pt.Unit = l.ProductType.MeasureUnit()
			}
		}
		pt.Count++
		pt.Measure = pt.Measure.Add(l.Measure)
		pt.Amount = pt.Amount.Add(l.Amount)
		s.ByProductType[l.ProductType] = pt

		if l.Replacement {
			s.Losses = s.Losses.Add(l.Amount)
		} else {
			s.Billable = s.Billable.Add(l.Amount)
		}
	}

	for k, pt := range s.ByProductType {
		pt.Measure = round(pt.Measure)
		pt.Amount = round(pt.Amount)
		s.ByProductType[k] = pt
	}
	s.Billable = round(s.Billable)
	s.Losses = round(s.Losses)
	s.Total = round(s.Billable.Add(s.Losses))
	return s
}

// Sum adds amounts and rounds the result
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return round(total)
}
