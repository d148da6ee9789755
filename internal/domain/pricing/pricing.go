package pricing

import (
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Places is the number of decimal places totals are rounded to
const Places int32 = 2

var (
	ErrNegativeMeasure = shared.NewDomainError("INVALID_MEASURE", "Measures cannot be negative")
	ErrNegativePrice   = shared.NewDomainError("INVALID_PRICE", "Unit prices cannot be negative")
	ErrUnknownOrigin   = shared.NewDomainError("INVALID_ORIGIN", "Unknown die-cut origin")
	ErrNoMeasures      = shared.NewDomainError("INVALID_MEASURES", "At least one measure is required")
)

var (
	cm2PerM2 = decimal.NewFromInt(10_000)
	mm2PerM2 = decimal.NewFromInt(1_000_000)
)

func units(q int) decimal.Decimal {
	if q <= 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(int64(q))
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// TotalMeasuresCliche sums width × height × quantity of every plate, in cm².
// A quantity of zero or less counts as one plate.
func TotalMeasuresCliche(measures []ClicheMeasure) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range measures {
		if m.Width.IsNegative() || m.Height.IsNegative() {
			return decimal.Zero, ErrNegativeMeasure
		}
		total = total.Add(m.Width.Mul(m.Height).Mul(units(m.Quantity)))
	}
	return round(total), nil
}

// SquareCentimetersToMeters converts a cm² area to m²
func SquareCentimetersToMeters(cm2 decimal.Decimal) decimal.Decimal {
	return cm2.Div(cm2PerM2).Round(4)
}

// ClichePrice is TotalMeasuresCliche × price per cm²
func ClichePrice(q ClicheQuote) (decimal.Decimal, error) {
	if len(q.Measures) == 0 {
		return decimal.Zero, ErrNoMeasures
	}
	if q.PricePerCm2.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	area, err := TotalMeasuresCliche(q.Measures)
	if err != nil {
		return decimal.Zero, err
	}
	return round(area.Mul(q.PricePerCm2)), nil
}

// DieCutArea returns the block area in m² from millimetre dimensions
func DieCutArea(widthMM, heightMM decimal.Decimal) decimal.Decimal {
	return widthMM.Mul(heightMM).Div(mm2PerM2).Round(4)
}

// CalculateTotalDieCutPrice prices a die-cut block order.
//
// Per unit: linear metres × rate per linear metre + area (m²) × rate per m²,
// raised to the origin's minimum. The unit price is then multiplied by the
// quantity (zero or less counts as one).
func CalculateTotalDieCutPrice(q DieCutQuote, rates DieCutRates) (decimal.Decimal, error) {
	if !q.Origin.IsValid() {
		return decimal.Zero, ErrUnknownOrigin
	}
	if q.WidthMM.IsNegative() || q.HeightMM.IsNegative() || q.LinearMeters.IsNegative() {
		return decimal.Zero, ErrNegativeMeasure
	}
	if rates.PerLinearMeter.IsNegative() || rates.PerSquareMeter.IsNegative() || rates.Minimum.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}

	unit := q.LinearMeters.Mul(rates.PerLinearMeter).
		Add(DieCutArea(q.WidthMM, q.HeightMM).Mul(rates.PerSquareMeter))
	if unit.LessThan(rates.Minimum) {
		unit = rates.Minimum
	}
	return round(unit.Mul(units(q.Quantity))), nil
}

// DieCutLinearMeters is the knife length of the whole order (all units)
func DieCutLinearMeters(q DieCutQuote) decimal.Decimal {
	return round(q.LinearMeters.Mul(units(q.Quantity)))
}

// QuoteDieCut looks the origin up in the table and prices the order
func (t PriceTable) QuoteDieCut(q DieCutQuote) (decimal.Decimal, error) {
	rates, err := t.Rates(q.Origin)
	if err != nil {
		return decimal.Zero, err
	}
	return CalculateTotalDieCutPrice(q, rates)
}

// QuoteCliche prices plates using the table rate unless an explicit
// per-order rate is given.
func (t PriceTable) QuoteCliche(measures []ClicheMeasure, pricePerCm2 *decimal.Decimal) (decimal.Decimal, error) {
	rate := t.ClichePerCm2
	if pricePerCm2 != nil {
		rate = *pricePerCm2
	}
	return ClichePrice(ClicheQuote{Measures: measures, PricePerCm2: rate})
}
