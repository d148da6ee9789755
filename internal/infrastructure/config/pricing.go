package config

import (
	"fmt"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// PriceTable parses the configured prices
func (p PricingConfig) PriceTable() (pricing.PriceTable, error) {
	var parseErr error
	parse := func(key, raw string) decimal.Decimal {
		if parseErr != nil {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			parseErr = fmt.Errorf("pricing.%s: invalid decimal %q: %w", key, raw, err)
			return decimal.Zero
		}
		if d.IsNegative() {
			parseErr = fmt.Errorf("pricing.%s cannot be negative", key)
		}
		return d
	}

	table := pricing.PriceTable{
		ClichePerCm2: parse("cliche_per_cm2", p.ClichePerCm2),
		DieCut: map[pricing.DieCutOrigin]pricing.DieCutRates{
			pricing.OriginNational: {
				PerLinearMeter: parse("die_cut_national_per_linear_meter", p.DieCutNationalPerLinearMeter),
				PerSquareMeter: parse("die_cut_national_per_square_meter", p.DieCutNationalPerSquareMeter),
				Minimum:        parse("die_cut_national_minimum", p.DieCutNationalMinimum),
			},
			pricing.OriginImported: {
				PerLinearMeter: parse("die_cut_imported_per_linear_meter", p.DieCutImportedPerLinearMeter),
				PerSquareMeter: parse("die_cut_imported_per_square_meter", p.DieCutImportedPerSquareMeter),
				Minimum:        parse("die_cut_imported_minimum", p.DieCutImportedMinimum),
			},
		},
	}
	if parseErr != nil {
		return pricing.PriceTable{}, parseErr
	}
	return table, nil
}
