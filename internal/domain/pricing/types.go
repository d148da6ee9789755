package pricing

import (
	"github.com/shopspring/decimal"
)

// ProductType is a product line of the shop
type ProductType string

const (
	ProductClicheCorrugated ProductType = "cliche_corrugated"
	ProductDieCutBlock      ProductType = "die_cut_block"
)

// AllProductTypes in display order
var AllProductTypes = []ProductType{ProductClicheCorrugated, ProductDieCutBlock}

// IsValid reports whether the product type is known
func (p ProductType) IsValid() bool {
	return p == ProductClicheCorrugated || p == ProductDieCutBlock
}

// Label is the human name printed on reports
func (p ProductType) Label() string {
	switch p {
	case ProductClicheCorrugated:
		return "Clichê Corrugado"
	case ProductDieCutBlock:
		return "Forma"
	default:
		return string(p)
	}
}

// MeasureUnit returns the unit Aggregate totals the product's measure in
func (p ProductType) MeasureUnit() string {
	switch p {
	case ProductClicheCorrugated:
		return UnitSquareCentimeter
	case ProductDieCutBlock:
		return UnitLinearMeter
	default:
		return ""
	}
}

// Measure units
const (
	UnitSquareCentimeter = "cm2"
	UnitSquareMeter      = "m2"
	UnitLinearMeter      = "m"
)

// DieCutOrigin selects the die-cut rate row
type DieCutOrigin string

const (
	OriginNational DieCutOrigin = "national"
	OriginImported DieCutOrigin = "imported"
)

// IsValid reports whether the origin is known
func (o DieCutOrigin) IsValid() bool {
	return o == OriginNational || o == OriginImported
}

// Label is the human name printed on reports
func (o DieCutOrigin) Label() string {
	switch o {
	case OriginNational:
		return "Nacional"
	case OriginImported:
		return "Importada"
	default:
		return string(o)
	}
}

// ClicheMeasure is one plate of a cliché order. Width and Height in cm.
type ClicheMeasure struct {
	Width    decimal.Decimal `json:"width"`
	Height   decimal.Decimal `json:"height"`
	Quantity int             `json:"quantity"`
	Color    string          `json:"color,omitempty"`
}

// ClicheQuote is the input of ClichePrice
type ClicheQuote struct {
	Measures    []ClicheMeasure
	PricePerCm2 decimal.Decimal
}

// DieCutQuote is the input of CalculateTotalDieCutPrice
type DieCutQuote struct {
	Origin       DieCutOrigin
	WidthMM      decimal.Decimal
	HeightMM     decimal.Decimal
	LinearMeters decimal.Decimal
	Quantity     int
}

// DieCutRates are the unit prices for one origin
type DieCutRates struct {
	PerLinearMeter decimal.Decimal
	PerSquareMeter decimal.Decimal
	Minimum        decimal.Decimal
}

// PriceTable holds the current unit prices of every product line
type PriceTable struct {
	ClichePerCm2 decimal.Decimal
	DieCut       map[DieCutOrigin]DieCutRates
}

// Rates returns the die-cut rates for an origin
func (t PriceTable) Rates(origin DieCutOrigin) (DieCutRates, error) {
	if !origin.IsValid() {
		return DieCutRates{}, ErrUnknownOrigin
	}
	r, ok := t.DieCut[origin]
	if !ok {
		return DieCutRates{}, ErrUnknownOrigin
	}
	return r, nil
}

// LineTotal is one priced line fed into Aggregate
type LineTotal struct {
	ProductType ProductType     `json:"product_type"`
	Measure     decimal.Decimal `json:"measure"`
	Unit        string          `json:"unit"`
	Amount      decimal.Decimal `json:"amount"`
	Replacement bool            `json:"replacement"`
}

// ProductTotals are the sums for one product type
type ProductTotals struct {
	Count   int             `json:"count"`
	Measure decimal.Decimal `json:"measure"`
	Unit    string          `json:"unit"`
	Amount  decimal.Decimal `json:"amount"`
}

// Summary is the footer of every listing report
type Summary struct {
	ByProductType map[ProductType]ProductTotals `json:"by_product_type"`
	Billable      decimal.Decimal               `json:"billable"`
	Losses        decimal.Decimal               `json:"losses"`
	Total         decimal.Decimal               `json:"total"`
}
