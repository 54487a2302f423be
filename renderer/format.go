package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

// missing is displayed for a statistic that could not be computed.
const missing = "-"

// formatNumber rounds v to places decimals.
func formatNumber(v null.Float, places int32) string {
	if !v.Valid {
		return missing
	}
	return decimal.NewFromFloat(v.Float64).StringFixed(places)
}

// formatPercent formats a fraction as a percentage: 0.0123 is "1.23%".
func formatPercent(v null.Float, places int32) string {
	if !v.Valid {
		return missing
	}
	return decimal.NewFromFloat(v.Float64).Shift(2).StringFixed(places) + "%"
}

// formatSignedPercent formats a value already in percent with an explicit sign on non zero values.
func formatSignedPercent(v null.Float) string {
	if !v.Valid {
		return missing
	}
	d := decimal.NewFromFloat(v.Float64).Round(2)
	switch {
	case d.IsZero():
		return "0.00%"
	case d.IsPositive():
		return "+" + d.StringFixed(2) + "%"
	default:
		return d.StringFixed(2) + "%"
	}
}

// formatPrice formats a price, in a currency when one is given.
func formatPrice(v null.Float, currency string) string {
	if !v.Valid {
		return missing
	}
	if currency == "" {
		return formatNumber(v, 2)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, currency).Currency()
	units := decimal.NewFromFloat(v.Float64).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(units.IntPart())
}
