package rules

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// dec converts a stored float amount into a decimal for exact accumulation
func dec(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func formatMoney(v float64) string {
	return formatFixed(v, 2)
}

func formatPercent(v float64) string {
	return formatFixed(v, 1)
}

func formatFixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
