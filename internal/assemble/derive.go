package assemble

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Gain returns value-cost and that difference as a percentage of cost,
// rounded to two places. Rounding works on the exact float64 quotient, so
// 23/160 gives 14.37. A zero cost yields 0%.
func Gain(cost, value int64) (int64, decimal.Decimal) {
	pnl := value - cost
	if cost == 0 {
		return pnl, decimal.Zero
	}
	pct := float64(pnl) / float64(cost) * 100
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(pct, 'f', 2, 64), 64)
	if err != nil {
		return pnl, decimal.Zero
	}
	return pnl, decimal.NewFromFloat(rounded)
}
