package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Saturdays and Sundays cost 20% extra.
var weekendMultiplier = decimal.RequireFromString("1.20")

// PriceForRange totals the rental price for the inclusive day range
// [start, end] at the given daily rate, applying the weekend surcharge per
// calendar day. The sum is rounded to 2 decimal places once at the end, not
// per day, so multi-day totals don't accumulate rounding drift.
//
// Pure function: same inputs always give the same total. A reversed range
// prices to zero; callers are expected to reject it before pricing.
func PriceForRange(dailyRate decimal.Decimal, start, end time.Time) decimal.Decimal {
	if end.Before(start) {
		return decimal.Zero
	}

	total := decimal.Zero
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWeekend(d) {
			total = total.Add(dailyRate.Mul(weekendMultiplier))
		} else {
			total = total.Add(dailyRate)
		}
	}
	return total.Round(2)
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
