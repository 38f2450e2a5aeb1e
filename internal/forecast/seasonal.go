package forecast

import (
	"time"

	"github.com/iwvelando/sales-forecast/pkg/constants"
)

// Seasonal holds one averaged total per calendar month, January through
// December, with no gaps. Months without historical observations hold 0; that
// is a deliberate simplification, not a missing-data signal.
type Seasonal [constants.MonthsPerYear]float64

// Value returns the average for the given calendar month.
func (s Seasonal) Value(month time.Month) float64 {
	return s[month-1]
}

// SeasonalAverages collapses the multi-year monthly series into one arithmetic
// mean per calendar month. Monthly points are unique by (year, month), so the
// divisor for a month is exactly the count of distinct years observed for it
// in the current filter scope.
func SeasonalAverages(points []MonthlyPoint) Seasonal {
	var sums [constants.MonthsPerYear]float64
	var years [constants.MonthsPerYear]int
	for _, p := range points {
		sums[p.Month-1] += p.Total
		years[p.Month-1]++
	}

	var seasonal Seasonal
	for i := range sums {
		if years[i] > 0 {
			seasonal[i] = sums[i] / float64(years[i])
		}
	}
	return seasonal
}
