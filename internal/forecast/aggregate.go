package forecast

import (
	"sort"
	"time"

	"github.com/iwvelando/sales-forecast/internal/dataset"
	"github.com/iwvelando/sales-forecast/pkg/datetime"
)

// MonthlyPoint is the summed sales amount for one (year, month) pair present
// in the filtered data. Date is the first calendar day of that month and is
// attached at aggregation time for chronological consumers.
type MonthlyPoint struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Date  time.Time  `json:"date"`
	Total float64    `json:"total"`
}

type yearMonth struct {
	year  int
	month time.Month
}

// AggregateMonthly groups the records by (year, month) and sums their amounts.
// No rounding is applied. The result is sorted by (year, month) ascending.
func AggregateMonthly(records []dataset.Record) []MonthlyPoint {
	totals := make(map[yearMonth]float64)
	for _, r := range records {
		totals[yearMonth{r.Year, r.Month}] += r.Amount
	}

	points := make([]MonthlyPoint, 0, len(totals))
	for ym, total := range totals {
		points = append(points, MonthlyPoint{
			Year:  ym.year,
			Month: ym.month,
			Date:  datetime.MonthStart(ym.year, ym.month),
			Total: total,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		return points[i].Month < points[j].Month
	})
	return points
}
