package forecast

import (
	"errors"
	"time"

	"github.com/iwvelando/sales-forecast/pkg/constants"
	"github.com/iwvelando/sales-forecast/pkg/datetime"
)

// ErrNoObservations indicates the projector was given no monthly points and
// cannot determine a target year. Apply's non-empty guarantee makes this
// unreachable through the normal pipeline, but the projector refuses to run
// rather than compute a nonsensical year.
var ErrNoObservations = errors.New("no monthly observations to project from")

// ForecastPoint carries the projected sales amount for one month of the
// target year. Date is the first calendar day of that month.
type ForecastPoint struct {
	Date  time.Time  `json:"date"`
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Value float64    `json:"value"`
}

// Project builds the twelve-month forecast for the year following the latest
// observed year. Every calendar month of the target year gets exactly one
// point carrying its seasonal average, including months whose average is 0.
func Project(points []MonthlyPoint, seasonal Seasonal) ([]ForecastPoint, int, error) {
	if len(points) == 0 {
		return nil, 0, ErrNoObservations
	}

	latestYear := points[0].Year
	for _, p := range points {
		if p.Year > latestYear {
			latestYear = p.Year
		}
	}
	targetYear := latestYear + 1

	forecast := make([]ForecastPoint, 0, constants.MonthsPerYear)
	for month := time.January; month <= time.December; month++ {
		forecast = append(forecast, ForecastPoint{
			Date:  datetime.MonthStart(targetYear, month),
			Year:  targetYear,
			Month: month,
			Value: seasonal.Value(month),
		})
	}
	return forecast, targetYear, nil
}
