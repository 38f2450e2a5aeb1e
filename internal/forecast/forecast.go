// Package forecast implements the filter, aggregation, and projection pipeline
// that turns historical sales records into a seasonal forecast: cascading
// option resolution, conjunctive filtering, monthly aggregation, per-calendar-
// month averaging, and a flat twelve-month projection for the next year.
package forecast

import (
	"github.com/iwvelando/sales-forecast/internal/dataset"
	"go.uber.org/zap"
)

// Result holds everything one pipeline run produced for a given selection.
// It is owned by the invocation that produced it; runs share nothing but the
// immutable record store.
type Result struct {
	Selection  Selection       `json:"selection"`
	Monthly    []MonthlyPoint  `json:"monthly"`
	Seasonal   Seasonal        `json:"seasonal"`
	TargetYear int             `json:"targetYear"`
	Forecast   []ForecastPoint `json:"forecast"`
}

// Run executes one full pipeline pass over the store: filter the records by
// the selection, aggregate them into a monthly series, average the series per
// calendar month, and project the averages onto the year after the latest
// observed year. Returns ErrNoMatch when the selection filters out everything.
func Run(logger *zap.Logger, store *dataset.Store, sel Selection) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	matched, err := Apply(store.Records(), sel)
	if err != nil {
		return nil, err
	}

	monthly := AggregateMonthly(matched)
	seasonal := SeasonalAverages(monthly)

	points, targetYear, err := Project(monthly, seasonal)
	if err != nil {
		return nil, err
	}

	logger.Debug("pipeline complete",
		zap.String("op", "forecast.Run"),
		zap.Int("records", len(matched)),
		zap.Int("months", len(monthly)),
		zap.Int("targetYear", targetYear),
	)

	return &Result{
		Selection:  sel,
		Monthly:    monthly,
		Seasonal:   seasonal,
		TargetYear: targetYear,
		Forecast:   points,
	}, nil
}
