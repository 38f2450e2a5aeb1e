// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/sales-forecast/pkg/constants"
)

const (
	// DateTimeLayout is the year-month format used for output tables.
	DateTimeLayout = constants.DateTimeLayout
)

// recordDateLayouts are the layouts accepted for the dataset date column, in
// the order they are attempted.
var recordDateLayouts = []string{
	constants.DateOnlyLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseRecordDate parses a dataset date value, accepting any of the supported
// layouts.
func ParseRecordDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// MonthStart returns the first calendar day of the given year and month in UTC.
func MonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}
