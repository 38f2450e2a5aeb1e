package forecast

import (
	"testing"
	"time"

	"github.com/iwvelando/sales-forecast/pkg/constants"
	"github.com/iwvelando/sales-forecast/pkg/datetime"
)

func monthlyPoint(year int, month time.Month, total float64) MonthlyPoint {
	return MonthlyPoint{
		Year:  year,
		Month: month,
		Date:  datetime.MonthStart(year, month),
		Total: total,
	}
}

func TestSeasonalAverages(t *testing.T) {
	tests := []struct {
		name     string
		points   []MonthlyPoint
		month    time.Month
		expected float64
	}{
		{
			name: "Mean across two years",
			points: []MonthlyPoint{
				monthlyPoint(2023, time.January, 150),
				monthlyPoint(2024, time.January, 300),
			},
			month:    time.January,
			expected: 225,
		},
		{
			name: "Single year is its own mean",
			points: []MonthlyPoint{
				monthlyPoint(2023, time.July, 80),
			},
			month:    time.July,
			expected: 80,
		},
		{
			name: "Month with no observations averages to zero",
			points: []MonthlyPoint{
				monthlyPoint(2023, time.January, 150),
			},
			month:    time.June,
			expected: 0,
		},
		{
			name: "Divisor is the distinct year count for that month",
			points: []MonthlyPoint{
				monthlyPoint(2021, time.March, 30),
				monthlyPoint(2022, time.March, 60),
				monthlyPoint(2023, time.March, 90),
				monthlyPoint(2023, time.April, 500),
			},
			month:    time.March,
			expected: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seasonal := SeasonalAverages(tt.points)
			if got := seasonal.Value(tt.month); got != tt.expected {
				t.Errorf("SeasonalAverages().Value(%s) = %.2f, expected %.2f", tt.month, got, tt.expected)
			}
		})
	}
}

// Every calendar month has an entry, defaulting to 0 when unobserved.
func TestSeasonalCoversAllMonths(t *testing.T) {
	seasonal := SeasonalAverages([]MonthlyPoint{monthlyPoint(2023, time.February, 10)})

	if len(seasonal) != constants.MonthsPerYear {
		t.Fatalf("Seasonal holds %d entries, expected %d", len(seasonal), constants.MonthsPerYear)
	}
	for month := time.January; month <= time.December; month++ {
		got := seasonal.Value(month)
		if month == time.February {
			if got != 10 {
				t.Errorf("Value(%s) = %.2f, expected 10", month, got)
			}
			continue
		}
		if got != 0 {
			t.Errorf("Value(%s) = %.2f, expected exactly 0", month, got)
		}
	}
}

func TestSeasonalAveragesNoPoints(t *testing.T) {
	seasonal := SeasonalAverages(nil)
	for month := time.January; month <= time.December; month++ {
		if seasonal.Value(month) != 0 {
			t.Errorf("Value(%s) = %.2f, expected 0 with no observations", month, seasonal.Value(month))
		}
	}
}
