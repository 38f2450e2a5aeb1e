// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/sales-forecast/internal/forecast"
	"github.com/iwvelando/sales-forecast/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result *forecast.Result) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Historical monthly sales ---\n")
	fmt.Printf("Date    | Total\n")
	fmt.Printf("____    | _____\n")
	for _, point := range result.Monthly {
		_, _ = p.Printf("%s | %.2f\n", point.Date.Format(constants.DateTimeLayout), point.Total)
	}

	fmt.Printf("\n--- Historical average by calendar month ---\n")
	fmt.Printf("Month     | Average\n")
	fmt.Printf("_____     | _______\n")
	for month := time.January; month <= time.December; month++ {
		_, _ = p.Printf("%-9s | %.2f\n", month.String(), result.Seasonal.Value(month))
	}

	fmt.Printf("\n--- Forecast for %d ---\n", result.TargetYear)
	fmt.Printf("Date    | Forecast\n")
	fmt.Printf("____    | ________\n")
	for _, point := range result.Forecast {
		_, _ = p.Printf("%s | %.2f\n", point.Date.Format(constants.DateTimeLayout), point.Value)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *forecast.Result) {
	fmt.Print(CsvString(result))
}

// CsvString renders the historical series and the forecast as one CSV table
// with a series column distinguishing the two.
func CsvString(result *forecast.Result) string {
	var b strings.Builder
	b.WriteString(`"date","series","amount"` + "\n")
	for _, point := range result.Monthly {
		fmt.Fprintf(&b, `"%s","history","%.2f"`+"\n", point.Date.Format(constants.DateTimeLayout), point.Total)
	}
	for _, point := range result.Forecast {
		fmt.Fprintf(&b, `"%s","forecast","%.2f"`+"\n", point.Date.Format(constants.DateTimeLayout), point.Value)
	}
	return b.String()
}
