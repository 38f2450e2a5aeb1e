// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/sales-forecast/internal/dataset"
	"github.com/iwvelando/sales-forecast/pkg/constants"
	"github.com/iwvelando/sales-forecast/pkg/datetime"
)

// NewRecord builds a Record with the derived date fields populated, so tests
// can feed records to the pipeline without going through a Store.
func NewRecord(country, client, product, date string, amount float64) dataset.Record {
	t := datetime.MustParseTime(constants.DateOnlyLayout, date)
	return dataset.Record{
		Country: country,
		Client:  client,
		Product: product,
		Date:    t,
		Amount:  amount,
		Year:    t.Year(),
		Month:   t.Month(),
	}
}

// MustStore wraps records in a Store and fails the test on error.
func MustStore(t *testing.T, records []dataset.Record) *dataset.Store {
	t.Helper()
	store, err := dataset.NewStore(records)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}
