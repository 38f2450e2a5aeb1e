package testutil

import (
	"testing"
	"time"

	"github.com/iwvelando/sales-forecast/internal/dataset"
)

func TestNewRecord(t *testing.T) {
	record := NewRecord("US", "Acme", "Widget", "2023-07-15", 42.5)

	if record.Country != "US" || record.Client != "Acme" || record.Product != "Widget" {
		t.Errorf("categoricals = (%s, %s, %s)", record.Country, record.Client, record.Product)
	}
	if record.Amount != 42.5 {
		t.Errorf("Amount = %v, expected 42.5", record.Amount)
	}
	if record.Year != 2023 {
		t.Errorf("Year = %d, expected 2023", record.Year)
	}
	if record.Month != time.July {
		t.Errorf("Month = %s, expected July", record.Month)
	}
}

func TestMustStore(t *testing.T) {
	store := MustStore(t, []dataset.Record{
		NewRecord("US", "Acme", "Widget", "2023-07-15", 1),
	})
	if store.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", store.Len())
	}
}
