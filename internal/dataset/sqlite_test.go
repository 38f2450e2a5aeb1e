package dataset

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func writeTestDatabase(t *testing.T, table string, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.Exec("CREATE TABLE " + table + " (country TEXT, client TEXT, product TEXT, date TEXT, amount REAL)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	for _, row := range rows {
		if _, err := db.Exec("INSERT INTO "+table+" (country, client, product, date, amount) VALUES (?, ?, ?, ?, ?)", row...); err != nil {
			t.Fatalf("failed to insert row: %v", err)
		}
	}
	return path
}

func TestLoadSQLite(t *testing.T) {
	path := writeTestDatabase(t, "sales", [][]interface{}{
		{"US", "Acme", "Widget", "2023-01-15", 100.5},
		{"MX", "Bolt", "Gadget", "2023-02-20", 49.5},
	})

	store, err := LoadSQLite(zap.NewNop(), path, "")
	if err != nil {
		t.Fatalf("LoadSQLite() error = %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("store holds %d records, expected 2", store.Len())
	}

	first := store.Records()[0]
	if first.Country != "US" || first.Client != "Acme" || first.Product != "Widget" {
		t.Errorf("first record categoricals = (%s, %s, %s)", first.Country, first.Client, first.Product)
	}
	if first.Amount != 100.5 {
		t.Errorf("first record amount = %.2f, expected 100.50", first.Amount)
	}
	if first.Year != 2023 || first.Month != time.January {
		t.Errorf("derived fields = (%d, %s), expected (2023, January)", first.Year, first.Month)
	}
}

func TestLoadSQLiteCustomTable(t *testing.T) {
	path := writeTestDatabase(t, "transactions", [][]interface{}{
		{"US", "Acme", "Widget", "2023-01-15", 10.0},
	})

	store, err := LoadSQLite(zap.NewNop(), path, "transactions")
	if err != nil {
		t.Fatalf("LoadSQLite() error = %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("store holds %d records, expected 1", store.Len())
	}
}

func TestLoadSQLiteEmptySource(t *testing.T) {
	path := writeTestDatabase(t, "sales", nil)

	_, err := LoadSQLite(zap.NewNop(), path, "sales")
	if !errors.Is(err, ErrEmptySource) {
		t.Errorf("LoadSQLite() error = %v, expected ErrEmptySource", err)
	}
}

func TestLoadSQLiteInvalidTable(t *testing.T) {
	tests := []string{"sales; DROP TABLE sales", "1sales", "", "sa les"}
	for _, table := range tests {
		if table == "" {
			continue // empty falls back to the default table
		}
		if _, err := LoadSQLite(zap.NewNop(), "ignored.db", table); err == nil {
			t.Errorf("LoadSQLite() with table %q error = nil, expected an error", table)
		}
	}
}

func TestLoadSQLiteBadDate(t *testing.T) {
	path := writeTestDatabase(t, "sales", [][]interface{}{
		{"US", "Acme", "Widget", "not-a-date", 10.0},
	})

	if _, err := LoadSQLite(zap.NewNop(), path, "sales"); err == nil {
		t.Error("LoadSQLite() error = nil, expected an error for an unparseable date")
	}
}
