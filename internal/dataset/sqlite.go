package dataset

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/iwvelando/sales-forecast/pkg/constants"
	"github.com/iwvelando/sales-forecast/pkg/datetime"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// LoadSQLite reads records from a SQLite database file. The table must expose
// country, client, product, date, and amount columns; the date column is
// stored as text in one of the supported layouts.
func LoadSQLite(logger *zap.Logger, path, table string) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	if table == "" {
		table = constants.DefaultSQLiteTable
	}
	if !validTableName(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("failed to close dataset database",
				zap.String("op", "dataset.LoadSQLite"),
				zap.Error(closeErr),
			)
		}
	}()

	// The table name is validated above; SQLite placeholders cannot bind
	// identifiers.
	query := fmt.Sprintf("SELECT country, client, product, date, amount FROM %s", table)
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []Record
	for rows.Next() {
		var country, client, product, dateStr sql.NullString
		var amount float64
		if err := rows.Scan(&country, &client, &product, &dateStr, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		date, err := datetime.ParseRecordDate(dateStr.String)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(records)+1, err)
		}

		records = append(records, Record{
			Country: country.String,
			Client:  client.String,
			Product: product.String,
			Date:    date,
			Amount:  amount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	store, err := NewStore(records)
	if err != nil {
		return nil, err
	}

	logger.Info("dataset loaded",
		zap.String("op", "dataset.LoadSQLite"),
		zap.String("path", path),
		zap.String("table", table),
		zap.Int("records", store.Len()),
		zap.Duration("duration", time.Since(start)),
	)
	return store, nil
}

// validTableName accepts plain SQL identifiers only.
func validTableName(table string) bool {
	for i, c := range table {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(table) > 0
}
