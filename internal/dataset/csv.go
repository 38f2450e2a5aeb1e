package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/sales-forecast/pkg/datetime"
	"go.uber.org/zap"
)

// requiredColumns are the header names the CSV loader looks for, matched
// case-insensitively.
var requiredColumns = []string{"country", "client", "product", "date", "amount"}

// LoadCSV reads a CSV file with a header row into a Store.
func LoadCSV(logger *zap.Logger, path string) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("failed to close dataset file",
				zap.String("op", "dataset.LoadCSV"),
				zap.Error(closeErr),
			)
		}
	}()

	records, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	store, err := NewStore(records)
	if err != nil {
		return nil, err
	}

	logger.Info("dataset loaded",
		zap.String("op", "dataset.LoadCSV"),
		zap.String("path", path),
		zap.Int("records", store.Len()),
		zap.Duration("duration", time.Since(start)),
	)
	return store, nil
}

// ReadCSV parses CSV content into records. The first row must be a header
// containing the country, client, product, date, and amount columns in any
// order; extra columns are ignored.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line+1, err)
		}
		line++

		record, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// mapHeader resolves the index of each required column.
func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if _, exists := columns[normalized]; !exists {
			columns[normalized] = i
		}
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column %q in header", name)
		}
	}
	return columns, nil
}

func parseRow(row []string, columns map[string]int) (Record, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, err := datetime.ParseRecordDate(field("date"))
	if err != nil {
		return Record{}, err
	}

	amountStr := field("amount")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid amount %q", amountStr)
	}

	// Missing categorical values load as empty strings; they are excluded
	// from option lists but still participate in filtering and sums.
	return Record{
		Country: field("country"),
		Client:  field("client"),
		Product: field("product"),
		Date:    date,
		Amount:  amount,
	}, nil
}
