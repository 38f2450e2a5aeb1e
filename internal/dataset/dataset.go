// Package dataset loads and holds the immutable historical sales records that
// every pipeline run reads from.
package dataset

import (
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/sales-forecast/internal/config"
	"github.com/iwvelando/sales-forecast/pkg/constants"
	"go.uber.org/zap"
)

// ErrEmptySource indicates the loaded dataset contains zero records. This is
// fatal to the pipeline; nothing downstream can run without data.
var ErrEmptySource = errors.New("dataset contains no records")

// Record is one historical sales transaction. Records are immutable once
// loaded; Year and Month are derived from Date once at load time.
type Record struct {
	Country string
	Client  string
	Product string
	Date    time.Time
	Amount  float64

	Year  int
	Month time.Month
}

// Store is a read-only handle over the loaded records. It is created once at
// process start and shared across pipeline runs; it is never mutated after
// construction, so concurrent readers need no locking.
type Store struct {
	records []Record
}

// NewStore validates the records, caches their derived date fields, and wraps
// them in a Store. Returns ErrEmptySource when no records are present.
func NewStore(records []Record) (*Store, error) {
	if len(records) == 0 {
		return nil, ErrEmptySource
	}
	for i := range records {
		records[i].Year = records[i].Date.Year()
		records[i].Month = records[i].Date.Month()
	}
	return &Store{records: records}, nil
}

// Records returns the full record set.
func (s *Store) Records() []Record {
	return s.records
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	return len(s.records)
}

// Load reads the dataset described by the configuration using the configured
// backend and returns a validated Store.
func Load(logger *zap.Logger, cfg config.DatasetConfig) (*Store, error) {
	switch cfg.Backend {
	case "", constants.DatasetBackendCSV:
		return LoadCSV(logger, cfg.Path)
	case constants.DatasetBackendSQLite:
		return LoadSQLite(logger, cfg.Path, cfg.Table)
	default:
		return nil, fmt.Errorf("unsupported dataset backend %q", cfg.Backend)
	}
}
