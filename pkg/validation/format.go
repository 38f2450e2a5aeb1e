// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/sales-forecast/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateDatasetBackend checks if the dataset backend is supported. An empty
// backend is valid and defaults to csv.
func ValidateDatasetBackend(backend string) error {
	switch backend {
	case "", constants.DatasetBackendCSV, constants.DatasetBackendSQLite:
		return nil
	default:
		return fmt.Errorf("expected dataset backend of %s or %s, got %s",
			constants.DatasetBackendCSV, constants.DatasetBackendSQLite, backend)
	}
}
