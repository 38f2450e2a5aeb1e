// Package constants provides shared constants for the sales-forecast application.
package constants

// DateTimeLayout is the canonical year-month format used in output tables.
const DateTimeLayout = "2006-01"

// DateOnlyLayout is the primary layout expected for the dataset date column.
const DateOnlyLayout = "2006-01-02"

// MonthsPerYear is the number of months in a year.
const MonthsPerYear = 12

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Dataset backend constants
const (
	// DatasetBackendCSV loads records from a CSV file
	DatasetBackendCSV = "csv"

	// DatasetBackendSQLite loads records from a SQLite database file
	DatasetBackendSQLite = "sqlite"

	// DefaultSQLiteTable is the table queried when none is configured
	DefaultSQLiteTable = "sales"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultShutdownTimeout is the default grace period for draining requests
	DefaultShutdownTimeout = "10s"
)

// DecimalPrecision is the precision for two-decimal rounding in comparisons.
const DecimalPrecision = 100

// AmountTolerance is the tolerance for comparing summed amounts.
const AmountTolerance = 0.01
