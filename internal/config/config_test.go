package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/sales-forecast/pkg/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
dataset:
  path: data/sales.csv
  backend: csv
filters:
  countries:
    - US
    - MX
  clients:
    - Acme
logging:
  level: debug
  format: console
output:
  format: csv
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Dataset.Path != "data/sales.csv" {
		t.Errorf("Dataset.Path = %s, expected data/sales.csv", conf.Dataset.Path)
	}
	if conf.Dataset.Backend != constants.DatasetBackendCSV {
		t.Errorf("Dataset.Backend = %s, expected csv", conf.Dataset.Backend)
	}
	if len(conf.Filters.Countries) != 2 || conf.Filters.Countries[0] != "US" {
		t.Errorf("Filters.Countries = %v, expected [US MX]", conf.Filters.Countries)
	}
	if len(conf.Filters.Clients) != 1 || conf.Filters.Clients[0] != "Acme" {
		t.Errorf("Filters.Clients = %v, expected [Acme]", conf.Filters.Clients)
	}
	if len(conf.Filters.Products) != 0 {
		t.Errorf("Filters.Products = %v, expected empty", conf.Filters.Products)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != constants.OutputFormatCSV {
		t.Errorf("Output.Format = %s, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadConfiguration() error = nil, expected an error for a missing file")
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		conf     Configuration
		warnings int
		contains string
	}{
		{
			name: "Valid csv configuration",
			conf: Configuration{
				Dataset: DatasetConfig{Path: "data/sales.csv", Backend: "csv"},
			},
			warnings: 0,
		},
		{
			name:     "Empty dataset path",
			conf:     Configuration{},
			warnings: 1,
			contains: "dataset path is empty",
		},
		{
			name: "Unknown backend",
			conf: Configuration{
				Dataset: DatasetConfig{Path: "data.bin", Backend: "parquet"},
			},
			warnings: 1,
			contains: "unknown dataset backend",
		},
		{
			name: "Table ignored for csv backend",
			conf: Configuration{
				Dataset: DatasetConfig{Path: "data/sales.csv", Table: "sales"},
			},
			warnings: 1,
			contains: "ignored for the csv backend",
		},
		{
			name: "Unknown output format",
			conf: Configuration{
				Dataset: DatasetConfig{Path: "data/sales.csv"},
				Output:  OutputConfig{Format: "xml"},
			},
			warnings: 1,
			contains: "unknown output format",
		},
		{
			name: "SQLite backend with table",
			conf: Configuration{
				Dataset: DatasetConfig{Path: "data/sales.db", Backend: "sqlite", Table: "sales"},
			},
			warnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if len(warnings) != tt.warnings {
				t.Fatalf("ValidateConfiguration() returned %d warnings (%v), expected %d", len(warnings), warnings, tt.warnings)
			}
			if tt.contains != "" && !strings.Contains(strings.Join(warnings, "\n"), tt.contains) {
				t.Errorf("warnings %v do not mention %q", warnings, tt.contains)
			}
		})
	}
}
