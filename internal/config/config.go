// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/sales-forecast/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for sales-forecast.
type Configuration struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Filters FilterConfig  `yaml:"filters,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// DatasetConfig describes where the historical sales records are loaded from.
type DatasetConfig struct {
	Path    string `yaml:"path"`
	Backend string `yaml:"backend,omitempty"` // csv, sqlite
	Table   string `yaml:"table,omitempty"`   // sqlite table name
}

// FilterConfig holds the default selections applied by the CLI. Empty lists
// impose no constraint on their dimension.
type FilterConfig struct {
	Countries []string `yaml:"countries,omitempty"`
	Clients   []string `yaml:"clients,omitempty"`
	Products  []string `yaml:"products,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks the configuration for conditions that do not
// prevent startup but likely indicate a mistake, and returns them as warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Dataset.Path == "" {
		warnings = append(warnings, "dataset path is empty; loading will fail")
	}

	switch conf.Dataset.Backend {
	case "", constants.DatasetBackendCSV:
		if conf.Dataset.Table != "" {
			warnings = append(warnings, fmt.Sprintf("dataset table '%s' is ignored for the csv backend", conf.Dataset.Table))
		}
	case constants.DatasetBackendSQLite:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown dataset backend '%s'; expected %s or %s",
			conf.Dataset.Backend, constants.DatasetBackendCSV, constants.DatasetBackendSQLite))
	}

	if conf.Output.Format != "" &&
		conf.Output.Format != constants.OutputFormatPretty &&
		conf.Output.Format != constants.OutputFormatCSV {
		warnings = append(warnings, fmt.Sprintf("unknown output format '%s'", conf.Output.Format))
	}

	return warnings
}
