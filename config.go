package swc

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Bulk file formats.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// DefaultBulkFileBaseURL is where the published bulk data exports live.
const DefaultBulkFileBaseURL = "https://raw.githubusercontent.com/sportsworldcentral/portfolio-project/main/bulk/"

// Config holds the client settings. It is a plain value object: the client
// copies what it needs at construction and never mutates it afterwards.
//
// Environment variables are parsed from the SWC_ prefix by ConfigFromEnv.
type Config struct {
	// BaseURL is the root of the SWC API, e.g. "https://api.sportsworldcentral.com".
	BaseURL string `envconfig:"BASE_URL"`

	// Backoff enables automatic retry of failed calls.
	Backoff bool `envconfig:"BACKOFF" default:"true"`

	// BackoffMaxSeconds bounds the cumulative time spent retrying a single
	// call. It is the sole termination criterion; there is no attempt cap.
	BackoffMaxSeconds int `envconfig:"BACKOFF_MAX_TIME" default:"30"`

	// BulkFileFormat selects the bulk export flavor, "csv" or "parquet".
	// Anything that is not "parquet" (case-insensitive) resolves to csv.
	BulkFileFormat string `envconfig:"BULK_FILE_FORMAT" default:"csv"`

	// BulkFileBaseURL is the root URL for bulk data files.
	BulkFileBaseURL string `envconfig:"BULK_FILE_BASE_URL"`
}

// ConfigFromEnv loads a Config from SWC_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("swc", &cfg); err != nil {
		return Config{}, fmt.Errorf("process swc environment: %w", err)
	}
	return cfg, nil
}

// fileFormat resolves the configured bulk format, defaulting to csv for any
// value other than "parquet".
func (c Config) fileFormat() string {
	if strings.EqualFold(c.BulkFileFormat, FormatParquet) {
		return FormatParquet
	}
	return FormatCSV
}

// bulkBaseURL returns the configured bulk root, falling back to the
// published default.
func (c Config) bulkBaseURL() string {
	if c.BulkFileBaseURL != "" {
		return c.BulkFileBaseURL
	}
	return DefaultBulkFileBaseURL
}
