// Package constants provides shared constants for the decision-impact application.
package constants

// Financial constants
const (
	// WeeksPerYear is the number of weeks used to convert annual figures
	// to weekly figures.
	WeeksPerYear = 52.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default scenario configuration file name
	DefaultConfigFile = "scenario.yaml"

	// ExampleConfigFile is the example scenario configuration file name
	ExampleConfigFile = "example-scenario.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size
	// for evaluate/export payloads (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
