// Package config provides the unified configuration for the hospital
// administration system. A single Config structure covers the data
// directory holding the CSV files, billing parameters, and logging.
package config

import (
	"fmt"
	"path/filepath"
)

// Config is the top-level configuration structure.
type Config struct {
	// DataDir is the directory containing the backing CSV files
	DataDir string `yaml:"data_dir" json:"data_dir" mapstructure:"data_dir"`

	// Billing holds invoice arithmetic parameters
	Billing BillingConfig `yaml:"billing" json:"billing" mapstructure:"billing"`

	// Logging controls log output
	Logging LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// BillingConfig contains invoice-related settings.
type BillingConfig struct {
	// TaxRate applied on top of the invoice total (e.g. 0.09 for 9%)
	TaxRate float64 `yaml:"tax_rate" json:"tax_rate" mapstructure:"tax_rate"`

	// ServiceFees maps an appointment service name to its base fee
	ServiceFees map[string]float64 `yaml:"service_fees" json:"service_fees" mapstructure:"service_fees"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level sets logging verbosity (debug, info, warn, error)
	Level string `yaml:"level" json:"level" mapstructure:"level"`

	// Encoding selects the output format (json or console)
	Encoding string `yaml:"encoding" json:"encoding" mapstructure:"encoding"`

	// Development enables colored, stack-traced output
	Development bool `yaml:"development" json:"development" mapstructure:"development"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DataDir: "data",
		Billing: BillingConfig{
			TaxRate: 0.09,
			ServiceFees: map[string]float64{
				"CONSULTATION": 50.00,
				"XRAY":         120.00,
				"LABTEST":      80.00,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Validate validates the configuration for correctness.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Billing.TaxRate < 0 {
		return fmt.Errorf("tax_rate cannot be negative")
	}
	for service, fee := range c.Billing.ServiceFees {
		if fee < 0 {
			return fmt.Errorf("service fee for %s cannot be negative", service)
		}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}

// FilePath resolves the backing file name for one record type against
// the configured data directory.
func (c *Config) FilePath(name string) string {
	return filepath.Join(c.DataDir, name)
}

// ServiceFee returns the configured fee for a service, or zero when the
// service has no entry.
func (b *BillingConfig) ServiceFee(service string) float64 {
	return b.ServiceFees[service]
}
