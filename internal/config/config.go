// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"duct-cost/core/pricing"
	"duct-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains rate overrides and the part-number catalog
	Pricing PricingConfig `json:"pricing"`

	// Report contains report header settings
	Report ReportConfig `json:"report"`

	// Workers bounds concurrent row processing; 0 means one per CPU
	Workers int `json:"workers"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// Rates overrides the built-in rate table; zero keeps the default
	Rates RatesConfig `json:"rates"`

	// Catalog maps part numbers to ready-made piece rates
	Catalog map[string]CatalogEntry `json:"catalog,omitempty"`
}

// RatesConfig mirrors the pricelist rate table
type RatesConfig struct {
	SheetMetalM2       float64 `json:"sheet_metal_m2"`
	Flange             float64 `json:"flange"`
	PipeMetalM2        float64 `json:"pipe_metal_m2"`
	PipeFittingMetalM2 float64 `json:"pipe_fitting_metal_m2"`
	PipeFittingPiece   float64 `json:"pipe_fitting_piece"`
}

// CatalogEntry is one configured part-number rate
type CatalogEntry struct {
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

// ReportConfig contains report header settings
type ReportConfig struct {
	// PageHeader is printed at the top of every report page
	PageHeader string `json:"page_header"`

	// Author fills the "vypracoval:" line of the header box
	Author string `json:"author"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Pricelist builds the pricelist described by the configuration:
// the default rate table with any configured overrides and catalog.
func (c *Config) Pricelist() *pricing.Pricelist {
	pl := pricing.Default()

	override := func(dst *decimal.Decimal, v float64) {
		if v > 0 {
			*dst = decimal.NewFromFloat(v)
		}
	}
	override(&pl.SheetMetalM2, c.Pricing.Rates.SheetMetalM2)
	override(&pl.Flange, c.Pricing.Rates.Flange)
	override(&pl.PipeMetalM2, c.Pricing.Rates.PipeMetalM2)
	override(&pl.PipeFittingMetalM2, c.Pricing.Rates.PipeFittingMetalM2)
	override(&pl.PipeFittingPiece, c.Pricing.Rates.PipeFittingPiece)

	if len(c.Pricing.Catalog) == 0 {
		return pl
	}
	catalog := make(map[string]pricing.Rate, len(c.Pricing.Catalog))
	for pn, entry := range c.Pricing.Catalog {
		catalog[pn] = pricing.Rate{
			Price: decimal.NewFromFloat(entry.Price),
			Unit:  entry.Unit,
		}
	}
	return pl.WithCatalog(catalog)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
