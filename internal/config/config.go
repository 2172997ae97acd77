// Package config manages the aldo configuration file: business and
// client metadata, payment terms, and the invoice counter. The file is
// TOML, loaded once per invocation and merged over defaults, and is the
// single durable home of the invoice number counter.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/aldosh/aldo/internal/osutil"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "aldo"
	// ConfigFile is the name of the TOML configuration file.
	ConfigFile = "config.toml"
	// ConfigDirEnv overrides the config directory location when set.
	ConfigDirEnv = "ALDO_CONFIG_DIR"
)

// Business describes the invoicing party.
type Business struct {
	Name    string `toml:"name"`
	Address string `toml:"address"`
	Email   string `toml:"email"`
	Phone   string `toml:"phone"`
	TaxID   string `toml:"tax_id"`
}

// Client describes the invoiced party.
type Client struct {
	Name          string `toml:"name"`
	Address       string `toml:"address"`
	ContactPerson string `toml:"contact_person"`
	Email         string `toml:"email"`
}

// Payment holds rate and payment terms.
type Payment struct {
	HourlyRate decimal.Decimal `toml:"hourly_rate"`
	Currency   string          `toml:"currency"`
	Terms      string          `toml:"terms"`
	BankName   string          `toml:"bank_name"`
	IBAN       string          `toml:"iban"`
}

// Invoice holds the invoice number counter and presentation settings.
// NextNumber is monotonically non-decreasing: only a confirmed invoice
// advances it, by Increment.
type Invoice struct {
	Prefix     string `toml:"prefix"`
	NextNumber int    `toml:"next_number"`
	Increment  int    `toml:"increment"`
	FooterText string `toml:"footer_text"`
}

// Config is the full application configuration.
type Config struct {
	Business Business `toml:"business"`
	Client   Client   `toml:"client"`
	Payment  Payment  `toml:"payment"`
	Invoice  Invoice  `toml:"invoice"`
}

// DefaultConfig returns the configuration used when no file exists yet.
func DefaultConfig() Config {
	return Config{
		Business: Business{
			Name:    "Your Business Name",
			Address: "Your Business Address",
			Email:   "your.email@example.com",
		},
		Client: Client{
			Name:    "Client Company Name",
			Address: "Client Address",
		},
		Payment: Payment{
			HourlyRate: decimal.NewFromInt(50),
			Currency:   "USD",
			Terms:      "Due within 30 days",
		},
		Invoice: Invoice{
			Prefix:     "INV-",
			NextNumber: 1000,
			Increment:  10,
			FooterText: "Thank you for your business!",
		},
	}
}

// GetConfigDir returns the aldo config directory, creating it if
// needed. The ALDO_CONFIG_DIR environment variable (optionally loaded
// from a .env file in the working directory) overrides the default
// XDG-style location.
func GetConfigDir() (string, error) {
	// Ignore a missing .env; it is an optional convenience.
	_ = godotenv.Load()

	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		if err := osutil.Provider.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		return dir, nil
	}

	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return appDir, nil
}

// GetConfigPath returns the path to the config file, creating the
// config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// Load reads the config file at path and merges it over the defaults,
// so a partial file keeps default values for any section it omits.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaults := DefaultConfig()
	if err := mergo.Merge(&cfg, defaults); err != nil {
		return Config{}, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	// mergo cannot reach into decimal.Decimal's unexported fields;
	// fill the rate default explicitly when the file omits it.
	if cfg.Payment.HourlyRate.IsZero() {
		cfg.Payment.HourlyRate = defaults.Payment.HourlyRate
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, or returns the
// defaults when it doesn't. Parse and validation errors are returned,
// not masked.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Save writes the config to path as TOML using the atomic
// write-temp-then-rename pattern.
func Save(path string, cfg Config) error {
	tmpPath := path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

// Validate checks the invariants the rest of the application relies on.
func (c Config) Validate() error {
	if c.Payment.HourlyRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("invalid configuration: hourly_rate must be positive, got %s", c.Payment.HourlyRate)
	}
	if c.Invoice.Increment <= 0 {
		return fmt.Errorf("invalid configuration: invoice increment must be positive, got %d", c.Invoice.Increment)
	}
	if c.Invoice.NextNumber < 0 {
		return fmt.Errorf("invalid configuration: next invoice number must not be negative, got %d", c.Invoice.NextNumber)
	}
	return nil
}
