// Package config loads the cb settings from a .env file, the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application settings.
type Config struct {
	Currency string // display currency, ISO 4217 code
	ChartDir string // folder where charts are written
	LogLevel string // logrus level name
	Style    string // glamour style used to print markdown ("auto", "dark", "light", "notty", ...)
}

// Load reads the optional .env file in the working directory, then the
// environment. Unset variables keep their default.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is like Load but reads the given env file. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg := Config{
		Currency: "PLN",
		ChartDir: ".",
		LogLevel: "warning",
		Style:    "auto",
	}

	if v := os.Getenv("CASHBOOK_CURRENCY"); len(v) != 0 {
		cfg.Currency = v
	}
	if v := os.Getenv("CASHBOOK_CHART_DIR"); len(v) != 0 {
		cfg.ChartDir = v
	}
	if v := os.Getenv("CASHBOOK_LOG_LEVEL"); len(v) != 0 {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CASHBOOK_STYLE"); len(v) != 0 {
		cfg.Style = v
	}
	return &cfg, nil
}

// SetFlags registers flags that override the loaded values.
func (c *Config) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Currency, "currency", c.Currency, "Display currency (ISO 4217 code), env CASHBOOK_CURRENCY")
	f.StringVar(&c.ChartDir, "chart-dir", c.ChartDir, "Folder where charts are written, env CASHBOOK_CHART_DIR")
	f.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warning, error), env CASHBOOK_LOG_LEVEL")
	f.StringVar(&c.Style, "style", c.Style, "Markdown style (auto, dark, light, notty), env CASHBOOK_STYLE")
}

// Validate checks the settings and reports all failures at once.
func (c *Config) Validate() error {
	var errs error
	if money.GetCurrency(c.Currency) == nil {
		errs = errors.Join(errs, fmt.Errorf("unknown currency %q", c.Currency))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = errors.Join(errs, err)
	}
	if c.ChartDir == "" {
		errs = errors.Join(errs, errors.New("chart directory is empty"))
	}
	return errs
}
