package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the hl configuration, read from the environment.
type Config struct {
	// LedgerFile is the journal used when no file is given on the command line.
	LedgerFile string `env:"HL_LEDGER_FILE" envDefault:"main.journal"`

	// Logging
	LogLevel  string `env:"HL_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"HL_LOG_FORMAT" envDefault:"console"`

	// Style is the glamour style used to render markdown: auto, dark, light, notty or ascii.
	Style string `env:"HL_STYLE" envDefault:"auto"`
}

// LoadConfig loads the configuration from environment variables. Variables
// missing from the environment are read from the .env file of the current
// directory, if any, or from the given env file.
func LoadConfig(envFile ...string) (*Config, error) {
	if len(envFile) > 0 && envFile[0] != "" {
		if err := godotenv.Load(envFile[0]); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// defaultConfig returns the configuration used before Setup runs.
func defaultConfig() *Config {
	return &Config{
		LedgerFile: "main.journal",
		LogLevel:   "warn",
		LogFormat:  "console",
		Style:      "auto",
	}
}
