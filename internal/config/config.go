// Package config reads environment-driven settings, with optional .env
// file support for local runs.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment-driven setting. Output paths are
// defaults; command flags override them per run.
type Config struct {
	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`
	Model         string `envconfig:"EXTRACTO_MODEL" default:"gemini-1.5-flash"`
	MonthlyIncome int64  `envconfig:"EXTRACTO_MONTHLY_INCOME" default:"15000000"`
	CleanPath     string `envconfig:"EXTRACTO_CLEAN_PATH" default:"statements/clean.xlsx"`
	SummaryPath   string `envconfig:"EXTRACTO_SUMMARY_PATH" default:"statements/summary.xlsx"`
	ReportPath    string `envconfig:"EXTRACTO_REPORT_PATH" default:"financial_analysis_report.pdf"`
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}

// ValidateForAnalyze checks the settings the analyze pipeline cannot start
// without. The clean pipeline needs no credential and skips this.
func (c *Config) ValidateForAnalyze() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	if c.MonthlyIncome <= 0 {
		return fmt.Errorf("EXTRACTO_MONTHLY_INCOME must be positive, got %d", c.MonthlyIncome)
	}
	return nil
}
