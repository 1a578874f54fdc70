package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/signalforge/analytics/models"
)

// Config holds the analyzer's runtime configuration. The engine itself
// takes an explicit AnalysisConfig; everything here belongs to the CLI
// collaborator around it.
type Config struct {
	Symbol          string
	BarsFile        string
	OutFile         string
	LogLevel        string
	BatteryFile     string
	BacktestHorizon int
}

// Load initializes configuration from environment variables, reading a
// .env file first when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		Symbol:          getEnvWithDefault("SYMBOL", ""),
		BarsFile:        getEnvWithDefault("BARS_FILE", ""),
		OutFile:         getEnvWithDefault("OUT_FILE", ""),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		BatteryFile:     getEnvWithDefault("ANALYSIS_CONFIG", ""),
		BacktestHorizon: getEnvIntWithDefault("BACKTEST_HORIZON", models.DefaultBacktestHorizon),
	}
	return cfg, nil
}

// AnalysisConfig builds the engine configuration: the default battery,
// overlaid with the YAML battery file when one is configured, with the
// backtest horizon from the environment applied on top.
func (c *Config) AnalysisConfig() (models.AnalysisConfig, error) {
	cfg := models.DefaultAnalysisConfig()

	if c.BatteryFile != "" {
		raw, err := os.ReadFile(c.BatteryFile)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, err
		}
	}

	if c.BacktestHorizon > 0 {
		cfg.BacktestHorizon = c.BacktestHorizon
	}
	return cfg, cfg.Validate()
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
