// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/aristath/relocate/internal/domain"
	"github.com/aristath/relocate/internal/modules/evaluation"
)

// Config holds application configuration
type Config struct {
	DataDir        string // Base directory for the databases (always absolute)
	LogLevel       string
	Port           int
	DevMode        bool
	ReevalSchedule string // Cron spec for background grid re-evaluation; empty disables it

	// Policy holds the evaluator's assumption constants, overridable
	// via environment so deployments can tune them without a rebuild.
	Policy evaluation.Policy

	// Analysis holds the default inputs the background re-evaluation
	// job runs against. The API accepts explicit inputs per request;
	// these only feed the scheduled runs.
	Analysis AnalysisDefaults
}

// AnalysisDefaults describes the source property and horizon used by
// scheduled background runs.
type AnalysisDefaults struct {
	Source       domain.SourceProperty
	FallbackRent float64
	HorizonYears int
}

// Load reads configuration from the environment (and .env, if present).
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("RELOCATE_DATA_DIR", "")
	if dataDir == "" {
		dataDir = "./data"
	}

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	policy := evaluation.DefaultPolicy()
	policy.ClosingCostRate = getEnvAsFloat("POLICY_CLOSING_COST_RATE", policy.ClosingCostRate)
	policy.DefaultLoanRate = getEnvAsFloat("POLICY_DEFAULT_LOAN_RATE", policy.DefaultLoanRate)
	policy.DefaultMonthlyIncome = getEnvAsFloat("POLICY_DEFAULT_MONTHLY_INCOME", policy.DefaultMonthlyIncome)
	policy.InsuranceWaiverPct = getEnvAsFloat("POLICY_INSURANCE_WAIVER_PCT", policy.InsuranceWaiverPct)
	policy.LoanTermYears = getEnvAsInt("POLICY_LOAN_TERM_YEARS", policy.LoanTermYears)
	policy.MaxDebtToIncome = getEnvAsFloat("POLICY_MAX_DTI", policy.MaxDebtToIncome)

	cfg := &Config{
		DataDir:        absDataDir,
		Port:           getEnvAsInt("PORT", 8080),
		DevMode:        getEnvAsBool("DEV_MODE", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ReevalSchedule: getEnv("REEVAL_SCHEDULE", ""),
		Policy:         policy,
		Analysis: AnalysisDefaults{
			Source: domain.SourceProperty{
				MarketValue:     getEnvAsFloat("SOURCE_MARKET_VALUE", 0),
				MonthlyRent:     getEnvAsFloat("SOURCE_MONTHLY_RENT", 0),
				ExchangeRate:    getEnvAsFloat("SOURCE_EXCHANGE_RATE", 1),
				SellingCostRate: getEnvAsFloat("SOURCE_SELLING_COST_RATE", 0),
			},
			FallbackRent: getEnvAsFloat("ANALYSIS_FALLBACK_RENT", 0),
			HorizonYears: getEnvAsInt("ANALYSIS_HORIZON_YEARS", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Policy.LoanTermYears <= 0 {
		return fmt.Errorf("loan term must be positive, got %d", c.Policy.LoanTermYears)
	}
	if c.Analysis.Source.ExchangeRate == 0 {
		return fmt.Errorf("source exchange rate must be non-zero")
	}
	if c.Analysis.HorizonYears <= 0 {
		return fmt.Errorf("analysis horizon must be positive, got %d", c.Analysis.HorizonYears)
	}
	return nil
}

// CatalogDBPath returns the path of the catalog database.
func (c *Config) CatalogDBPath() string {
	return filepath.Join(c.DataDir, "catalog.db")
}

// SnapshotsDBPath returns the path of the snapshots database.
func (c *Config) SnapshotsDBPath() string {
	return filepath.Join(c.DataDir, "snapshots.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
