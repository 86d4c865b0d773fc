// Package config loads service configuration from an optional YAML file,
// falling back to environment variables.
//
//	cfg := config.LoadOrEnv(os.Getenv("CONFIG_FILE"))
//	db, err := config.InitDB(cfg.Database, cfg.Logging)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"bank-reconciliation-backend/internal/services/matching"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Matching MatchingConfig `yaml:"matching"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig selects the gorm driver. Driver is "postgres" or "sqlite".
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MatchingConfig overrides the scoring policy. Nil fields keep the defaults
// from matching.DefaultConfig; a zero AutoMatchThreshold means the default.
type MatchingConfig struct {
	WindowDays         *int     `yaml:"window_days"`
	MinConfidence      *float64 `yaml:"min_confidence"`
	MaxSuggestions     *int     `yaml:"max_suggestions"`
	AutoMatchThreshold float64  `yaml:"auto_match_threshold"`
	AmountTolerance    *float64 `yaml:"amount_tolerance"`
	RelativeTolerance  *float64 `yaml:"relative_tolerance"`
	ExactAmountWeight  *float64 `yaml:"exact_amount_weight"`
	ApproxAmountWeight *float64 `yaml:"approx_amount_weight"`
	DescriptionWeight  *float64 `yaml:"description_weight"`
	ReferenceWeight    *float64 `yaml:"reference_weight"`
}

const DefaultAutoMatchThreshold = 0.9

// Load reads a YAML config file. ${VAR} references are expanded from the
// environment before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv builds the configuration from environment variables only.
func LoadFromEnv() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "postgres"),
			DSN:    os.Getenv("DATABASE_URL"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Matching: MatchingConfig{
			WindowDays:         getEnvIntPtr("MATCH_WINDOW_DAYS"),
			MinConfidence:      getEnvFloatPtr("MATCH_MIN_CONFIDENCE"),
			MaxSuggestions:     getEnvIntPtr("MATCH_MAX_SUGGESTIONS"),
			AutoMatchThreshold: getEnvFloat("AUTO_MATCH_THRESHOLD", 0),
			AmountTolerance:    getEnvFloatPtr("MATCH_AMOUNT_TOLERANCE"),
			RelativeTolerance:  getEnvFloatPtr("MATCH_RELATIVE_TOLERANCE"),
			ExactAmountWeight:  getEnvFloatPtr("MATCH_EXACT_AMOUNT_WEIGHT"),
			ApproxAmountWeight: getEnvFloatPtr("MATCH_APPROX_AMOUNT_WEIGHT"),
			DescriptionWeight:  getEnvFloatPtr("MATCH_DESCRIPTION_WEIGHT"),
			ReferenceWeight:    getEnvFloatPtr("MATCH_REFERENCE_WEIGHT"),
		},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadOrEnv tries the YAML file first and falls back to the environment.
func LoadOrEnv(path string) *Config {
	if path != "" {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	return LoadFromEnv()
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Matching.AutoMatchThreshold == 0 {
		c.Matching.AutoMatchThreshold = DefaultAutoMatchThreshold
	}
}

// MatchingPolicy merges the overrides into the default scoring policy.
func (c MatchingConfig) MatchingPolicy() matching.Config {
	policy := matching.DefaultConfig()
	if c.WindowDays != nil {
		policy.WindowDays = *c.WindowDays
	}
	if c.MinConfidence != nil {
		policy.MinConfidence = *c.MinConfidence
	}
	if c.MaxSuggestions != nil {
		policy.MaxSuggestions = *c.MaxSuggestions
	}
	if c.AmountTolerance != nil {
		policy.AmountTolerance = decimal.NewFromFloat(*c.AmountTolerance)
	}
	if c.RelativeTolerance != nil {
		policy.RelativeTolerance = decimal.NewFromFloat(*c.RelativeTolerance)
	}
	if c.ExactAmountWeight != nil {
		policy.ExactAmountWeight = *c.ExactAmountWeight
	}
	if c.ApproxAmountWeight != nil {
		policy.ApproxAmountWeight = *c.ApproxAmountWeight
	}
	if c.DescriptionWeight != nil {
		policy.DescriptionWeight = *c.DescriptionWeight
	}
	if c.ReferenceWeight != nil {
		policy.ReferenceWeight = *c.ReferenceWeight
	}
	return policy
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvIntPtr returns nil when key is unset or not an integer.
func getEnvIntPtr(key string) *int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return &n
		}
	}
	return nil
}

func getEnvFloat(key string, fallback float64) float64 {
	if f := getEnvFloatPtr(key); f != nil {
		return *f
	}
	return fallback
}

func getEnvFloatPtr(key string) *float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return &f
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
