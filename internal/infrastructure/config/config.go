package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	// Audit trail
	AuditLogPath string `env:"AUDIT_LOG_PATH" envDefault:"log.txt"`

	// Account defaults
	BranchCode             string `env:"BRANCH_CODE"              envDefault:"0001"`
	DefaultWithdrawalLimit string `env:"DEFAULT_WITHDRAWAL_LIMIT" envDefault:"500"`
	DefaultMaxWithdrawals  int    `env:"DEFAULT_MAX_WITHDRAWALS"  envDefault:"3"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithdrawalLimit parses the configured default per-withdrawal cap.
func (c *Config) WithdrawalLimit() (decimal.Decimal, error) {
	return decimal.NewFromString(c.DefaultWithdrawalLimit)
}
