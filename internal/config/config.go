package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bank.yaml configuration.
type Config struct {
	Storage  StorageConfig      `yaml:"storage"`
	Exchange ExchangeConfig     `yaml:"exchange"`
	Credit   CreditConfig       `yaml:"credit"`
	Deposit  DepositConfig      `yaml:"deposit"`
	Account  AccountConfig      `yaml:"account"`
	Market   map[string]float64 `yaml:"market"`
}

// StorageConfig locates the snapshot file.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ExchangeConfig holds the fixed, spread-free UAH-per-USD rate.
type ExchangeConfig struct {
	Rate float64 `yaml:"rate"`
}

// CreditConfig defines credit line terms.
type CreditConfig struct {
	OriginationFee float64 `yaml:"origination_fee"` // fraction of principal
	TermSeconds    int     `yaml:"term_seconds"`
	PenaltyRate    float64 `yaml:"penalty_rate"` // per missed interval
}

// DepositConfig defines time-locked deposit terms.
type DepositConfig struct {
	TermSeconds int     `yaml:"term_seconds"`
	Rate        float64 `yaml:"rate"` // payout interest fraction
}

// AccountConfig controls new-account provisioning.
type AccountConfig struct {
	OpeningBalanceUSD float64 `yaml:"opening_balance_usd"`
}

// Load reads a bank.yaml file from disk. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the stock terms: 41.5 UAH/USD, 5% origination on a 600 s
// credit term with 10% penalty per missed interval, 120 s deposits at +5%,
// and a 1000 USD opening balance.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: "bank_data.json",
		},
		Exchange: ExchangeConfig{
			Rate: 41.5,
		},
		Credit: CreditConfig{
			OriginationFee: 0.05,
			TermSeconds:    600,
			PenaltyRate:    0.10,
		},
		Deposit: DepositConfig{
			TermSeconds: 120,
			Rate:        0.05,
		},
		Account: AccountConfig{
			OpeningBalanceUSD: 1000,
		},
		Market: map[string]float64{
			"BTC": 88079.58,
			"ETH": 2987.31,
			"XRP": 1.86,
			"SOL": 125.07,
		},
	}
}
