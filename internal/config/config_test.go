package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "bank_data.json", cfg.Storage.Path)
	assert.Equal(t, 41.5, cfg.Exchange.Rate)
	assert.Equal(t, 0.05, cfg.Credit.OriginationFee)
	assert.Equal(t, 600, cfg.Credit.TermSeconds)
	assert.Equal(t, 0.10, cfg.Credit.PenaltyRate)
	assert.Equal(t, 120, cfg.Deposit.TermSeconds)
	assert.Equal(t, 0.05, cfg.Deposit.Rate)
	assert.Equal(t, float64(1000), cfg.Account.OpeningBalanceUSD)
	assert.Equal(t, 88079.58, cfg.Market["BTC"])
	assert.Len(t, cfg.Market, 4)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")

	cfg := Default()
	cfg.Exchange.Rate = 40.0
	cfg.Storage.Path = "/tmp/other.json"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, loaded.Exchange.Rate)
	assert.Equal(t, "/tmp/other.json", loaded.Storage.Path)
	assert.Equal(t, 600, loaded.Credit.TermSeconds)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exchange:\n  rate: 39.9\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 39.9, cfg.Exchange.Rate)
	assert.Equal(t, "bank_data.json", cfg.Storage.Path)
	assert.Equal(t, 0.05, cfg.Credit.OriginationFee)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{invalid"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
