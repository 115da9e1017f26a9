package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dji357a-gif/BANK1/internal/config"
)

// writeTestConfig points the store at a file inside the test's temp dir.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(dir, "bank_data.json")
	path := filepath.Join(dir, "bank.yaml")
	require.NoError(t, config.Save(path, cfg))
	return path
}

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", configPath))
	err := cmd.Execute()
	return out.String(), err
}

func TestRegisterAndBalance(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := run(t, cfgPath, "register", "--user", "alice", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, `Account "alice" created`)
	assert.Contains(t, out, "$1,000.00")

	out, err = run(t, cfgPath, "balance", "--user", "alice", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "USD: $1,000.00")
}

func TestRegister_Duplicate(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := run(t, cfgPath, "register", "--user", "alice", "--password", "pw")
	require.NoError(t, err)
	_, err = run(t, cfgPath, "register", "--user", "alice", "--password", "pw")
	require.Error(t, err)
}

func TestAuthenticatedCommand_WrongPassword(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := run(t, cfgPath, "register", "--user", "alice", "--password", "pw")
	require.NoError(t, err)
	_, err = run(t, cfgPath, "balance", "--user", "alice", "--password", "nope")
	require.Error(t, err)
}

func TestTransferBetweenAccounts(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := run(t, cfgPath, "register", "--user", "alice", "--password", "pw")
	require.NoError(t, err)
	out, err := run(t, cfgPath, "register", "--user", "bob", "--password", "pw")
	require.NoError(t, err)

	// Scrape bob's card from the register output.
	var card string
	for _, line := range bytes.Split([]byte(out), []byte("\n")) {
		if bytes.HasPrefix(line, []byte("Card:")) {
			card = string(bytes.TrimSpace(bytes.TrimPrefix(line, []byte("Card:"))))
		}
	}
	require.NotEmpty(t, card)

	out, err = run(t, cfgPath, "transfer", card, "250", "--user", "alice", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Sent $250.00 to bob")

	out, err = run(t, cfgPath, "balance", "--user", "bob", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "USD: $1,250.00")
}

func TestQuotes_NoAuthNeeded(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := run(t, cfgPath, "quotes")
	require.NoError(t, err)
	assert.Contains(t, out, "BTC")
	assert.Contains(t, out, "XRP")
}

func TestTransfer_BadAmount(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := run(t, cfgPath, "register", "--user", "alice", "--password", "pw")
	require.NoError(t, err)
	_, err = run(t, cfgPath, "register", "--user", "bob", "--password", "pw")
	require.NoError(t, err)

	_, err = run(t, cfgPath, "transfer", "0000000000000000", "abc", "--user", "alice", "--password", "pw")
	require.Error(t, err)
}
