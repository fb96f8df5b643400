package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/learnledger/api/internal/config"
	"github.com/forgo/learnledger/api/pkg/ethrpc"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: slog.LevelWarn, Format: "json"}).Info("dropped")
	assert.Zero(t, buf.Len())

	newLogger(&buf, config.LogConfig{Level: slog.LevelInfo, Format: "json"}).Info("kept")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])

	buf.Reset()
	newLogger(&buf, config.LogConfig{Level: slog.LevelInfo, Format: "TEXT"}).Info("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestWalletProvider(t *testing.T) {
	assert.Nil(t, walletProvider(config.WalletConfig{}))

	static := walletProvider(config.WalletConfig{Accounts: []string{"0xabc"}})
	assert.Equal(t, ethrpc.Static{"0xabc"}, static)

	rpc := walletProvider(config.WalletConfig{RPCURL: "http://localhost:8545", Accounts: []string{"0xabc"}})
	assert.IsType(t, &ethrpc.Client{}, rpc)
}

func TestLoadCatalog(t *testing.T) {
	c, err := loadCatalog("")
	require.NoError(t, err)
	assert.Len(t, c.Papers, 3)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("papers:\n  - id: solo\n    title: Solo\n"), 0o600))
	c, err = loadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Papers, 1)
	assert.Equal(t, "solo", c.Papers[0].ID)

	_, err = loadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
