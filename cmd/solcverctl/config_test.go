package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/solcver/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solcverctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCLIConfigOverlay(t *testing.T) {
	cfg, err := loadCLIConfig(writeConfig(t, "output = \"JSON\"\n"))
	require.NoError(t, err)
	assert.Equal(t, outputJSON, cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Zero(t, cfg.MaxBytecodeBytes)
}

func TestLoadCLIConfigTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solcverctl.toml")
	require.NoError(t, config.WriteTemplate(path, "cli", false))

	cfg, err := loadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultCLIConfig(), cfg)
}

func TestLoadCLIConfigRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "colour = \"red\"\n",
		"bad output":     "output = \"xml\"\n",
		"negative limit": "max_bytecode_bytes = -1\n",
		"bad toml":       "output = \n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadCLIConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := loadCLIConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
