package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	content := "data_dir: ${HMS_TEST_CONFIG_DIR}\nlogging:\n  level: debug\n"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("HMS_TEST_CONFIG_DIR", dir)

	configFile = path
	defer func() { configFile = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigMissingFile(t *testing.T) {
	configFile = filepath.Join(t.TempDir(), "nope.yaml")
	defer func() { configFile = "" }()

	_, err := loadConfig()
	require.Error(t, err)
}
