package config

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "ledger.json", cfg.Data.LedgerFile)
	assert.Equal(t, "catalog.yaml", cfg.Data.CatalogFile)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GAGYEBU_LOG_LEVEL", "debug")
	t.Setenv("GAGYEBU_DATA_DIRECTORY", "/tmp/ledger-data")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/ledger-data", cfg.Data.Directory)
	assert.Equal(t, filepath.Join("/tmp/ledger-data", "ledger.json"), cfg.LedgerPath())
	assert.Equal(t, filepath.Join("/tmp/ledger-data", "catalog.yaml"), cfg.CatalogPath())
}

func TestInitializeConfig_Validation(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("GAGYEBU_LOG_LEVEL", "loud")
		_, err := InitializeConfig()
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("bad log format", func(t *testing.T) {
		t.Setenv("GAGYEBU_LOG_FORMAT", "xml")
		_, err := InitializeConfig()
		assert.ErrorContains(t, err, "invalid log format")
	})

	t.Run("bad delimiter", func(t *testing.T) {
		t.Setenv("GAGYEBU_CSV_DELIMITER", ";;")
		_, err := InitializeConfig()
		assert.ErrorContains(t, err, "single character")
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("GAGYEBU_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("GAGYEBU_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("GAGYEBU_TEST_MISSING", "fallback"))
}

func TestConfigureLogging_ReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	assert.Equal(t, logrus.InfoLevel, ConfigureLogging().GetLevel())
}
