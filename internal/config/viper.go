package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Data struct {
		Directory   string `mapstructure:"directory" yaml:"directory"`
		LedgerFile  string `mapstructure:"ledger_file" yaml:"ledger_file"`
		CatalogFile string `mapstructure:"catalog_file" yaml:"catalog_file"`
	} `mapstructure:"data" yaml:"data"`
}

// LedgerPath returns the resolved path of the JSON ledger snapshot.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.Data.Directory, c.Data.LedgerFile)
}

// CatalogPath returns the resolved path of the YAML account/category catalog.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.Data.Directory, c.Data.CatalogFile)
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then GAGYEBU_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.gagyebu")
	v.AddConfigPath(".gagyebu")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GAGYEBU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going on a broken config file; defaults and env still apply.
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("data.directory", ".")
	v.SetDefault("data.ledger_file", "ledger.json")
	v.SetDefault("data.catalog_file", "catalog.yaml")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Data.LedgerFile == "" || config.Data.CatalogFile == "" {
		return fmt.Errorf("data.ledger_file and data.catalog_file must not be empty")
	}

	return nil
}
