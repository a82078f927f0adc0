// Package config loads CLI configuration from an optional config file
// and AULT_-prefixed environment variables.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds everything the CLI needs to talk to a network and sign.
type Config struct {
	// Network names a known network ("mainnet", "testnet").
	Network string `mapstructure:"network"`
	// RestURL overrides the network's REST endpoint when set.
	RestURL string `mapstructure:"rest_url"`
	// PrivateKey is the hex-encoded signing key. Never logged.
	PrivateKey string `mapstructure:"private_key"`
	FeeAmount  string `mapstructure:"fee_amount"`
	GasLimit   uint64 `mapstructure:"gas_limit"`
	LogLevel   string `mapstructure:"log_level"`
}

// Load reads configuration from ./ault.yaml (if present) and the
// environment. Environment variables use the AULT_ prefix, e.g.
// AULT_PRIVATE_KEY.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("ault")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("AULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv surfaces it during
	// Unmarshal.
	v.SetDefault("network", "mainnet")
	v.SetDefault("rest_url", "")
	v.SetDefault("private_key", "")
	v.SetDefault("fee_amount", "")
	v.SetDefault("gas_limit", 0)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}
	return cfg, nil
}

// Redacted returns a copy safe for printing: the private key is
// masked.
func (c Config) Redacted() Config {
	if c.PrivateKey != "" {
		c.PrivateKey = "<redacted>"
	}
	return c
}
