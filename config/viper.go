package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FileName is the config file base name, without extension.
	FileName  = "colorvp"
	envPrefix = "COLORVP"
)

// InitViper creates a *viper.Viper with defaults, the colorvp.toml file found
// in configDir (or the working directory), and COLORVP_ environment variables.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables (COLORVP_PALETTE, COLORVP_SQLITE_PATH, etc.)
//  3. colorvp.toml values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()
	setViperDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("toml")
	if configDir == "" {
		configDir = "."
	}
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}

// Load resolves a Config from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if strings.TrimSpace(cfg.Table) == "" {
		cfg.Table = defaultTable
	}
	return cfg, nil
}

func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault(KeyPalette, d.Palette)
	v.SetDefault(KeySQLitePath, d.SQLitePath)
	v.SetDefault(KeyTable, d.Table)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyJSON, d.JSON)
}
