// Package config loads riskcalc settings from an optional YAML file and
// RISKCALC_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"riskcalc/pkg/refdata"
	"riskcalc/pkg/reports"

	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "RISKCALC"
	configName     = "riskcalc"
	configType     = "yaml"
	defaultLogLvl  = "warn"
	userConfigPath = ".config/riskcalc"
)

type Config struct {
	LogLevel    string       `mapstructure:"log_level"`
	RefdataFile string       `mapstructure:"refdata_file"`
	Report      ReportConfig `mapstructure:"report"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

type ReportConfig struct {
	Title    string `mapstructure:"title"`
	PageSize string `mapstructure:"page_size"`
	FontDir  string `mapstructure:"font_dir"`
	Compress bool   `mapstructure:"compress"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", defaultLogLvl)
	v.SetDefault("refdata_file", "")
	v.SetDefault("report.title", reports.DefaultTitle)
	v.SetDefault("report.page_size", reports.DefaultPageSize)
	v.SetDefault("report.font_dir", "")
	v.SetDefault("report.compress", true)
}

// Load reads configuration. An explicit path must exist; without one,
// riskcalc.yaml is looked for in the working directory and in
// $HOME/.config/riskcalc, and its absence is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, userConfigPath))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	return &cfg, nil
}

// Tables returns the reference tables: the built-in set, or the file named
// by RefdataFile.
func (c *Config) Tables() (*refdata.Tables, error) {
	if c.RefdataFile == "" {
		return refdata.Default(), nil
	}
	t, err := refdata.Load(c.RefdataFile)
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}
	return t, nil
}
