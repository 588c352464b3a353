package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type SampleConfig struct {
	Records int   `mapstructure:"records"`
	Year    int   `mapstructure:"year"`
	Seed    int64 `mapstructure:"seed"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Source   string         `mapstructure:"source"`
	Sample   SampleConfig   `mapstructure:"sample"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.path", "fee-insights.db")
	v.SetDefault("source", "store")
	v.SetDefault("sample.records", 500)
	v.SetDefault("sample.year", 2023)
	v.SetDefault("sample.seed", 0)
	return v
}

// LoadConfig reads the YAML config at path. An empty path returns the
// built-in defaults.
func LoadConfig(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
