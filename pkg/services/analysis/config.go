package analysis

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Endpoint       string `mapstructure:"endpoint" validate:"required"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func LoadConfig(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse analysis service config: %w", err)
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("analysis service endpoint is required")
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 30
	}
	return &cfg, nil
}
