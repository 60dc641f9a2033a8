package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/piresc/ridesharing/internal/pkg/models"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RIDES_LOGGER_LEVEL
const EnvPrefix = "RIDES"

// InitConfig loads configuration from the YAML file at configPath, then applies
// environment overrides. A missing file is not an error; defaults are used.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
			}
		}
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	for i, t := range configs.Tariffs {
		if t.Type == "" {
			return nil, fmt.Errorf("tariff %d: type is required", i)
		}
		if t.RatePerMile < 0 {
			return nil, fmt.Errorf("tariff %s: rate_per_mile must not be negative", t.Type)
		}
	}

	return configs, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "rides")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.version", "")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}
