package models

// Config represents application configuration
type Config struct {
	App     AppConfig      `mapstructure:"app"`
	Logger  LoggerConfig   `mapstructure:"logger"`
	Tariffs []TariffConfig `mapstructure:"tariffs"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"` // empty disables file output
}

// TariffConfig declares an extra ride type on top of Standard and Premium
type TariffConfig struct {
	Type        string  `mapstructure:"type"`
	RatePerMile float64 `mapstructure:"rate_per_mile"`
}
