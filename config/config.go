package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log     Logger  `mapstructure:"logger"`
	API     API     `mapstructure:"api"`
	Storage Storage `mapstructure:"storage"`
	Cache   Cache   `mapstructure:"cache"`
	Auth    Auth    `mapstructure:"auth"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port               int     `mapstructure:"port"`
	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int     `mapstructure:"rate_limit_burst"`
}

type Storage struct {
	// Path of the sqlite snapshot store. ":memory:" keeps it ephemeral.
	Path string `mapstructure:"path"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
	StatisticsTTL     time.Duration `mapstructure:"statistics_ttl"`
}

type Auth struct {
	// Fake network delay around login/register, purely for UX pacing.
	SimulatedLatency time.Duration `mapstructure:"simulated_latency"`
}

func Load() (*Config, error) {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.rate_limit_per_second", 10)
	viper.SetDefault("api.rate_limit_burst", 30)
	viper.SetDefault("storage.path", "alpharoot.db")
	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("cache.statistics_ttl", 30*time.Second)
	viper.SetDefault("auth.simulated_latency", time.Duration(0))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
