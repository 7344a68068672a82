// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/jmbbc/bc-visitor-dashboard/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	Engine   sharedConfig.EngineConfig   `mapstructure:"engine"`
	Parking  sharedConfig.ParkingConfig  `mapstructure:"parking"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("VISITORD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "visitord_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Redis defaults (optional; the submit guard is skipped when disabled)
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Engine defaults
	viper.SetDefault("engine.dedupe_window_minutes", 2)
	viper.SetDefault("engine.tx_max_attempts", 3)
	viper.SetDefault("engine.timezone", "Asia/Kuala_Lumpur")

	// Parking policy defaults, used until an admin saves a policy record
	viper.SetDefault("parking.policy_enabled", true)
	viper.SetDefault("parking.low_arrears_bound", 1)
	viper.SetDefault("parking.high_arrears_threshold", 400)
	viper.SetDefault("parking.arrears_cooldown_days", 3)
	viper.SetDefault("parking.high_arrears_cooldown_days", 0)
	viper.SetDefault("parking.no_arrears_cooldown_days", 0)
	viper.SetDefault("parking.tier1_free_days", 3)
	viper.SetDefault("parking.tier2_free_days", 1)
	viper.SetDefault("parking.tier3_free_days", 0)
	viper.SetDefault("parking.tier2_daily_rate", 5.0)
	viper.SetDefault("parking.tier3_daily_rate", 15.0)
}
