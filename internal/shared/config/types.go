// Package config defines the configuration types shared across layers.
package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// EngineConfig holds the tunables of the submission/allocation engine.
type EngineConfig struct {
	// DedupeWindowMinutes is how long a dedupe key blocks a matching
	// resubmission. Keys older than the window are stale and get overwritten.
	DedupeWindowMinutes int `mapstructure:"dedupe_window_minutes"`
	// TxMaxAttempts bounds transparent transaction retries on store
	// conflicts before the call fails as internal.
	TxMaxAttempts int `mapstructure:"tx_max_attempts"`
	// Timezone is the business timezone used for date-key boundaries.
	Timezone string `mapstructure:"timezone"`
}

// ParkingConfig carries the default cooldown/charge policy values. The
// persisted policy record, when present, takes precedence.
type ParkingConfig struct {
	PolicyEnabled           bool    `mapstructure:"policy_enabled"`
	LowArrearsBound         float64 `mapstructure:"low_arrears_bound"`
	HighArrearsThreshold    float64 `mapstructure:"high_arrears_threshold"`
	ArrearsCooldownDays     int     `mapstructure:"arrears_cooldown_days"`
	HighArrearsCooldownDays int     `mapstructure:"high_arrears_cooldown_days"`
	NoArrearsCooldownDays   int     `mapstructure:"no_arrears_cooldown_days"`
	Tier1FreeDays           int     `mapstructure:"tier1_free_days"`
	Tier2FreeDays           int     `mapstructure:"tier2_free_days"`
	Tier3FreeDays           int     `mapstructure:"tier3_free_days"`
	Tier2DailyRate          float64 `mapstructure:"tier2_daily_rate"`
	Tier3DailyRate          float64 `mapstructure:"tier3_daily_rate"`
}
