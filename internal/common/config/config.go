// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Hotel     HotelConfig     `mapstructure:"hotel"`
	NLP       NLPConfig       `mapstructure:"nlp"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	GinMode        string   `mapstructure:"gin_mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AnalyticsConfig controls the query-log recorder.
type AnalyticsConfig struct {
	RedisEnabled bool   `mapstructure:"redis_enabled"`
	RedisKey     string `mapstructure:"redis_key"`
	RecentLimit  int    `mapstructure:"recent_limit"`
	TopIntents   int    `mapstructure:"top_intents"`
}

// HotelConfig holds the locale/property knobs read by the response
// synthesizer. Distances live here so a property change never touches logic.
type HotelConfig struct {
	CurrencySymbol string          `mapstructure:"currency_symbol"`
	Proximity      ProximityConfig `mapstructure:"proximity"`
}

type ProximityConfig struct {
	CityCenterKM     int `mapstructure:"city_center_km"`
	AirportKM        int `mapstructure:"airport_km"`
	RailwayStationKM int `mapstructure:"railway_station_km"`
	ShoppingKM       int `mapstructure:"shopping_km"`
}

// NLPConfig holds the intent-resolution knobs.
type NLPConfig struct {
	// KeywordOverrideThreshold is the keyword score at which the lexical
	// candidate overrides the statistical classifier.
	KeywordOverrideThreshold int `mapstructure:"keyword_override_threshold"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
