// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Fitting FittingConfig `mapstructure:"fitting"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// Addr returns the listen address for the API server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// FittingConfig holds the tunables of the fit assessment engine.
// The tolerance and weight defaults come from the sizing team and are
// applied verbatim, not derived.
type FittingConfig struct {
	DefaultLengthCm  float64 `mapstructure:"default_length_cm"`
	DefaultWidthCm   float64 `mapstructure:"default_width_cm"`
	CloseLengthTolCm float64 `mapstructure:"close_length_tolerance_cm"`
	CloseWidthTolCm  float64 `mapstructure:"close_width_tolerance_cm"`
	LengthWeight     float64 `mapstructure:"length_weight"`
	WidthWeight      float64 `mapstructure:"width_weight"`
}

// CatalogConfig points at an optional catalog override document. When the
// path is empty the compiled-in catalog is used.
type CatalogConfig struct {
	DataPath string `mapstructure:"data_path"`
}

// ChatConfig holds settings for the concierge session store.
type ChatConfig struct {
	SessionTTL    int `mapstructure:"session_ttl"`    // minutes
	SweepInterval int `mapstructure:"sweep_interval"` // minutes
	MaxSessions   int `mapstructure:"max_sessions"`
}

// MetricsConfig holds settings for the metrics endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
