// internal/fitting/config.go
package fitting

import "zuliam-concierge/internal/common/config"

// Config holds the fit engine tunables. The tolerance and weight values
// are taken from the sizing team's reference sheet, not derived.
type Config struct {
	DefaultLengthCm  float64
	DefaultWidthCm   float64
	CloseLengthTolCm float64
	CloseWidthTolCm  float64
	LengthWeight     float64
	WidthWeight      float64
}

func DefaultConfig() *Config {
	return &Config{
		DefaultLengthCm:  26.8,
		DefaultWidthCm:   10.3,
		CloseLengthTolCm: 0.6,
		CloseWidthTolCm:  0.5,
		LengthWeight:     0.7,
		WidthWeight:      0.3,
	}
}

// FromAppConfig maps the service configuration onto the engine config.
func FromAppConfig(c config.FittingConfig) *Config {
	return &Config{
		DefaultLengthCm:  c.DefaultLengthCm,
		DefaultWidthCm:   c.DefaultWidthCm,
		CloseLengthTolCm: c.CloseLengthTolCm,
		CloseWidthTolCm:  c.CloseWidthTolCm,
		LengthWeight:     c.LengthWeight,
		WidthWeight:      c.WidthWeight,
	}
}
