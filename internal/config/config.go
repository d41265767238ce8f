// Package config loads RoomLayout configuration in three layers: built-in
// defaults, an optional YAML file and ROOMLAYOUT_* environment variables,
// later layers winning.
package config

import (
	"fmt"
	"time"

	"github.com/piwi3910/RoomLayout/internal/model"
	"github.com/piwi3910/RoomLayout/internal/predictor"
	"github.com/piwi3910/RoomLayout/internal/validation"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Layout    LayoutConfig    `koanf:"layout"`
	Predictor PredictorConfig `koanf:"predictor"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `koanf:"addr" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimit       int           `koanf:"rate_limit" validate:"gte=0"` // Requests per minute per client IP, 0 disables
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// LayoutConfig holds the placement engine settings.
type LayoutConfig struct {
	Strategy         string  `koanf:"strategy" validate:"oneof=anchor zone uniform"`
	Policy           string  `koanf:"policy" validate:"oneof=skip fail-fast"`
	MarginFraction   float64 `koanf:"margin_fraction" validate:"gte=0,lt=0.5"`
	SpacingFraction  float64 `koanf:"spacing_fraction" validate:"gte=0"`
	SpacingConstant  float64 `koanf:"spacing_constant" validate:"gte=0"`
	RetryBudget      int     `koanf:"retry_budget" validate:"min=1"`
	Jitter           float64 `koanf:"jitter" validate:"gte=0"`
	ZoneMargin       float64 `koanf:"zone_margin" validate:"gte=0"`
	AreaGate         bool    `koanf:"area_gate"`
	AreaGateFraction float64 `koanf:"area_gate_fraction" validate:"gt=0,lte=1"`
	ItemSpacing      bool    `koanf:"item_spacing"`
	Precision        int     `koanf:"precision" validate:"gte=-1,lte=10"`
	Seed             int64   `koanf:"seed"` // 0 seeds from the clock
}

// Predictor kinds.
const (
	PredictorLinear = "linear"
	PredictorRemote = "remote"
	PredictorNone   = "none"
)

// PredictorConfig selects and configures the anchor predictor.
type PredictorConfig struct {
	Kind string `koanf:"kind" validate:"oneof=linear remote none"`

	// Linear: coefficients inline, or a JSON artifact that replaces them
	Linear           predictor.Coefficients `koanf:"linear"`
	CoefficientsPath string                 `koanf:"coefficients_path"`

	// Remote
	URL     string        `koanf:"url" validate:"omitempty,url"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	s := model.DefaultSettings()
	return &Config{
		Server: ServerConfig{
			Addr:            "0.0.0.0:8000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimit:       120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Layout: FromSettings(s),
		Predictor: PredictorConfig{
			Kind:    PredictorLinear,
			Linear:  predictor.DefaultCoefficients(),
			Timeout: predictor.DefaultRemoteTimeout,
		},
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Predictor.Kind == PredictorRemote && c.Predictor.URL == "" {
		return fmt.Errorf("invalid configuration: predictor.url is required for the remote predictor")
	}
	if err := c.Layout.ToSettings().Validate(); err != nil {
		return fmt.Errorf("invalid layout settings: %w", err)
	}
	return nil
}

// FromSettings converts engine settings into their config form.
func FromSettings(s model.Settings) LayoutConfig {
	return LayoutConfig{
		Strategy:         string(s.Strategy),
		Policy:           string(s.Policy),
		MarginFraction:   s.MarginFraction,
		SpacingFraction:  s.SpacingFraction,
		SpacingConstant:  s.SpacingConstant,
		RetryBudget:      s.RetryBudget,
		Jitter:           s.Jitter,
		ZoneMargin:       s.ZoneMargin,
		AreaGate:         s.AreaGate,
		AreaGateFraction: s.AreaGateFraction,
		ItemSpacing:      s.ItemSpacing,
		Precision:        s.Precision,
	}
}

// ToSettings maps the layout section onto engine settings.
func (l LayoutConfig) ToSettings() model.Settings {
	return model.Settings{
		Strategy:         model.Strategy(l.Strategy),
		Policy:           model.ExhaustionPolicy(l.Policy),
		MarginFraction:   l.MarginFraction,
		SpacingFraction:  l.SpacingFraction,
		SpacingConstant:  l.SpacingConstant,
		RetryBudget:      l.RetryBudget,
		Jitter:           l.Jitter,
		ZoneMargin:       l.ZoneMargin,
		AreaGate:         l.AreaGate,
		AreaGateFraction: l.AreaGateFraction,
		ItemSpacing:      l.ItemSpacing,
		Precision:        l.Precision,
	}
}

// SeedPtr returns the configured seed, or nil when the clock should be used.
func (l LayoutConfig) SeedPtr() *int64 {
	if l.Seed == 0 {
		return nil
	}
	seed := l.Seed
	return &seed
}

// Build constructs the configured predictor.
func (p PredictorConfig) Build() (predictor.Predictor, error) {
	switch p.Kind {
	case PredictorLinear:
		if p.CoefficientsPath != "" {
			l, err := predictor.LoadLinear(p.CoefficientsPath)
			if err != nil {
				return nil, fmt.Errorf("load coefficients: %w", err)
			}
			return l, nil
		}
		return predictor.NewLinear(p.Linear), nil
	case PredictorRemote:
		r, err := predictor.NewRemote(p.URL, predictor.WithTimeout(p.Timeout))
		if err != nil {
			return nil, err
		}
		return r, nil
	case PredictorNone:
		return predictor.Failing(predictor.ErrUnavailable), nil
	}
	return nil, fmt.Errorf("unknown predictor kind %q", p.Kind)
}
