package model

import (
	"fmt"
	"math"
)

// Strategy selects how the sampler proposes candidate positions.
type Strategy string

const (
	StrategyAnchorJitter Strategy = "anchor"  // Jitter around the predicted anchor
	StrategyZoned        Strategy = "zone"    // Uniform inside a round-robin quadrant zone
	StrategyUniform      Strategy = "uniform" // Uniform over the margin-adjusted room
)

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyAnchorJitter, StrategyZoned, StrategyUniform}
}

// ParseStrategy converts a name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown placement strategy %q", s)
}

// ExhaustionPolicy decides what happens when an item runs out of attempts.
type ExhaustionPolicy string

const (
	PolicySkip     ExhaustionPolicy = "skip"      // Omit the item and keep going
	PolicyFailFast ExhaustionPolicy = "fail-fast" // Abort the whole request
)

// ParsePolicy converts a name into an ExhaustionPolicy.
func ParsePolicy(s string) (ExhaustionPolicy, error) {
	switch ExhaustionPolicy(s) {
	case PolicySkip, PolicyFailFast:
		return ExhaustionPolicy(s), nil
	}
	return "", fmt.Errorf("unknown exhaustion policy %q", s)
}

// Settings holds the placement engine configuration.
type Settings struct {
	Strategy Strategy         `json:"strategy"`
	Policy   ExhaustionPolicy `json:"policy"`

	// Wall clearance as a fraction of the longest room side. 0 disables it.
	MarginFraction float64 `json:"margin_fraction"`

	// Obstacle clearance. SpacingConstant wins when positive, otherwise
	// SpacingFraction of the longest room side is used.
	SpacingFraction float64 `json:"spacing_fraction"`
	SpacingConstant float64 `json:"spacing_constant"`

	RetryBudget int     `json:"retry_budget"` // Attempts per item before exhaustion
	Jitter      float64 `json:"jitter"`       // Half-width of the anchor jitter square
	ZoneMargin  float64 `json:"zone_margin"`  // Interior margin kept inside each zone

	// Area gate: reject requests whose furniture area exceeds
	// AreaGateFraction of the room area before sampling anything.
	AreaGate         bool    `json:"area_gate"`
	AreaGateFraction float64 `json:"area_gate_fraction"`

	// ItemSpacing also keeps placement points min spacing away from the
	// points of already placed items.
	ItemSpacing bool `json:"item_spacing"`

	Precision int `json:"precision"` // Decimal places for coordinates; -1 keeps full precision
}

// DefaultSettings returns the anchor-jitter configuration.
func DefaultSettings() Settings {
	return Settings{
		Strategy:         StrategyAnchorJitter,
		Policy:           PolicySkip,
		MarginFraction:   0.1,
		SpacingFraction:  0.2,
		SpacingConstant:  0,
		RetryBudget:      200,
		Jitter:           3,
		ZoneMargin:       0.5,
		AreaGate:         true,
		AreaGateFraction: 0.7,
		ItemSpacing:      false,
		Precision:        2,
	}
}

// ZonedSettings returns the zone-based configuration, which uses a fixed
// obstacle clearance instead of a room-relative one.
func ZonedSettings() Settings {
	s := DefaultSettings()
	s.Strategy = StrategyZoned
	s.SpacingConstant = 1
	return s
}

// WithStrategy returns a copy switched to st. Moving to the zoned strategy
// sets the fixed obstacle clearance if none is configured; moving away from
// it restores the room-relative clearance.
func (s Settings) WithStrategy(st Strategy) Settings {
	if st == s.Strategy {
		return s
	}
	switch {
	case st == StrategyZoned && s.SpacingConstant == 0:
		s.SpacingConstant = ZonedSettings().SpacingConstant
	case s.Strategy == StrategyZoned:
		s.SpacingConstant = DefaultSettings().SpacingConstant
	}
	s.Strategy = st
	return s
}

// Margin returns the wall clearance for the given room.
func (s Settings) Margin(room Room) float64 {
	return s.MarginFraction * room.LongestSide()
}

// MinSpacing returns the obstacle clearance for the given room.
func (s Settings) MinSpacing(room Room) float64 {
	if s.SpacingConstant > 0 {
		return s.SpacingConstant
	}
	return s.SpacingFraction * room.LongestSide()
}

// Validate checks the settings for values the engine cannot work with.
func (s Settings) Validate() error {
	if _, err := ParseStrategy(string(s.Strategy)); err != nil {
		return err
	}
	if _, err := ParsePolicy(string(s.Policy)); err != nil {
		return err
	}
	if s.RetryBudget < 1 {
		return fmt.Errorf("retry budget must be at least 1, got %d", s.RetryBudget)
	}
	for name, v := range map[string]float64{
		"margin fraction":    s.MarginFraction,
		"spacing fraction":   s.SpacingFraction,
		"spacing constant":   s.SpacingConstant,
		"jitter":             s.Jitter,
		"zone margin":        s.ZoneMargin,
		"area gate fraction": s.AreaGateFraction,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite non-negative number, got %v", name, v)
		}
	}
	if s.AreaGate && s.AreaGateFraction == 0 {
		return fmt.Errorf("area gate fraction must be positive when the area gate is enabled")
	}
	if s.MarginFraction >= 0.5 {
		return fmt.Errorf("margin fraction must be below 0.5, got %v", s.MarginFraction)
	}
	return nil
}
