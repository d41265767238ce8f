package engine

import (
	"context"
	"fmt"

	"github.com/piwi3910/RoomLayout/internal/model"
	"github.com/piwi3910/RoomLayout/internal/predictor"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// ComparisonResult holds the placement result and computed statistics
// for a single scenario. Err is set when the scenario failed outright.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.PlacementResult
	Err           error
	PlacedCount   int
	UnplacedCount int
	Attempts      int
	Coverage      float64
}

// CompareScenarios runs the same request under each scenario and returns
// the results in scenario order. Every scenario sees the same seed so the
// strategies are compared on an equal footing.
func CompareScenarios(ctx context.Context, scenarios []ComparisonScenario, catalog model.Catalog, p predictor.Predictor, req model.PlacementRequest, seed int64) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		opt := New(scenario.Settings, catalog, p, WithSeed(seed))
		result, err := opt.Optimize(ctx, req)

		cr := ComparisonResult{
			Scenario: scenario,
			Result:   result,
			Err:      err,
		}
		if err == nil {
			cr.PlacedCount = len(result.Placements)
			cr.UnplacedCount = len(result.Unplaced)
			cr.Attempts = result.Attempts
			cr.Coverage = result.Coverage()
		}
		results = append(results, cr)
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current settings, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(baseSettings model.Settings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
	}

	// Scenario: every other strategy
	for _, st := range model.Strategies() {
		if st == baseSettings.Strategy {
			continue
		}
		alt := baseSettings.WithStrategy(st)
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Strategy %s", st),
			Settings: alt,
		})
	}

	// Scenario: no wall margin
	if baseSettings.MarginFraction > 0 {
		noMargin := baseSettings
		noMargin.MarginFraction = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "No Wall Margin",
			Settings: noMargin,
		})
	}

	// Scenario: double retry budget
	more := baseSettings
	more.RetryBudget = baseSettings.RetryBudget * 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Retry Budget %d", more.RetryBudget),
		Settings: more,
	})

	return scenarios
}
