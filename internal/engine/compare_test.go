package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/RoomLayout/internal/model"
)

func TestBuildDefaultScenarios(t *testing.T) {
	scenarios := BuildDefaultScenarios(model.DefaultSettings())

	// current, two other strategies, no margin, double budget
	require.Len(t, scenarios, 5)
	assert.Equal(t, "Current Settings", scenarios[0].Name)
	assert.Equal(t, model.StrategyZoned, scenarios[1].Settings.Strategy)
	assert.Equal(t, 1.0, scenarios[1].Settings.SpacingConstant)
	assert.Equal(t, model.StrategyUniform, scenarios[2].Settings.Strategy)
	assert.Equal(t, 0.0, scenarios[3].Settings.MarginFraction)
	assert.Equal(t, 400, scenarios[4].Settings.RetryBudget)

	noMargin := model.DefaultSettings()
	noMargin.MarginFraction = 0
	assert.Len(t, BuildDefaultScenarios(noMargin), 4)
}

func TestBuildDefaultScenarios_FromZoned(t *testing.T) {
	scenarios := BuildDefaultScenarios(model.ZonedSettings())
	room := model.Room{Width: 12, Height: 10}

	for _, sc := range scenarios[1:3] {
		assert.NotEqual(t, model.StrategyZoned, sc.Settings.Strategy)
		assert.Equal(t, 0.0, sc.Settings.SpacingConstant, sc.Name)
		assert.InDelta(t, 2.4, sc.Settings.MinSpacing(room), 1e-9, sc.Name)
	}
}

func TestCompareScenarios(t *testing.T) {
	req := model.PlacementRequest{
		Room:      model.Room{Width: 12, Height: 10},
		Furniture: []string{"Bed", "Chair", "Desk"},
		Obstacles: []model.Point2D{{X: 6, Y: 5}},
	}
	scenarios := BuildDefaultScenarios(model.DefaultSettings())
	results := CompareScenarios(context.Background(), scenarios, model.DefaultCatalog(), defaultPredictor(), req, 11)

	require.Len(t, results, len(scenarios))
	for i, r := range results {
		assert.Equal(t, scenarios[i].Name, r.Scenario.Name)
		require.NoError(t, r.Err)
		assert.Equal(t, 3, r.PlacedCount+r.UnplacedCount)
		assert.Equal(t, r.Result.Coverage(), r.Coverage)
	}

	again := CompareScenarios(context.Background(), scenarios, model.DefaultCatalog(), defaultPredictor(), req, 11)
	assert.Equal(t, results, again)
}

func TestCompareScenarios_RecordsFailures(t *testing.T) {
	req := model.PlacementRequest{
		Room:      model.Room{Width: 5, Height: 5},
		Furniture: []string{"Bed", "Sofa", "Wardrobe"},
	}
	results := CompareScenarios(context.Background(), BuildDefaultScenarios(model.DefaultSettings()), model.DefaultCatalog(), defaultPredictor(), req, 1)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, ErrCapacity)
		assert.Zero(t, r.PlacedCount)
	}
}
