package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/RoomLayout/internal/model"
)

func TestCollides(t *testing.T) {
	placed := []model.Rect{
		{X: 2, Y: 2, Width: 4, Height: 2},
		{X: 8, Y: 6, Width: 1, Height: 1},
	}

	assert.True(t, Collides(model.Rect{X: 3, Y: 3, Width: 1, Height: 1}, placed), "inside first box")
	assert.True(t, Collides(model.Rect{X: 7.5, Y: 5.5, Width: 1, Height: 1}, placed), "partial overlap with second")
	assert.False(t, Collides(model.Rect{X: 6, Y: 2, Width: 1, Height: 1}, placed), "touching right edge")
	assert.False(t, Collides(model.Rect{X: 2, Y: 4, Width: 4, Height: 1}, placed), "touching bottom edge")
	assert.False(t, Collides(model.Rect{X: 0, Y: 0, Width: 1, Height: 1}, placed))
	assert.False(t, Collides(model.Rect{X: 3, Y: 3, Width: 1, Height: 1}, nil), "empty placed set")
}

func TestCollides_IgnoresDegenerate(t *testing.T) {
	placed := []model.Rect{
		{X: 0, Y: 0, Width: 0, Height: 5},
		{X: 0, Y: 0, Width: math.NaN(), Height: 5},
		{X: 0, Y: 0, Width: -3, Height: -3},
	}
	assert.False(t, Collides(model.Rect{X: 0, Y: 0, Width: 2, Height: 2}, placed))

	// A degenerate candidate never collides either
	assert.False(t, Collides(model.Rect{X: 2, Y: 2, Width: 0, Height: 0}, []model.Rect{{X: 0, Y: 0, Width: 5, Height: 5}}))
}

func TestCollidesWithItems(t *testing.T) {
	items := []model.PlacedItem{{Kind: "Bed", X: 2, Y: 2, Width: 4, Height: 2}}
	assert.True(t, CollidesWithItems(model.Rect{X: 5, Y: 3, Width: 1, Height: 1}, items))
	assert.False(t, CollidesWithItems(model.Rect{X: 6, Y: 3, Width: 1, Height: 1}, items))
}
