package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/RoomLayout/internal/model"
)

func newTestSampler(seed int64, room model.Room, settings model.Settings, obstacles []model.Point2D) *Sampler {
	proposer := Uniform{Room: room, Margin: settings.Margin(room)}
	return NewSampler(rand.New(rand.NewSource(seed)), proposer, room, obstacles, settings)
}

func TestSampler_PlacesAndGrowsPlacedSet(t *testing.T) {
	room := model.Room{Width: 12, Height: 10}
	s := newTestSampler(42, room, model.DefaultSettings(), nil)
	cat := model.DefaultCatalog()

	bed, _ := cat.Lookup("Bed")
	chair, _ := cat.Lookup("Chair")

	first, attempts, ok := s.Place(bed, 0)
	require.True(t, ok)
	assert.GreaterOrEqual(t, attempts, 1)
	assert.Equal(t, "Bed", first.Kind)

	second, _, ok := s.Place(chair, 1)
	require.True(t, ok)
	assert.False(t, first.Rect().Overlaps(second.Rect()))

	placed := s.Placed()
	require.Len(t, placed, 2)
	assert.Equal(t, first, placed[0])
	assert.Equal(t, second, placed[1])
}

func TestSampler_ExhaustsBudget(t *testing.T) {
	// A Bed cannot fit a 4x4 room once the wall margin is reserved
	room := model.Room{Width: 4, Height: 4}
	settings := model.DefaultSettings()
	settings.RetryBudget = 25
	s := newTestSampler(1, room, settings, nil)

	bed, _ := model.DefaultCatalog().Lookup("Bed")
	_, attempts, ok := s.Place(bed, 0)
	assert.False(t, ok)
	assert.Equal(t, 25, attempts)
	assert.Empty(t, s.Placed())

	rej := s.Rejections()
	total := 0
	for _, n := range rej {
		total += n
	}
	assert.Equal(t, 25, total)
}

func TestSampler_RoundsCoordinates(t *testing.T) {
	room := model.Room{Width: 12, Height: 10}
	s := newTestSampler(7, room, model.DefaultSettings(), nil)
	chair, _ := model.DefaultCatalog().Lookup("Chair")

	for i := 0; i < 10; i++ {
		item, _, ok := s.Place(chair, i)
		if !ok {
			continue
		}
		assert.Equal(t, model.RoundTo(item.X, 2), item.X)
		assert.Equal(t, model.RoundTo(item.Y, 2), item.Y)
	}
}

func TestSampler_ClampsIntoRoom(t *testing.T) {
	room := model.Room{Width: 6, Height: 6}
	settings := model.DefaultSettings()
	settings.MarginFraction = 0
	settings.SpacingFraction = 0
	// Proposals far outside the room are pulled back to the far wall
	far := AnchorJitter{Anchor: model.Point2D{X: 100, Y: 100}, Jitter: 0}
	s := NewSampler(rand.New(rand.NewSource(1)), far, room, nil, settings)

	chair, _ := model.DefaultCatalog().Lookup("Chair")
	item, attempts, ok := s.Place(chair, 0)
	require.True(t, ok)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 5.0, item.X)
	assert.Equal(t, 5.0, item.Y)
}

func TestSampler_ItemSpacing(t *testing.T) {
	room := model.Room{Width: 10, Height: 10}
	settings := model.DefaultSettings()
	settings.MarginFraction = 0
	settings.SpacingConstant = 3
	settings.ItemSpacing = true
	settings.RetryBudget = 5

	// Every proposal lands on the same spot, so the second chair must
	// collide or sit too close to the first.
	fixed := AnchorJitter{Anchor: model.Point2D{X: 2, Y: 2}, Jitter: 0}
	s := NewSampler(rand.New(rand.NewSource(1)), fixed, room, nil, settings)
	chair, _ := model.DefaultCatalog().Lookup("Chair")

	_, _, ok := s.Place(chair, 0)
	require.True(t, ok)
	_, attempts, ok := s.Place(chair, 1)
	assert.False(t, ok)
	assert.Equal(t, 5, attempts)
	assert.Equal(t, 5, s.Rejections()[RejectCollision])

	// Next to the first chair without overlap: only item spacing rejects it
	fixed.Anchor = model.Point2D{X: 3, Y: 2}
	s.Proposer = fixed
	_, _, ok = s.Place(chair, 2)
	assert.False(t, ok)
	assert.Equal(t, 5, s.Rejections()[RejectItemSpacing])

	s.ItemSpacing = false
	_, _, ok = s.Place(chair, 3)
	assert.True(t, ok, "touching chairs are allowed without item spacing")
}
