package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/RoomLayout/internal/model"
)

func TestCheckValidity(t *testing.T) {
	room := model.Room{Width: 12, Height: 10}
	margin := 1.2
	spacing := 2.4
	obstacles := []model.Point2D{{X: 6, Y: 5}}

	tests := []struct {
		name string
		rect model.Rect
		want Rejection
	}{
		{"inside band", model.Rect{X: 1.5, Y: 1.5, Width: 4, Height: 2}, RejectNone},
		{"exactly on margin", model.Rect{X: 1.2, Y: 1.2, Width: 1, Height: 1}, RejectNone},
		{"just inside far margin", model.Rect{X: 6.75, Y: 1.5, Width: 4, Height: 2}, RejectNone},
		{"negative x", model.Rect{X: -0.1, Y: 2, Width: 1, Height: 1}, RejectOutOfRoom},
		{"past right wall", model.Rect{X: 9, Y: 2, Width: 4, Height: 2}, RejectOutOfRoom},
		{"past bottom wall", model.Rect{X: 2, Y: 8.5, Width: 2, Height: 2}, RejectOutOfRoom},
		{"left margin", model.Rect{X: 1.0, Y: 2, Width: 1, Height: 1}, RejectMargin},
		{"top margin", model.Rect{X: 2, Y: 0.5, Width: 1, Height: 1}, RejectMargin},
		{"right margin", model.Rect{X: 7, Y: 2, Width: 4, Height: 2}, RejectMargin},
		{"bottom margin", model.Rect{X: 2, Y: 8, Width: 1, Height: 1}, RejectMargin},
		{"near obstacle", model.Rect{X: 5, Y: 4, Width: 1, Height: 1}, RejectObstacle},
		{"exactly min spacing away", model.Rect{X: 3.6, Y: 5, Width: 1, Height: 1}, RejectNone},
		{"degenerate", model.Rect{X: 2, Y: 2, Width: 0, Height: 1}, RejectOutOfRoom},
		{"nan position", model.Rect{X: math.NaN(), Y: 2, Width: 1, Height: 1}, RejectOutOfRoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckValidity(tt.rect, room, margin, spacing, obstacles)
			assert.Equal(t, tt.want, got, "got %s", got)
			assert.Equal(t, tt.want == RejectNone, IsValid(tt.rect, room, margin, spacing, obstacles))
		})
	}
}

func TestCheckValidity_ZeroMargin(t *testing.T) {
	room := model.Room{Width: 4, Height: 4}
	assert.True(t, IsValid(model.Rect{X: 0, Y: 0, Width: 4, Height: 2}, room, 0, 0, nil))
	assert.Equal(t, RejectOutOfRoom, CheckValidity(model.Rect{X: 0.01, Y: 0, Width: 4, Height: 2}, room, 0, 0, nil))
}

func TestCheckValidity_FarEdgeOnMargin(t *testing.T) {
	room := model.Room{Width: 10, Height: 10}
	assert.True(t, IsValid(model.Rect{X: 5, Y: 5, Width: 4, Height: 4}, room, 1, 0, nil))
	assert.Equal(t, RejectMargin, CheckValidity(model.Rect{X: 5.5, Y: 5, Width: 4, Height: 4}, room, 1, 0, nil))
}

func TestCheckValidity_ObstacleUsesPlacementPoint(t *testing.T) {
	// The box covers the obstacle but its origin is far enough away
	room := model.Room{Width: 20, Height: 20}
	obstacles := []model.Point2D{{X: 8, Y: 8}}
	rect := model.Rect{X: 3, Y: 3, Width: 10, Height: 10}
	assert.True(t, IsValid(rect, room, 0, 5, obstacles))
}

func TestRejectionString(t *testing.T) {
	assert.Equal(t, "none", RejectNone.String())
	assert.Equal(t, "out_of_room", RejectOutOfRoom.String())
	assert.Equal(t, "margin", RejectMargin.String())
	assert.Equal(t, "obstacle", RejectObstacle.String())
	assert.Equal(t, "collision", RejectCollision.String())
	assert.Equal(t, "item_spacing", RejectItemSpacing.String())
	assert.Equal(t, "unknown", Rejection(99).String())
}
