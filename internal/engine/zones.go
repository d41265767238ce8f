package engine

import (
	"math"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// Zone labels, in allocation order.
const (
	ZoneSleeping = "sleeping" // Top-left quadrant
	ZoneWork     = "work"     // Top-right quadrant
	ZoneLounge   = "lounge"   // Bottom-left quadrant
	ZoneStorage  = "storage"  // Bottom-right quadrant
)

// AllocateZones splits the room into four quadrants. The zones do not
// overlap and together cover the room exactly. Each zone keeps zoneMargin
// clear inside its own border, reduced when the zone is too small for it.
func AllocateZones(room model.Room, zoneMargin float64) []model.Zone {
	halfW := room.Width / 2
	halfH := room.Height / 2

	quads := []struct {
		label  string
		bounds model.Rect
	}{
		{ZoneSleeping, model.Rect{X: 0, Y: 0, Width: halfW, Height: halfH}},
		{ZoneWork, model.Rect{X: halfW, Y: 0, Width: room.Width - halfW, Height: halfH}},
		{ZoneLounge, model.Rect{X: 0, Y: halfH, Width: halfW, Height: room.Height - halfH}},
		{ZoneStorage, model.Rect{X: halfW, Y: halfH, Width: room.Width - halfW, Height: room.Height - halfH}},
	}

	zones := make([]model.Zone, 0, len(quads))
	for _, q := range quads {
		m := math.Max(0, zoneMargin)
		// Never reserve more than half the short side
		if limit := math.Min(q.bounds.Width, q.bounds.Height) / 2; m > limit {
			m = limit
		}
		zones = append(zones, model.Zone{Label: q.label, Bounds: q.bounds, Margin: m})
	}
	return zones
}

// AssignZones maps item indices onto zones round-robin: item i gets
// zones[i mod len(zones)].
func AssignZones(zones []model.Zone, count int) []model.Zone {
	if len(zones) == 0 || count <= 0 {
		return nil
	}
	out := make([]model.Zone, count)
	for i := range out {
		out[i] = zones[i%len(zones)]
	}
	return out
}
