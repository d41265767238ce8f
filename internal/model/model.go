package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Room is the rectangular floor area furniture is placed into.
type Room struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// LongestSide returns max(Width, Height).
func (r Room) LongestSide() float64 {
	return math.Max(r.Width, r.Height)
}

// Area returns the floor area.
func (r Room) Area() float64 {
	return r.Width * r.Height
}

// Bounds returns the room as a rectangle at the origin.
func (r Room) Bounds() Rect {
	return Rect{Width: r.Width, Height: r.Height}
}

// Valid reports whether both sides are finite and positive.
func (r Room) Valid() bool {
	return r.Width > 0 && r.Height > 0 &&
		!math.IsInf(r.Width, 0) && !math.IsInf(r.Height, 0)
}

// PlacedItem is one accepted furniture placement. Items are only ever
// appended to a result, never moved.
type PlacedItem struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`      // Distance from the left wall
	Y      float64 `json:"y"`      // Distance from the top wall
	Width  float64 `json:"width"`  // Footprint along X
	Height float64 `json:"height"` // Footprint along Y
}

// Rect returns the item's bounding box.
func (p PlacedItem) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Point returns the item's placement point.
func (p PlacedItem) Point() Point2D {
	return Point2D{X: p.X, Y: p.Y}
}

// UnplacedItem records a requested item that ran out of attempts under the
// skip policy.
type UnplacedItem struct {
	Index    int    `json:"index"` // Position in the resolved furniture list
	Kind     string `json:"kind"`
	Attempts int    `json:"attempts"`
}

// Zone is a sub-rectangle of the room used to spread items out. Zones only
// live for the duration of one placement request.
type Zone struct {
	Label  string  `json:"label"`
	Bounds Rect    `json:"bounds"`
	Margin float64 `json:"margin"` // Clearance kept inside Bounds
}

// Interior returns the zone bounds shrunk by the zone margin.
func (z Zone) Interior() Rect {
	return z.Bounds.Inset(z.Margin)
}

// PlacementRequest is what the engine consumes, independent of transport.
type PlacementRequest struct {
	Room      Room      `json:"room" yaml:"room"`
	Furniture []string  `json:"furniture" yaml:"furniture"` // Kind names in placement order, duplicates allowed
	Obstacles []Point2D `json:"obstacles" yaml:"obstacles"`
	Seed      *int64    `json:"seed,omitempty" yaml:"seed,omitempty"` // Overrides the optimizer's random source
}

// PlacementResult is a completed layout.
type PlacementResult struct {
	ID         string           `json:"id"`
	Room       Room             `json:"room"`
	Furniture  []string         `json:"furniture"` // Resolved names, in request order
	Obstacles  []Point2D        `json:"obstacles"`
	Anchor     Point2D          `json:"anchor"`
	Strategy   Strategy         `json:"strategy"`
	Policy     ExhaustionPolicy `json:"policy"`
	Placements []PlacedItem     `json:"placements"`
	Unplaced   []UnplacedItem   `json:"unplaced,omitempty"`
	Ignored    []string         `json:"ignored,omitempty"` // Names the catalog did not know
	Attempts   int              `json:"attempts"`          // Candidates sampled over all items

	IgnoredObstacles int `json:"ignored_obstacles,omitempty"` // Non-finite obstacles dropped from the request
}

// UsedArea returns the total footprint of placed items.
func (r PlacementResult) UsedArea() float64 {
	var total float64
	for _, p := range r.Placements {
		total += p.Width * p.Height
	}
	return total
}

// Coverage returns the share of floor area covered by furniture, in percent.
func (r PlacementResult) Coverage() float64 {
	area := r.Room.Area()
	if area == 0 {
		return 0
	}
	return r.UsedArea() / area * 100.0
}

// Complete reports whether every resolved item was placed.
func (r PlacementResult) Complete() bool {
	return len(r.Unplaced) == 0 && len(r.Placements) == len(r.Furniture)
}

// NewResultID returns a short identifier for a layout.
func NewResultID() string {
	return uuid.New().String()[:8]
}

// Layout ties a request, the settings used and its result together for
// save/load.
type Layout struct {
	Name      string           `json:"name"`
	CreatedAt string           `json:"created_at"`
	Request   PlacementRequest `json:"request"`
	Settings  Settings         `json:"settings"`
	Result    *PlacementResult `json:"result,omitempty"`
}

// NewLayout wraps a request and its settings into a named layout.
func NewLayout(name string, req PlacementRequest, settings Settings) Layout {
	return Layout{
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Request:   req,
		Settings:  settings,
	}
}
