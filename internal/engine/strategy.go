package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// Proposer produces candidate placement points for one furniture item.
// index is the item's position in the resolved furniture list. A proposer
// draws all of its randomness from rng and holds no per-request state of
// its own, so a single value can serve every attempt of a request.
type Proposer interface {
	Propose(rng *rand.Rand, kind model.FurnitureKind, index int) model.Point2D
}

// AnchorJitter proposes points in the square [-Jitter, Jitter]² around the
// predicted anchor.
type AnchorJitter struct {
	Anchor model.Point2D
	Jitter float64
}

// Propose implements Proposer.
func (a AnchorJitter) Propose(rng *rand.Rand, _ model.FurnitureKind, _ int) model.Point2D {
	return model.Point2D{
		X: a.Anchor.X + uniform(rng, -a.Jitter, a.Jitter),
		Y: a.Anchor.Y + uniform(rng, -a.Jitter, a.Jitter),
	}
}

// Zoned proposes points inside the interior of the zone assigned to each
// item, leaving room for the item's footprint when the interior allows it.
type Zoned struct {
	Assignments []model.Zone // Zone per item index
}

// Propose implements Proposer.
func (z Zoned) Propose(rng *rand.Rand, kind model.FurnitureKind, index int) model.Point2D {
	if len(z.Assignments) == 0 {
		return model.Point2D{}
	}
	interior := z.Assignments[index%len(z.Assignments)].Interior()
	return model.Point2D{
		X: uniform(rng, interior.X, math.Max(interior.X, interior.Right()-kind.Width)),
		Y: uniform(rng, interior.Y, math.Max(interior.Y, interior.Bottom()-kind.Height)),
	}
}

// Uniform proposes points anywhere in the margin-adjusted room interior.
type Uniform struct {
	Room   model.Room
	Margin float64
}

// Propose implements Proposer.
func (u Uniform) Propose(rng *rand.Rand, kind model.FurnitureKind, _ int) model.Point2D {
	maxX := math.Max(u.Margin, u.Room.Width-u.Margin-kind.Width)
	maxY := math.Max(u.Margin, u.Room.Height-u.Margin-kind.Height)
	return model.Point2D{
		X: uniform(rng, u.Margin, maxX),
		Y: uniform(rng, u.Margin, maxY),
	}
}

// NewProposer builds the proposer selected by settings.Strategy. zones is
// the per-item zone assignment and is only used by the zoned strategy.
func NewProposer(settings model.Settings, room model.Room, anchor model.Point2D, zones []model.Zone) (Proposer, error) {
	switch settings.Strategy {
	case model.StrategyAnchorJitter:
		return AnchorJitter{Anchor: anchor, Jitter: settings.Jitter}, nil
	case model.StrategyZoned:
		return Zoned{Assignments: zones}, nil
	case model.StrategyUniform:
		return Uniform{Room: room, Margin: settings.Margin(room)}, nil
	}
	return nil, fmt.Errorf("unknown placement strategy %q", settings.Strategy)
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
