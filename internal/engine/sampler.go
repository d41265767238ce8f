package engine

import (
	"math"
	"math/rand"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// Sampler runs the per-item retry loop and owns the growing set of placed
// items for one request. It is not safe for concurrent use.
type Sampler struct {
	Room        model.Room
	Margin      float64
	MinSpacing  float64
	Obstacles   []model.Point2D
	RetryBudget int
	Precision   int
	ItemSpacing bool
	Proposer    Proposer

	rng        *rand.Rand
	placed     []model.PlacedItem
	rejections map[Rejection]int
}

// NewSampler creates a sampler for one request. The margin, spacing,
// budget and precision are taken from settings.
func NewSampler(rng *rand.Rand, proposer Proposer, room model.Room, obstacles []model.Point2D, settings model.Settings) *Sampler {
	return &Sampler{
		Room:        room,
		Margin:      settings.Margin(room),
		MinSpacing:  settings.MinSpacing(room),
		Obstacles:   obstacles,
		RetryBudget: settings.RetryBudget,
		Precision:   settings.Precision,
		ItemSpacing: settings.ItemSpacing,
		Proposer:    proposer,
		rng:         rng,
		rejections:  make(map[Rejection]int),
	}
}

// Place samples candidates for one item until one is accepted or the retry
// budget runs out. It returns the accepted item, the number of attempts
// used and whether the item was placed. Accepted items join the placed set
// and constrain every later call.
func (s *Sampler) Place(kind model.FurnitureKind, index int) (model.PlacedItem, int, bool) {
	for attempt := 1; attempt <= s.RetryBudget; attempt++ {
		p := s.Proposer.Propose(s.rng, kind, index)
		candidate := model.Rect{
			X:      s.snap(p.X, s.Room.Width-kind.Width),
			Y:      s.snap(p.Y, s.Room.Height-kind.Height),
			Width:  kind.Width,
			Height: kind.Height,
		}

		reason := s.check(candidate)
		if reason == RejectNone {
			item := model.PlacedItem{
				Kind:   kind.Name,
				X:      candidate.X,
				Y:      candidate.Y,
				Width:  candidate.Width,
				Height: candidate.Height,
			}
			s.placed = append(s.placed, item)
			return item, attempt, true
		}
		s.rejections[reason]++
	}
	return model.PlacedItem{}, s.RetryBudget, false
}

// Placed returns the accepted items in placement order.
func (s *Sampler) Placed() []model.PlacedItem {
	out := make([]model.PlacedItem, len(s.placed))
	copy(out, s.placed)
	return out
}

// Rejections returns how many candidates were rejected for each reason.
func (s *Sampler) Rejections() map[Rejection]int {
	out := make(map[Rejection]int, len(s.rejections))
	for k, v := range s.rejections {
		out[k] = v
	}
	return out
}

// snap clamps v into [0, upper] and rounds it to the configured precision.
// A negative upper bound means the item cannot fit; v is pinned to 0 and
// left for the validity check to reject.
func (s *Sampler) snap(v, upper float64) float64 {
	v = math.Max(0, math.Min(v, math.Max(0, upper)))
	return model.RoundTo(v, s.Precision)
}

func (s *Sampler) check(candidate model.Rect) Rejection {
	if r := CheckValidity(candidate, s.Room, s.Margin, s.MinSpacing, s.Obstacles); r != RejectNone {
		return r
	}
	if CollidesWithItems(candidate, s.placed) {
		return RejectCollision
	}
	if s.ItemSpacing {
		origin := candidate.Origin()
		for _, p := range s.placed {
			if origin.DistanceTo(p.Point()) < s.MinSpacing {
				return RejectItemSpacing
			}
		}
	}
	return RejectNone
}
