package engine

import "github.com/piwi3910/RoomLayout/internal/model"

// Collides reports whether the candidate overlaps any placed box.
// Touching edges do not collide. Degenerate boxes on either side are
// ignored rather than treated as errors.
func Collides(candidate model.Rect, placed []model.Rect) bool {
	if candidate.Degenerate() {
		return false
	}
	for _, p := range placed {
		if p.Degenerate() {
			continue
		}
		if candidate.Overlaps(p) {
			return true
		}
	}
	return false
}

// CollidesWithItems is Collides over placed furniture items.
func CollidesWithItems(candidate model.Rect, placed []model.PlacedItem) bool {
	rects := make([]model.Rect, len(placed))
	for i, p := range placed {
		rects[i] = p.Rect()
	}
	return Collides(candidate, rects)
}
