package engine

import "github.com/piwi3910/RoomLayout/internal/model"

// Rejection is the reason a candidate position was turned down.
type Rejection int

const (
	RejectNone        Rejection = iota // Candidate accepted
	RejectOutOfRoom                    // Box leaves the room
	RejectMargin                       // Box enters the wall margin band
	RejectObstacle                     // Placement point too close to an obstacle
	RejectCollision                    // Box overlaps an already placed item
	RejectItemSpacing                  // Placement point too close to a placed item's point
)

// String returns the reason as used in logs and metric labels.
func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectOutOfRoom:
		return "out_of_room"
	case RejectMargin:
		return "margin"
	case RejectObstacle:
		return "obstacle"
	case RejectCollision:
		return "collision"
	case RejectItemSpacing:
		return "item_spacing"
	}
	return "unknown"
}

// CheckValidity tests a candidate box against the room bounds, the wall
// margin band and obstacle clearance, in that order, and returns the first
// failing reason. Obstacle clearance is measured from the box origin, the
// placement point, as a circle of radius minSpacing.
func CheckValidity(candidate model.Rect, room model.Room, margin, minSpacing float64, obstacles []model.Point2D) Rejection {
	if candidate.Degenerate() {
		return RejectOutOfRoom
	}

	// Room bounds, before any margin
	if candidate.X < 0 || candidate.Y < 0 ||
		candidate.Right() > room.Width || candidate.Bottom() > room.Height {
		return RejectOutOfRoom
	}

	// Margin band along every wall
	if candidate.X < margin || candidate.Y < margin ||
		candidate.Right() > room.Width-margin || candidate.Bottom() > room.Height-margin {
		return RejectMargin
	}

	origin := candidate.Origin()
	for _, o := range obstacles {
		if origin.DistanceTo(o) < minSpacing {
			return RejectObstacle
		}
	}
	return RejectNone
}

// IsValid reports whether the candidate passes CheckValidity.
func IsValid(candidate model.Rect, room model.Room, margin, minSpacing float64, obstacles []model.Point2D) bool {
	return CheckValidity(candidate, room, margin, minSpacing, obstacles) == RejectNone
}
