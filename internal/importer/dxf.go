package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// RoomImportResult holds a room and its obstacles read from a floor plan.
type RoomImportResult struct {
	Room      model.Room
	Obstacles []model.Point2D
	Errors    []string
	Warnings  []string
}

// segment is one wall piece from a LINE or ARC, chained into outlines.
type segment struct {
	start model.Point2D
	end   model.Point2D
}

// ImportRoomDXF reads a floor plan. The largest closed shape (LWPOLYLINE or
// chain of connected LINEs/ARCs) becomes the room: its bounding box gives
// the width and height, and its minimum corner becomes the origin. Every
// CIRCLE and POINT inside the room becomes an obstacle, relative to that
// origin.
func ImportRoomDXF(path string) RoomImportResult {
	result := RoomImportResult{Obstacles: []model.Point2D{}}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]model.Point2D
	var segments []segment
	var markers []model.Point2D

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := make([]model.Point2D, 0, len(e.Vertices))
			for _, v := range e.Vertices {
				outline = append(outline, model.Point2D{X: v[0], Y: v[1]})
			}
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			markers = append(markers, model.Point2D{X: e.Center[0], Y: e.Center[1]})

		case *entity.Point:
			markers = append(markers, model.Point2D{X: e.Coord[0], Y: e.Coord[1]})

		case *entity.Arc:
			pts := arcToPoints(e, 16)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(pts)...)
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Other entities are ignored
		}
	}

	outlines = append(outlines, chainSegments(segments, 0.01)...)
	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed room outline found in DXF file")
		return result
	}

	// Largest shape wins
	sort.SliceStable(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})
	if len(outlines) > 1 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Found %d closed shapes, using the largest as the room", len(outlines)))
	}

	bounds := boundingBox(outlines[0])
	if bounds.Width < 0.01 || bounds.Height < 0.01 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Room outline is degenerate (%.2f x %.2f)", bounds.Width, bounds.Height))
		return result
	}
	result.Room = model.Room{Width: bounds.Width, Height: bounds.Height}

	for _, m := range markers {
		rel := model.Point2D{X: m.X - bounds.X, Y: m.Y - bounds.Y}
		if rel.X < 0 || rel.Y < 0 || rel.X > bounds.Width || rel.Y > bounds.Height {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped obstacle at (%.2f, %.2f) outside the room", m.X, m.Y))
			continue
		}
		result.Obstacles = append(result.Obstacles, rel)
	}

	return result
}

// boundingBox returns the axis-aligned bounds of a point set.
func boundingBox(pts []model.Point2D) model.Rect {
	if len(pts) == 0 {
		return model.Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return model.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// arcToPoints approximates an ARC with numSegments straight pieces.
func arcToPoints(a *entity.Arc, numSegments int) []model.Point2D {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]model.Point2D, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = model.Point2D{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// pointsToSegments links consecutive points.
func pointsToSegments(pts []model.Point2D) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments joins segments end to end into closed outlines, matching
// endpoints within tolerance.
// tolerance is the maximum distance between endpoints to consider them
// connected. Open chains are discarded.
func chainSegments(segs []segment, tolerance float64) [][]model.Point2D {
	used := make([]bool, len(segs))
	var outlines [][]model.Point2D

	for start := range segs {
		if used[start] {
			continue
		}
		used[start] = true
		chain := []model.Point2D{segs[start].start, segs[start].end}

		for extended := true; extended; {
			extended = false
			tail := chain[len(chain)-1]
			for i, seg := range segs {
				if used[i] {
					continue
				}
				var next model.Point2D
				switch {
				case tail.DistanceTo(seg.start) <= tolerance:
					next = seg.end
				case tail.DistanceTo(seg.end) <= tolerance:
					next = seg.start
				default:
					continue
				}
				chain = append(chain, next)
				used[i] = true
				extended = true
				break
			}
		}

		closed := len(chain) >= 4 && chain[0].DistanceTo(chain[len(chain)-1]) <= tolerance
		if closed {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}
	return outlines
}

// outlineArea returns the absolute shoelace area of an outline.
func outlineArea(o []model.Point2D) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].X*o[j].Y - o[j].X*o[i].Y
	}
	return math.Abs(area) / 2
}
