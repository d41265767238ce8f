package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// ParseObstacles parses the "x1,y1;x2,y2" obstacle form. Entries that are
// not exactly two numbers are dropped and reported as warnings; empty
// entries are skipped silently.
func ParseObstacles(s string) ([]model.Point2D, []string) {
	obstacles := []model.Point2D{}
	var warnings []string

	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ",")
		if len(parts) != 2 {
			warnings = append(warnings, fmt.Sprintf("Ignoring malformed obstacle '%s'", entry))
			continue
		}
		x, errX := parseCoord(parts[0])
		y, errY := parseCoord(parts[1])
		if errX != nil || errY != nil {
			warnings = append(warnings, fmt.Sprintf("Ignoring malformed obstacle '%s'", entry))
			continue
		}
		obstacles = append(obstacles, model.Point2D{X: x, Y: y})
	}
	return obstacles, warnings
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite coordinate %q", s)
	}
	return v, nil
}

// ParseFurniture parses the "Bed,Table,Chair" furniture form, keeping only
// names the catalog knows. Unknown names are dropped and reported.
func ParseFurniture(s string, catalog model.Catalog) ([]string, []string) {
	names := []string{}
	var warnings []string

	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		kind, ok := catalog.Lookup(token)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("Ignoring unknown furniture '%s'", token))
			continue
		}
		names = append(names, kind.Name)
	}
	return names, warnings
}

// FormatObstacles renders obstacles in the form ParseObstacles reads.
func FormatObstacles(obstacles []model.Point2D) string {
	parts := make([]string, len(obstacles))
	for i, o := range obstacles {
		parts[i] = strconv.FormatFloat(o.X, 'f', -1, 64) + "," + strconv.FormatFloat(o.Y, 'f', -1, 64)
	}
	return strings.Join(parts, ";")
}
