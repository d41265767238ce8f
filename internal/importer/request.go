package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// RequestFile is the YAML form of a placement request.
//
//	room: {width: 12, height: 10}
//	furniture: [Bed, Chair]
//	obstacles: [{x: 6, y: 5}]
//	seed: 42
type RequestFile struct {
	Room      model.Room      `yaml:"room"`
	Furniture []string        `yaml:"furniture"`
	Obstacles []model.Point2D `yaml:"obstacles"`
	Seed      *int64          `yaml:"seed,omitempty"`
}

// ParseRequest decodes a YAML request document. Obstacles with a NaN or
// infinite coordinate (YAML .nan, .inf) are dropped and reported as
// warnings.
func ParseRequest(data []byte) (model.PlacementRequest, []string, error) {
	var rf RequestFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return model.PlacementRequest{}, nil, fmt.Errorf("parsing request: %w", err)
	}
	if !rf.Room.Valid() {
		return model.PlacementRequest{}, nil, fmt.Errorf("parsing request: room must have positive width and height, got %v x %v",
			rf.Room.Width, rf.Room.Height)
	}
	req := model.PlacementRequest{
		Room:      rf.Room,
		Furniture: rf.Furniture,
		Obstacles: make([]model.Point2D, 0, len(rf.Obstacles)),
		Seed:      rf.Seed,
	}
	if req.Furniture == nil {
		req.Furniture = []string{}
	}

	var warnings []string
	for _, o := range rf.Obstacles {
		if !o.Finite() {
			warnings = append(warnings, fmt.Sprintf("Ignoring malformed obstacle '%v,%v'", o.X, o.Y))
			continue
		}
		req.Obstacles = append(req.Obstacles, o)
	}
	return req, warnings, nil
}

// LoadRequest reads a YAML request file from disk.
func LoadRequest(path string) (model.PlacementRequest, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PlacementRequest{}, nil, fmt.Errorf("reading request file: %w", err)
	}
	return ParseRequest(data)
}

// SaveRequest writes a request as YAML.
func SaveRequest(path string, req model.PlacementRequest) error {
	rf := RequestFile{
		Room:      req.Room,
		Furniture: req.Furniture,
		Obstacles: req.Obstacles,
		Seed:      req.Seed,
	}
	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
