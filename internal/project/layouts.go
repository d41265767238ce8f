// Package project persists layouts, room templates and backups as JSON
// files.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// LayoutExt is the file extension used for saved layouts.
const LayoutExt = ".layout.json"

// SaveLayout writes a layout to path as JSON.
func SaveLayout(path string, layout model.Layout) error {
	if layout.Name == "" {
		return fmt.Errorf("layout has no name")
	}
	return writeJSON(path, layout)
}

// LoadLayout reads a layout from path. Nil slices in the request come back
// as empty slices.
func LoadLayout(path string) (model.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Layout{}, err
	}
	var layout model.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return model.Layout{}, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if layout.Request.Furniture == nil {
		layout.Request.Furniture = []string{}
	}
	if layout.Request.Obstacles == nil {
		layout.Request.Obstacles = []model.Point2D{}
	}
	return layout, nil
}

// ListLayouts returns the saved layout files in dir, sorted by name.
// A missing directory yields no layouts.
func ListLayouts(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+LayoutExt))
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []string{}
	}
	return matches, nil
}
