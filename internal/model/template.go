package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomTemplate is a reusable room setup: dimensions, a furniture list,
// obstacles and the settings to place them with. It never carries results.
type RoomTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	Room        Room      `json:"room"`
	Furniture   []string  `json:"furniture"`
	Obstacles   []Point2D `json:"obstacles"`
	Settings    Settings  `json:"settings"`
}

// NewRoomTemplate captures a request and its settings as a template.
// Slices are copied so later edits to the request do not leak in.
func NewRoomTemplate(name, description string, req PlacementRequest, settings Settings) RoomTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return RoomTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Room:        req.Room,
		Furniture:   copyStrings(req.Furniture),
		Obstacles:   copyPoints(req.Obstacles),
		Settings:    settings,
	}
}

// ToRequest builds a fresh placement request from the template.
func (t RoomTemplate) ToRequest() PlacementRequest {
	return PlacementRequest{
		Room:      t.Room,
		Furniture: copyStrings(t.Furniture),
		Obstacles: copyPoints(t.Obstacles),
	}
}

// TemplateStore holds a collection of room templates.
type TemplateStore struct {
	Templates []RoomTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []RoomTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t RoomTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *RoomTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *RoomTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	cp := make([]string, len(s))
	copy(cp, s)
	return cp
}

func copyPoints(p []Point2D) []Point2D {
	if p == nil {
		return []Point2D{}
	}
	cp := make([]Point2D, len(p))
	copy(cp, p)
	return cp
}
