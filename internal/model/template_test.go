package model

import (
	"testing"
)

func sampleRequest() PlacementRequest {
	return PlacementRequest{
		Room:      Room{Width: 12, Height: 10},
		Furniture: []string{"Bed", "Chair"},
		Obstacles: []Point2D{{X: 6, Y: 5}},
	}
}

func TestNewRoomTemplate(t *testing.T) {
	tmpl := NewRoomTemplate("Bedroom", "Small bedroom", sampleRequest(), DefaultSettings())

	if tmpl.Name != "Bedroom" {
		t.Errorf("expected name 'Bedroom', got %q", tmpl.Name)
	}
	if tmpl.Description != "Small bedroom" {
		t.Errorf("expected description 'Small bedroom', got %q", tmpl.Description)
	}
	if len(tmpl.ID) != 8 {
		t.Errorf("expected 8 character ID, got %q", tmpl.ID)
	}
	if tmpl.CreatedAt == "" || tmpl.UpdatedAt == "" {
		t.Error("expected timestamps to be set")
	}
	if len(tmpl.Furniture) != 2 {
		t.Errorf("expected 2 furniture names, got %d", len(tmpl.Furniture))
	}
	if len(tmpl.Obstacles) != 1 {
		t.Errorf("expected 1 obstacle, got %d", len(tmpl.Obstacles))
	}
}

func TestNewRoomTemplateCopiesSlices(t *testing.T) {
	req := sampleRequest()
	tmpl := NewRoomTemplate("Bedroom", "", req, DefaultSettings())

	req.Furniture[0] = "Sofa"
	req.Obstacles[0].X = 1

	if tmpl.Furniture[0] != "Bed" {
		t.Errorf("template furniture changed with request, got %q", tmpl.Furniture[0])
	}
	if tmpl.Obstacles[0].X != 6 {
		t.Errorf("template obstacle changed with request, got %v", tmpl.Obstacles[0].X)
	}
}

func TestRoomTemplate_ToRequest(t *testing.T) {
	tmpl := NewRoomTemplate("Bedroom", "", sampleRequest(), DefaultSettings())
	req := tmpl.ToRequest()

	if req.Room != tmpl.Room {
		t.Errorf("expected room %+v, got %+v", tmpl.Room, req.Room)
	}
	if req.Seed != nil {
		t.Error("expected no seed on a request built from a template")
	}

	req.Furniture[0] = "Desk"
	if tmpl.Furniture[0] != "Bed" {
		t.Error("editing the request must not change the template")
	}
}

func TestTemplateStore(t *testing.T) {
	store := NewTemplateStore()
	if len(store.Templates) != 0 {
		t.Fatalf("expected empty store, got %d", len(store.Templates))
	}

	a := NewRoomTemplate("A", "", sampleRequest(), DefaultSettings())
	b := NewRoomTemplate("B", "", sampleRequest(), ZonedSettings())
	store.Add(a)
	store.Add(b)

	names := store.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("unexpected names %v", names)
	}

	if got := store.FindByID(b.ID); got == nil || got.Name != "B" {
		t.Errorf("FindByID(%q) = %v", b.ID, got)
	}
	if got := store.FindByName("A"); got == nil || got.ID != a.ID {
		t.Errorf("FindByName(A) = %v", got)
	}
	if store.FindByName("missing") != nil {
		t.Error("expected nil for missing name")
	}

	if !store.Remove(a.ID) {
		t.Error("expected Remove to find template A")
	}
	if store.Remove(a.ID) {
		t.Error("expected second Remove to report false")
	}
	if len(store.Templates) != 1 {
		t.Errorf("expected 1 template after remove, got %d", len(store.Templates))
	}
}
