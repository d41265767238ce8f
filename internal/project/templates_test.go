package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/RoomLayout/internal/model"
)

func studyRequest() model.PlacementRequest {
	return model.PlacementRequest{
		Room:      model.Room{Width: 12, Height: 10},
		Furniture: []string{"Bed", "Desk", "Chair"},
		Obstacles: []model.Point2D{{X: 6, Y: 5}},
	}
}

func TestSaveAndLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	store := model.NewTemplateStore()
	store.Add(model.NewRoomTemplate("Study", "Bed with a desk corner", studyRequest(), model.DefaultSettings()))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	got := loaded.Templates[0]
	if got.Name != "Study" {
		t.Errorf("expected 'Study', got %q", got.Name)
	}
	if len(got.Furniture) != 3 || got.Furniture[1] != "Desk" {
		t.Errorf("furniture not preserved: %v", got.Furniture)
	}
	if got.Room.Width != 12 || got.Room.Height != 10 {
		t.Errorf("room not preserved: %+v", got.Room)
	}
	if got.Settings.RetryBudget != model.DefaultSettings().RetryBudget {
		t.Errorf("settings not preserved: %+v", got.Settings)
	}
}

func TestLoadTemplates_NotFound(t *testing.T) {
	store, err := LoadTemplates(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if store.Templates == nil || len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %v", store.Templates)
	}
}

func TestLoadTemplates_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTemplates(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestSaveTemplates_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "templates.json")

	store := model.NewTemplateStore()
	store.Add(model.NewRoomTemplate("T1", "First", studyRequest(), model.DefaultSettings()))
	store.Add(model.NewRoomTemplate("T2", "Second", studyRequest(), model.ZonedSettings()))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}
	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if len(loaded.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(loaded.Templates))
	}
	if loaded.Templates[1].Settings.Strategy != model.StrategyZoned {
		t.Errorf("expected zoned strategy, got %q", loaded.Templates[1].Settings.Strategy)
	}
}

func TestDefaultTemplatePath(t *testing.T) {
	path := DefaultTemplatePath()
	if filepath.Base(path) != "templates.json" {
		t.Errorf("unexpected file name: %s", path)
	}
	if filepath.Base(filepath.Dir(path)) != ".roomlayout" {
		t.Errorf("unexpected directory: %s", path)
	}
}
