package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/RoomLayout/internal/model"
)

func TestSaveAndLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study"+LayoutExt)

	layout := model.NewLayout("study", studyRequest(), model.DefaultSettings())
	layout.Result = &model.PlacementResult{
		ID:         "deadbeef",
		Room:       layout.Request.Room,
		Furniture:  layout.Request.Furniture,
		Placements: []model.PlacedItem{{Kind: "Bed", X: 2, Y: 1.5, Width: 4, Height: 2}},
	}

	if err := SaveLayout(path, layout); err != nil {
		t.Fatalf("SaveLayout error: %v", err)
	}

	loaded, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout error: %v", err)
	}
	if loaded.Name != "study" || loaded.CreatedAt == "" {
		t.Errorf("header not preserved: %q %q", loaded.Name, loaded.CreatedAt)
	}
	if loaded.Result == nil || len(loaded.Result.Placements) != 1 {
		t.Fatalf("result not preserved: %+v", loaded.Result)
	}
	if p := loaded.Result.Placements[0]; p.Kind != "Bed" || p.X != 2 || p.Y != 1.5 {
		t.Errorf("placement not preserved: %+v", p)
	}
	if len(loaded.Request.Obstacles) != 1 {
		t.Errorf("obstacles not preserved: %+v", loaded.Request.Obstacles)
	}
}

func TestSaveLayout_RequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon"+LayoutExt)
	if err := SaveLayout(path, model.Layout{}); err == nil {
		t.Fatal("expected error for unnamed layout")
	}
}

func TestLoadLayout_NilSlices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare"+LayoutExt)
	data := `{"name":"bare","request":{"room":{"width":4,"height":4}}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout error: %v", err)
	}
	if loaded.Request.Furniture == nil || loaded.Request.Obstacles == nil {
		t.Error("expected empty slices instead of nil")
	}
	if loaded.Result != nil {
		t.Error("expected no result")
	}
}

func TestLoadLayout_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLayout(filepath.Join(dir, "missing"+LayoutExt)); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad"+LayoutExt)
	if err := os.WriteFile(bad, []byte("[1,2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLayout(bad); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestListLayouts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b", "a"} {
		if err := SaveLayout(filepath.Join(dir, name+LayoutExt), model.NewLayout(name, studyRequest(), model.DefaultSettings())); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := ListLayouts(dir)
	if err != nil {
		t.Fatalf("ListLayouts error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 layouts, got %v", files)
	}
	if filepath.Base(files[0]) != "a"+LayoutExt {
		t.Errorf("expected sorted names, got %v", files)
	}

	empty, err := ListLayouts(filepath.Join(dir, "missing"))
	if err != nil || len(empty) != 0 {
		t.Errorf("missing dir: got %v, %v", empty, err)
	}
}
