package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// buildTestResult creates a realistic placement result for testing.
func buildTestResult() model.PlacementResult {
	return model.PlacementResult{
		ID:        "a1b2c3d4",
		Room:      model.Room{Width: 12, Height: 10},
		Furniture: []string{"Bed", "Chair", "Desk"},
		Obstacles: []model.Point2D{{X: 6, Y: 5}},
		Anchor:    model.Point2D{X: 4.75, Y: 4},
		Strategy:  model.StrategyAnchorJitter,
		Policy:    model.PolicySkip,
		Placements: []model.PlacedItem{
			{Kind: "Bed", X: 2.1, Y: 1.4, Width: 4, Height: 2},
			{Kind: "Chair", X: 7.3, Y: 6.2, Width: 1, Height: 1},
			{Kind: "Desk", X: 1.5, Y: 7.8, Width: 3, Height: 1},
		},
		Attempts: 7,
	}
}

func assertFileWritten(t *testing.T, path string, minSize int64) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() < minSize {
		t.Errorf("file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.pdf")

	if err := ExportPDF(path, buildTestResult(), model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertFileWritten(t, path, 500)
}

func TestExportPDF_InvalidRoom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	err := ExportPDF(path, model.PlacementResult{}, model.DefaultSettings())
	if err == nil {
		t.Fatal("expected error for zero room, got nil")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("no file should be written for an invalid room")
	}
}

func TestExportPDF_IncompleteLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unplaced.pdf")

	res := buildTestResult()
	res.Furniture = append(res.Furniture, "Wardrobe")
	res.Unplaced = []model.UnplacedItem{{Index: 3, Kind: "Wardrobe", Attempts: 200}}
	res.Ignored = []string{"Couch"}

	if err := ExportPDF(path, res, model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertFileWritten(t, path, 500)
}

func TestExportPDF_NoPlacements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.pdf")

	res := buildTestResult()
	res.Placements = []model.PlacedItem{}
	settings := model.DefaultSettings()
	settings.MarginFraction = 0

	if err := ExportPDF(path, res, settings); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertFileWritten(t, path, 200)
}

func TestExportPDF_LongPlacementTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.pdf")

	res := buildTestResult()
	res.Room = model.Room{Width: 60, Height: 40}
	res.Placements = nil
	for i := 0; i < 60; i++ {
		res.Placements = append(res.Placements, model.PlacedItem{
			Kind: "Chair", X: float64(i%10) * 5, Y: float64(i/10) * 5, Width: 1, Height: 1,
		})
	}

	if err := ExportPDF(path, res, model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertFileWritten(t, path, 500)
}

func TestKindColors_FirstAppearanceOrder(t *testing.T) {
	colors := kindColors([]model.PlacedItem{
		{Kind: "Chair"}, {Kind: "Bed"}, {Kind: "Chair"}, {Kind: "Desk"},
	})
	want := map[string]int{"Chair": 0, "Bed": 1, "Desk": 2}
	for kind, idx := range want {
		if colors[kind] != idx {
			t.Errorf("color index for %s: got %d, want %d", kind, colors[kind], idx)
		}
	}
}

func TestLayoutScale_FitsDrawingArea(t *testing.T) {
	for _, room := range []model.Room{{Width: 12, Height: 10}, {Width: 50, Height: 3}, {Width: 2, Height: 40}} {
		scale, ox, oy := layoutScale(room)
		if ox+room.Width*scale > pageWidth-marginRight+1e-9 {
			t.Errorf("room %v overflows page width", room)
		}
		if oy+room.Height*scale > pageHeight-marginBottom {
			t.Errorf("room %v overflows page height", room)
		}
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 60, 8},
		{30, 100, 7},
		{10, 10, 6},
	}
	for _, tt := range tests {
		if got := labelFontSize(tt.w, tt.h); got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
