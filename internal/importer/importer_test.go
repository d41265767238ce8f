package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "Kind,Qty\nBed,1\nChair,2\n", ','},
		{"semicolon", "Kind;Qty\nBed;1\nChair;2\n", ';'},
		{"tab", "Kind\tQty\nBed\t1\nChair\t2\n", '\t'},
		{"pipe", "Kind|Qty\nBed|1\nChair|2\n", '|'},
		{"single column", "Bed\nChair\n", ','},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCSVDelimiter([]byte(tt.data)); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_Headers(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Qty", "Furniture"})
	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Kind != 1 || mapping.Quantity != 0 {
		t.Errorf("unexpected mapping %+v", mapping)
	}

	mapping, isHeader = DetectColumns([]string{"NAME", "COUNT"})
	if !isHeader || mapping.Kind != 0 || mapping.Quantity != 1 {
		t.Errorf("case-insensitive match failed: %+v %v", mapping, isHeader)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Bed", "2"})
	if isHeader {
		t.Error("expected no header")
	}
	if mapping.Kind != 0 || mapping.Quantity != 1 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── Row Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_ExpandsQuantity(t *testing.T) {
	data := "Kind,Quantity\nBed,1\nChair,3\nDining Table,\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',', model.DefaultCatalog())

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	want := []string{"Bed", "Chair", "Chair", "Chair", "Dining Table"}
	if strings.Join(result.Furniture, "|") != strings.Join(want, "|") {
		t.Errorf("expected %v, got %v", want, result.Furniture)
	}
}

func TestImportCSVFromReader_UnknownAndInvalid(t *testing.T) {
	data := "Couch,1\nBed,abc\nChair,-1\n,2\nDesk,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',', model.DefaultCatalog())

	if len(result.Furniture) != 1 || result.Furniture[0] != "Desk" {
		t.Errorf("expected only Desk, got %v", result.Furniture)
	}
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 errors, got %v", result.Errors)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "Couch") {
		t.Errorf("expected a warning naming Couch, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_MissingKindColumn(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Qty\n2\n"), ',', model.DefaultCatalog())
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Required columns not found") {
		t.Errorf("expected missing column error, got %v", result.Errors)
	}
}

// ─── CSV File Import Tests ──────────────────────────────────

func TestImportCSV_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "furniture.csv")
	if err := os.WriteFile(path, []byte("Item;Qty\nBed;1\nSofa;1\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path, model.DefaultCatalog())
	if len(result.Furniture) != 2 {
		t.Fatalf("expected 2 items, got %v (errors: %v)", result.Furniture, result.Errors)
	}

	hasSemicolonWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			hasSemicolonWarning = true
		}
	}
	if !hasSemicolonWarning {
		t.Error("expected warning about semicolon delimiter detection")
	}
}

func TestImportCSV_SingleColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "furniture.csv")
	if err := os.WriteFile(path, []byte("Bed\nChair\n\nChair\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	result := ImportFile(path, model.DefaultCatalog())
	if len(result.Furniture) != 3 {
		t.Errorf("expected 3 items, got %v (errors: %v)", result.Furniture, result.Errors)
	}
}

func TestImportCSV_FileErrors(t *testing.T) {
	result := ImportCSV("/nonexistent/path/file.csv", model.DefaultCatalog())
	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	result = ImportCSV(path, model.DefaultCatalog())
	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "furniture.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Furniture", "Quantity"},
		{"Wardrobe", 1},
		{"Bookshelf", 2},
	})

	result := ImportFile(path, model.DefaultCatalog())
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	want := "Wardrobe|Bookshelf|Bookshelf"
	if got := strings.Join(result.Furniture, "|"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/file.xlsx", model.DefaultCatalog())
	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}
