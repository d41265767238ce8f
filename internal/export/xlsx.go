package export

import (
	"fmt"

	"github.com/piwi3910/RoomLayout/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by ExportXLSX.
const (
	PlacementsSheet = "Placements"
	SummarySheet    = "Summary"
)

var placementHeaders = []interface{}{"Item", "Kind", "X", "Y", "Width", "Height"}

// ExportXLSX writes the placements to a spreadsheet with one row per item
// and a second sheet holding the room and result summary.
func ExportXLSX(path string, res model.PlacementResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), PlacementsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]interface{}{placementHeaders}
	for i, p := range res.Placements {
		rows = append(rows, []interface{}{i + 1, p.Kind, p.X, p.Y, p.Width, p.Height})
	}
	if err := writeRows(f, PlacementsSheet, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	summary := [][]interface{}{
		{"Layout", res.ID},
		{"Room Width", res.Room.Width},
		{"Room Height", res.Room.Height},
		{"Strategy", string(res.Strategy)},
		{"Policy", string(res.Policy)},
		{"Anchor X", res.Anchor.X},
		{"Anchor Y", res.Anchor.Y},
		{"Requested", len(res.Furniture)},
		{"Placed", len(res.Placements)},
		{"Unplaced", len(res.Unplaced)},
		{"Coverage %", model.RoundTo(res.Coverage(), 2)},
		{"Attempts", res.Attempts},
		{"Ignored Obstacles", res.IgnoredObstacles},
	}
	for _, u := range res.Unplaced {
		summary = append(summary, []interface{}{"Unplaced Item", fmt.Sprintf("%s (item %d)", u.Kind, u.Index+1)})
	}
	for _, name := range res.Ignored {
		summary = append(summary, []interface{}{"Ignored", name})
	}
	for _, o := range res.Obstacles {
		summary = append(summary, []interface{}{"Obstacle", fmt.Sprintf("%.2f,%.2f", o.X, o.Y)})
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save spreadsheet: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				return fmt.Errorf("set %s!%s: %w", sheet, ref, err)
			}
		}
	}
	return nil
}
