// Package importer reads placement inputs: furniture lists from CSV and
// Excel files, room outlines from DXF drawings, request files in YAML and
// the compact query-string forms used by the HTTP API.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// ImportResult holds the results of a furniture list import. Furniture is
// the expanded list of catalog names, one entry per item, in file order.
type ImportResult struct {
	Furniture []string
	Errors    []string
	Warnings  []string
}

// ColumnMapping holds the column index of each furniture list field.
type ColumnMapping struct {
	Kind     int
	Quantity int
}

// headerAliases lists the lowercase header spellings accepted per field.
var headerAliases = map[string][]string{
	"kind":     {"kind", "furniture", "name", "item", "type", "piece", "label"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
}

// DetectCSVDelimiter guesses the delimiter of a furniture list.
// Candidates are comma, semicolon, tab and pipe; the one giving the most
// consistent multi-column rows wins, and single-column files get comma.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		records, err := readCSV(bytes.NewReader(data), delim)
		if err != nil || len(records) == 0 || len(records[0]) < 2 {
			continue
		}

		width := len(records[0])
		score := 0
		for _, row := range records {
			if len(row) == width {
				score++
			}
		}

		if weighted := score*10 + width; weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns maps a header row onto furniture list fields.
// Matching is case-insensitive against known aliases. Without a header the
// mapping is positional: kind first, quantity second.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Kind: -1, Quantity: -1}

	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			if !containsString(aliases, normalized) {
				continue
			}
			switch role {
			case "kind":
				if mapping.Kind == -1 {
					mapping.Kind = i
				}
			case "quantity":
				if mapping.Quantity == -1 {
					mapping.Quantity = i
				}
			}
		}
	}

	if mapping.Kind == -1 && mapping.Quantity == -1 {
		return ColumnMapping{Kind: 0, Quantity: 1}, false
	}
	return mapping, true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// getCell returns the trimmed cell at idx, or "" when idx is outside the row.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts furniture names from a row. A missing quantity means one
// item. Unknown kinds produce a warning and no items.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, catalog model.Catalog) ([]string, string, string) {
	name := getCell(row, mapping.Kind)
	if name == "" {
		return nil, fmt.Sprintf("%s: Missing furniture kind", rowLabel), ""
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		n, err := strconv.Atoi(qtyStr)
		if err != nil {
			return nil, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), ""
		}
		if n <= 0 {
			return nil, fmt.Sprintf("%s: Quantity must be positive", rowLabel), ""
		}
		qty = n
	}

	kind, ok := catalog.Lookup(name)
	if !ok {
		return nil, "", fmt.Sprintf("%s: Unknown furniture '%s', skipping", rowLabel, name)
	}

	names := make([]string, qty)
	for i := range names {
		names[i] = kind.Name
	}
	return names, "", ""
}

// isEmptyRow reports whether every cell is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // Allow variable field counts
	return reader.ReadAll()
}

// ImportCSV imports a furniture list from a CSV file.
// The delimiter is detected and columns are mapped by header name.
func ImportCSV(path string, catalog model.Catalog) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", warnings, catalog)
}

// ImportCSVFromReader imports a furniture list from a CSV reader with a
// known delimiter.
func ImportCSVFromReader(r io.Reader, delimiter rune, catalog model.Catalog) ImportResult {
	records, err := readCSV(r, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(records, "Line", nil, catalog)
}

// ImportExcel imports a furniture list from the first sheet of an Excel file.
func ImportExcel(path string, catalog model.Catalog) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil, catalog)
}

// ImportFile dispatches on the file extension: .xlsx and .xls go through
// ImportExcel, everything else through ImportCSV.
func ImportFile(path string, catalog model.Catalog) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls") {
		return ImportExcel(path, catalog)
	}
	return ImportCSV(path, catalog)
}

// importFromRows turns CSV or Excel rows into a furniture list.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string, catalog model.Catalog) ImportResult {
	result := ImportResult{
		Furniture: []string{},
		Warnings:  initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
		if mapping.Kind == -1 {
			result.Errors = append(result.Errors, "Required columns not found in header: Kind")
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		names, errMsg, warning := parseRow(row, mapping, rowLabel, catalog)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Furniture = append(result.Furniture, names...)
	}

	return result
}
