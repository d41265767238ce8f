package project

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// BackupVersion is written into every backup file.
const BackupVersion = "1.0.0"

// BackupData bundles the template store and saved layouts into one file.
type BackupData struct {
	Version   string              `json:"version"`
	CreatedAt string              `json:"created_at"`
	Templates model.TemplateStore `json:"templates"`
	Layouts   []model.Layout      `json:"layouts"`
}

// ExportAllData writes templates and layouts to a single JSON file.
func ExportAllData(exportPath string, templates model.TemplateStore, layouts []model.Layout) error {
	backup := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Templates: templates,
		Layouts:   layouts,
	}
	if backup.Layouts == nil {
		backup.Layouts = []model.Layout{}
	}
	if err := writeJSON(exportPath, backup); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file. The caller decides how to merge the
// contents.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if backup.Templates.Templates == nil {
		backup.Templates.Templates = []model.RoomTemplate{}
	}
	if backup.Layouts == nil {
		backup.Layouts = []model.Layout{}
	}
	return backup, nil
}
