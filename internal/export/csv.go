// Package export writes password history to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/passtui/internal/model"
)

// WriteCSV writes a header row and one row per entry, oldest first. The
// file is written to a temp location and renamed, so a failed export
// never leaves a partial file at path.
func WriteCSV(path string, entries []model.Entry) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "export-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp export file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := csv.NewWriter(tmpFile)
	if err := writer.Write([]string{"password", "timestamp", "strength"}); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, entry := range entries {
		if err := writer.Write([]string{entry.Password, entry.Timestamp, string(entry.Strength)}); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
