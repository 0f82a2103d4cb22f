package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONWriter writes fetch reports to disk, creating parent directories as
// needed.
type JSONWriter struct{}

func (JSONWriter) Write(path string, report any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
