package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExportResults serializes check records as indented JSON at path.
// Exporting an empty log is an error so callers can tell the user
// there is nothing to write.
func ExportResults(records []CheckRecord, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("no results to export")
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}

	return nil
}

// FormatResult renders a strength result for terminal output
func FormatResult(r StrengthResult) string {
	return fmt.Sprintf("%s: %s", r.Strength, r.Message)
}
