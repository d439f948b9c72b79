package report

import (
	"encoding/json"
	"os"
	"time"
)

// New creates a report stamped with the current time.
func New() *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// WriteJSON serializes the report to an indented JSON file.
func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
