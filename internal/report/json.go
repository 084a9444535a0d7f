package report

import (
	"encoding/json"
	"fmt"

	"github.com/smartpr/fmtgate/internal/model"
)

// jsonEntry is one line item of the machine-readable artifact consumed by
// downstream pipeline jobs. The status vocabulary is part of that contract:
// "formatted", "no_changes", or "error".
type jsonEntry struct {
	File    string `json:"file"`
	Status  string `json:"status"`
	Changes bool   `json:"changes"`
}

func jsonStatus(s model.Status) string {
	if s == model.StatusUnchanged {
		return "no_changes"
	}
	return string(s)
}

// WriteJSON renders the report as a JSON array at path, creating parent
// directories as needed. An empty report writes an empty array, not null.
func (r *Report) WriteJSON(path string) error {
	entries := make([]jsonEntry, 0)
	for _, o := range r.Outcomes() {
		entries = append(entries, jsonEntry{
			File:    o.File.Path,
			Status:  jsonStatus(o.Status),
			Changes: o.Status == model.StatusFormatted,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json report: %w", err)
	}
	return writeArtifact(path, append(data, '\n'))
}
