// Package snapshot encodes and decodes the export/import text format: the
// aggregate document plus an export timestamp and a version tag.
package snapshot

import (
	"encoding/json"
	"fmt"
	"strings"

	"vitalog/internal/constants"
	apperrors "vitalog/internal/errors"
	"vitalog/internal/models"
)

// Snapshot is the export envelope. Metadata fields are never merged back into
// the aggregate on import.
type Snapshot struct {
	models.AppData
	ExportedAt int64  `json:"exportedAt"`
	Version    string `json:"version"`
}

// Export serializes the aggregate with export metadata, pretty-printed.
func Export(data models.AppData, nowMillis int64) ([]byte, error) {
	snap := Snapshot{
		AppData:    data,
		ExportedAt: nowMillis,
		Version:    constants.SnapshotVersion,
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return raw, nil
}

// payload detects collection presence: a missing array stays nil, an empty
// one does not.
type payload struct {
	WaterEntries  *[]models.WaterEntry   `json:"waterEntries"`
	MoodEntries   *[]models.MoodEntry    `json:"moodEntries"`
	GoalEntries   *[]models.GoalEntry    `json:"goalEntries"`
	FocusSessions *[]models.FocusSession `json:"focusSessions"`
}

// Parse validates and decodes a snapshot. All four collections must be present
// (empty is fine); anything less is a ValidationError and nothing is applied.
func Parse(raw []byte) (models.AppData, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.AppData{}, &apperrors.ValidationError{Reason: fmt.Sprintf("snapshot is not valid JSON: %v", err)}
	}

	var missing []string
	if p.WaterEntries == nil {
		missing = append(missing, "waterEntries")
	}
	if p.MoodEntries == nil {
		missing = append(missing, "moodEntries")
	}
	if p.GoalEntries == nil {
		missing = append(missing, "goalEntries")
	}
	if p.FocusSessions == nil {
		missing = append(missing, "focusSessions")
	}
	if len(missing) > 0 {
		return models.AppData{}, &apperrors.ValidationError{
			Reason: fmt.Sprintf("snapshot is missing collections: %s", strings.Join(missing, ", ")),
		}
	}

	return models.AppData{
		WaterEntries:  *p.WaterEntries,
		MoodEntries:   *p.MoodEntries,
		GoalEntries:   *p.GoalEntries,
		FocusSessions: *p.FocusSessions,
	}, nil
}
