package snapshot

import (
	"encoding/json"
	"reflect"
	"testing"

	apperrors "vitalog/internal/errors"
	"vitalog/internal/models"
)

func sampleData() models.AppData {
	completedAt := int64(4_000)
	end := int64(8_000)
	data := models.NewAppData()
	data.WaterEntries = []models.WaterEntry{
		{ID: "w1", Timestamp: 1_000, AmountML: 250, SessionStart: 1_000},
		{ID: "w2", Timestamp: 2_000, AmountML: 500, SessionStart: 1_000},
	}
	data.MoodEntries = []models.MoodEntry{
		{ID: "m1", Timestamp: 3_000, Mood: 8, Icon: "🙂", Notes: "good day"},
	}
	data.GoalEntries = []models.GoalEntry{
		{ID: "g1", Timestamp: 3_500, Title: "Stretch", Completed: true, CompletedAt: &completedAt},
	}
	data.FocusSessions = []models.FocusSession{
		{ID: "f1", StartTime: 7_000, EndTime: &end, DurationMin: 25, Kind: models.FocusWork, Completed: true},
	}
	return data
}

func TestExportImportRoundTrip(t *testing.T) {
	data := sampleData()

	raw, err := Export(data, 99_000)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if !reflect.DeepEqual(got.WaterEntries, data.WaterEntries) {
		t.Errorf("water entries changed in round trip:\n got %+v\nwant %+v", got.WaterEntries, data.WaterEntries)
	}
	if !reflect.DeepEqual(got.MoodEntries, data.MoodEntries) {
		t.Errorf("mood entries changed in round trip")
	}
	if !reflect.DeepEqual(got.GoalEntries, data.GoalEntries) {
		t.Errorf("goal entries changed in round trip")
	}
	if !reflect.DeepEqual(got.FocusSessions, data.FocusSessions) {
		t.Errorf("focus sessions changed in round trip")
	}
	if got.LastBackup != nil {
		t.Errorf("export metadata leaked into the aggregate: LastBackup = %v", got.LastBackup)
	}
}

func TestExportEnvelope(t *testing.T) {
	raw, err := Export(sampleData(), 99_000)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range []string{"waterEntries", "moodEntries", "goalEntries", "focusSessions", "exportedAt", "version"} {
		if _, ok := envelope[key]; !ok {
			t.Errorf("export missing %q", key)
		}
	}

	var version string
	if err := json.Unmarshal(envelope["version"], &version); err != nil || version != "1.0.0" {
		t.Errorf("version = %q (%v), want \"1.0.0\"", version, err)
	}
}

func TestParseRejectsPartialSnapshot(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "only one collection", raw: `{"waterEntries":[]}`},
		{name: "three of four collections", raw: `{"waterEntries":[],"moodEntries":[],"goalEntries":[]}`},
		{name: "empty object", raw: `{}`},
		{name: "not json", raw: `not a snapshot`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("Parse() accepted a malformed snapshot")
			}
			if !apperrors.IsValidation(err) {
				t.Errorf("Parse() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestParseAcceptsAllEmptyCollections(t *testing.T) {
	raw := `{"waterEntries":[],"moodEntries":[],"goalEntries":[],"focusSessions":[]}`
	data, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(data.WaterEntries)+len(data.MoodEntries)+len(data.GoalEntries)+len(data.FocusSessions) != 0 {
		t.Errorf("expected empty aggregate, got %+v", data)
	}
}
