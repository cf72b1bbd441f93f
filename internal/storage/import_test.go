package storage

import (
	"reflect"
	"testing"

	apperrors "vitalog/internal/errors"
	"vitalog/internal/snapshot"
)

// A rejected snapshot must leave the in-memory aggregate completely unchanged,
// never partially applied.
func TestMalformedImportLeavesAggregateUntouched(t *testing.T) {
	store := setupJSONStore(t)
	if _, err := store.AddWater(250); err != nil {
		t.Fatalf("AddWater() error: %v", err)
	}
	if _, err := store.AddGoal("Stretch"); err != nil {
		t.Fatalf("AddGoal() error: %v", err)
	}
	before, err := store.GetAppData()
	if err != nil {
		t.Fatalf("GetAppData() error: %v", err)
	}

	_, err = snapshot.Parse([]byte(`{"waterEntries":[]}`))
	if !apperrors.IsValidation(err) {
		t.Fatalf("Parse() error = %v, want ValidationError", err)
	}

	after, err := store.GetAppData()
	if err != nil {
		t.Fatalf("GetAppData() error: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("aggregate changed after rejected import:\nbefore %+v\nafter %+v", before, after)
	}
}

func TestImportRoundTripThroughStore(t *testing.T) {
	store := setupJSONStore(t)
	now := int64(10_000)
	setClock(store, &now)

	if _, err := store.AddWater(250); err != nil {
		t.Fatalf("AddWater() error: %v", err)
	}
	if _, err := store.AddMood(6, "😐", "meh"); err != nil {
		t.Fatalf("AddMood() error: %v", err)
	}
	exported, err := store.GetAppData()
	if err != nil {
		t.Fatalf("GetAppData() error: %v", err)
	}

	raw, err := snapshot.Export(exported, now)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	parsed, err := snapshot.Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if err := store.ReplaceAppData(parsed); err != nil {
		t.Fatalf("ReplaceAppData() error: %v", err)
	}

	after, err := store.GetAppData()
	if err != nil {
		t.Fatalf("GetAppData() error: %v", err)
	}
	if !reflect.DeepEqual(after.WaterEntries, exported.WaterEntries) {
		t.Errorf("water entries changed through export/import")
	}
	if !reflect.DeepEqual(after.MoodEntries, exported.MoodEntries) {
		t.Errorf("mood entries changed through export/import")
	}
}
