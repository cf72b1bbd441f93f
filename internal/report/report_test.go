package report

import (
	"reflect"
	"testing"
	"time"

	"vitalog/internal/models"
)

func millisOn(day time.Time, hour, min int) int64 {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.UTC).UnixMilli()
}

func TestTotalWaterForDay(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	entries := []models.WaterEntry{
		{ID: "w1", Timestamp: millisOn(day, 8, 0), AmountML: 250},
		{ID: "w2", Timestamp: millisOn(day, 12, 30), AmountML: 500},
		{ID: "w3", Timestamp: millisOn(day.AddDate(0, 0, 1), 9, 0), AmountML: 999},
	}

	if got := TotalWaterForDay(entries, "2025-03-14", time.UTC); got != 750 {
		t.Errorf("TotalWaterForDay() = %d, want 750", got)
	}
	if got := TotalWaterForDay(entries, "2025-03-15", time.UTC); got != 999 {
		t.Errorf("TotalWaterForDay() next day = %d, want 999", got)
	}
	if got := TotalWaterForDay(entries, "2025-03-16", time.UTC); got != 0 {
		t.Errorf("TotalWaterForDay() empty day = %d, want 0", got)
	}
}

func TestDayFilteringIsPure(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	entries := []models.WaterEntry{
		{ID: "w1", Timestamp: millisOn(day, 8, 0), AmountML: 250},
		{ID: "w2", Timestamp: millisOn(day, 23, 59), AmountML: 100},
	}

	first := WaterForDay(entries, "2025-03-14", time.UTC)
	second := WaterForDay(entries, "2025-03-14", time.UTC)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("WaterForDay() is not idempotent: %+v vs %+v", first, second)
	}
}

func TestGoalAggregates(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	completedAt := millisOn(day, 20, 0)
	goals := []models.GoalEntry{
		{ID: "g1", Timestamp: millisOn(day, 9, 0), Title: "a", Completed: true, CompletedAt: &completedAt},
		{ID: "g2", Timestamp: millisOn(day, 10, 0), Title: "b"},
		{ID: "g3", Timestamp: millisOn(day, 11, 0), Title: "c", Completed: true, CompletedAt: &completedAt},
	}

	all := GoalsForDay(goals, "2025-03-14", time.UTC)
	if len(all) != 3 {
		t.Errorf("GoalsForDay() = %d goals, want 3", len(all))
	}

	completed := CompletedGoalsForDay(goals, "2025-03-14", time.UTC)
	if len(completed) != 2 {
		t.Fatalf("CompletedGoalsForDay() = %d goals, want 2", len(completed))
	}
	if completed[0].ID != "g1" || completed[1].ID != "g3" {
		t.Errorf("CompletedGoalsForDay() = %+v, want g1 and g3", completed)
	}

	for _, other := range []string{"2025-03-13", "2025-03-15"} {
		if got := GoalsForDay(goals, other, time.UTC); len(got) != 0 {
			t.Errorf("GoalsForDay(%s) = %d goals, want 0", other, len(got))
		}
		if got := CompletedGoalsForDay(goals, other, time.UTC); len(got) != 0 {
			t.Errorf("CompletedGoalsForDay(%s) = %d goals, want 0", other, len(got))
		}
	}
}

// A goal reports under its creation day even when completed the next day.
func TestGoalReportsUnderCreationDay(t *testing.T) {
	created := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC).UnixMilli()
	completedAt := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC).UnixMilli()
	goals := []models.GoalEntry{
		{ID: "g1", Timestamp: created, Title: "late goal", Completed: true, CompletedAt: &completedAt},
	}

	if got := CompletedGoalsForDay(goals, "2025-03-14", time.UTC); len(got) != 1 {
		t.Errorf("goal should report under creation day, got %d on 2025-03-14", len(got))
	}
	if got := CompletedGoalsForDay(goals, "2025-03-15", time.UTC); len(got) != 0 {
		t.Errorf("goal should not report under completion day, got %d on 2025-03-15", len(got))
	}
}

func TestCurrentWaterSessionIsIndependentOfChaining(t *testing.T) {
	// Entries 2.5h apart: the chain rule gives them different session starts,
	// but the trailing window at now=9,000,001 only sees the second one.
	entries := []models.WaterEntry{
		{ID: "w1", Timestamp: 0, AmountML: 250, SessionStart: 0},
		{ID: "w2", Timestamp: 9_000_000, AmountML: 500, SessionStart: 9_000_000},
	}

	window := CurrentWaterSession(entries, 9_000_001)
	if len(window) != 1 || window[0].ID != "w2" {
		t.Fatalf("CurrentWaterSession() = %+v, want only w2", window)
	}
	if entries[0].SessionStart == entries[1].SessionStart {
		t.Error("chained session starts should differ for a 2.5h gap")
	}
}

func TestCurrentWaterSessionWindowEdge(t *testing.T) {
	entries := []models.WaterEntry{
		{ID: "w1", Timestamp: 1_000_000, AmountML: 250},
	}

	// Entry exactly at the window cutoff is included (timestamp >= now - 2h).
	atEdge := CurrentWaterSession(entries, 1_000_000+7_200_000)
	if len(atEdge) != 1 {
		t.Errorf("entry at exact cutoff should be in the window, got %d entries", len(atEdge))
	}
	pastEdge := CurrentWaterSession(entries, 1_000_001+7_200_000)
	if len(pastEdge) != 0 {
		t.Errorf("entry past the cutoff should be out of the window, got %d entries", len(pastEdge))
	}
}

func TestLatestMoodUsesInsertionOrder(t *testing.T) {
	if _, ok := LatestMood(nil); ok {
		t.Error("LatestMood() on empty collection should report not-found")
	}

	// The second entry carries an older timestamp but was inserted last.
	entries := []models.MoodEntry{
		{ID: "m1", Timestamp: 5_000, Mood: 7},
		{ID: "m2", Timestamp: 1_000, Mood: 3},
	}
	latest, ok := LatestMood(entries)
	if !ok || latest.ID != "m2" {
		t.Errorf("LatestMood() = %+v, want m2 (most recently inserted)", latest)
	}
}

func TestOpenFocusSession(t *testing.T) {
	end := int64(2_000)
	sessions := []models.FocusSession{
		{ID: "f1", StartTime: 1_000, EndTime: &end, DurationMin: 25, Kind: models.FocusWork, Completed: true},
		{ID: "f2", StartTime: 3_000, DurationMin: 25, Kind: models.FocusWork},
	}

	open, ok := OpenFocusSession(sessions)
	if !ok || open.ID != "f2" {
		t.Errorf("OpenFocusSession() = %+v, want f2", open)
	}

	_, ok = OpenFocusSession(sessions[:1])
	if ok {
		t.Error("OpenFocusSession() with only completed sessions should report none")
	}
}

func TestSummarize(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	now := millisOn(day, 13, 0)
	completedAt := millisOn(day, 12, 0)

	data := models.NewAppData()
	data.WaterEntries = []models.WaterEntry{
		{ID: "w1", Timestamp: millisOn(day, 8, 0), AmountML: 250},  // outside trailing window
		{ID: "w2", Timestamp: millisOn(day, 12, 0), AmountML: 500}, // inside
	}
	data.GoalEntries = []models.GoalEntry{
		{ID: "g1", Timestamp: millisOn(day, 9, 0), Title: "a", Completed: true, CompletedAt: &completedAt},
		{ID: "g2", Timestamp: millisOn(day, 9, 5), Title: "b"},
	}
	data.MoodEntries = []models.MoodEntry{
		{ID: "m1", Timestamp: millisOn(day, 10, 0), Mood: 8, Icon: "🙂"},
	}
	data.FocusSessions = []models.FocusSession{
		{ID: "f1", StartTime: millisOn(day, 11, 0), EndTime: &completedAt, DurationMin: 25, Kind: models.FocusWork, Completed: true},
		{ID: "f2", StartTime: millisOn(day, 12, 30), DurationMin: 25, Kind: models.FocusWork},
	}

	summary := Summarize(data, "2025-03-14", time.UTC, now)

	if summary.TotalWaterML != 750 {
		t.Errorf("TotalWaterML = %d, want 750", summary.TotalWaterML)
	}
	if summary.SessionWaterML != 500 {
		t.Errorf("SessionWaterML = %d, want 500 (trailing window only)", summary.SessionWaterML)
	}
	if summary.GoalCount != 2 || summary.CompletedGoalCount != 1 {
		t.Errorf("goals = %d/%d, want 1 of 2 completed", summary.CompletedGoalCount, summary.GoalCount)
	}
	if summary.LatestMood == nil || summary.LatestMood.Mood != 8 {
		t.Errorf("LatestMood = %+v, want mood 8", summary.LatestMood)
	}
	if summary.FocusSessionCount != 2 || summary.CompletedFocusMin != 25 {
		t.Errorf("focus = %d sessions, %d completed min; want 2 and 25", summary.FocusSessionCount, summary.CompletedFocusMin)
	}
	if summary.OpenFocus == nil || summary.OpenFocus.ID != "f2" {
		t.Errorf("OpenFocus = %+v, want f2", summary.OpenFocus)
	}
}
