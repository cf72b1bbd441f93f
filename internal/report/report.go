// Package report holds the derived views over the aggregate: pure functions,
// recomputed on every call, no caching.
package report

import (
	"time"

	"vitalog/internal/constants"
	"vitalog/internal/models"
	"vitalog/internal/utils"
)

// WaterForDay returns the water entries logged on the given calendar day.
func WaterForDay(entries []models.WaterEntry, day string, loc *time.Location) []models.WaterEntry {
	var out []models.WaterEntry
	for _, e := range entries {
		if utils.BelongsToDay(e.Timestamp, day, loc) {
			out = append(out, e)
		}
	}
	return out
}

// TotalWaterForDay sums the amounts logged on the given calendar day.
func TotalWaterForDay(entries []models.WaterEntry, day string, loc *time.Location) int {
	total := 0
	for _, e := range WaterForDay(entries, day, loc) {
		total += e.AmountML
	}
	return total
}

// CurrentWaterSession returns all entries inside the trailing two-hour window
// ending at nowMillis. This is independent of SessionStart chaining: the
// window is anchored to "now", the chain to entry-to-entry gaps.
func CurrentWaterSession(entries []models.WaterEntry, nowMillis int64) []models.WaterEntry {
	var out []models.WaterEntry
	cutoff := nowMillis - constants.RecentWindowMillis
	for _, e := range entries {
		if e.Timestamp >= cutoff {
			out = append(out, e)
		}
	}
	return out
}

// GoalsForDay returns the goals created on the given calendar day. A goal's
// day is its creation day even when it was completed later.
func GoalsForDay(entries []models.GoalEntry, day string, loc *time.Location) []models.GoalEntry {
	var out []models.GoalEntry
	for _, e := range entries {
		if utils.BelongsToDay(e.Timestamp, day, loc) {
			out = append(out, e)
		}
	}
	return out
}

// CompletedGoalsForDay returns the completed subset of GoalsForDay.
func CompletedGoalsForDay(entries []models.GoalEntry, day string, loc *time.Location) []models.GoalEntry {
	var out []models.GoalEntry
	for _, e := range GoalsForDay(entries, day, loc) {
		if e.Completed {
			out = append(out, e)
		}
	}
	return out
}

// MoodForDay returns the mood entries logged on the given calendar day.
func MoodForDay(entries []models.MoodEntry, day string, loc *time.Location) []models.MoodEntry {
	var out []models.MoodEntry
	for _, e := range entries {
		if utils.BelongsToDay(e.Timestamp, day, loc) {
			out = append(out, e)
		}
	}
	return out
}

// LatestMood returns the most recently inserted mood entry. Insertion order,
// not timestamp order: an out-of-order insert wins if it came last.
func LatestMood(entries []models.MoodEntry) (models.MoodEntry, bool) {
	if len(entries) == 0 {
		return models.MoodEntry{}, false
	}
	return entries[len(entries)-1], true
}

// FocusSessionsForDay returns the focus sessions whose start time falls on
// the given calendar day.
func FocusSessionsForDay(entries []models.FocusSession, day string, loc *time.Location) []models.FocusSession {
	var out []models.FocusSession
	for _, e := range entries {
		if utils.BelongsToDay(e.StartTime, day, loc) {
			out = append(out, e)
		}
	}
	return out
}

// OpenFocusSession returns the most recently started session that has not
// been ended, if any.
func OpenFocusSession(entries []models.FocusSession) (models.FocusSession, bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		if !entries[i].Completed && entries[i].EndTime == nil {
			return entries[i], true
		}
	}
	return models.FocusSession{}, false
}

// DaySummary aggregates one calendar day for display.
type DaySummary struct {
	Day                string
	TotalWaterML       int
	WaterEntryCount    int
	SessionWaterML     int
	GoalCount          int
	CompletedGoalCount int
	LatestMood         *models.MoodEntry
	FocusSessionCount  int
	CompletedFocusMin  int
	OpenFocus          *models.FocusSession
}

// Summarize builds a DaySummary from the aggregate.
func Summarize(data models.AppData, day string, loc *time.Location, nowMillis int64) DaySummary {
	summary := DaySummary{
		Day:             day,
		TotalWaterML:    TotalWaterForDay(data.WaterEntries, day, loc),
		WaterEntryCount: len(WaterForDay(data.WaterEntries, day, loc)),
	}

	for _, e := range CurrentWaterSession(data.WaterEntries, nowMillis) {
		summary.SessionWaterML += e.AmountML
	}

	goals := GoalsForDay(data.GoalEntries, day, loc)
	summary.GoalCount = len(goals)
	summary.CompletedGoalCount = len(CompletedGoalsForDay(data.GoalEntries, day, loc))

	if mood, ok := LatestMood(data.MoodEntries); ok {
		summary.LatestMood = &mood
	}

	sessions := FocusSessionsForDay(data.FocusSessions, day, loc)
	summary.FocusSessionCount = len(sessions)
	for _, s := range sessions {
		if s.Completed {
			summary.CompletedFocusMin += s.DurationMin
		}
	}
	if open, ok := OpenFocusSession(data.FocusSessions); ok {
		summary.OpenFocus = &open
	}

	return summary
}
