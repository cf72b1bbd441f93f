package models

import "vitalog/internal/constants"

type FocusKind string

const (
	FocusWork  FocusKind = "work"
	FocusBreak FocusKind = "break"
)

// WaterEntry is a single logged drink. All timestamps are epoch milliseconds.
type WaterEntry struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	AmountML  int    `json:"amount"`
	// SessionStart chains consecutive entries: it repeats the previous
	// entry's SessionStart when the gap to that entry is under two hours,
	// otherwise it equals this entry's own Timestamp.
	SessionStart int64 `json:"sessionStart"`
}

type MoodEntry struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Mood      int    `json:"mood"` // intended 1-10; the store does not clamp
	Icon      string `json:"icon"`
	Notes     string `json:"notes,omitempty"`
}

// GoalEntry is a daily goal. Its Timestamp is both creation time and the day
// the goal reports under; there is no separate due date.
type GoalEntry struct {
	ID          string `json:"id"`
	Timestamp   int64  `json:"timestamp"`
	Title       string `json:"title"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completedAt,omitempty"`
}

// FocusSession is a work or break timer. A session left open is permanently
// incomplete and never counts toward completed-session views.
type FocusSession struct {
	ID          string    `json:"id"`
	StartTime   int64     `json:"startTime"`
	EndTime     *int64    `json:"endTime,omitempty"`
	DurationMin int       `json:"duration"`
	Kind        FocusKind `json:"type"`
	Completed   bool      `json:"completed"`
}

// AppData is the aggregate document: the sole unit of persistence. Every
// mutation rewrites it wholesale.
type AppData struct {
	WaterEntries  []WaterEntry   `json:"waterEntries"`
	MoodEntries   []MoodEntry    `json:"moodEntries"`
	GoalEntries   []GoalEntry    `json:"goalEntries"`
	FocusSessions []FocusSession `json:"focusSessions"`
	LastBackup    *int64         `json:"lastBackup,omitempty"`
}

// NewAppData returns an empty aggregate with all collections allocated.
func NewAppData() AppData {
	return AppData{
		WaterEntries:  []WaterEntry{},
		MoodEntries:   []MoodEntry{},
		GoalEntries:   []GoalEntry{},
		FocusSessions: []FocusSession{},
	}
}

// SessionStartFor computes the chained session start for a water entry logged
// at nowMillis, given the most recently inserted existing entry (nil when the
// collection is empty).
func SessionStartFor(last *WaterEntry, nowMillis int64) int64 {
	if last != nil && nowMillis-last.Timestamp < constants.SessionGapMillis {
		return last.SessionStart
	}
	return nowMillis
}
