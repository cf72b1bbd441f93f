package models

// Profile holds the user-facing identity fields of the settings document.
type Profile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Timezone     string `json:"timezone"` // IANA name, or "Local" for the system timezone
	GoalCategory string `json:"goalCategory"`
}

type NotificationSettings struct {
	Enabled       bool   `json:"enabled"`
	DailyReminder bool   `json:"dailyReminder"`
	ReminderTime  string `json:"reminderTime"` // HH:MM
}

type PreferenceSettings struct {
	WaterTargetML   int    `json:"waterTargetMl"`
	FocusDefaultMin int    `json:"focusDefaultMin"`
	WeekStart       string `json:"weekStart"`
}

type PrivacySettings struct {
	ShareProgress bool `json:"shareProgress"`
	LocalOnly     bool `json:"localOnly"`
}

// Settings is the settings document. It lives under its own storage key and
// has no relation to the AppData aggregate.
type Settings struct {
	Profile       Profile              `json:"profile"`
	Notifications NotificationSettings `json:"notifications"`
	Preferences   PreferenceSettings   `json:"preferences"`
	Privacy       PrivacySettings      `json:"privacy"`
}
