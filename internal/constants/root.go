package constants

const (
	AppName           = "vitalog"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/vitalog/vitalog.json"

	// DateFormat is the standard day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ClockFormat is used when echoing entry timestamps back to the user
	ClockFormat = "2006-01-02 15:04:05"

	// SessionGapMillis is the maximum gap between two water entries that still
	// chains them into the same drinking session.
	SessionGapMillis = 2 * 60 * 60 * 1000

	// RecentWindowMillis is the trailing window used by the "current session"
	// view. Same length as SessionGapMillis but computed independently: the
	// window looks back from now, the chain looks back entry-to-entry.
	RecentWindowMillis = 2 * 60 * 60 * 1000

	// SnapshotVersion tags exported snapshots. Imports accept any version as
	// long as all four collections are present.
	SnapshotVersion = "1.0.0"

	// Sibling documents next to the data document
	SettingsFileName  = "settings.json"
	DashboardFileName = "dashboard.json"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "vitalog-"
)
