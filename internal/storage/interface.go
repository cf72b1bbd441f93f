package storage

import "vitalog/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entry collections. Mutators append to the aggregate and persist it;
	// the created or updated record is returned for display.
	AddWater(amountML int) (models.WaterEntry, error)
	AddMood(mood int, icon, notes string) (models.MoodEntry, error)
	AddGoal(title string) (models.GoalEntry, error)
	// ToggleGoal flips a goal's completed flag. CompletedAt is stamped on the
	// transition to completed and cleared on the transition back; an unknown
	// id is a NotFoundError.
	ToggleGoal(id string) (models.GoalEntry, error)
	StartFocusSession(kind models.FocusKind, durationMin int) (models.FocusSession, error)
	// EndFocusSession stamps EndTime and marks the session completed. Ending
	// an already-completed session is a tolerated no-op.
	EndFocusSession(id string) (models.FocusSession, error)

	// Aggregate access
	GetAppData() (models.AppData, error)
	// ReplaceAppData swaps the aggregate wholesale (snapshot import) and
	// stamps LastBackup.
	ReplaceAppData(data models.AppData) error
	// Wipe resets the aggregate to empty and deletes the persisted copy.
	Wipe() error

	// Settings document
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Dashboard layout document
	GetDashboard() ([]models.Panel, error)
	SaveDashboard([]models.Panel) error

	// Utils
	GetConfigPath() string
}
