package constants

const (
	// Profile settings
	SettingProfileName   = "profile.name"
	SettingProfileAge    = "profile.age"
	SettingProfileGender = "profile.gender"
	SettingTimezone      = "profile.timezone"
	SettingGoalCategory  = "profile.goal_category"

	// Notification settings
	SettingNotificationsEnabled = "notifications.enabled"
	SettingDailyReminder        = "notifications.daily_reminder"
	SettingReminderTime         = "notifications.reminder_time"

	// Preference settings
	SettingWaterTargetML   = "preferences.water_target_ml"
	SettingFocusDefaultMin = "preferences.focus_default_min"
	SettingWeekStart       = "preferences.week_start"

	// Privacy settings
	SettingShareProgress = "privacy.share_progress"
	SettingLocalOnly     = "privacy.local_only"

	// Default Settings Values
	DefaultTimezone        = "Local" // Use system local timezone by default
	DefaultReminderTime    = "09:00"
	DefaultWaterTargetML   = 2000
	DefaultFocusDefaultMin = 25
	DefaultWeekStart       = "monday"
	DefaultGoalCategory    = "general"
)
