package models

import (
	"fmt"

	"vitalog/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Unknown keys are ignored so that older documents keep loading.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case "profile.id":
			settings.Profile.ID = value
		case constants.SettingProfileName:
			settings.Profile.Name = value
		case constants.SettingProfileAge:
			if _, err := fmt.Sscanf(value, "%d", &settings.Profile.Age); err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingProfileAge, err)
			}
		case constants.SettingProfileGender:
			settings.Profile.Gender = value
		case constants.SettingTimezone:
			settings.Profile.Timezone = value
		case constants.SettingGoalCategory:
			settings.Profile.GoalCategory = value
		case constants.SettingNotificationsEnabled:
			settings.Notifications.Enabled = value == "true"
		case constants.SettingDailyReminder:
			settings.Notifications.DailyReminder = value == "true"
		case constants.SettingReminderTime:
			settings.Notifications.ReminderTime = value
		case constants.SettingWaterTargetML:
			if _, err := fmt.Sscanf(value, "%d", &settings.Preferences.WaterTargetML); err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingWaterTargetML, err)
			}
		case constants.SettingFocusDefaultMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.Preferences.FocusDefaultMin); err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingFocusDefaultMin, err)
			}
		case constants.SettingWeekStart:
			settings.Preferences.WeekStart = value
		case constants.SettingShareProgress:
			settings.Privacy.ShareProgress = value == "true"
		case constants.SettingLocalOnly:
			settings.Privacy.LocalOnly = value == "true"
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		"profile.id":                          settings.Profile.ID,
		constants.SettingProfileName:          settings.Profile.Name,
		constants.SettingProfileAge:           fmt.Sprintf("%d", settings.Profile.Age),
		constants.SettingProfileGender:        settings.Profile.Gender,
		constants.SettingTimezone:             settings.Profile.Timezone,
		constants.SettingGoalCategory:         settings.Profile.GoalCategory,
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", settings.Notifications.Enabled),
		constants.SettingDailyReminder:        fmt.Sprintf("%v", settings.Notifications.DailyReminder),
		constants.SettingReminderTime:         settings.Notifications.ReminderTime,
		constants.SettingWaterTargetML:        fmt.Sprintf("%d", settings.Preferences.WaterTargetML),
		constants.SettingFocusDefaultMin:      fmt.Sprintf("%d", settings.Preferences.FocusDefaultMin),
		constants.SettingWeekStart:            settings.Preferences.WeekStart,
		constants.SettingShareProgress:        fmt.Sprintf("%v", settings.Privacy.ShareProgress),
		constants.SettingLocalOnly:            fmt.Sprintf("%v", settings.Privacy.LocalOnly),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Profile.Timezone == "" {
		settings.Profile.Timezone = constants.DefaultTimezone
	}
	if settings.Profile.GoalCategory == "" {
		settings.Profile.GoalCategory = constants.DefaultGoalCategory
	}
	if settings.Notifications.ReminderTime == "" {
		settings.Notifications.ReminderTime = constants.DefaultReminderTime
	}
	if settings.Preferences.WaterTargetML == 0 {
		settings.Preferences.WaterTargetML = constants.DefaultWaterTargetML
	}
	if settings.Preferences.FocusDefaultMin == 0 {
		settings.Preferences.FocusDefaultMin = constants.DefaultFocusDefaultMin
	}
	if settings.Preferences.WeekStart == "" {
		settings.Preferences.WeekStart = constants.DefaultWeekStart
	}
}
