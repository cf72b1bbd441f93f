package cli

import (
	"fmt"
	"time"

	"vitalog/internal/backup"
	"vitalog/internal/logger"
	"vitalog/internal/storage"
	"vitalog/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// Location resolves the display timezone from the settings document. Day
// bucketing is always computed in this zone at query time; changing the
// setting reclassifies historical entries, which is the documented behavior.
func (c *Context) Location() (*time.Location, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Profile.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q in settings: %w", settings.Profile.Timezone, err)
	}
	return loc, nil
}

// ResolveDay returns the given day or, when empty, today in the configured
// timezone.
func (c *Context) ResolveDay(day string) (string, *time.Location, error) {
	loc, err := c.Location()
	if err != nil {
		return "", nil, err
	}
	if day == "" {
		return utils.Today(loc), loc, nil
	}
	if err := utils.ValidateDay(day); err != nil {
		return "", nil, err
	}
	return day, loc, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// MoodIcon maps a 1-10 mood score to a default icon when none was given.
func MoodIcon(mood int) string {
	switch {
	case mood <= 2:
		return "😞"
	case mood <= 4:
		return "😕"
	case mood <= 6:
		return "😐"
	case mood <= 8:
		return "🙂"
	default:
		return "😄"
	}
}
