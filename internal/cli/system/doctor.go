package system

import (
	"errors"
	"fmt"
	"os"
	"time"

	"vitalog/internal/backup"
	"vitalog/internal/cli"
	apperrors "vitalog/internal/errors"
	"vitalog/internal/report"
	"vitalog/internal/utils"
)

type DoctorCmd struct{}

// Run checks the persisted documents and reports what it finds. It loads the
// store itself so it can diagnose a corrupt document instead of dying on it.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	fmt.Printf("vitalog doctor\n\n")
	fmt.Printf("Storage path: %s\n", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("✗ Storage not initialized. Run 'vitalog init'.")
		return nil
	}

	if err := ctx.Store.Load(); err != nil {
		var cse *apperrors.CorruptStateError
		if errors.As(err, &cse) {
			fmt.Printf("✗ Persisted document is corrupt: %v\n", cse.Err)
			fmt.Println("  Restore a backup ('vitalog backup list') or reset with 'vitalog wipe'.")
			return nil
		}
		return err
	}
	fmt.Println("✓ Data document parses")

	data, err := ctx.Store.GetAppData()
	if err != nil {
		return err
	}
	fmt.Printf("✓ Collections: %d water, %d mood, %d goals, %d focus\n",
		len(data.WaterEntries), len(data.MoodEntries), len(data.GoalEntries), len(data.FocusSessions))

	if open, ok := report.OpenFocusSession(data.FocusSessions); ok {
		started := time.UnixMilli(open.StartTime)
		if time.Since(started) > 24*time.Hour {
			fmt.Printf("! Focus session %s has been open since %s; it will never complete on its own\n",
				open.ID, started.Format("2006-01-02"))
		}
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		fmt.Printf("✗ Settings document: %v\n", err)
	} else if !utils.ValidateTimezone(settings.Profile.Timezone) {
		fmt.Printf("✗ Settings timezone %q is invalid; day bucketing will fail\n", settings.Profile.Timezone)
	} else {
		fmt.Printf("✓ Settings document (timezone %s)\n", settings.Profile.Timezone)
	}

	mgr := backup.NewManager(path)
	backups, err := mgr.ListBackups()
	if err != nil {
		fmt.Printf("✗ Backup directory: %v\n", err)
	} else {
		fmt.Printf("✓ Backups: %d available in %s\n", len(backups), mgr.GetBackupDir())
	}

	if data.LastBackup != nil {
		fmt.Printf("  Last import stamped at %s\n", time.UnixMilli(*data.LastBackup).Format("2006-01-02 15:04:05"))
	}

	return nil
}
