package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"vitalog/internal/cli"
	"vitalog/internal/cli/backups"
	"vitalog/internal/cli/dashboard"
	"vitalog/internal/cli/focus"
	"vitalog/internal/cli/goals"
	"vitalog/internal/cli/mood"
	"vitalog/internal/cli/settings"
	"vitalog/internal/cli/snapshots"
	"vitalog/internal/cli/system"
	"vitalog/internal/cli/water"
	"vitalog/internal/constants"
	"vitalog/internal/logger"
	"vitalog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data document path. A .db extension selects the SQLite backend." type:"string" default:"~/.config/vitalog/vitalog.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize vitalog storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the dashboard." default:"1"`
	Wipe   system.WipeCmd   `cmd:"" help:"Delete all entries and the persisted document."`

	Water struct {
		Add   water.WaterAddCmd   `cmd:"" help:"Log a drink." default:"1"`
		Today water.WaterTodayCmd `cmd:"" help:"Show water intake for a day."`
	} `cmd:"" help:"Track water intake."`
	Mood struct {
		Log    mood.MoodLogCmd    `cmd:"" help:"Log how you feel." default:"1"`
		Latest mood.MoodLatestCmd `cmd:"" help:"Show the latest mood entry."`
		List   mood.MoodListCmd   `cmd:"" help:"List mood entries for a day."`
	} `cmd:"" help:"Track mood."`
	Goal struct {
		Add    goals.GoalAddCmd    `cmd:"" help:"Add a goal for today."`
		Toggle goals.GoalToggleCmd `cmd:"" help:"Toggle a goal's completion."`
		List   goals.GoalListCmd   `cmd:"" help:"List goals." default:"1"`
	} `cmd:"" help:"Manage daily goals."`
	Focus struct {
		Start focus.FocusStartCmd `cmd:"" help:"Start a focus session."`
		End   focus.FocusEndCmd   `cmd:"" help:"End a focus session."`
		List  focus.FocusListCmd  `cmd:"" help:"List focus sessions for a day." default:"1"`
	} `cmd:"" help:"Track focus sessions."`
	Snapshot struct {
		Export snapshots.SnapshotExportCmd `cmd:"" help:"Export all data as JSON."`
		Import snapshots.SnapshotImportCmd `cmd:"" help:"Import a previously exported snapshot."`
	} `cmd:"" help:"Export and import data."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
	Settings struct {
		List settings.SettingsListCmd `cmd:"" help:"List all settings." default:"1"`
		Get  settings.SettingsGetCmd  `cmd:"" help:"Show one setting."`
		Set  settings.SettingsSetCmd  `cmd:"" help:"Change a setting."`
	} `cmd:"" help:"Manage application settings."`
	Dashboard struct {
		List    dashboard.DashboardListCmd    `cmd:"" help:"List dashboard panels." default:"1"`
		Enable  dashboard.DashboardEnableCmd  `cmd:"" help:"Enable a panel."`
		Disable dashboard.DashboardDisableCmd `cmd:"" help:"Disable a panel."`
	} `cmd:"" help:"Manage the dashboard layout."`
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal wellness tracker: water, mood, goals, and focus."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
	}

	appCtx := &cli.Context{Store: store}

	// init creates storage, doctor and wipe must work against a broken one.
	selected := ""
	if ctx.Selected() != nil {
		selected = ctx.Selected().Name
	}
	if selected != "init" && selected != "doctor" && selected != "wipe" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("Command execution failed", "command", selected, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
