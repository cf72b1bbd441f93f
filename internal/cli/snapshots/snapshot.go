package snapshots

import (
	"fmt"
	"os"
	"time"

	"vitalog/internal/cli"
	"vitalog/internal/snapshot"
)

type SnapshotExportCmd struct {
	Out string `short:"o" help:"Write to a file instead of stdout."`
}

func (c *SnapshotExportCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Store.GetAppData()
	if err != nil {
		return err
	}

	raw, err := snapshot.Export(data, time.Now().UnixMilli())
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Println(string(raw))
		return nil
	}

	if err := os.WriteFile(c.Out, raw, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	fmt.Printf("✓ Exported snapshot to %s\n", c.Out)
	return nil
}

type SnapshotImportCmd struct {
	File string `arg:"" help:"Snapshot file to import."`
}

func (c *SnapshotImportCmd) Run(ctx *cli.Context) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	data, err := snapshot.Parse(raw)
	if err != nil {
		// Nothing was applied; the aggregate is untouched.
		return err
	}

	// Import replaces everything, so keep a copy of what it replaces.
	ctx.PerformAutomaticBackup()

	if err := ctx.Store.ReplaceAppData(data); err != nil {
		return err
	}

	fmt.Printf("✓ Imported %d water, %d mood, %d goal, %d focus records\n",
		len(data.WaterEntries), len(data.MoodEntries), len(data.GoalEntries), len(data.FocusSessions))
	return nil
}
