package water

import (
	"fmt"

	"vitalog/internal/cli"
	"vitalog/internal/report"
	"vitalog/internal/utils"
)

type WaterAddCmd struct {
	Amount int `arg:"" help:"Amount of water in milliliters."`
}

func (c *WaterAddCmd) Validate() error {
	// The store accepts anything; the CLI is where nonsense stops.
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

func (c *WaterAddCmd) Run(ctx *cli.Context) error {
	entry, err := ctx.Store.AddWater(c.Amount)
	if err != nil {
		return err
	}

	if entry.SessionStart == entry.Timestamp {
		fmt.Printf("✓ Logged %d ml (new session)\n", entry.AmountML)
	} else {
		fmt.Printf("✓ Logged %d ml (continuing session)\n", entry.AmountML)
	}
	return nil
}

type WaterTodayCmd struct {
	Day string `short:"d" help:"Day to show (YYYY-MM-DD), defaults to today."`
}

func (c *WaterTodayCmd) Run(ctx *cli.Context) error {
	day, loc, err := ctx.ResolveDay(c.Day)
	if err != nil {
		return err
	}

	data, err := ctx.Store.GetAppData()
	if err != nil {
		return err
	}

	entries := report.WaterForDay(data.WaterEntries, day, loc)
	if len(entries) == 0 {
		fmt.Printf("No water logged on %s.\n", day)
		return nil
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("Water on %s:\n", day)
	for _, e := range entries {
		fmt.Printf("  %s  %5d ml\n", utils.FormatMillis(e.Timestamp, loc), e.AmountML)
	}

	total := report.TotalWaterForDay(data.WaterEntries, day, loc)
	target := settings.Preferences.WaterTargetML
	if target > 0 {
		fmt.Printf("\nTotal: %d ml of %d ml target (%d%%)\n", total, target, total*100/target)
	} else {
		fmt.Printf("\nTotal: %d ml\n", total)
	}
	return nil
}
