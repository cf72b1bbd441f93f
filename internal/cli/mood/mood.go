package mood

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"vitalog/internal/cli"
	"vitalog/internal/report"
	"vitalog/internal/utils"
)

type MoodLogCmd struct {
	Score int    `short:"s" help:"Mood score from 1 (low) to 10 (high)."`
	Icon  string `short:"i" help:"Icon label for the entry."`
	Notes string `short:"n" help:"Optional notes."`
}

func (c *MoodLogCmd) Validate() error {
	if c.Score != 0 && (c.Score < 1 || c.Score > 10) {
		return fmt.Errorf("score must be between 1 and 10")
	}
	return nil
}

func (c *MoodLogCmd) Run(ctx *cli.Context) error {
	// No score flag: ask interactively.
	if c.Score == 0 {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Title("How are you feeling?").
					Options(
						huh.NewOption("😞 Rough (2)", 2),
						huh.NewOption("😕 Meh (4)", 4),
						huh.NewOption("😐 Okay (6)", 6),
						huh.NewOption("🙂 Good (8)", 8),
						huh.NewOption("😄 Great (10)", 10),
					).
					Value(&c.Score),
				huh.NewText().
					Title("Notes (optional)").
					Value(&c.Notes),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	icon := c.Icon
	if icon == "" {
		icon = cli.MoodIcon(c.Score)
	}

	entry, err := ctx.Store.AddMood(c.Score, icon, c.Notes)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Logged mood %d %s\n", entry.Mood, entry.Icon)
	return nil
}

type MoodLatestCmd struct{}

func (c *MoodLatestCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Store.GetAppData()
	if err != nil {
		return err
	}

	entry, ok := report.LatestMood(data.MoodEntries)
	if !ok {
		fmt.Println("No mood entries yet.")
		return nil
	}

	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s %d/10", utils.FormatMillis(entry.Timestamp, loc), entry.Icon, entry.Mood)
	if entry.Notes != "" {
		fmt.Printf("  (%s)", entry.Notes)
	}
	fmt.Println()
	return nil
}

type MoodListCmd struct {
	Day string `short:"d" help:"Day to show (YYYY-MM-DD), defaults to today."`
}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	day, loc, err := ctx.ResolveDay(c.Day)
	if err != nil {
		return err
	}

	data, err := ctx.Store.GetAppData()
	if err != nil {
		return err
	}

	entries := report.MoodForDay(data.MoodEntries, day, loc)
	if len(entries) == 0 {
		fmt.Printf("No mood entries on %s.\n", day)
		return nil
	}

	fmt.Printf("Mood on %s:\n", day)
	for _, e := range entries {
		fmt.Printf("  %s  %s %2d/10", utils.FormatMillis(e.Timestamp, loc), e.Icon, e.Mood)
		if e.Notes != "" {
			fmt.Printf("  %s", e.Notes)
		}
		fmt.Println()
	}
	return nil
}
