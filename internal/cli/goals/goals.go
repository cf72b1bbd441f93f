package goals

import (
	"fmt"
	"strings"

	"vitalog/internal/cli"
	"vitalog/internal/report"
	"vitalog/internal/utils"
)

type GoalAddCmd struct {
	Title string `arg:"" help:"Goal title."`
}

func (c *GoalAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title must not be blank")
	}
	return nil
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	entry, err := ctx.Store.AddGoal(c.Title)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Added goal %q (%s)\n", entry.Title, entry.ID)
	return nil
}

type GoalToggleCmd struct {
	ID string `arg:"" help:"Goal id to toggle."`
}

func (c *GoalToggleCmd) Run(ctx *cli.Context) error {
	entry, err := ctx.Store.ToggleGoal(c.ID)
	if err != nil {
		return err
	}
	if entry.Completed {
		fmt.Printf("✓ Completed %q\n", entry.Title)
	} else {
		fmt.Printf("✓ Reopened %q\n", entry.Title)
	}
	return nil
}

type GoalListCmd struct {
	Day string `short:"d" help:"Day to show (YYYY-MM-DD), defaults to today."`
	All bool   `short:"a" help:"List goals from every day."`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Store.GetAppData()
	if err != nil {
		return err
	}

	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	goals := data.GoalEntries
	if !c.All {
		day, dayLoc, err := ctx.ResolveDay(c.Day)
		if err != nil {
			return err
		}
		loc = dayLoc
		goals = report.GoalsForDay(data.GoalEntries, day, loc)
		if len(goals) == 0 {
			fmt.Printf("No goals on %s.\n", day)
			return nil
		}
		completed := report.CompletedGoalsForDay(data.GoalEntries, day, loc)
		fmt.Printf("Goals on %s (%d/%d done):\n", day, len(completed), len(goals))
	} else {
		if len(goals) == 0 {
			fmt.Println("No goals yet.")
			return nil
		}
		fmt.Println("All goals:")
	}

	for _, g := range goals {
		mark := "[ ]"
		if g.Completed {
			mark = "[x]"
		}
		fmt.Printf("  %s %s  %s  (%s)\n", mark, utils.DayOf(g.Timestamp, loc), g.Title, g.ID)
	}
	return nil
}
