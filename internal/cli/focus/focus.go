package focus

import (
	"fmt"

	"vitalog/internal/cli"
	"vitalog/internal/models"
	"vitalog/internal/report"
	"vitalog/internal/utils"
)

type FocusStartCmd struct {
	Kind     string `short:"k" help:"Session kind (work|break)." default:"work" enum:"work,break"`
	Duration int    `short:"d" help:"Planned duration in minutes. Defaults to the configured focus length."`
}

func (c *FocusStartCmd) Validate() error {
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	return nil
}

func (c *FocusStartCmd) Run(ctx *cli.Context) error {
	duration := c.Duration
	if duration == 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		duration = settings.Preferences.FocusDefaultMin
	}

	session, err := ctx.Store.StartFocusSession(models.FocusKind(c.Kind), duration)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Started %s session for %d min\n", session.Kind, session.DurationMin)
	fmt.Printf("  End it with: vitalog focus end %s\n", session.ID)
	return nil
}

type FocusEndCmd struct {
	ID string `arg:"" optional:"" help:"Session id. Defaults to the open session."`
}

func (c *FocusEndCmd) Run(ctx *cli.Context) error {
	id := c.ID
	if id == "" {
		data, err := ctx.Store.GetAppData()
		if err != nil {
			return err
		}
		open, ok := report.OpenFocusSession(data.FocusSessions)
		if !ok {
			return fmt.Errorf("no open focus session")
		}
		id = open.ID
	}

	session, err := ctx.Store.EndFocusSession(id)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Completed %s session (%d min planned)\n", session.Kind, session.DurationMin)
	return nil
}

type FocusListCmd struct {
	Day string `short:"d" help:"Day to show (YYYY-MM-DD), defaults to today."`
}

func (c *FocusListCmd) Run(ctx *cli.Context) error {
	day, loc, err := ctx.ResolveDay(c.Day)
	if err != nil {
		return err
	}

	data, err := ctx.Store.GetAppData()
	if err != nil {
		return err
	}

	sessions := report.FocusSessionsForDay(data.FocusSessions, day, loc)
	if len(sessions) == 0 {
		fmt.Printf("No focus sessions on %s.\n", day)
		return nil
	}

	fmt.Printf("Focus sessions on %s:\n", day)
	for _, s := range sessions {
		status := "open"
		if s.Completed {
			status = "done"
		}
		fmt.Printf("  %s  %-5s  %3d min  %-4s  (%s)\n",
			utils.FormatMillis(s.StartTime, loc), s.Kind, s.DurationMin, status, s.ID)
	}
	return nil
}
