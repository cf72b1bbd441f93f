package dashboard

import (
	"fmt"

	"vitalog/internal/cli"
)

type DashboardListCmd struct{}

func (c *DashboardListCmd) Run(ctx *cli.Context) error {
	panels, err := ctx.Store.GetDashboard()
	if err != nil {
		return err
	}

	fmt.Println("Dashboard panels:")
	for _, p := range panels {
		state := "on "
		if !p.Enabled {
			state = "off"
		}
		fmt.Printf("  %d. [%s] %s %-8s %s\n", p.Order, state, p.Icon, p.ID, p.Description)
	}
	return nil
}

type DashboardEnableCmd struct {
	ID string `arg:"" help:"Panel id to enable."`
}

func (c *DashboardEnableCmd) Run(ctx *cli.Context) error {
	return setEnabled(ctx, c.ID, true)
}

type DashboardDisableCmd struct {
	ID string `arg:"" help:"Panel id to disable."`
}

func (c *DashboardDisableCmd) Run(ctx *cli.Context) error {
	return setEnabled(ctx, c.ID, false)
}

func setEnabled(ctx *cli.Context, id string, enabled bool) error {
	panels, err := ctx.Store.GetDashboard()
	if err != nil {
		return err
	}

	for i := range panels {
		if panels[i].ID != id {
			continue
		}
		panels[i].Enabled = enabled
		if err := ctx.Store.SaveDashboard(panels); err != nil {
			return err
		}
		if enabled {
			fmt.Printf("✓ Enabled panel %s\n", id)
		} else {
			fmt.Printf("✓ Disabled panel %s\n", id)
		}
		return nil
	}
	return fmt.Errorf("unknown panel: %s", id)
}
