package system

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"vitalog/internal/cli"
	"vitalog/internal/utils"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
	Quiet bool `short:"q" help:"Skip the interactive profile form."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dataPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dataPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(dataPath); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", dataPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized vitalog storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Quiet {
		return nil
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&settings.Profile.Name),
			huh.NewInput().
				Title("Timezone (IANA name, or Local)").
				Value(&settings.Profile.Timezone).
				Validate(func(s string) error {
					if !utils.ValidateTimezone(s) {
						return fmt.Errorf("unknown timezone")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("What are you mainly tracking?").
				Options(
					huh.NewOption("General wellness", "general"),
					huh.NewOption("Hydration", "hydration"),
					huh.NewOption("Mood", "mood"),
					huh.NewOption("Focus", "focus"),
				).
				Value(&settings.Profile.GoalCategory),
		),
	)
	if err := form.Run(); err != nil {
		// Profile setup is optional; storage is already initialized.
		fmt.Println("Skipped profile setup. Edit later with 'vitalog settings set'.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("✓ Profile saved")
	return nil
}
