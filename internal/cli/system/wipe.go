package system

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"vitalog/internal/cli"
)

type WipeCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *WipeCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		fmt.Printf("This deletes all entries at %s. Type 'wipe' to confirm: ", ctx.Store.GetConfigPath())
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.TrimSpace(answer) != "wipe" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.Wipe(); err != nil {
		return err
	}
	fmt.Println("✓ Storage wiped. Run 'vitalog init' to start fresh.")
	return nil
}
