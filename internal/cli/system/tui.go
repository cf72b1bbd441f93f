package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"vitalog/internal/cli"
	"vitalog/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	model, err := tui.NewModel(ctx.Store)
	if err != nil {
		return err
	}
	defer model.Cleanup()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
