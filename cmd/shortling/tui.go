package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shortling/shortling/cmd/shortling/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	notify := &ui.ProgramNotifier{}
	a, err := newApp(notify)
	if err != nil {
		return err
	}
	defer a.Close()

	model := ui.NewApp(a.session, a.links, a.cfg.APIBaseURL, a.logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	notify.Attach(p)

	_, err = p.Run()
	return err
}
