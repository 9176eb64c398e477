package main

import (
	"fishing-finder/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal finder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	svc, closeFn, err := opts.loadService(cmd.Context())
	defer func() { _ = closeFn() }()
	if err != nil {
		return err
	}

	m := tui.New(svc)
	if !svc.Loaded() {
		m = m.WithStatus("catalog not loaded: searches return no results")
	}

	p := tea.NewProgram(m,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
