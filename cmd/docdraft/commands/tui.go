package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"docdraft/internal/tui"
)

// tui: interactive composer.
func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Compose a draft interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := tui.New(cmd.Context(), tui.Deps{
				Store:     sess.store,
				Stack:     sess.stack,
				Collector: sess.collector,
				Composer:  sess.composer,
				Catalog:   sess.api,
				Library:   sess.library,
				Prefix:    sess.cfg.MinIO.Prefix,
				Expiry:    sess.presignExpiry(),

				UploadRoot: sess.cfg.Remote.UploadRoot,
			})
			_, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
