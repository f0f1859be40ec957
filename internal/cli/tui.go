package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/tui"
)

func newTUICommand(a *app) *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDatabase(func(db *database.Database) error {
				return tui.Run(db.Books(), logPath)
			})
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "write logs to this file while the interface is open")
	return cmd
}
