package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/exporters"
	"github.com/mrlokans/library/internal/tasks"
)

func newExportCommand(a *app) *cobra.Command {
	var (
		format string
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as CSV or Markdown",
		Long: `Export writes the whole catalog to standard output. With --dir it writes a
timestamped file into that directory instead and records the run the same way
scheduled exports do.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exporters.ParseFormat(format)
			if err != nil {
				return err
			}

			return a.withDatabase(func(db *database.Database) error {
				if dir != "" {
					result, err := tasks.RunCatalogExport(db.Books(), db.Settings(), dir, f)
					if err != nil {
						return err
					}
					printLine(cmd.OutOrStdout(), fmt.Sprintf("Exported %d books to %s", result.BooksProcessed, result.Path))
					return nil
				}

				books, err := db.Books().ListAll()
				if err != nil {
					return err
				}
				return exporters.Render(cmd.OutOrStdout(), f, books)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", string(exporters.FormatCSV), "output format: csv or markdown")
	cmd.Flags().StringVar(&dir, "dir", "", "write a timestamped file into this directory")
	return cmd
}
