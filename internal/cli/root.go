// Package cli wires the one-shot commands, the terminal shell and the HTTP
// server behind a single cobra command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
)

const appName = "library"

// app holds what every subcommand needs: configuration and a way to open the
// catalog database.
type app struct {
	cfg     *config.Config
	version string
	dbPath  string
	serve   ServeFunc
}

func (a *app) databasePath() string {
	if a.dbPath != "" {
		return a.dbPath
	}
	return a.cfg.Database.Path
}

// withDatabase opens the catalog for the duration of fn. gorm output is
// silenced so it does not mix with command output.
func (a *app) withDatabase(fn func(db *database.Database) error) error {
	db, err := database.NewDatabase(a.databasePath(), database.WithSilentLogger())
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

// ServeFunc starts the HTTP server and blocks until shutdown.
type ServeFunc func(cfg *config.Config, version string) error

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the server.
func NewRootCommand(cfg *config.Config, version string, serve ServeFunc) *cobra.Command {
	a := &app{cfg: cfg, version: version, serve: serve}

	root := &cobra.Command{
		Use:     appName,
		Short:   "A personal library catalog",
		Version: version,
		Long: `Library keeps track of the books you own: add and remove titles, list and
search the catalog and see how much of it you have read. It runs as a web
application, an interactive terminal application or as one-shot commands.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe()
		},
	}
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "path to the catalog database (default $DATABASE_PATH or "+config.DefaultDatabasePath+")")

	root.AddCommand(
		newServeCommand(a),
		newAddCommand(a),
		newRemoveCommand(a),
		newListCommand(a),
		newSearchCommand(a),
		newStatsCommand(a),
		newExportCommand(a),
		newTUICommand(a),
	)
	return root
}

func (a *app) runServe() error {
	if a.dbPath != "" {
		a.cfg.Database.Path = a.dbPath
	}
	return a.serve(a.cfg, a.version)
}

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe()
		},
	}
}

func printLine(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
