package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/tui"
)

func newAddCommand(a *app) *cobra.Command {
	var (
		book entities.Book
		read string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a book to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := entities.ParseReadStatus(read)
			if err != nil {
				return err
			}
			book.Title = args[0]
			book.ReadStatus = status

			return a.withDatabase(func(db *database.Database) error {
				if err := db.Books().Insert(&book); err != nil {
					return err
				}
				printLine(cmd.OutOrStdout(), catalog.AddedMessage(book.Title))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&book.Author, "author", "", "author")
	cmd.Flags().StringVar(&book.Year, "year", "", "publication year")
	cmd.Flags().StringVar(&book.Genre, "genre", "", "genre")
	cmd.Flags().StringVar(&read, "read", entities.ReadStatusRead.String(), "read status (True or False)")
	return cmd
}

func newRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove every book with exactly this title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			return a.withDatabase(func(db *database.Database) error {
				removed, err := db.Books().DeleteByTitle(title)
				if err != nil {
					return err
				}
				log.Printf("Removed %d book(s) titled %q", removed, title)
				printLine(cmd.OutOrStdout(), catalog.RemovedMessage(title))
				return nil
			})
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"books"},
		Short:   "List every book",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDatabase(func(db *database.Database) error {
				books, err := db.Books().ListAll()
				if err != nil {
					return err
				}
				printBooks(cmd, books, catalog.MessageNoBooks)
				return nil
			})
		},
	}
}

func newSearchCommand(a *app) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search books by title, author or genre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			searchField, err := entities.ParseSearchField(field)
			if err != nil {
				return err
			}
			term := args[0]
			if term == "" {
				return nil
			}

			return a.withDatabase(func(db *database.Database) error {
				books, err := db.Books().Search(searchField, term)
				if err != nil {
					return err
				}
				printBooks(cmd, books, catalog.MessageNoMatches)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&field, "field", "f", entities.SearchFieldTitle.String(), "field to search: title, author or genre")
	return cmd
}

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDatabase(func(db *database.Database) error {
				stats, err := catalog.LoadStats(db.Books())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				printLine(out, "Total Books:", stats.Total)
				printLine(out, "Read Percentage:", stats.FormattedReadPercentage())
				return nil
			})
		},
	}
}

func printBooks(cmd *cobra.Command, books []entities.Book, empty string) {
	if len(books) == 0 {
		printLine(cmd.OutOrStdout(), empty)
		return
	}
	printLine(cmd.OutOrStdout(), tui.RenderBooks(books))
}
