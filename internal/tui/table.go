package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mrlokans/library/internal/entities"
)

var bookHeaders = []string{"ID", "Title", "Author", "Year", "Genre", "Read"}

// RenderBooks draws records as a bordered table. Used by the terminal shell
// and the one-shot CLI commands.
func RenderBooks(books []entities.Book) string {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(b.ID), 10),
			b.Title,
			b.Author,
			b.Year,
			b.Genre,
			b.ReadStatus.String(),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(blurredStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return noStyle.Padding(0, 1)
		}).
		Headers(bookHeaders...).
		Rows(rows...).
		String()
}
