package exporters

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrlokans/library/internal/entities"
)

var markdownCellEscaper = strings.NewReplacer("|", "\\|", "\r\n", " ", "\n", " ")

// now is replaced in tests.
var now = time.Now

// GenerateMarkdown renders the catalog as a markdown table with a small
// frontmatter block.
func GenerateMarkdown(books []entities.Book) string {
	var builder strings.Builder

	read := 0
	for _, book := range books {
		if book.ReadStatus.IsRead() {
			read++
		}
	}

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: library_catalog\n")
	fmt.Fprintf(&builder, "created_at: %s\n", now().Format("2006-01-02"))
	fmt.Fprintf(&builder, "total_books: %d\n", len(books))
	fmt.Fprintf(&builder, "read_books: %d\n", read)
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# Library\n\n")

	if len(books) == 0 {
		fmt.Fprintf(&builder, "No books found.\n")
		return builder.String()
	}

	fmt.Fprintf(&builder, "| ID | Title | Author | Year | Genre | Read |\n")
	fmt.Fprintf(&builder, "|---:|-------|--------|------|-------|------|\n")
	for _, book := range books {
		fmt.Fprintf(&builder, "| %d | %s | %s | %s | %s | %s |\n",
			book.ID,
			markdownCellEscaper.Replace(book.Title),
			markdownCellEscaper.Replace(book.Author),
			markdownCellEscaper.Replace(book.Year),
			markdownCellEscaper.Replace(book.Genre),
			book.ReadStatus,
		)
	}

	return builder.String()
}
