package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/library/internal/entities"
)

// BookLister is the catalog operation an export needs.
type BookLister interface {
	ListAll() ([]entities.Book, error)
}

// Format selects the export encoding.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts "csv", "markdown" and "md".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return "csv"
}

// ContentType returns the MIME type used for downloads.
func (f Format) ContentType() string {
	if f == FormatMarkdown {
		return "text/markdown; charset=utf-8"
	}
	return "text/csv; charset=utf-8"
}

type ExportResult struct {
	BooksProcessed int    `json:"books_processed"`
	Path           string `json:"path,omitempty"`
}

// Render writes books to w in the given format.
func Render(w io.Writer, format Format, books []entities.Book) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, books)
	case FormatMarkdown:
		_, err := io.WriteString(w, GenerateMarkdown(books))
		return err
	}
	return fmt.Errorf("unsupported export format %q", format)
}
