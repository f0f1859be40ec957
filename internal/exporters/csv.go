package exporters

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mrlokans/library/internal/entities"
)

// csvHeader mirrors the books table columns.
var csvHeader = []string{"id", "title", "author", "year", "genre", "read_status"}

// WriteCSV writes one row per book; read_status uses the stored "True"/"False" text.
func WriteCSV(w io.Writer, books []entities.Book) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, book := range books {
		record := []string{
			strconv.FormatUint(uint64(book.ID), 10),
			book.Title,
			book.Author,
			book.Year,
			book.Genre,
			book.ReadStatus.String(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
