package exporters

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExporter writes timestamped catalog snapshots into a directory.
type FileExporter struct {
	Dir    string
	Format Format
	lister BookLister
}

func NewFileExporter(lister BookLister, dir string, format Format) *FileExporter {
	return &FileExporter{
		Dir:    dir,
		Format: format,
		lister: lister,
	}
}

func (exporter *FileExporter) ensureDir() error {
	if err := os.MkdirAll(exporter.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	return nil
}

// Export lists the catalog and writes it to <Dir>/books-<timestamp>.<ext>.
func (exporter *FileExporter) Export() (ExportResult, error) {
	if err := exporter.ensureDir(); err != nil {
		return ExportResult{}, err
	}

	books, err := exporter.lister.ListAll()
	if err != nil {
		return ExportResult{}, err
	}

	name := fmt.Sprintf("books-%s.%s", now().Format("20060102-150405"), exporter.Format.Extension())
	outputPath := filepath.Join(exporter.Dir, name)

	// Write to a temp file first so a failed export never leaves a partial snapshot
	tmp, err := os.CreateTemp(exporter.Dir, ".export-*")
	if err != nil {
		return ExportResult{}, err
	}
	defer os.Remove(tmp.Name())

	if err := Render(tmp, exporter.Format, books); err != nil {
		tmp.Close()
		return ExportResult{}, err
	}
	if err := tmp.Close(); err != nil {
		return ExportResult{}, err
	}
	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return ExportResult{}, err
	}

	return ExportResult{BooksProcessed: len(books), Path: outputPath}, nil
}
