package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/exporters"
)

// StatusRecorder persists the outcome of the last export run.
type StatusRecorder interface {
	SetSettings(values map[string]string) error
}

// StatusReader loads values written by a StatusRecorder.
type StatusReader interface {
	GetValues(keys ...string) (map[string]string, error)
}

// ExportStatus is the last recorded export run. The zero value means no
// export has run yet.
type ExportStatus struct {
	At      time.Time
	Status  string
	Message string
	File    string
}

func (s ExportStatus) HasRun() bool {
	return !s.At.IsZero()
}

func (s ExportStatus) Succeeded() bool {
	return s.Status == entities.ExportStatusSuccess
}

// LoadExportStatus reads the last export run from settings.
func LoadExportStatus(reader StatusReader) (ExportStatus, error) {
	values, err := reader.GetValues(
		entities.SettingKeyExportLastAt,
		entities.SettingKeyExportLastStatus,
		entities.SettingKeyExportLastMessage,
		entities.SettingKeyExportLastFile,
	)
	if err != nil {
		return ExportStatus{}, err
	}

	status := ExportStatus{
		Status:  values[entities.SettingKeyExportLastStatus],
		Message: values[entities.SettingKeyExportLastMessage],
		File:    values[entities.SettingKeyExportLastFile],
	}
	if raw := values[entities.SettingKeyExportLastAt]; raw != "" {
		if at, err := time.Parse(time.RFC3339, raw); err == nil {
			status.At = at
		}
	}
	return status, nil
}

// RunCatalogExport writes one export file and records the outcome. A failed
// status write is logged; the export error, if any, is what gets returned.
func RunCatalogExport(lister exporters.BookLister, recorder StatusRecorder, dir string, format exporters.Format) (exporters.ExportResult, error) {
	result, err := exporters.NewFileExporter(lister, dir, format).Export()

	values := map[string]string{
		entities.SettingKeyExportLastAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		values[entities.SettingKeyExportLastStatus] = entities.ExportStatusFailed
		values[entities.SettingKeyExportLastMessage] = err.Error()
		values[entities.SettingKeyExportLastFile] = ""
	} else {
		values[entities.SettingKeyExportLastStatus] = entities.ExportStatusSuccess
		values[entities.SettingKeyExportLastMessage] = fmt.Sprintf("Exported %d books", result.BooksProcessed)
		values[entities.SettingKeyExportLastFile] = result.Path
	}

	if recorder != nil {
		if recErr := recorder.SetSettings(values); recErr != nil {
			log.Printf("Failed to record export status: %v", recErr)
		}
	}

	if err != nil {
		return result, fmt.Errorf("export catalog: %w", err)
	}
	return result, nil
}

// ExportCatalogTask writes a snapshot of the whole catalog to Dir.
type ExportCatalogTask struct {
	Dir     string `json:"dir"`
	Format  string `json:"format"`
	Trigger string `json:"trigger"` // "schedule" or "manual"
}

func (t ExportCatalogTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "export_catalog",
		MaxAttempts: 2,
		Backoff:     time.Minute,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func ExportCatalogProcessor(lister exporters.BookLister, recorder StatusRecorder) backlite.QueueProcessor[ExportCatalogTask] {
	return func(ctx context.Context, task ExportCatalogTask) error {
		if lister == nil {
			return fmt.Errorf("catalog lister not configured")
		}

		format, err := exporters.ParseFormat(task.Format)
		if err != nil {
			return err
		}

		result, err := RunCatalogExport(lister, recorder, task.Dir, format)
		if err != nil {
			return err
		}

		log.Printf("[TASK] Exported %d books to %s (%s)", result.BooksProcessed, result.Path, task.Trigger)
		return nil
	}
}

func NewExportCatalogQueue(lister exporters.BookLister, recorder StatusRecorder) backlite.Queue {
	return backlite.NewQueue(ExportCatalogProcessor(lister, recorder))
}
