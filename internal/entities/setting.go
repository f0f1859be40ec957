package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// Catalog export status, written by the export job
	SettingKeyExportLastAt      = "export_last_at"
	SettingKeyExportLastStatus  = "export_last_status"
	SettingKeyExportLastMessage = "export_last_message"
	SettingKeyExportLastFile    = "export_last_file"
)

// Export run statuses stored under SettingKeyExportLastStatus.
const (
	ExportStatusSuccess = "success"
	ExportStatusFailed  = "failed"
)
