// Package settings provides database operations for key/value application
// settings such as the catalog export status.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	err := repo.SetSettings(map[string]string{entities.SettingKeyExportLastStatus: "success"})
//	values, err := repo.GetValues(entities.SettingKeyExportLastAt, entities.SettingKeyExportLastStatus)
package settings

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/library/internal/entities"
)

// Repository handles all settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Initialize creates the settings table when it is missing.
func (r *Repository) Initialize() error {
	if err := r.db.AutoMigrate(&entities.Setting{}); err != nil {
		return fmt.Errorf("migrate settings table: %w", err)
	}
	return nil
}

// GetSetting retrieves a setting by key.
func (r *Repository) GetSetting(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetString returns the value stored under key, or "" when it is not set.
func (r *Repository) GetString(key string) (string, error) {
	setting, err := r.GetSetting(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// GetValues returns the stored values for the given keys. Missing keys are
// absent from the result.
func (r *Repository) GetValues(keys ...string) (map[string]string, error) {
	var found []entities.Setting
	if err := r.db.Where("key IN ?", keys).Find(&found).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(found))
	for _, s := range found {
		values[s.Key] = s.Value
	}
	return values, nil
}

// SetSetting creates or updates a setting.
func (r *Repository) SetSetting(key, value string) error {
	return r.SetSettings(map[string]string{key: value})
}

// SetSettings upserts several settings in one transaction.
func (r *Repository) SetSettings(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			setting := entities.Setting{Key: key, Value: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&setting).Error
			if err != nil {
				return fmt.Errorf("save setting %s: %w", key, err)
			}
		}
		return nil
	})
}

// DeleteSetting removes a setting by key.
func (r *Repository) DeleteSetting(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.Setting{}).Error
}
