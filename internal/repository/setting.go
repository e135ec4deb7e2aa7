package repository

import (
	"field-dispatch-backend/internal/database/models"

	"gorm.io/gorm"
)

// SettingRepository handles database operations for settings
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetByKey retrieves a setting by its key
func (r *SettingRepository) GetByKey(key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.First(&setting, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetAll returns every setting
func (r *SettingRepository) GetAll() ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

// Upsert creates or updates the setting identified by its key
func (r *SettingRepository) Upsert(key, value string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	switch {
	case err == nil:
		setting.Value = value
		if err := r.db.Save(&setting).Error; err != nil {
			return nil, err
		}
	case err == gorm.ErrRecordNotFound:
		setting = models.Setting{Key: key, Value: value}
		if err := r.db.Create(&setting).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &setting, nil
}

// ShowWeekends reads the board's weekend toggle, defaulting to false when
// the setting is absent.
func (r *SettingRepository) ShowWeekends() (bool, error) {
	setting, err := r.GetByKey(models.SettingShowWeekends)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return setting.Value == "true", nil
}
